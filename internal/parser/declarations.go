package parser

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/pkg/token"
)

// libImport parses the three `lib std::...` forms documented in
// spec.md §4.2: whole-module, single-name, and bracketed-list.
func (p *Parser) libImport() (ast.Stmt, error) {
	tok := p.previous()
	if _, err := p.consume(token.STD, "'std' after 'lib'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON_COLON, "'::' after 'std'"); err != nil {
		return nil, err
	}
	moduleTok, err := p.consume(token.IDENT, "module name")
	if err != nil {
		return nil, err
	}
	module := moduleTok.Lexeme
	members, known := knownModules[module]
	if !known {
		p.errorAt(moduleTok, "unknown standard-library module '%s'", module)
	}

	switch {
	case p.match(token.SEMICOLON):
		return ast.NewLibImport(p.nextID(), tok.Pos, module, true, nil), nil

	case p.match(token.COLON_COLON):
		nameTok, err := p.consume(token.IDENT, "member name after '::'")
		if err != nil {
			return nil, err
		}
		if known && !members[nameTok.Lexeme] {
			p.errorAt(nameTok, "unknown member '%s::%s'", module, nameTok.Lexeme)
		}
		if _, err := p.consume(token.SEMICOLON, "';' after import"); err != nil {
			return nil, err
		}
		return ast.NewLibImport(p.nextID(), tok.Pos, module, false, []string{nameTok.Lexeme}), nil

	case p.match(token.LEFT_BRACKET):
		var names []string
		for {
			nameTok, err := p.consume(token.IDENT, "member name")
			if err != nil {
				return nil, err
			}
			if known && !members[nameTok.Lexeme] {
				p.errorAt(nameTok, "unknown member '%s::%s'", module, nameTok.Lexeme)
			}
			names = append(names, nameTok.Lexeme)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.consume(token.RIGHT_BRACKET, "']' after import list"); err != nil {
			return nil, err
		}
		if _, err := p.consume(token.SEMICOLON, "';' after import"); err != nil {
			return nil, err
		}
		return ast.NewLibImport(p.nextID(), tok.Pos, module, false, names), nil

	default:
		got := p.peek()
		return nil, p.errorAt(got, "expected ';', '::', or '[' after module name, got '%s' (known modules: %s)",
			got.Lexeme, strings.Join(moduleNames(), ", "))
	}
}

func moduleNames() []string {
	names := make([]string, 0, len(knownModules))
	for name := range knownModules {
		names = append(names, name)
	}
	return names
}
