// Package parser implements Lumen's recursive-descent parser. It produces
// statement and expression trees tagged with unique node ids (see
// internal/ast), and accumulates every syntax error it finds by
// resynchronizing at statement boundaries rather than stopping at the
// first one.
package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/errors"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/pkg/token"
)

// Parser turns a token stream into a statement tree.
type Parser struct {
	tokens  []token.Token
	current int
	ids     ast.IDGen
	errs    errors.List
	source  string
	file    string

	loopDepth int
	funcDepth int
}

// New creates a Parser over source, scanning it with the lexer first. A
// lexical error aborts immediately (the lexer never resynchronizes).
func New(source, file string) (*Parser, error) {
	l := lexer.New(source)
	tokens, err := l.Tokenize()
	if err != nil {
		if le, ok := err.(*lexer.Error); ok {
			return nil, errors.New(errors.Lexical, le.Pos, source, file, "%s", le.Message)
		}
		return nil, err
	}
	return &Parser{tokens: tokens, source: source, file: file}, nil
}

// Parse parses the whole token stream into a statement list. If any syntax
// errors were recorded they are returned as an errors.List; the partial
// statement slice is still returned alongside it for tooling that wants it
// (e.g. --dump-ast), but callers executing the program must treat a
// non-nil error as fatal.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if len(p.errs) > 0 {
		return stmts, p.errs
	}
	return stmts, nil
}

// --- token cursor helpers ---

func (p *Parser) peek() token.Token  { return p.tokens[p.current] }
func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return t == token.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or records a structured
// syntax error naming what was expected and what was actually found.
func (p *Parser) consume(t token.Type, context string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	got := p.peek()
	err := p.errorAt(got, "expected %s %s, got '%s'", t, context, got.Lexeme)
	return token.Token{}, err
}

func (p *Parser) errorAt(tok token.Token, format string, args ...any) error {
	e := errors.New(errors.Syntax, tok.Pos, p.source, p.file, format, args...)
	p.errs = append(p.errs, e)
	return e
}

func (p *Parser) nextID() int { return p.ids.Next() }

// synchronize discards tokens until it reaches a likely statement boundary,
// so parsing can continue after an error and collect further diagnostics.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLAZZ, token.FC, token.LET, token.FOR, token.IF, token.WHILE, token.WRITE, token.RETURN:
			return
		}
		p.advance()
	}
}

