package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/pkg/token"
)

const maxParams = 255

// declaration parses one top-level-or-block statement, resynchronizing on
// error so the caller can keep collecting diagnostics.
func (p *Parser) declaration() ast.Stmt {
	stmt, err := p.statement()
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.LET):
		return p.letStmt()
	case p.match(token.CONST):
		return p.constStmt()
	case p.match(token.FC):
		return p.functionStmt("function")
	case p.match(token.CLAZZ):
		return p.classStmt()
	case p.match(token.LIB):
		return p.libImport()
	case p.match(token.WRITE):
		return p.writeStmt()
	case p.match(token.LEFT_BRACE):
		return p.block()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.FOREACH):
		return p.foreachStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.BREAK):
		return p.breakStmt()
	case p.match(token.CONTINUE):
		return p.continueStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) letStmt() (ast.Stmt, error) {
	tok := p.previous()
	name, err := p.consume(token.IDENT, "identifier after 'let'")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "';' after variable declaration"); err != nil {
		return nil, err
	}
	return ast.NewLetStmt(p.nextID(), tok.Pos, name.Lexeme, init), nil
}

func (p *Parser) constStmt() (ast.Stmt, error) {
	tok := p.previous()
	name, err := p.consume(token.IDENT, "identifier after 'const'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.EQUAL, "'=' after constant name"); err != nil {
		return nil, err
	}
	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "';' after constant declaration"); err != nil {
		return nil, err
	}
	return ast.NewConstStmt(p.nextID(), tok.Pos, name.Lexeme, init), nil
}

// functionStmt parses a named `fc` function declaration; the caller has
// already consumed the `fc` keyword. Class methods are parsed by classStmt.
func (p *Parser) functionStmt(kind string) (*ast.FunctionStmt, error) {
	tok := p.previous()
	name, err := p.consume(token.IDENT, "name after '"+kind+"'")
	if err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "'{' before function body"); err != nil {
		return nil, err
	}
	p.funcDepth++
	savedLoopDepth := p.loopDepth
	p.loopDepth = 0
	body, err := p.blockBody()
	p.loopDepth = savedLoopDepth
	p.funcDepth--
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionStmt(p.nextID(), tok.Pos, name.Lexeme, params, body), nil
}

func (p *Parser) paramList() ([]string, error) {
	if _, err := p.consume(token.LEFT_PAREN, "'(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxParams {
				p.errorAt(p.peek(), "can't have more than %d parameters", maxParams)
			}
			name, err := p.consume(token.IDENT, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, name.Lexeme)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "')' after parameters"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) classStmt() (ast.Stmt, error) {
	tok := p.previous()
	name, err := p.consume(token.IDENT, "class name")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(token.LESS) {
		superName, err := p.consume(token.IDENT, "superclass name after '<'")
		if err != nil {
			return nil, err
		}
		superclass = ast.NewVariable(p.nextID(), superName.Pos, superName.Lexeme)
	}

	if _, err := p.consume(token.LEFT_BRACE, "'{' before class body"); err != nil {
		return nil, err
	}

	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		// A method may be written with or without a leading `fc`.
		p.match(token.FC)
		methodName, err := p.consume(token.IDENT, "method name")
		if err != nil {
			return nil, err
		}
		// The parameter list and body are parsed inline, the same way
		// functionStmt parses them.
		params, err := p.paramList()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.LEFT_BRACE, "'{' before method body"); err != nil {
			return nil, err
		}
		p.funcDepth++
		savedLoopDepth := p.loopDepth
		p.loopDepth = 0
		body, err := p.blockBody()
		p.loopDepth = savedLoopDepth
		p.funcDepth--
		if err != nil {
			return nil, err
		}
		methods = append(methods, ast.NewFunctionStmt(p.nextID(), methodName.Pos, methodName.Lexeme, params, body))
	}

	if _, err := p.consume(token.RIGHT_BRACE, "'}' after class body"); err != nil {
		return nil, err
	}

	return ast.NewClassStmt(p.nextID(), tok.Pos, name.Lexeme, superclass, methods), nil
}

func (p *Parser) writeStmt() (ast.Stmt, error) {
	tok := p.previous()
	var args []ast.Expr
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(token.COMMA) {
			break
		}
	}
	if _, err := p.consume(token.SEMICOLON, "';' after write statement"); err != nil {
		return nil, err
	}
	return ast.NewWriteStmt(p.nextID(), tok.Pos, args), nil
}

func (p *Parser) block() (ast.Stmt, error) {
	tok := p.previous()
	stmts, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return ast.NewBlockStmt(p.nextID(), tok.Pos, stmts), nil
}

// blockBody parses statements up to (and consuming) the closing '}'. The
// opening '{' must already have been consumed by the caller.
func (p *Parser) blockBody() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.consume(token.RIGHT_BRACE, "'}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	tok := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "'(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elifs []ast.ElifBranch
	for p.match(token.ELIF) {
		if _, err := p.consume(token.LEFT_PAREN, "'(' after 'elif'"); err != nil {
			return nil, err
		}
		elifCond, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "')' after elif condition"); err != nil {
			return nil, err
		}
		elifBranch, err := p.statement()
		if err != nil {
			return nil, err
		}
		elifs = append(elifs, ast.ElifBranch{Cond: elifCond, Branch: elifBranch})
	}

	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return ast.NewIfStmt(p.nextID(), tok.Pos, cond, then, elifs, elseBranch), nil
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	tok := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "'(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "')' after while condition"); err != nil {
		return nil, err
	}
	p.loopDepth++
	body, err := p.statement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(p.nextID(), tok.Pos, cond, body), nil
}

// forStmt desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`, with cond defaulting to `true`.
func (p *Parser) forStmt() (ast.Stmt, error) {
	tok := p.previous()
	if _, err := p.consume(token.LEFT_PAREN, "'(' after 'for'"); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	if p.match(token.SEMICOLON) {
		init = nil
	} else if p.match(token.LET) {
		init, err = p.letStmt()
	} else {
		init, err = p.exprStmt()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "';' after loop condition"); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "')' after for clauses"); err != nil {
		return nil, err
	}

	p.loopDepth++
	body, err := p.statement()
	p.loopDepth--
	if err != nil {
		return nil, err
	}

	if cond == nil {
		cond = ast.NewLiteral(p.nextID(), tok.Pos, token.TRUE, 0, "")
	}

	loopBody := []ast.Stmt{body}
	if incr != nil {
		loopBody = append(loopBody, ast.NewExprStmt(p.nextID(), tok.Pos, incr))
	}
	whileStmt := ast.NewWhileStmt(p.nextID(), tok.Pos, cond, ast.NewBlockStmt(p.nextID(), tok.Pos, loopBody))

	outer := []ast.Stmt{}
	if init != nil {
		outer = append(outer, init)
	}
	outer = append(outer, whileStmt)
	return ast.NewBlockStmt(p.nextID(), tok.Pos, outer), nil
}

func (p *Parser) foreachStmt() (ast.Stmt, error) {
	tok := p.previous()
	varName, err := p.consume(token.IDENT, "loop variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.IN, "'in' after foreach variable"); err != nil {
		return nil, err
	}
	listName, err := p.consume(token.IDENT, "list name after 'in'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LEFT_BRACE, "'{' before foreach body"); err != nil {
		return nil, err
	}
	p.loopDepth++
	body, err := p.blockBody()
	p.loopDepth--
	if err != nil {
		return nil, err
	}
	return ast.NewForeachStmt(p.nextID(), tok.Pos, varName.Lexeme, listName.Lexeme, body), nil
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	tok := p.previous()
	if p.funcDepth == 0 {
		p.errorAt(tok, "'return' outside a function")
	}
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		var err error
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "';' after return value"); err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(p.nextID(), tok.Pos, value), nil
}

func (p *Parser) breakStmt() (ast.Stmt, error) {
	tok := p.previous()
	if p.loopDepth == 0 {
		p.errorAt(tok, "'break' outside a loop")
	}
	if _, err := p.consume(token.SEMICOLON, "';' after 'break'"); err != nil {
		return nil, err
	}
	return ast.NewBreakStmt(p.nextID(), tok.Pos), nil
}

func (p *Parser) continueStmt() (ast.Stmt, error) {
	tok := p.previous()
	if p.loopDepth == 0 {
		p.errorAt(tok, "'continue' outside a loop")
	}
	if _, err := p.consume(token.SEMICOLON, "';' after 'continue'"); err != nil {
		return nil, err
	}
	return ast.NewContinueStmt(p.nextID(), tok.Pos), nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	tok := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "';' after expression"); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(p.nextID(), tok.Pos, expr), nil
}
