package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/pkg/token"
)

const maxArgs = 255

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment is right-associative; its target must be a Variable
// (producing Assign) or a Get (producing Set). Any other target is a
// SyntaxError.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if p.match(token.EQUAL) {
		eq := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(p.nextID(), eq.Pos, target.Name, value), nil
		case *ast.Get:
			return ast.NewSet(p.nextID(), eq.Pos, target.Object, target.Name, value), nil
		default:
			return nil, p.errorAt(eq, "invalid assignment target")
		}
	}
	return expr, nil
}

func (p *Parser) logicalOr() (ast.Expr, error) {
	left, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR_OR) {
		op := p.previous()
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewLogical(p.nextID(), op.Pos, op.Type, left, right)
	}
	return left, nil
}

func (p *Parser) logicalAnd() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND_AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = ast.NewLogical(p.nextID(), op.Pos, op.Type, left, right)
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.EQUAL_EQUAL, token.BANG_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(p.nextID(), op.Pos, op.Type, left, right)
	}
	return left, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.match(token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL) {
		op := p.previous()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(p.nextID(), op.Pos, op.Type, left, right)
	}
	return left, nil
}

func (p *Parser) additive() (ast.Expr, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(p.nextID(), op.Pos, op.Type, left, right)
	}
	return left, nil
}

func (p *Parser) multiplicative() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(p.nextID(), op.Pos, op.Type, left, right)
	}
	return left, nil
}

// unary handles prefix `!`, `-`, and the `++`/`--` identifier-increment
// sugar, which expands to an Assign of a Binary add/subtract of 1.
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(p.nextID(), op.Pos, op.Type, operand), nil
	}
	if p.match(token.PLUS_PLUS, token.MINUS_MINUS) {
		op := p.previous()
		nameTok, err := p.consume(token.IDENT, "identifier after '"+op.Lexeme+"'")
		if err != nil {
			return nil, err
		}
		arith := token.PLUS
		if op.Type == token.MINUS_MINUS {
			arith = token.MINUS
		}
		one := ast.NewLiteral(p.nextID(), op.Pos, token.NUMBER, 1, "")
		variable := ast.NewVariable(p.nextID(), nameTok.Pos, nameTok.Lexeme)
		sum := ast.NewBinary(p.nextID(), op.Pos, arith, variable, one)
		return ast.NewAssign(p.nextID(), op.Pos, nameTok.Lexeme, sum), nil
	}
	return p.call()
}

// call parses chained `(args)` calls and `.member` accesses following a
// primary expression.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			args, err := p.arguments()
			if err != nil {
				return nil, err
			}
			expr = ast.NewCall(p.nextID(), p.previous().Pos, expr, args)
		case p.match(token.DOT):
			name, err := p.consume(token.IDENT, "property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = ast.NewGet(p.nextID(), name.Pos, expr, name.Lexeme)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) arguments() ([]ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "can't have more than %d arguments", maxArgs)
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PAREN, "')' after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.LEFT_PAREN):
		tok := p.previous()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "')' after expression"); err != nil {
			return nil, err
		}
		return ast.NewGrouping(p.nextID(), tok.Pos, inner), nil

	case p.match(token.LEFT_BRACKET):
		tok := p.previous()
		if _, err := p.consume(token.RIGHT_BRACKET, "']' (only the empty list literal '[]' is supported)"); err != nil {
			return nil, err
		}
		return ast.NewListLiteral(p.nextID(), tok.Pos), nil

	case p.match(token.TRUE):
		tok := p.previous()
		return ast.NewLiteral(p.nextID(), tok.Pos, token.TRUE, 0, ""), nil

	case p.match(token.FALSE):
		tok := p.previous()
		return ast.NewLiteral(p.nextID(), tok.Pos, token.FALSE, 0, ""), nil

	case p.match(token.NULL):
		tok := p.previous()
		return ast.NewLiteral(p.nextID(), tok.Pos, token.NULL, 0, ""), nil

	case p.match(token.NUMBER):
		tok := p.previous()
		return ast.NewLiteral(p.nextID(), tok.Pos, token.NUMBER, tok.Literal.Number, ""), nil

	case p.match(token.STRING):
		tok := p.previous()
		return ast.NewLiteral(p.nextID(), tok.Pos, token.STRING, 0, tok.Literal.String), nil

	case p.match(token.THIS):
		tok := p.previous()
		return ast.NewThis(p.nextID(), tok.Pos), nil

	case p.match(token.SUPER):
		tok := p.previous()
		if _, err := p.consume(token.DOT, "'.' after 'super'"); err != nil {
			return nil, err
		}
		method, err := p.consume(token.IDENT, "method name after 'super.'")
		if err != nil {
			return nil, err
		}
		return ast.NewSuper(p.nextID(), tok.Pos, method.Lexeme), nil

	case p.match(token.FC):
		return p.functionExpr()

	case p.match(token.IDENT):
		return p.identifierPrimary()
	}

	got := p.peek()
	return nil, p.errorAt(got, "expected an expression, got '%s'", got.Lexeme)
}

// identifierPrimary handles a bare identifier, which may continue into a
// `ident::member` or `ident::member(args)` standard-library reference.
func (p *Parser) identifierPrimary() (ast.Expr, error) {
	ident := p.previous()
	if !p.match(token.COLON_COLON) {
		return ast.NewVariable(p.nextID(), ident.Pos, ident.Lexeme), nil
	}
	member, err := p.consume(token.IDENT, "member name after '::'")
	if err != nil {
		return nil, err
	}
	if p.match(token.LEFT_PAREN) {
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		return ast.NewModuleCall(p.nextID(), ident.Pos, ident.Lexeme, member.Lexeme, args), nil
	}
	return ast.NewModuleProperty(p.nextID(), ident.Pos, ident.Lexeme, member.Lexeme), nil
}

func (p *Parser) functionExpr() (ast.Expr, error) {
	tok := p.previous()
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
	return ast.NewFunctionExpr(p.nextID(), tok.Pos, params, body), nil
}
