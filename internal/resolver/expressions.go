package resolver

import "github.com/lumen-lang/lumen/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal, *ast.ListLiteral:
		// Nothing to resolve.

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name]; declared && !defined {
				r.errorAt(e.Pos(), "can't read local variable '%s' in its own initializer", e.Name)
				return
			}
		}
		r.resolveLocal(e.ID(), e.Name)

	case *ast.This:
		if !r.inClass {
			r.errorAt(e.Pos(), "'this' is only valid inside a method")
			return
		}
		r.resolveLocal(e.ID(), "this")

	case *ast.Super:
		if !r.inClass {
			r.errorAt(e.Pos(), "'super' is only valid inside a method")
			return
		}
		if !r.hasSuper {
			r.errorAt(e.Pos(), "'super' used in a class with no superclass")
			return
		}
		r.resolveLocal(e.ID(), "super")

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Unary:
		r.resolveExpr(e.Operand)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.ModuleCall:
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.ModuleProperty:
		// Module and member names aren't lexical bindings.

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Value)

	case *ast.FunctionExpr:
		r.resolveFunction(e.Params, e.Body, kindFunction)
	}
}
