package resolver

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.LetStmt:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)

	case *ast.ConstStmt:
		r.declare(s.Name)
		r.resolveExpr(s.Init)
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s.Params, s.Body, kindFunction)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.LibImport:
		r.resolveLibImport(s)

	case *ast.WriteStmt:
		for _, a := range s.Args {
			r.resolveExpr(a)
		}

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		for _, elif := range s.Elifs {
			r.resolveExpr(elif.Cond)
			r.resolveStmt(elif.Branch)
		}
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.ForeachStmt:
		r.resolveLocal(s.ID(), s.ListName)
		r.beginScope()
		r.declare(s.Var)
		r.define(s.Var)
		r.resolveStmts(s.Body)
		r.endScope()

	case *ast.ReturnStmt:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	case *ast.BreakStmt, *ast.ContinueStmt:
		// Nothing to resolve; nesting validity is enforced by the parser.
	}
}

// resolveFunction resolves a function/method body in its own scope, with
// each parameter declared and defined up front.
func (r *Resolver) resolveFunction(params []string, body []ast.Stmt, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()
	r.currentFn = enclosingFn
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	r.declare(s.Name)
	r.define(s.Name)

	enclosingClass := r.inClass
	enclosingSuper := r.hasSuper
	r.inClass = true

	if s.Superclass != nil {
		if s.Superclass.Name == s.Name {
			r.errorAt(s.Superclass.Pos(), "a class can't inherit from itself")
		}
		r.resolveExpr(s.Superclass)
		r.hasSuper = true
		r.beginScope()
		r.declare("super")
		r.define("super")
	}

	r.beginScope()
	r.declare("this")
	r.define("this")

	for _, m := range s.Methods {
		kind := kindMethod
		r.resolveFunction(m.Params, m.Body, kind)
	}

	r.endScope() // this

	if s.Superclass != nil {
		r.endScope() // super
	}

	r.inClass = enclosingClass
	r.hasSuper = enclosingSuper
}

// resolveLibImport declares the names a `lib std::...` statement binds into
// the current scope, mirroring the interpreter's binding rules exactly via
// stdlib.BindName so both passes agree on renamed members (e.g. list::new).
func (r *Resolver) resolveLibImport(s *ast.LibImport) {
	if s.Whole {
		r.declare(s.Module)
		r.define(s.Module)
		return
	}
	for _, name := range s.Names {
		bound := stdlib.BindName(s.Module, name)
		r.declare(bound)
		r.define(bound)
	}
}
