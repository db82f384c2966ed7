package interp

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/interp/runtime"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func (it *Interpreter) execStmt(stmt ast.Stmt) error {
	if it.trace != nil {
		fmt.Fprintf(it.trace, "trace: %s %T\n", stmt.Pos(), stmt)
	}
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := it.evalExpr(s.Expr)
		return err

	case *ast.WriteStmt:
		return it.execWriteStmt(s)

	case *ast.LetStmt:
		return it.execLetStmt(s)

	case *ast.ConstStmt:
		v, err := it.evalExpr(s.Init)
		if err != nil {
			return err
		}
		it.env.Define(runtime.ConstKey(s.Name), v)
		return nil

	case *ast.FunctionStmt:
		it.env.Define(s.Name, &runtime.Function{Name: s.Name, Params: s.Params, Body: s.Body, Closure: it.env})
		return nil

	case *ast.ClassStmt:
		return it.execClassStmt(s)

	case *ast.LibImport:
		return it.execLibImport(s)

	case *ast.BlockStmt:
		return it.execBlock(s.Stmts, runtime.NewEnclosedEnvironment(it.env))

	case *ast.IfStmt:
		return it.execIfStmt(s)

	case *ast.WhileStmt:
		return it.execWhileStmt(s)

	case *ast.ForeachStmt:
		return it.execForeachStmt(s)

	case *ast.ReturnStmt:
		var v runtime.Value = runtime.NullValue
		if s.Value != nil {
			val, err := it.evalExpr(s.Value)
			if err != nil {
				return err
			}
			v = val
		}
		it.specials["return"] = v
		it.returning = true
		return nil

	case *ast.BreakStmt:
		it.breaking = true
		return nil

	case *ast.ContinueStmt:
		it.continuing = true
		return nil
	}
	return it.runtimeErr(stmt.Pos(), "unhandled statement type %T", stmt)
}

func (it *Interpreter) execWriteStmt(s *ast.WriteStmt) error {
	for _, a := range s.Args {
		v, err := it.evalExpr(a)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.out, render(v))
	}
	return nil
}

func (it *Interpreter) execLetStmt(s *ast.LetStmt) error {
	var v runtime.Value = runtime.NullValue
	if s.Init != nil {
		val, err := it.evalExpr(s.Init)
		if err != nil {
			return err
		}
		v = val
	}
	it.env.Define(s.Name, v)
	return nil
}

// execClassStmt builds a Class value per spec.md §4.4: the class name is
// first bound to Null so a method body referencing the class by name
// (e.g. a factory-style method) resolves to something, then rebuilt with
// the real Class once the method table is constructed.
func (it *Interpreter) execClassStmt(s *ast.ClassStmt) error {
	var super *runtime.Class
	if s.Superclass != nil {
		v, err := it.evalExpr(s.Superclass)
		if err != nil {
			return err
		}
		c, ok := v.(*runtime.Class)
		if !ok {
			return it.runtimeErr(s.Superclass.Pos(), "superclass %q is not a class", s.Superclass.Name)
		}
		super = c
	}

	it.env.Define(s.Name, runtime.NullValue)

	methodEnv := it.env
	if super != nil {
		methodEnv = runtime.NewEnclosedEnvironment(it.env)
		methodEnv.Define("super", super)
	}

	methods := make(map[string]*runtime.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name] = &runtime.Function{Name: m.Name, Params: m.Params, Body: m.Body, Closure: methodEnv}
	}

	it.env.Define(s.Name, &runtime.Class{Name: s.Name, Methods: methods, Superclass: super})
	return nil
}

func (it *Interpreter) execIfStmt(s *ast.IfStmt) error {
	cond, err := it.evalExpr(s.Cond)
	if err != nil {
		return err
	}
	truth, ok := runtime.Truthy(cond)
	if !ok {
		return it.runtimeErr(s.Cond.Pos(), "value of type %s used as a boolean", cond.TypeName())
	}
	if truth {
		return it.execStmt(s.Then)
	}
	for _, elif := range s.Elifs {
		c, err := it.evalExpr(elif.Cond)
		if err != nil {
			return err
		}
		t, ok := runtime.Truthy(c)
		if !ok {
			return it.runtimeErr(elif.Cond.Pos(), "value of type %s used as a boolean", c.TypeName())
		}
		if t {
			return it.execStmt(elif.Branch)
		}
	}
	if s.Else != nil {
		return it.execStmt(s.Else)
	}
	return nil
}

func (it *Interpreter) execWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		truth, ok := runtime.Truthy(cond)
		if !ok {
			return it.runtimeErr(s.Cond.Pos(), "value of type %s used as a boolean", cond.TypeName())
		}
		if !truth {
			return nil
		}
		if err := it.execStmt(s.Body); err != nil {
			return err
		}
		if it.breaking {
			it.breaking = false
			return nil
		}
		if it.returning {
			return nil
		}
		if it.continuing {
			it.continuing = false
		}
	}
}

// execForeachStmt shares one enclosed environment across every iteration
// (matching the resolver's single begin/endScope pair around the loop
// variable and body), redefining the loop variable each time around.
func (it *Interpreter) execForeachStmt(s *ast.ForeachStmt) error {
	listVal, err := it.lookupByDistanceOrGlobal(s.ID(), s.ListName, s.Pos())
	if err != nil {
		return err
	}
	list, ok := listVal.(*runtime.List)
	if !ok {
		return it.runtimeErr(s.Pos(), "foreach target %q is not a list", s.ListName)
	}

	env := runtime.NewEnclosedEnvironment(it.env)
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, item := range list.Items {
		env.Define(s.Var, item)
		for _, st := range s.Body {
			if err := it.execStmt(st); err != nil {
				return err
			}
			if it.breaking || it.continuing || it.returning {
				break
			}
		}
		if it.breaking {
			it.breaking = false
			return nil
		}
		if it.returning {
			return nil
		}
		if it.continuing {
			it.continuing = false
		}
	}
	return nil
}

// execLibImport binds either the whole module value (no member list) or
// each requested member directly into scope, applying stdlib.BindName's
// rename rule (list::new -> new_list) so the resolver and interpreter
// agree on the bound name.
func (it *Interpreter) execLibImport(s *ast.LibImport) error {
	mod, ok := it.registry.Module(s.Module)
	if !ok {
		return it.runtimeErr(s.Pos(), "%q is not a known standard-library module", s.Module)
	}
	if s.Whole {
		it.env.Define(s.Module, mod)
		return nil
	}
	for _, name := range s.Names {
		bound := stdlib.BindName(s.Module, name)
		if fn, ok := mod.Methods[name]; ok {
			it.env.Define(bound, fn)
			continue
		}
		if c, ok := mod.Constants[name]; ok {
			it.env.Define(bound, c)
			continue
		}
		return it.runtimeErr(s.Pos(), "%s has no member %q", s.Module, name)
	}
	return nil
}
