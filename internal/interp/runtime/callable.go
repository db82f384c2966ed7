package runtime

import "github.com/lumen-lang/lumen/internal/ast"

// Function is a user-defined Lumen function or method: parameters, body,
// and the environment that existed at its definition site. Capturing that
// environment by reference (not by value) is what gives closures access to
// bindings added to the defining scope after the function was created.
type Function struct {
	Name       string
	Params     []string
	Body       []ast.Stmt
	Closure    *Environment
}

func (*Function) TypeName() string { return "callable" }
func (f *Function) Render() string { return RenderFuncName(f.Name, f.Arity()) }

// Arity returns the declared parameter count.
func (f *Function) Arity() int { return len(f.Params) }

// Bind returns a copy of f whose closure is a fresh environment, enclosing
// f's original closure, with `this` defined to instance. Used for method
// dispatch (spec.md §4.4, "Method binding").
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Name: f.Name, Params: f.Params, Body: f.Body, Closure: env}
}

// Native is a host-provided function exposed through a standard-library
// module.
type Native struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (*Native) TypeName() string { return "callable" }
func (n *Native) Render() string { return n.Name }
