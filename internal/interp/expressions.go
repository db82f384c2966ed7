package interp

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/interp/runtime"
	"github.com/lumen-lang/lumen/pkg/token"
)

func (it *Interpreter) evalExpr(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return it.evalLiteral(e), nil

	case *ast.ListLiteral:
		return runtime.NewList(nil), nil

	case *ast.Variable:
		return it.lookupByDistanceOrGlobal(e.ID(), e.Name, e.Pos())

	case *ast.This:
		return it.evalThis(e)

	case *ast.Super:
		return it.evalSuper(e)

	case *ast.Grouping:
		return it.evalExpr(e.Inner)

	case *ast.Unary:
		return it.evalUnary(e)

	case *ast.Binary:
		return it.evalBinary(e)

	case *ast.Logical:
		return it.evalLogical(e)

	case *ast.Assign:
		return it.evalAssign(e)

	case *ast.Call:
		return it.evalCall(e)

	case *ast.ModuleCall:
		return it.evalModuleCall(e)

	case *ast.ModuleProperty:
		return it.evalModuleProperty(e)

	case *ast.Get:
		return it.evalGet(e)

	case *ast.Set:
		return it.evalSet(e)

	case *ast.FunctionExpr:
		return &runtime.Function{Name: "anon", Params: e.Params, Body: e.Body, Closure: it.env}, nil
	}
	return nil, it.runtimeErr(expr.Pos(), "unhandled expression type %T", expr)
}

func (it *Interpreter) evalLiteral(e *ast.Literal) runtime.Value {
	switch e.Kind {
	case token.NUMBER:
		return runtime.Number(e.Num)
	case token.STRING:
		return runtime.String(e.Str)
	case token.TRUE:
		return runtime.Boolean(true)
	case token.FALSE:
		return runtime.Boolean(false)
	default:
		return runtime.NullValue
	}
}

// lookupByDistanceOrGlobal implements the Variable lookup contract of
// spec.md §4.4: walk to the resolver's recorded distance (or the globals
// if the node has none), preferring a namespaced constant entry over a
// plain binding of the same name.
func (it *Interpreter) lookupByDistanceOrGlobal(id int, name string, pos token.Position) (runtime.Value, error) {
	env := it.globals
	if dist, ok := it.distances[id]; ok {
		env = it.env.Ancestor(dist)
	}
	if v, ok := env.GetLocal(runtime.ConstKey(name)); ok {
		return v, nil
	}
	if v, ok := env.GetLocal(name); ok {
		return v, nil
	}
	return nil, it.runtimeErr(pos, "undeclared variable %q", name)
}

// lookupByDistance looks up name at exactly the resolver's recorded
// distance for id; used for `this`/`super`, which the resolver guarantees
// are only ever referenced inside a method (so a missing entry means the
// resolver rejected the usage and this path should be unreachable).
func (it *Interpreter) lookupByDistance(id int, name string, pos token.Position) (runtime.Value, error) {
	dist, ok := it.distances[id]
	if !ok {
		return nil, it.runtimeErr(pos, "%q used outside a method", name)
	}
	env := it.env.Ancestor(dist)
	v, ok := env.GetLocal(name)
	if !ok {
		return nil, it.runtimeErr(pos, "%q is not bound", name)
	}
	return v, nil
}

func (it *Interpreter) evalThis(e *ast.This) (runtime.Value, error) {
	return it.lookupByDistance(e.ID(), "this", e.Pos())
}

// evalSuper resolves `super.method` per spec.md §9's distance quirk:
// `this` lives one scope closer than `super` was pushed, so it is read at
// distance-1 relative to where `super` resolves.
func (it *Interpreter) evalSuper(e *ast.Super) (runtime.Value, error) {
	dist, ok := it.distances[e.ID()]
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "'super' used outside a method")
	}
	superEnv := it.env.Ancestor(dist)
	superVal, ok := superEnv.GetLocal("super")
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "'super' is not bound")
	}
	superClass, ok := superVal.(*runtime.Class)
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "'super' is not a class")
	}

	thisEnv := it.env.Ancestor(dist - 1)
	thisVal, ok := thisEnv.GetLocal("this")
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "'this' is not bound")
	}
	instance, ok := thisVal.(*runtime.Instance)
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "'this' is not an instance")
	}

	method := superClass.FindMethod(e.Method)
	if method == nil {
		return nil, it.runtimeErr(e.Pos(), "%s has no method %q", superClass.Name, e.Method)
	}
	return method.Bind(instance), nil
}

func (it *Interpreter) evalUnary(e *ast.Unary) (runtime.Value, error) {
	v, err := it.evalExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.MINUS:
		n, ok := v.(runtime.Number)
		if !ok {
			return nil, it.runtimeErr(e.Pos(), "unary '-' requires a number, got %s", v.TypeName())
		}
		return -n, nil
	case token.BANG:
		truth, ok := runtime.Truthy(v)
		if !ok {
			return nil, it.runtimeErr(e.Pos(), "value of type %s used as a boolean", v.TypeName())
		}
		return runtime.Boolean(!truth), nil
	default:
		return nil, it.runtimeErr(e.Pos(), "unsupported unary operator %s", e.Op)
	}
}

// evalBinary implements spec.md §4.4's binary contract: arithmetic and
// comparison on two Numbers, `+` and comparison on two Strings (byte
// lexicographic order), equality on any pair via runtime.Equal, and a type
// mismatch error for everything else.
func (it *Interpreter) evalBinary(e *ast.Binary) (runtime.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	if e.Op == token.EQUAL_EQUAL {
		return runtime.Boolean(runtime.Equal(left, right)), nil
	}
	if e.Op == token.BANG_EQUAL {
		return runtime.Boolean(!runtime.Equal(left, right)), nil
	}

	if ln, lok := left.(runtime.Number); lok {
		if rn, rok := right.(runtime.Number); rok {
			return evalNumberBinary(e.Op, ln, rn, it, e)
		}
	}
	if ls, lok := left.(runtime.String); lok {
		if rs, rok := right.(runtime.String); rok {
			return evalStringBinary(e.Op, ls, rs, it, e)
		}
	}

	return nil, it.runtimeErr(e.Pos(), "operator %s not defined for %s and %s", e.Op, left.TypeName(), right.TypeName())
}

func evalNumberBinary(op token.Type, l, r runtime.Number, it *Interpreter, e *ast.Binary) (runtime.Value, error) {
	switch op {
	case token.PLUS:
		return l + r, nil
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		return l / r, nil
	case token.LESS:
		return runtime.Boolean(l < r), nil
	case token.LESS_EQUAL:
		return runtime.Boolean(l <= r), nil
	case token.GREATER:
		return runtime.Boolean(l > r), nil
	case token.GREATER_EQUAL:
		return runtime.Boolean(l >= r), nil
	default:
		return nil, it.runtimeErr(e.Pos(), "operator %s not defined for numbers", op)
	}
}

func evalStringBinary(op token.Type, l, r runtime.String, it *Interpreter, e *ast.Binary) (runtime.Value, error) {
	switch op {
	case token.PLUS:
		return l + r, nil
	case token.LESS:
		return runtime.Boolean(l < r), nil
	case token.LESS_EQUAL:
		return runtime.Boolean(l <= r), nil
	case token.GREATER:
		return runtime.Boolean(l > r), nil
	case token.GREATER_EQUAL:
		return runtime.Boolean(l >= r), nil
	default:
		return nil, it.runtimeErr(e.Pos(), "operator %s not defined for strings", op)
	}
}

func (it *Interpreter) evalLogical(e *ast.Logical) (runtime.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	truth, ok := runtime.Truthy(left)
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "value of type %s used as a boolean", left.TypeName())
	}
	if e.Op == token.OR_OR {
		if truth {
			return left, nil
		}
		return it.evalExpr(e.Right)
	}
	if !truth {
		return left, nil
	}
	return it.evalExpr(e.Right)
}

// evalAssign implements spec.md §4.4: constant targets are rejected,
// otherwise the value is stored at the resolver's recorded distance (or
// the globals, absent one); assigning an undeclared name is an error.
func (it *Interpreter) evalAssign(e *ast.Assign) (runtime.Value, error) {
	val, err := it.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	env := it.globals
	if dist, ok := it.distances[e.ID()]; ok {
		env = it.env.Ancestor(dist)
	}
	if env.IsConstant(e.Name) {
		return nil, it.runtimeErr(e.Pos(), "cannot reassign constant %q", e.Name)
	}
	if !env.SetLocal(e.Name, val) {
		return nil, it.runtimeErr(e.Pos(), "undeclared variable %q", e.Name)
	}
	return val, nil
}

func (it *Interpreter) evalArgs(exprs []ast.Expr) ([]runtime.Value, error) {
	args := make([]runtime.Value, len(exprs))
	for i, a := range exprs {
		v, err := it.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalCall dispatches a non-module-qualified call to a user Function,
// Native, or Class constructor, per spec.md §4.4.
func (it *Interpreter) evalCall(e *ast.Call) (runtime.Value, error) {
	calleeVal, err := it.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}
	args, err := it.evalArgs(e.Args)
	if err != nil {
		return nil, err
	}
	switch callee := calleeVal.(type) {
	case *runtime.Function:
		return it.callFunction(callee, args, e.Pos())
	case *runtime.Native:
		v, err := callee.Fn(args)
		if err != nil {
			return nil, it.runtimeErr(e.Pos(), "%s", err)
		}
		return v, nil
	case *runtime.Class:
		return it.instantiate(callee, args, e.Pos())
	default:
		return nil, it.runtimeErr(e.Pos(), "value of type %s is not callable", calleeVal.TypeName())
	}
}

func (it *Interpreter) evalModuleCall(e *ast.ModuleCall) (runtime.Value, error) {
	mod, ok := it.registry.Module(e.Module)
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "%q is not a known standard-library module", e.Module)
	}
	native, ok := mod.Methods[e.Method]
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "%s has no function %q", e.Module, e.Method)
	}
	args, err := it.evalArgs(e.Args)
	if err != nil {
		return nil, err
	}
	v, err := native.Fn(args)
	if err != nil {
		return nil, it.runtimeErr(e.Pos(), "%s", err)
	}
	return v, nil
}

func (it *Interpreter) evalModuleProperty(e *ast.ModuleProperty) (runtime.Value, error) {
	mod, ok := it.registry.Module(e.Module)
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "%q is not a known standard-library module", e.Module)
	}
	v, ok := mod.Constants[e.Name]
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "%s has no constant %q", e.Module, e.Name)
	}
	return v, nil
}

// callFunction runs fn's body against a fresh environment enclosing its
// captured closure, binding each argument to its parameter name. The
// previous environment is always restored, even if the body errors.
func (it *Interpreter) callFunction(fn *runtime.Function, args []runtime.Value, pos token.Position) (runtime.Value, error) {
	if len(args) != fn.Arity() {
		return nil, it.runtimeErr(pos, "%s expects %d argument(s), got %d", runtime.RenderFuncName(fn.Name, fn.Arity()), fn.Arity(), len(args))
	}

	callEnv := runtime.NewEnclosedEnvironment(fn.Closure)
	for i, p := range fn.Params {
		callEnv.Define(p, args[i])
	}

	previous := it.env
	it.env = callEnv
	defer func() { it.env = previous }()

	for _, st := range fn.Body {
		if err := it.execStmt(st); err != nil {
			return nil, err
		}
		if it.returning {
			break
		}
		// break/continue can't syntactically escape a function body (the
		// parser resets loop-nesting across function boundaries), but
		// clear them defensively rather than let them leak to the caller.
		if it.breaking || it.continuing {
			it.breaking, it.continuing = false, false
		}
	}

	if it.returning {
		val := it.specials["return"]
		it.returning = false
		delete(it.specials, "return")
		return val, nil
	}
	return runtime.NullValue, nil
}

// instantiate allocates an Instance and, if the class declares an `init`
// method, runs it bound to the new instance before returning it.
func (it *Interpreter) instantiate(class *runtime.Class, args []runtime.Value, pos token.Position) (runtime.Value, error) {
	instance := runtime.NewInstance(class)
	if init := class.FindMethod("init"); init != nil {
		if _, err := it.callFunction(init.Bind(instance), args, pos); err != nil {
			return nil, err
		}
	} else if len(args) != 0 {
		return nil, it.runtimeErr(pos, "%s expects 0 arguments, got %d", class.Name, len(args))
	}
	return instance, nil
}

func (it *Interpreter) evalGet(e *ast.Get) (runtime.Value, error) {
	obj, err := it.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*runtime.Instance)
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "cannot read field %q of non-instance value of type %s", e.Name, obj.TypeName())
	}
	if v, ok := inst.GetField(e.Name); ok {
		return v, nil
	}
	if m := inst.Class.FindMethod(e.Name); m != nil {
		return m.Bind(inst), nil
	}
	return nil, it.runtimeErr(e.Pos(), "%s has no field or method %q", inst.Class.Name, e.Name)
}

func (it *Interpreter) evalSet(e *ast.Set) (runtime.Value, error) {
	obj, err := it.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*runtime.Instance)
	if !ok {
		return nil, it.runtimeErr(e.Pos(), "cannot set field %q of non-instance value of type %s", e.Name, obj.TypeName())
	}
	val, err := it.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	inst.SetField(e.Name, val)
	return val, nil
}
