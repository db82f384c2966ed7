package stdlib

import (
	"math"

	"github.com/lumen-lang/lumen/internal/interp/runtime"
)

// mathModule implements spec.md §4.5's math module.
func mathModule() *runtime.Module {
	return &runtime.Module{
		Name: "math",
		Methods: map[string]*runtime.Native{
			"sqrt": {Name: "sqrt", Fn: mathSqrt},
			"pow":  {Name: "pow", Fn: mathPow},
		},
		Constants: map[string]runtime.Value{
			"PI":  runtime.Number(math.Pi),
			"E":   runtime.Number(math.E),
			"TAU": runtime.Number(2 * math.Pi),
		},
	}
}

func mathSqrt(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("math", "sqrt", "expected 1 argument, got %d", len(args))
	}
	x, ok := args[0].(runtime.Number)
	if !ok {
		return nil, nativeErr("math", "sqrt", "expected a number, got %s", args[0].TypeName())
	}
	if x < 0 {
		return nil, nativeErr("math", "sqrt", "argument must be >= 0, got %g", float64(x))
	}
	return runtime.Number(math.Sqrt(float64(x))), nil
}

func mathPow(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, nativeErr("math", "pow", "expected 2 arguments, got %d", len(args))
	}
	x, ok := args[0].(runtime.Number)
	if !ok {
		return nil, nativeErr("math", "pow", "expected a number base, got %s", args[0].TypeName())
	}
	y, ok := args[1].(runtime.Number)
	if !ok {
		return nil, nativeErr("math", "pow", "expected a number exponent, got %s", args[1].TypeName())
	}
	if y < 0 {
		return nil, nativeErr("math", "pow", "exponent must be >= 0, got %g", float64(y))
	}
	result := math.Pow(float64(x), float64(y))
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return runtime.String("infinite"), nil
	}
	return runtime.Number(result), nil
}
