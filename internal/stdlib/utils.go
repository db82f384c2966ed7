package stdlib

import (
	"strconv"

	"github.com/lumen-lang/lumen/internal/interp/runtime"
)

// utilsModule implements spec.md §4.5's utils module.
func utilsModule() *runtime.Module {
	return &runtime.Module{
		Name: "utils",
		Methods: map[string]*runtime.Native{
			"type":  {Name: "type", Fn: utilsType},
			"parse": {Name: "parse", Fn: utilsParse},
		},
	}
}

func utilsType(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("utils", "type", "expected 1 argument, got %d", len(args))
	}
	return runtime.String(args[0].TypeName()), nil
}

// utilsParse tries to interpret a String as a Number; given a Number it
// renders the decimal String instead, per spec.md §4.5.
func utilsParse(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("utils", "parse", "expected 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case runtime.String:
		n, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return runtime.NullValue, nil
		}
		return runtime.Number(n), nil
	case runtime.Number:
		return runtime.String(v.Render()), nil
	default:
		return nil, nativeErr("utils", "parse", "expected a string or number, got %s", v.TypeName())
	}
}
