package stdlib

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/interp/runtime"
)

// stringModule implements spec.md §4.5's string module.
func stringModule() *runtime.Module {
	return &runtime.Module{
		Name: "string",
		Methods: map[string]*runtime.Native{
			"length":  {Name: "length", Fn: stringLength},
			"split":   {Name: "split", Fn: stringSplit},
			"find":    {Name: "find", Fn: stringFind},
			"replace": {Name: "replace", Fn: stringReplace},
			"push":    {Name: "push", Fn: stringPush},
			"trim":    {Name: "trim", Fn: stringTrim},
			"trim_l":  {Name: "trim_l", Fn: stringTrimL},
			"trim_r":  {Name: "trim_r", Fn: stringTrimR},
		},
	}
}

func asString(fn string, v runtime.Value) (string, error) {
	s, ok := v.(runtime.String)
	if !ok {
		return "", nativeErr("string", fn, "expected a string, got %s", v.TypeName())
	}
	return string(s), nil
}

func stringLength(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("string", "length", "expected 1 argument, got %d", len(args))
	}
	s, err := asString("length", args[0])
	if err != nil {
		return nil, err
	}
	return runtime.Number(len(s)), nil
}

func stringSplit(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, nativeErr("string", "split", "expected 2 arguments, got %d", len(args))
	}
	s, err := asString("split", args[0])
	if err != nil {
		return nil, err
	}
	sep, err := asString("split", args[1])
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	items := make([]runtime.Value, len(parts))
	for i, p := range parts {
		items[i] = runtime.String(p)
	}
	return runtime.NewList(items), nil
}

func stringFind(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, nativeErr("string", "find", "expected 2 arguments, got %d", len(args))
	}
	s, err := asString("find", args[0])
	if err != nil {
		return nil, err
	}
	needle, err := asString("find", args[1])
	if err != nil {
		return nil, err
	}
	idx := strings.Index(s, needle)
	if idx < 0 {
		return runtime.NullValue, nil
	}
	return runtime.Number(idx), nil
}

func stringReplace(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 3 {
		return nil, nativeErr("string", "replace", "expected 3 arguments, got %d", len(args))
	}
	s, err := asString("replace", args[0])
	if err != nil {
		return nil, err
	}
	old, err := asString("replace", args[1])
	if err != nil {
		return nil, err
	}
	nw, err := asString("replace", args[2])
	if err != nil {
		return nil, err
	}
	return runtime.String(strings.ReplaceAll(s, old, nw)), nil
}

func stringPush(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, nativeErr("string", "push", "expected 2 arguments, got %d", len(args))
	}
	a, err := asString("push", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asString("push", args[1])
	if err != nil {
		return nil, err
	}
	return runtime.String(a + b), nil
}

// stringTrim removes every space character, not just leading/trailing
// whitespace -- a deliberate divergence from most languages' `trim`,
// preserved per spec.md §9's Open Question resolution.
func stringTrim(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("string", "trim", "expected 1 argument, got %d", len(args))
	}
	s, err := asString("trim", args[0])
	if err != nil {
		return nil, err
	}
	return runtime.String(strings.ReplaceAll(s, " ", "")), nil
}

func stringTrimL(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("string", "trim_l", "expected 1 argument, got %d", len(args))
	}
	s, err := asString("trim_l", args[0])
	if err != nil {
		return nil, err
	}
	return runtime.String(strings.TrimLeft(s, " \t\r\n")), nil
}

func stringTrimR(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("string", "trim_r", "expected 1 argument, got %d", len(args))
	}
	s, err := asString("trim_r", args[0])
	if err != nil {
		return nil, err
	}
	return runtime.String(strings.TrimRight(s, " \t\r\n")), nil
}
