package stdlib

import "github.com/lumen-lang/lumen/internal/interp/runtime"

// listModule implements spec.md §4.5's list module. No operation mutates
// its argument in place; those that produce a changed list return a new one.
func listModule() *runtime.Module {
	return &runtime.Module{
		Name: "list",
		Methods: map[string]*runtime.Native{
			"new":     {Name: "new", Fn: listNew},
			"size":    {Name: "size", Fn: listSize},
			"add":     {Name: "add", Fn: listAdd},
			"reverse": {Name: "reverse", Fn: listReverse},
			"get":     {Name: "get", Fn: listGet},
			"pop":     {Name: "pop", Fn: listPop},
			"remove":  {Name: "remove", Fn: listRemove},
		},
	}
}

func asList(module, fn string, v runtime.Value) (*runtime.List, error) {
	l, ok := v.(*runtime.List)
	if !ok {
		return nil, nativeErr(module, fn, "expected a list, got %s", v.TypeName())
	}
	return l, nil
}

func listNew(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 0 {
		return nil, nativeErr("list", "new", "expected 0 arguments, got %d", len(args))
	}
	return runtime.NewList(nil), nil
}

func listSize(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("list", "size", "expected 1 argument, got %d", len(args))
	}
	l, err := asList("list", "size", args[0])
	if err != nil {
		return nil, err
	}
	return runtime.Number(len(l.Items)), nil
}

// listAdd requires the list argument plus at least one element to append
// (>= 2 args total); see spec.md §9's Open Question resolution.
func listAdd(args []runtime.Value) (runtime.Value, error) {
	if len(args) < 2 {
		return nil, nativeErr("list", "add", "expected the list plus at least one element, got %d argument(s)", len(args))
	}
	l, err := asList("list", "add", args[0])
	if err != nil {
		return nil, err
	}
	items := append(append([]runtime.Value{}, l.Items...), args[1:]...)
	return runtime.NewList(items), nil
}

func listReverse(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("list", "reverse", "expected 1 argument, got %d", len(args))
	}
	l, err := asList("list", "reverse", args[0])
	if err != nil {
		return nil, err
	}
	items := make([]runtime.Value, len(l.Items))
	for i, v := range l.Items {
		items[len(items)-1-i] = v
	}
	return runtime.NewList(items), nil
}

// listGet uses 1-based indexing and returns a two-element list
// [value, index], per spec.md §4.5.
func listGet(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, nativeErr("list", "get", "expected 2 arguments, got %d", len(args))
	}
	l, err := asList("list", "get", args[0])
	if err != nil {
		return nil, err
	}
	idxVal, ok := args[1].(runtime.Number)
	if !ok {
		return nil, nativeErr("list", "get", "expected a number index, got %s", args[1].TypeName())
	}
	idx := int(idxVal)
	if idx < 1 || idx > len(l.Items) {
		return nil, nativeErr("list", "get", "index %d out of range for list of length %d", idx, len(l.Items))
	}
	return runtime.NewList([]runtime.Value{l.Items[idx-1], idxVal}), nil
}

func listPop(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("list", "pop", "expected 1 argument, got %d", len(args))
	}
	l, err := asList("list", "pop", args[0])
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return runtime.NullValue, nil
	}
	return runtime.NewList(l.Items[:len(l.Items)-1]), nil
}

// listRemove uses 1-based indexing and returns the removed element, not
// the resulting list, per spec.md §4.5.
func listRemove(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, nativeErr("list", "remove", "expected 2 arguments, got %d", len(args))
	}
	l, err := asList("list", "remove", args[0])
	if err != nil {
		return nil, err
	}
	idxVal, ok := args[1].(runtime.Number)
	if !ok {
		return nil, nativeErr("list", "remove", "expected a number index, got %s", args[1].TypeName())
	}
	idx := int(idxVal)
	if idx < 1 || idx > len(l.Items) {
		return nil, nativeErr("list", "remove", "index %d out of range for list of length %d", idx, len(l.Items))
	}
	return l.Items[idx-1], nil
}
