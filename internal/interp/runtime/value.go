// Package runtime defines Lumen's runtime value model: the tagged union of
// values a running program can hold, plus the Environment chain that gives
// those values their scoping and closure semantics.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the interface implemented by every runtime value variant:
// Number, String, Boolean, Null, List, Function, Native, Class,
// Instance, and Module.
type Value interface {
	// TypeName returns the name used by std::utils::type and in error
	// messages ("number", "string", "boolean", "null", "list",
	// "callable", "module", "Clazz", or an instance's class name).
	TypeName() string
	// Render returns the value's text rendering (spec.md §6).
	Render() string
}

// Number is a double-precision float value.
type Number float64

func (Number) TypeName() string { return "number" }
func (n Number) Render() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String is an owned text value.
type String string

func (String) TypeName() string  { return "string" }
func (s String) Render() string  { return string(s) }

// Boolean is True or False; the two are distinct tags per spec.md §3.
type Boolean bool

func (Boolean) TypeName() string { return "boolean" }
func (b Boolean) Render() string {
	if b {
		return "true"
	}
	return "false"
}

// Null is the sole null value.
type Null struct{}

func (Null) TypeName() string { return "null" }
func (Null) Render() string   { return "null" }

// NullValue is the single shared Null instance.
var NullValue = Null{}

// List is an ordered, immutable-from-the-outside-in sequence: every
// std::list operation returns a new List rather than mutating in place,
// matching spec.md §4.5.
type List struct {
	Items []Value
}

func (*List) TypeName() string { return "list" }
func (l *List) Render() string {
	parts := make([]string, len(l.Items))
	for i, v := range l.Items {
		parts[i] = v.Render()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NewList builds a List value from items, copying the slice so later
// mutation of the caller's backing array can't leak through.
func NewList(items []Value) *List {
	cp := make([]Value, len(items))
	copy(cp, items)
	return &List{Items: cp}
}

// Equal implements the equality rules of spec.md §3: same-variant
// comparison with Number/String/Boolean/Null compared by value, Callables
// by (name, arity)/name, and every other cross-variant pair false.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Null:
		_, ok := b.(Null)
		return ok
	case *Function:
		y, ok := b.(*Function)
		return ok && x.Name == y.Name && x.Arity() == y.Arity()
	case *Native:
		y, ok := b.(*Native)
		return ok && x.Name == y.Name
	default:
		return false
	}
}

// Truthy implements the truthiness rules of spec.md §3. Only Null,
// Boolean, Number, and String have a boolean sense; a List, Instance,
// Module, Function, Native, or Class used as a boolean is a runtime
// error, signaled by ok=false.
func Truthy(v Value) (truth bool, ok bool) {
	switch x := v.(type) {
	case Null:
		return false, true
	case Boolean:
		return bool(x), true
	case Number:
		return x != 0, true
	case String:
		return x != "", true
	case *List:
		return false, false
	case *Instance:
		return false, false
	case *Module:
		return false, false
	default:
		return false, false
	}
}

// RenderFuncName formats a user Function's rendering, "<name>/<arity>".
func RenderFuncName(name string, arity int) string {
	return fmt.Sprintf("%s/%d", name, arity)
}
