package stdlib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lumen-lang/lumen/internal/interp/runtime"
)

func newTestRegistry() *Registry {
	return NewRegistry(&bytes.Buffer{}, strings.NewReader(""))
}

func mustModule(t *testing.T, r *Registry, name string) *runtime.Module {
	t.Helper()
	mod, ok := r.Module(name)
	if !ok {
		t.Fatalf("module %q not found", name)
	}
	return mod
}

func callNative(t *testing.T, mod *runtime.Module, name string, args ...runtime.Value) (runtime.Value, error) {
	t.Helper()
	n, ok := mod.Methods[name]
	if !ok {
		t.Fatalf("%s has no native %q", mod.Name, name)
	}
	return n.Fn(args)
}

func TestListAddRequiresAtLeastOneElement(t *testing.T) {
	mod := mustModule(t, newTestRegistry(), "list")
	l := runtime.NewList(nil)

	if _, err := callNative(t, mod, "add", l); err == nil {
		t.Fatal("expected an error calling list::add with just the list")
	}

	got, err := callNative(t, mod, "add", l, runtime.Number(1))
	if err != nil {
		t.Fatalf("unexpected error at the 2-argument boundary: %v", err)
	}
	resultList := got.(*runtime.List)
	if len(resultList.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(resultList.Items))
	}
}

func TestListGetUsesOneBasedIndexAndReturnsPair(t *testing.T) {
	mod := mustModule(t, newTestRegistry(), "list")
	l := runtime.NewList([]runtime.Value{runtime.String("a"), runtime.String("b")})

	got, err := callNative(t, mod, "get", l, runtime.Number(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pair := got.(*runtime.List)
	if len(pair.Items) != 2 || pair.Items[0] != runtime.String("a") || pair.Items[1] != runtime.Number(1) {
		t.Fatalf("got %#v, want [a, 1]", pair.Items)
	}

	if _, err := callNative(t, mod, "get", l, runtime.Number(0)); err == nil {
		t.Fatal("expected an out-of-range error for index 0 (1-based indexing)")
	}
}

func TestStringTrimStripsAllSpacesNotJustEnds(t *testing.T) {
	mod := mustModule(t, newTestRegistry(), "string")

	got, err := callNative(t, mod, "trim", runtime.String("  a b  c "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != runtime.String("abc") {
		t.Fatalf("got %q, want %q (trim removes every space, not just the ends)", got, "abc")
	}
}

func TestStringTrimLAndTrimROnlyTrimEnds(t *testing.T) {
	mod := mustModule(t, newTestRegistry(), "string")

	left, err := callNative(t, mod, "trim_l", runtime.String("  a b  "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left != runtime.String("a b  ") {
		t.Fatalf("got %q, want %q", left, "a b  ")
	}

	right, err := callNative(t, mod, "trim_r", runtime.String("  a b  "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if right != runtime.String("  a b") {
		t.Fatalf("got %q, want %q", right, "  a b")
	}
}

func TestMathSqrtRejectsNegative(t *testing.T) {
	mod := mustModule(t, newTestRegistry(), "math")
	if _, err := callNative(t, mod, "sqrt", runtime.Number(-4)); err == nil {
		t.Fatal("expected an error for sqrt of a negative number")
	}
	got, err := callNative(t, mod, "sqrt", runtime.Number(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != runtime.Number(3) {
		t.Fatalf("got %v, want 3", got)
	}
}

func TestMathConstantsArePresent(t *testing.T) {
	mod := mustModule(t, newTestRegistry(), "math")
	for _, name := range []string{"PI", "E", "TAU"} {
		if _, ok := mod.Constants[name]; !ok {
			t.Errorf("expected math module to export constant %s", name)
		}
	}
}

func TestUtilsParseRoundTrips(t *testing.T) {
	mod := mustModule(t, newTestRegistry(), "utils")

	n, err := callNative(t, mod, "parse", runtime.String("42"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != runtime.Number(42) {
		t.Fatalf("got %v, want 42", n)
	}

	s, err := callNative(t, mod, "parse", runtime.Number(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != runtime.String("42") {
		t.Fatalf("got %v, want \"42\"", s)
	}

	notNumber, err := callNative(t, mod, "parse", runtime.String("not a number"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notNumber != runtime.NullValue {
		t.Fatalf("got %v, want null for an unparseable string", notNumber)
	}
}

func TestBindNameRenamesListNew(t *testing.T) {
	if got := BindName("list", "new"); got != "new_list" {
		t.Fatalf("got %q, want new_list", got)
	}
	if got := BindName("string", "trim"); got != "trim" {
		t.Fatalf("got %q, want trim (no rename outside list::new)", got)
	}
}

func TestOsInputTrimsSurroundingWhitespaceNotJustNewline(t *testing.T) {
	r := NewRegistry(&bytes.Buffer{}, strings.NewReader("  hello world  \n"))
	mod := mustModule(t, r, "os")
	got, err := callNative(t, mod, "input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != runtime.String("hello world") {
		t.Fatalf("got %q, want %q (full trim, not just CRLF stripping)", got, "hello world")
	}
}

func TestOsExitPositiveStatusIsFatalErrorNotProcessExit(t *testing.T) {
	r := newTestRegistry()
	mod := mustModule(t, r, "os")
	_, err := callNative(t, mod, "exit", runtime.Number(1))
	if err == nil {
		t.Fatal("expected a fatal error for a positive exit status rather than terminating the process")
	}
}
