// Package stdlib builds the Module descriptors that back every
// `lib std::...` import: os, math, list, utils, and string (spec.md §4.5).
//
// Each module is a native-function map plus an optional constant map; the
// interpreter binds these into scope however a particular `lib` statement
// asks for them. The native bodies here are thin, allocation-light
// wrappers around host facilities (time, bufio, strconv, strings, math),
// which is exactly the kind of component spec.md §1 calls out as "trivial
// wrappers" and therefore out of the core's testable-invariant surface --
// but their argument/arity contracts are still exact and tested.
package stdlib

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lumen-lang/lumen/internal/interp/runtime"
)

// IO bundles the interpreter's standard streams so natives like
// os::input can be driven by tests without touching the real terminal.
type IO struct {
	Out io.Writer
	In  *bufio.Reader
}

// Registry builds Module values on demand. One Registry is shared by an
// entire interpreter run so os::input's buffered reader persists across
// calls (spec.md §4.5 "a single shared bufio.Reader").
type Registry struct {
	io IO
}

// NewRegistry creates a Registry wired to the given standard streams.
func NewRegistry(stdout io.Writer, stdin io.Reader) *Registry {
	return &Registry{io: IO{Out: stdout, In: bufio.NewReader(stdin)}}
}

// Names lists every known module name, for diagnostics.
func Names() []string {
	return []string{"os", "math", "list", "utils", "string"}
}

// Module builds the named module's descriptor, or reports false if name is
// not a known standard-library module.
func (r *Registry) Module(name string) (*runtime.Module, bool) {
	switch name {
	case "os":
		return r.osModule(), true
	case "math":
		return mathModule(), true
	case "list":
		return listModule(), true
	case "utils":
		return utilsModule(), true
	case "string":
		return stringModule(), true
	default:
		return nil, false
	}
}

// BindName returns the scope name a member of module is bound under when
// imported by name, applying the one documented rename: list::new is
// bound as "new_list" so it doesn't collide with the `new` keyword used by
// other scripting dialects in spirit, per spec.md §4.4.
func BindName(module, member string) string {
	if module == "list" && member == "new" {
		return "new_list"
	}
	return member
}

func nativeErr(module, fn, format string, args ...any) error {
	return fmt.Errorf("%s::%s: %s", module, fn, fmt.Sprintf(format, args...))
}
