package stdlib

import (
	"fmt"
	"os"
	goruntime "runtime"
	"strings"
	"time"

	"github.com/lumen-lang/lumen/internal/interp/runtime"
)

// osModule implements spec.md §4.5's os module: exit, current_time, input,
// and the name/arch constants.
func (r *Registry) osModule() *runtime.Module {
	return &runtime.Module{
		Name: "os",
		Methods: map[string]*runtime.Native{
			"exit":         {Name: "exit", Fn: r.osExit},
			"current_time": {Name: "current_time", Fn: osCurrentTime},
			"input":        {Name: "input", Fn: r.osInput},
		},
		Constants: map[string]runtime.Value{
			"name": runtime.String(goruntime.GOOS),
			"arch": runtime.String(goruntime.GOARCH),
		},
	}
}

// osExit terminates the process with status n. Negative or zero statuses
// exit directly; positive statuses report as a fatal error instead, per
// spec.md §4.5, so the caller's diagnostic formatting and nonzero exit code
// still apply.
func (r *Registry) osExit(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, nativeErr("os", "exit", "expected 1 argument, got %d", len(args))
	}
	n, ok := args[0].(runtime.Number)
	if !ok {
		return nil, nativeErr("os", "exit", "expected a number, got %s", args[0].TypeName())
	}
	status := int(n)
	if status <= 0 {
		os.Exit(status)
		return runtime.NullValue, nil // unreachable
	}
	return nil, nativeErr("os", "exit", "process exited with status %d", status)
}

func osCurrentTime(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 0 {
		return nil, nativeErr("os", "current_time", "expected 0 arguments, got %d", len(args))
	}
	return runtime.Number(time.Now().Unix()), nil
}

func (r *Registry) osInput(args []runtime.Value) (runtime.Value, error) {
	if len(args) > 1 {
		return nil, nativeErr("os", "input", "expected 0 or 1 arguments, got %d", len(args))
	}
	if len(args) == 1 {
		prompt, ok := args[0].(runtime.String)
		if !ok {
			return nil, nativeErr("os", "input", "expected a string prompt, got %s", args[0].TypeName())
		}
		fmt.Fprint(r.io.Out, string(prompt))
		if f, ok := r.io.Out.(interface{ Sync() error }); ok {
			_ = f.Sync()
		} else if f, ok := r.io.Out.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
	}
	line, err := r.io.In.ReadString('\n')
	if err != nil && line == "" {
		return runtime.String(""), nil
	}
	return runtime.String(strings.TrimSpace(line)), nil
}
