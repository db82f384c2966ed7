// Package interp implements Lumen's tree-walking evaluator: the
// environment chain, closure/method dispatch, and the statement and
// expression drivers that consume the resolver's distance map.
package interp

import (
	"io"
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/errors"
	"github.com/lumen-lang/lumen/internal/interp/runtime"
	"github.com/lumen-lang/lumen/internal/resolver"
	"github.com/lumen-lang/lumen/internal/stdlib"
	"github.com/lumen-lang/lumen/pkg/token"
)

// Interpreter walks a statement tree against a chain of environments,
// using a resolver.Distances map to find the right frame for every
// variable, this, and super reference.
type Interpreter struct {
	globals   *runtime.Environment
	env       *runtime.Environment
	distances resolver.Distances
	registry  *stdlib.Registry

	out          io.Writer
	source, file string

	specials                         map[string]runtime.Value
	breaking, continuing, returning bool

	trace io.Writer
}

// SetTrace turns on a line of statement-execution trace output to w,
// named after the teacher's own `--trace` flag (cmd/dwscript/cmd/run.go).
// A nil w (the default) disables tracing.
func (it *Interpreter) SetTrace(w io.Writer) { it.trace = w }

// New creates an Interpreter over the resolver's distance map, writing `write`
// output to stdout and reading `os::input` from stdin.
func New(source, file string, distances resolver.Distances, stdout io.Writer, stdin io.Reader) *Interpreter {
	globals := runtime.NewEnvironment()
	return &Interpreter{
		globals:   globals,
		env:       globals,
		distances: distances,
		registry:  stdlib.NewRegistry(stdout, stdin),
		out:       stdout,
		source:    source,
		file:      file,
		specials:  map[string]runtime.Value{},
	}
}

// Run executes a top-level statement list against the global environment.
func (it *Interpreter) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) runtimeErr(pos token.Position, format string, args ...any) error {
	return errors.New(errors.Runtime, pos, it.source, it.file, format, args...)
}

// execBlock runs stmts against env, restoring the previous environment on
// every exit path, then stops early once a break/continue/return signal is
// pending so callers can observe and handle it.
func (it *Interpreter) execBlock(stmts []ast.Stmt, env *runtime.Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
		if it.breaking || it.continuing || it.returning {
			return nil
		}
	}
	return nil
}

// render formats v the way `write` prints it, expanding the literal `\n`
// escape sequence into a real newline (spec.md §6: tokenize-time strings
// keep `\n` literal; only `write` expands it).
func render(v runtime.Value) string {
	return strings.ReplaceAll(v.Render(), `\n`, "\n")
}
