// Package lumen is the public facade over Lumen's tokenizer, parser,
// resolver, and interpreter: the single entry point cmd/lumen and tests
// drive the whole pipeline through (mirrors the teacher's pkg/dwscript).
package lumen

import (
	"io"
	"os"
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/interp"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/resolver"
)

// FileSuffix is the Language's required source file extension.
const FileSuffix = ".lum"

// Engine runs Lumen source against a configurable pair of standard
// streams. The zero value is not usable; build one with New.
type Engine struct {
	stdout io.Writer
	stdin  io.Reader
	trace  io.Writer
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOutput redirects `write` output (and os::input prompts) to w instead
// of os.Stdout. Trace output goes to the writer given to WithTrace.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.stdout = w }
}

// WithInput redirects os::input reads to r instead of os.Stdin.
func WithInput(r io.Reader) Option {
	return func(e *Engine) { e.stdin = r }
}

// WithTrace turns on per-statement execution tracing to w, named after
// `lumen run --trace`.
func WithTrace(w io.Writer) Option {
	return func(e *Engine) { e.trace = w }
}

// New builds an Engine, applying opts over the defaults of os.Stdout and
// os.Stdin.
func New(opts ...Option) *Engine {
	e := &Engine{stdout: os.Stdout, stdin: os.Stdin}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse runs the tokenizer and parser over source, returning the
// statement tree. Multiple SyntaxErrors are returned together as an
// errors.List; a LexicalError is returned alone as an *errors.CompilerError.
func Parse(source, filename string) ([]ast.Stmt, error) {
	p, err := parser.New(source, filename)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Run parses, resolves, and evaluates source, writing any `write` output
// to the Engine's configured stdout. The first error from any stage
// (lexical, syntax, resolution, or runtime) aborts the run.
func (e *Engine) Run(source, filename string) error {
	stmts, err := Parse(source, filename)
	if err != nil {
		return err
	}

	res := resolver.New(source, filename)
	distances, err := res.Resolve(stmts)
	if err != nil {
		return err
	}

	it := interp.New(source, filename, distances, e.stdout, e.stdin)
	if e.trace != nil {
		it.SetTrace(e.trace)
	}
	return it.Run(stmts)
}

// RunFile reads path and runs it as Lumen source. path must end with
// FileSuffix; otherwise a *UsageError is returned without reading the
// file (spec.md §6).
func (e *Engine) RunFile(path string) error {
	if !strings.HasSuffix(path, FileSuffix) {
		return &UsageError{Message: "source file must have a " + FileSuffix + " suffix: " + path}
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return e.Run(string(src), path)
}

// UsageError reports a fatal command-line usage mistake that never made
// it into the tokenizer/parser/resolver/interpreter pipeline (e.g. the
// wrong file suffix).
type UsageError struct {
	Message string
}

func (u *UsageError) Error() string { return u.Message }
