// Package resolver performs the static lexical-scope analysis pass that
// sits between the parser and the interpreter. It walks the statement tree
// once and produces a map from AST node id to scope distance, which the
// interpreter uses to find the right environment frame for every variable,
// this, and super reference without doing name lookup at every scope.
package resolver

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/errors"
	"github.com/lumen-lang/lumen/pkg/token"
)

type functionKind int

const (
	kindNone functionKind = iota
	kindFunction
	kindMethod
)

// Distances maps an AST node id to the number of enclosing environments to
// walk to find its binding. A missing entry means "look it up as a global
// by name".
type Distances map[int]int

// Resolver implements the single-pass scope analysis described in
// spec.md §4.3.
type Resolver struct {
	scopes      []map[string]bool
	distances   Distances
	currentFn   functionKind
	inClass     bool
	hasSuper    bool
	source      string
	file        string
	errs        errors.List
}

// New creates a Resolver.
func New(source, file string) *Resolver {
	return &Resolver{distances: Distances{}, source: source, file: file}
}

// Resolve walks stmts and returns the completed distance map. A non-nil
// error means resolution failed (this/super misuse, self-inheritance, or a
// variable read in its own initializer); the distance map is still
// returned since tooling may want the partial result.
func (r *Resolver) Resolve(stmts []ast.Stmt) (Distances, error) {
	r.resolveStmts(stmts)
	if len(r.errs) > 0 {
		return r.distances, r.errs
	}
	return r.distances, nil
}

func (r *Resolver) errorAt(pos token.Position, format string, args ...any) {
	r.errs = append(r.errs, errors.New(errors.Resolution, pos, r.source, r.file, format, args...))
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal walks the scope stack from innermost outward and, if found,
// records the node's distance.
func (r *Resolver) resolveLocal(id int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.distances[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: left unset, interpreter treats it as global.
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}
