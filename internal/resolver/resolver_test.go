package resolver

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/parser"
)

func parseAndResolve(t *testing.T, source string) (Distances, error) {
	t.Helper()
	p, err := parser.New(source, "test.lum")
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	stmts, err := p.Parse()
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	return New(source, "test.lum").Resolve(stmts)
}

func TestThisOutsideMethodIsResolutionError(t *testing.T) {
	_, err := parseAndResolve(t, "write this;")
	if err == nil {
		t.Fatal("expected a resolution error for 'this' outside a method")
	}
}

func TestSuperWithoutSuperclassIsResolutionError(t *testing.T) {
	_, err := parseAndResolve(t, `
		clazz A {
			fc hello() { return super.hello(); }
		}
	`)
	if err == nil {
		t.Fatal("expected a resolution error for 'super' with no superclass")
	}
}

func TestSuperInsideInheritingClassResolves(t *testing.T) {
	_, err := parseAndResolve(t, `
		clazz A {
			fc hello() { write "a"; }
		}
		clazz B < A {
			fc hello() { return super.hello(); }
		}
	`)
	if err != nil {
		t.Fatalf("unexpected resolution error: %v", err)
	}
}

func TestSelfInheritanceIsResolutionError(t *testing.T) {
	_, err := parseAndResolve(t, `clazz A < A { fc hi() { write "hi"; } }`)
	if err == nil {
		t.Fatal("expected a resolution error for a class inheriting from itself")
	}
}

func TestSelfReferenceInOwnInitializerIsResolutionError(t *testing.T) {
	_, err := parseAndResolve(t, `
		let x = 1;
		{
			let x = x + 1;
		}
	`)
	if err == nil {
		t.Fatal("expected a resolution error for reading a variable in its own initializer")
	}
}

func TestClosureCaptureDistance(t *testing.T) {
	// The inner `x` reference in the returned function should resolve at a
	// fixed distance from the function body's own scope regardless of how
	// deep the call stack nests later, since resolution is purely lexical.
	p, err := parser.New(`
		fc makeCounter() {
			let x = 0;
			fc increment() {
				x = x + 1;
				return x;
			}
			return increment;
		}
	`, "test.lum")
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	stmts, err := p.Parse()
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	distances, err := New("", "test.lum").Resolve(stmts)
	if err != nil {
		t.Fatalf("unexpected resolution error: %v", err)
	}

	outer := stmts[0].(*ast.FunctionStmt)
	var inner *ast.FunctionStmt
	for _, s := range outer.Body {
		if fn, ok := s.(*ast.FunctionStmt); ok {
			inner = fn
		}
	}
	if inner == nil {
		t.Fatal("expected to find the nested increment function")
	}
	assign := inner.Body[0].(*ast.ExprStmt).Expr.(*ast.Assign)
	if dist, ok := distances[assign.ID()]; !ok || dist != 1 {
		t.Fatalf("expected assignment to x at distance 1, got %d (ok=%v)", dist, ok)
	}
}
