package lumen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func runSource(t *testing.T, source string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	engine := New(WithOutput(&out), WithInput(strings.NewReader("")))
	err := engine.Run(source, "test.lum")
	return out.String(), err
}

func TestRunFileRejectsWrongSuffix(t *testing.T) {
	engine := New()
	err := engine.RunFile("script.txt")
	if err == nil {
		t.Fatal("expected a usage error for a non-.lum file")
	}
	if _, ok := err.(*UsageError); !ok {
		t.Fatalf("got %T, want *UsageError", err)
	}
}

func TestParseReturnsStatementTree(t *testing.T) {
	stmts, err := Parse("let x = 1;", "test.lum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
}

func TestEngineRunEndToEndProgram(t *testing.T) {
	out, err := runSource(t, `
		clazz Greeter {
			fc init(name) { this.name = name; }
			fc greet() { write "hello " + this.name; }
		}
		let g = Greeter("lumen");
		g.greet();

		lib std::list;
		let nums = list::add(list::add(list::new(), 1), 2);
		write list::size(nums);

		let total = 0;
		foreach n in nums {
			total = total + n;
		}
		write total;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "greeter_and_list_output", out)
}

func TestEngineRunSurfacesResolutionErrors(t *testing.T) {
	_, err := runSource(t, "write this;")
	if err == nil {
		t.Fatal("expected a resolution error for 'this' outside a method")
	}
}

func TestWithTraceWritesStatementTrace(t *testing.T) {
	var out, trace bytes.Buffer
	engine := New(WithOutput(&out), WithInput(strings.NewReader("")), WithTrace(&trace))
	if err := engine.Run("let x = 1; write x;", "test.lum"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trace.Len() == 0 {
		t.Fatal("expected trace output to be non-empty when WithTrace is set")
	}
	if out.String() != "1\n" {
		t.Fatalf("got stdout %q, want %q", out.String(), "1\n")
	}
}
