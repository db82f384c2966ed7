package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/resolver"
)

// run parses, resolves, and interprets source, returning what it wrote to
// stdout (or the first error encountered at any stage).
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	p, err := parser.New(source, "test.lum")
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	stmts, err := p.Parse()
	if err != nil {
		return "", err
	}
	distances, err := resolver.New(source, "test.lum").Resolve(stmts)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	it := New(source, "test.lum", distances, &out, strings.NewReader(""))
	if err := it.Run(stmts); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "write 1 + 2 * 3;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("got %q, want %q", out, "7\n")
	}
}

func TestClosureCapturesByReference(t *testing.T) {
	out, err := run(t, `
		fc makeCounter() {
			let count = 0;
			fc increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		let counter = makeCounter();
		write counter();
		write counter();
		write counter();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Fatalf("got %q, want %q", out, "1\n2\n3\n")
	}
}

func TestClassInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
		clazz Animal {
			fc speak() { write "..."; }
		}
		clazz Dog < Animal {
			fc speak() {
				super.speak();
				write "woof";
			}
		}
		let d = Dog();
		d.speak();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "...\nwoof\n" {
		t.Fatalf("got %q, want %q", out, "...\nwoof\n")
	}
}

func TestConstantReassignmentIsRejected(t *testing.T) {
	_, err := run(t, `
		const x = 1;
		x = 2;
	`)
	if err == nil {
		t.Fatal("expected an error reassigning a constant")
	}
}

func TestForeachBreakStopsIteration(t *testing.T) {
	out, err := run(t, `
		lib std::list;
		let items = list::add(list::add(list::add(list::new(), 1), 2), 3);
		foreach item in items {
			if (item == 2) { break; }
			write item;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n" {
		t.Fatalf("got %q, want %q", out, "1\n")
	}
}

func TestWhileContinueSkipsRestOfBody(t *testing.T) {
	out, err := run(t, `
		let i = 0;
		while (i < 4) {
			i = i + 1;
			if (i == 2) { continue; }
			write i;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n3\n4\n" {
		t.Fatalf("got %q, want %q", out, "1\n3\n4\n")
	}
}

func TestReturnPropagatesThroughNestedLoopAndBlock(t *testing.T) {
	out, err := run(t, `
		fc find() {
			while (true) {
				{
					return "found";
				}
			}
		}
		write find();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "found\n" {
		t.Fatalf("got %q, want %q", out, "found\n")
	}
}

func TestModuleCallAndModulePropertyWithoutImport(t *testing.T) {
	out, err := run(t, `
		write math::sqrt(9);
		write math::PI;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 || lines[0] != "3" {
		t.Fatalf("got %q, want sqrt(9) to render as 3", out)
	}
	if !strings.HasPrefix(lines[1], "3.14159") {
		t.Fatalf("got %q for math::PI, want a pi-prefixed value", lines[1])
	}
}

func TestOsExitWithPositiveStatusIsARuntimeErrorNotProcessExit(t *testing.T) {
	out, err := run(t, `os::exit(1); write "never reached";`)
	if err == nil {
		t.Fatal("expected a runtime error rather than the process actually exiting")
	}
	if strings.Contains(out, "never reached") {
		t.Fatal("execution should have stopped at os::exit")
	}
}

func TestFunctionArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fc add(a, b) { return a + b; }
		add(1);
	`)
	if err == nil {
		t.Fatal("expected an arity-mismatch error")
	}
}

func TestUndeclaredVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, "write missing;")
	if err == nil {
		t.Fatal("expected an error reading an undeclared variable")
	}
}

func TestListUsedAsBooleanIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		lib std::list;
		if (list::new()) { write "unreachable"; }
	`)
	if err == nil {
		t.Fatal("expected an error using a list in a boolean context")
	}
}

func TestInstanceUsedAsBooleanIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		clazz A {}
		if (A()) { write "unreachable"; }
	`)
	if err == nil {
		t.Fatal("expected an error using a class instance in a boolean context")
	}
}

func TestModuleUsedAsBooleanIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		lib std::math;
		if (math) { write "unreachable"; }
	`)
	if err == nil {
		t.Fatal("expected an error using a module value in a boolean context")
	}
}
