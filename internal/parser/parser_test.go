package parser

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/pkg/token"
)

func parse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	p, err := New(source, "test.lum")
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	stmts, err := p.Parse()
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	return stmts
}

func TestParseLetAndArithmeticPrecedence(t *testing.T) {
	stmts := parse(t, "let x = 1 + 2 * 3;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	let, ok := stmts[0].(*ast.LetStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.LetStmt", stmts[0])
	}
	bin, ok := let.Init.(*ast.Binary)
	if !ok {
		t.Fatalf("got %T, want *ast.Binary", let.Init)
	}
	if bin.Op != token.PLUS {
		t.Fatalf("top-level operator should be +, got %s (multiplication should bind tighter)", bin.Op)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Op != token.STAR {
		t.Fatalf("right side of + should be a * expression, got %#v", bin.Right)
	}
}

func TestParseClassWithExtends(t *testing.T) {
	stmts := parse(t, `
		clazz Animal {
			fc speak() { write "..."; }
		}
		clazz Dog < Animal {
			fc speak() { write "woof"; }
		}
	`)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	dog, ok := stmts[1].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassStmt", stmts[1])
	}
	if dog.Superclass == nil || dog.Superclass.Name != "Animal" {
		t.Fatalf("expected superclass Animal, got %#v", dog.Superclass)
	}
	if len(dog.Methods) != 1 || dog.Methods[0].Name != "speak" {
		t.Fatalf("expected one method named speak, got %#v", dog.Methods)
	}
}

func TestParseLibImportForms(t *testing.T) {
	stmts := parse(t, `
		lib std::math;
		lib std::string::trim;
		lib std::list[add, reverse];
	`)
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts))
	}

	whole := stmts[0].(*ast.LibImport)
	if !whole.Whole || whole.Module != "math" {
		t.Fatalf("expected whole import of math, got %#v", whole)
	}

	single := stmts[1].(*ast.LibImport)
	if single.Whole || single.Module != "string" || len(single.Names) != 1 || single.Names[0] != "trim" {
		t.Fatalf("expected single-name import of string::trim, got %#v", single)
	}

	multi := stmts[2].(*ast.LibImport)
	if multi.Whole || multi.Module != "list" || len(multi.Names) != 2 {
		t.Fatalf("expected two-name import of list[add, reverse], got %#v", multi)
	}
}

func TestParseErrorsAccumulateAndResynchronize(t *testing.T) {
	p, err := New("let x = ; let y = 2;", "test.lum")
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	stmts, err := p.Parse()
	if err == nil {
		t.Fatal("expected a syntax error for the missing initializer expression")
	}
	if len(p.errs) == 0 {
		t.Fatal("expected at least one recorded error")
	}
	// The parser resynchronizes at ';' and still recovers the second
	// statement even though the first was malformed.
	found := false
	for _, s := range stmts {
		if let, ok := s.(*ast.LetStmt); ok && let.Name == "y" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected parser to recover and parse `let y = 2;` after the error")
	}
}

func TestParseForeachAndBreak(t *testing.T) {
	stmts := parse(t, `
		foreach item in items {
			if (item == 0) { break; }
			write item;
		}
	`)
	fe, ok := stmts[0].(*ast.ForeachStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ForeachStmt", stmts[0])
	}
	if fe.Var != "item" || fe.ListName != "items" {
		t.Fatalf("got var=%s list=%s, want item/items", fe.Var, fe.ListName)
	}
	if len(fe.Body) != 2 {
		t.Fatalf("got %d body statements, want 2", len(fe.Body))
	}
}
