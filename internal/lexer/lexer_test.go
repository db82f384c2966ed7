package lexer

import (
	"testing"

	"github.com/lumen-lang/lumen/pkg/token"
)

func TestTokenizeOperatorsAndLiterals(t *testing.T) {
	l := New(`let x = 1 + 2.5 * "hi" != null;`)
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []token.Type{
		token.LET, token.IDENT, token.EQUAL, token.NUMBER, token.PLUS,
		token.NUMBER, token.STAR, token.STRING, token.BANG_EQUAL,
		token.NULL, token.SEMICOLON, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, w)
		}
	}
}

func TestTwoCharacterOperatorsFold(t *testing.T) {
	l := New("a++ -- && || == <= >= :: !=")
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Type{
		token.IDENT, token.PLUS_PLUS, token.MINUS_MINUS, token.AND_AND,
		token.OR_OR, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.COLON_COLON, token.BANG_EQUAL, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Type, w)
		}
	}
}

func TestLineCommentSkipped(t *testing.T) {
	tokens, err := New("let x = 1; // trailing comment\nlet y = 2;").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 11 {
		t.Fatalf("got %d tokens, want 11: %v", len(tokens), tokens)
	}
}

func TestBlockCommentUnterminatedAtLoneStar(t *testing.T) {
	_, err := New("let x = 1; /* this never closes *").Tokenize()
	if err == nil {
		t.Fatal("expected an unterminated block comment error")
	}
	lexErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
	if lexErr.Message == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestBlockCommentTerminatedIsSkipped(t *testing.T) {
	tokens, err := New("/* comment */ let x = 1;").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Type != token.LET {
		t.Fatalf("expected LET as first token, got %s", tokens[0].Type)
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	_, err := New(`let x = "never closed`).Tokenize()
	if err == nil {
		t.Fatal("expected an unterminated string literal error")
	}
}

func TestColumnCountsRunesNotBytes(t *testing.T) {
	// "é" is two bytes in UTF-8 but must count as a single column.
	tokens, err := New(`"é" x`).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[1].Pos.Column != 5 {
		t.Fatalf("got column %d, want 5 (rune count, not byte count)", tokens[1].Pos.Column)
	}
}
