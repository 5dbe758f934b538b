package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/loxwalk/internal/token"
)

// kindsOf reduces a token slice to just its kinds, the shape most tests
// care about; lexeme/position are checked separately where they matter.
func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestTokenize_SingleCharacterTokens(t *testing.T) {
	got := kindsOf(Tokenize("(){},.;*+-/"))
	want := []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Semicolon, token.Star, token.Plus,
		token.Minus, token.Slash, token.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_TwoCharacterOperators(t *testing.T) {
	got := kindsOf(Tokenize("! != = == < <= > >="))
	want := []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
		token.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_LineComment(t *testing.T) {
	got := kindsOf(Tokenize("1 + 2 // this is a comment\n3"))
	want := []token.Kind{token.Number, token.Plus, token.Number, token.Number, token.EOF}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_String(t *testing.T) {
	tokens := Tokenize(`"hello world"`)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(tokens), tokens)
	}
	tok := tokens[0]
	if tok.Kind != token.String {
		t.Fatalf("expected String, got %s", tok.Kind)
	}
	if tok.Text != "hello world" {
		t.Errorf("Text = %q, want %q", tok.Text, "hello world")
	}
	if tok.Lexeme != `"hello world"` {
		t.Errorf("Lexeme = %q, want %q", tok.Lexeme, `"hello world"`)
	}
}

func TestTokenize_UnterminatedString(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no closing quote before EOF", `"abc`},
		{"newline before closing quote", "\"abc\ndef\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if tokens[0].Kind != token.UnterminatedString {
				t.Fatalf("expected UnterminatedString, got %s", tokens[0].Kind)
			}
		})
	}
}

func TestTokenize_UnterminatedStringDoesNotConsumeNewline(t *testing.T) {
	tokens := Tokenize("\"abc\n123")
	if tokens[0].Kind != token.UnterminatedString {
		t.Fatalf("expected UnterminatedString, got %s", tokens[0].Kind)
	}
	if tokens[0].Lexeme != "\"abc" {
		t.Errorf("Lexeme = %q, want %q (newline must not be consumed)", tokens[0].Lexeme, "\"abc")
	}
	if tokens[1].Kind != token.Number {
		t.Fatalf("expected the newline to remain unconsumed before the number, got %s", tokens[1].Kind)
	}
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		input string
		value float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"0", 0},
	}
	for _, tt := range tests {
		tokens := Tokenize(tt.input)
		if tokens[0].Kind != token.Number {
			t.Fatalf("input %q: expected Number, got %s", tt.input, tokens[0].Kind)
		}
		if tokens[0].Literal != tt.value {
			t.Errorf("input %q: Literal = %v, want %v", tt.input, tokens[0].Literal, tt.value)
		}
	}
}

func TestTokenize_TrailingDotIsNotPartOfNumber(t *testing.T) {
	got := kindsOf(Tokenize("12."))
	want := []token.Kind{token.Number, token.Dot, token.EOF}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
	tokens := Tokenize("12.")
	if tokens[0].Literal != 12 {
		t.Errorf("Literal = %v, want 12", tokens[0].Literal)
	}
}

func TestTokenize_IdentifiersAndKeywords(t *testing.T) {
	got := kindsOf(Tokenize("foo _bar and class true nil"))
	want := []token.Kind{
		token.Identifier, token.Identifier, token.And, token.Class,
		token.True, token.Nil, token.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_UnknownCharacter(t *testing.T) {
	tokens := Tokenize("1 $ 2")
	if tokens[1].Kind != token.Unknown {
		t.Fatalf("expected Unknown, got %s", tokens[1].Kind)
	}
	if tokens[1].Lexeme != "$" {
		t.Errorf("Lexeme = %q, want %q", tokens[1].Lexeme, "$")
	}
}

func TestTokenize_AlwaysEndsInExactlyOneEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "1 + 2", "// only a comment"} {
		tokens := Tokenize(src)
		if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Fatalf("input %q: expected trailing EOF, got %v", src, tokens)
		}
		eofCount := 0
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				eofCount++
			}
		}
		if eofCount != 1 {
			t.Fatalf("input %q: expected exactly one EOF, got %d", src, eofCount)
		}
	}
}

func TestTokenize_PositionsAreOneIndexed(t *testing.T) {
	tokens := Tokenize("1\n22 +")
	if tokens[0].Pos.Line != 1 {
		t.Errorf("first token line = %d, want 1", tokens[0].Pos.Line)
	}
	if tokens[1].Pos.Line != 2 {
		t.Errorf("second token line = %d, want 2", tokens[1].Pos.Line)
	}
}
