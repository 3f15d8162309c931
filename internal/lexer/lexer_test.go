package lexer

import (
	"testing"

	"github.com/efratelisha/cplc/internal/errors"
)

func collectTokens(t *testing.T, input string) ([]Token, *errors.Diagnostics) {
	t.Helper()
	diags := &errors.Diagnostics{}
	l := New(input, diags, "test.ou")
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens, diags
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"else", ELSE},
		{"float", FLOAT},
		{"if", IF},
		{"input", INPUT},
		{"int", INT},
		{"output", OUTPUT},
		{"while", WHILE},
		{"elsewhere", IDENT},
		{"x1", IDENT},
		{"y", IDENT},
	}

	for _, tt := range tests {
		toks, diags := collectTokens(t, tt.input)
		if diags.HasError() {
			t.Fatalf("%q: unexpected diagnostics: %v", tt.input, diags.Items())
		}
		if len(toks) < 1 || toks[0].Type != tt.want {
			t.Fatalf("%q: got %v, want first token of type %v", tt.input, toks, tt.want)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"0.", "0."},
	}
	for _, tt := range tests {
		toks, _ := collectTokens(t, tt.input)
		if toks[0].Type != NUM || toks[0].Literal != tt.want {
			t.Fatalf("%q: got %+v, want NUM %q", tt.input, toks[0], tt.want)
		}
	}
}

func TestNextTokenOperators(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{"==", RELOP}, {"!=", RELOP}, {">=", RELOP}, {"<=", RELOP}, {"<", RELOP}, {">", RELOP},
		{"+", ADDOP}, {"-", ADDOP},
		{"*", MULOP}, {"/", MULOP},
		{"||", OR}, {"&&", AND}, {"!", NOT},
		{"(", LPAREN}, {")", RPAREN}, {"{", LBRACE}, {"}", RBRACE},
		{",", COMMA}, {":", COLON}, {";", SEMICOLON}, {"=", ASSIGN},
	}
	for _, tt := range tests {
		toks, _ := collectTokens(t, tt.input)
		if toks[0].Type != tt.want || toks[0].Literal != tt.input {
			t.Fatalf("%q: got %+v, want %v", tt.input, toks[0], tt.want)
		}
	}
}

func TestNextTokenCast(t *testing.T) {
	toks, diags := collectTokens(t, "static_cast<int>(a)")
	if diags.HasError() {
		t.Fatalf("unexpected diagnostics: %v", diags.Items())
	}
	if toks[0].Type != CAST || toks[0].Literal != "static_cast<int>" {
		t.Fatalf("got %+v", toks[0])
	}
	if CastInnerType(toks[0].Literal) != "int" {
		t.Fatalf("CastInnerType(%q) = %q, want int", toks[0].Literal, CastInnerType(toks[0].Literal))
	}

	toks, _ = collectTokens(t, "static_cast<float>(x)")
	if toks[0].Type != CAST || CastInnerType(toks[0].Literal) != "float" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestSkipWhitespaceAndSingleLineComment(t *testing.T) {
	toks, diags := collectTokens(t, "x /* a comment */ = 1;")
	if diags.HasError() {
		t.Fatalf("unexpected diagnostics: %v", diags.Items())
	}
	kinds := []TokenType{IDENT, ASSIGN, NUM, SEMICOLON, EOF}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(kinds))
	}
	for i, k := range kinds {
		if toks[i].Type != k {
			t.Fatalf("token %d: got %v, want %v", i, toks[i].Type, k)
		}
	}
}

// TestCommentDoesNotSpanLines exercises spec.md §4.1/§9: an unterminated
// (or line-spanning) comment stops matching at end of line, and the
// leftover "/* ..." text lexes as ordinary tokens instead of swallowing
// the next line.
func TestCommentDoesNotSpanLines(t *testing.T) {
	toks, _ := collectTokens(t, "/* start\n x; */")
	if toks[0].Type != MULOP || toks[0].Literal != "/" {
		t.Fatalf("first token = %+v, want MULOP \"/\"", toks[0])
	}
}

func TestNewlinesIncrementLineCounter(t *testing.T) {
	toks, _ := collectTokens(t, "x\n\ny;")
	var semicolon Token
	for _, tok := range toks {
		if tok.Type == SEMICOLON {
			semicolon = tok
		}
	}
	if semicolon.Line != 3 {
		t.Fatalf("semicolon line = %d, want 3", semicolon.Line)
	}
}

func TestIllegalCharacterReportsAndSkips(t *testing.T) {
	toks, diags := collectTokens(t, "x @ y;")
	if !diags.HasError() {
		t.Fatalf("expected an error diagnostic for '@'")
	}
	found := false
	for _, item := range diags.Items() {
		if item.Message == "lexical error - bad character @" && item.Line == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v, want a lexical error message for '@' at line 1", diags.Items())
	}

	kinds := []TokenType{IDENT, ILLEGAL, IDENT, SEMICOLON, EOF}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(kinds))
	}
	for i, k := range kinds {
		if toks[i].Type != k {
			t.Fatalf("token %d: got %v, want %v", i, toks[i].Type, k)
		}
	}
}
