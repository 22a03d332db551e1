package lexer

import (
	"testing"

	"github.com/Synaptic-Simulations/behave/internal/token"
)

func tokenTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	l := New("test.bhv", src)
	var types []token.Type
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	return types
}

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	src := `( ) { } [ ] , : ; . -> ? = + - * / ! && || == != < > <= >= |`
	want := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.COMMA, token.COLON,
		token.SEMI, token.DOT, token.ARROW, token.QUESTION,
		token.ASSIGN, token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.BANG, token.AND_AND, token.OR_OR, token.EQ, token.NEQ,
		token.LT, token.GT, token.LE, token.GE, token.PIPE, token.EOF,
	}
	got := tokenTypes(t, src)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNextTokenKeywordsAndIdent(t *testing.T) {
	l := New("test.bhv", "fn template myIdent num array map new")
	wantTypes := []token.Type{token.KW_FN, token.KW_TEMPLATE, token.IDENT, token.KW_NUM, token.KW_ARRAY, token.KW_MAP, token.KW_NEW}
	for _, want := range wantTypes {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("got %v, want %v (lexeme %q)", tok.Type, want, tok.Lexeme)
		}
	}
}

func TestNextTokenNumber(t *testing.T) {
	l := New("test.bhv", "42 3.14")
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Lexeme != "42" {
		t.Fatalf("got %v %q", tok.Type, tok.Lexeme)
	}
	tok = l.NextToken()
	if tok.Type != token.NUMBER || tok.Lexeme != "3.14" {
		t.Fatalf("got %v %q", tok.Type, tok.Lexeme)
	}
}

func TestNextTokenStringEscapes(t *testing.T) {
	l := New("test.bhv", `"hello\nworld\t\"quoted\""`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("got %v", tok.Type)
	}
	want := "hello\nworld\t\"quoted\""
	if tok.Literal != want {
		t.Fatalf("got %q, want %q", tok.Literal, want)
	}
}

func TestNextTokenUnterminatedString(t *testing.T) {
	l := New("test.bhv", `"unterminated`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("got %v, want ILLEGAL", tok.Type)
	}
}

func TestNextTokenComments(t *testing.T) {
	src := "// line comment\nfn /* block\ncomment */ name"
	types := tokenTypes(t, src)
	want := []token.Type{token.KW_FN, token.IDENT, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
}

func TestNextTokenMinusVsArrow(t *testing.T) {
	l := New("test.bhv", "- ->")
	tok := l.NextToken()
	if tok.Type != token.MINUS {
		t.Fatalf("got %v, want MINUS", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.ARROW {
		t.Fatalf("got %v, want ARROW", tok.Type)
	}
}

func TestNextTokenIllegalAmpersand(t *testing.T) {
	l := New("test.bhv", "&")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("got %v, want ILLEGAL", tok.Type)
	}
}

func TestLocationTracksLineAndColumn(t *testing.T) {
	l := New("test.bhv", "fn\n  name")
	tok := l.NextToken() // fn
	if tok.Loc.Line != 1 || tok.Loc.Col != 1 {
		t.Fatalf("got line %d col %d", tok.Loc.Line, tok.Loc.Col)
	}
	tok = l.NextToken() // name
	if tok.Loc.Line != 2 {
		t.Fatalf("got line %d, want 2", tok.Loc.Line)
	}
}
