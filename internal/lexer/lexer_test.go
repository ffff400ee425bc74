package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palel-lang/palelc/internal/lexer"
)

func tokenTypes(src string) []lexer.TokenType {
	l := lexer.New("test.palel", []byte(src))
	var types []lexer.TokenType
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == lexer.EOF {
			return types
		}
	}
}

func TestNext_Keywords(t *testing.T) {
	got := tokenTypes("program do end dim var ref addr true false null")
	want := []lexer.TokenType{
		lexer.PROGRAM, lexer.DO, lexer.END, lexer.DIM, lexer.VAR, lexer.REF,
		lexer.ADDR, lexer.TRUE, lexer.FALSE, lexer.NULL, lexer.EOF,
	}
	assert.Equal(t, want, got)
}

func TestNext_Punctuation(t *testing.T) {
	got := tokenTypes("(),:=?!")
	want := []lexer.TokenType{
		lexer.LPAREN, lexer.RPAREN, lexer.COMMA, lexer.COLON,
		lexer.ASSIGN, lexer.QUESTION, lexer.BANG, lexer.EOF,
	}
	assert.Equal(t, want, got)
}

func TestNext_Identifier(t *testing.T) {
	l := lexer.New("test.palel", []byte("my_var2"))
	tok := l.Next()
	require.Equal(t, lexer.IDENT, tok.Type)
	assert.Equal(t, "my_var2", tok.Literal)
}

func TestNext_NegativeAndFloatNumbers(t *testing.T) {
	cases := []string{"-5", "6.2", "0", "42"}
	for _, c := range cases {
		l := lexer.New("test.palel", []byte(c))
		tok := l.Next()
		require.Equalf(t, lexer.NUMBER, tok.Type, "input %q", c)
		assert.Equal(t, c, tok.Literal)
	}
}

func TestNext_StringWithEscapes(t *testing.T) {
	l := lexer.New("test.palel", []byte(`"hello\nworld\t\"quoted\""`))
	tok := l.Next()
	require.Equal(t, lexer.STRING, tok.Type)
	assert.Equal(t, "hello\nworld\t\"quoted\"", tok.Literal)
}

func TestNext_LineComment(t *testing.T) {
	got := tokenTypes("dim a = 1 # this is a comment\nend")
	want := []lexer.TokenType{lexer.DIM, lexer.IDENT, lexer.ASSIGN, lexer.NUMBER, lexer.END, lexer.EOF}
	assert.Equal(t, want, got)
}

func TestNext_PositionTracksLineAndColumn(t *testing.T) {
	l := lexer.New("test.palel", []byte("dim\nvar"))
	first := l.Next()
	second := l.Next()
	assert.Equal(t, 1, first.Pos.Line)
	assert.Equal(t, 2, second.Pos.Line)
}

func TestNext_IllegalCharacter(t *testing.T) {
	l := lexer.New("test.palel", []byte("@"))
	tok := l.Next()
	assert.Equal(t, lexer.ILLEGAL, tok.Type)
	assert.Equal(t, "@", tok.Literal)
}
