package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mamba-lang/go-mamba/lexer"
	"github.com/mamba-lang/go-mamba/token"
)

func TestNextToken(t *testing.T) {
	input := `# greeting program
x = 10;
y = 2.5;
say "Hello \"World\"";
if (x >= 3 && x != 4) {
	say 'ok';
} else {
	exit;
}
for i in 1..5 { say i; }
/* block
   comment */
z = not true or false;
`
	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
		expectedLine    int
		expectedColumn  int
	}{
		{token.COMMENT, "greeting program", 1, 1},
		{token.IDENT, "x", 2, 1},
		{token.ASSIGN, "=", 2, 3},
		{token.INT, "10", 2, 5},
		{token.SEMICOLON, ";", 2, 7},
		{token.IDENT, "y", 3, 1},
		{token.ASSIGN, "=", 3, 3},
		{token.FLOAT, "2.5", 3, 5},
		{token.SEMICOLON, ";", 3, 8},
		{token.PRINT, "say", 4, 1},
		{token.STRING, `Hello "World"`, 4, 5},
		{token.SEMICOLON, ";", 4, 22},
		{token.IF, "if", 5, 1},
		{token.LPAREN, "(", 5, 4},
		{token.IDENT, "x", 5, 5},
		{token.GE, ">=", 5, 7},
		{token.INT, "3", 5, 10},
		{token.AND, "&&", 5, 12},
		{token.IDENT, "x", 5, 15},
		{token.NOT_EQ, "!=", 5, 17},
		{token.INT, "4", 5, 20},
		{token.RPAREN, ")", 5, 21},
		{token.LBRACE, "{", 5, 23},
		{token.PRINT, "say", 6, 2},
		{token.STRING, "ok", 6, 6},
		{token.SEMICOLON, ";", 6, 10},
		{token.RBRACE, "}", 7, 1},
		{token.ELSE, "else", 7, 3},
		{token.LBRACE, "{", 7, 8},
		{token.EXIT, "exit", 8, 2},
		{token.SEMICOLON, ";", 8, 6},
		{token.RBRACE, "}", 9, 1},
		{token.FOR, "for", 10, 1},
		{token.IDENT, "i", 10, 5},
		{token.IN, "in", 10, 7},
		{token.INT, "1", 10, 10},
		{token.DOTDOT, "..", 10, 11},
		{token.INT, "5", 10, 13},
		{token.LBRACE, "{", 10, 15},
		{token.PRINT, "say", 10, 17},
		{token.IDENT, "i", 10, 21},
		{token.SEMICOLON, ";", 10, 22},
		{token.RBRACE, "}", 10, 24},
		{token.COMMENT, " block\n   comment ", 11, 1},
		{token.IDENT, "z", 13, 1},
		{token.ASSIGN, "=", 13, 3},
		{token.NOT, "not", 13, 5},
		{token.TRUE, "true", 13, 9},
		{token.OR, "or", 13, 14},
		{token.FALSE, "false", 13, 17},
		{token.SEMICOLON, ";", 13, 22},
		{token.EOF, "", 14, 1},
	}

	l := lexer.New([]byte(input), nil)
	for i, tt := range expectedTokens {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "token %d type", i)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "token %d literal", i)
		require.Equal(t, tt.expectedLine, tok.Line, "token %d line (%s)", i, tok.Literal)
		require.Equal(t, tt.expectedColumn, tok.Column, "token %d column (%s)", i, tok.Literal)
	}
}

func TestRemappedKeywords(t *testing.T) {
	reserved := token.ReservedWords{
		"shout": token.PRINT,
		"maybe": token.IF,
	}

	l := lexer.New([]byte(`shout maybe say;`), reserved)

	tok := l.NextToken()
	require.Equal(t, token.PRINT, tok.Type)
	require.Equal(t, "shout", tok.Literal)

	tok = l.NextToken()
	require.Equal(t, token.IF, tok.Type)

	// The original spelling is just an identifier under the remapped table.
	tok = l.NextToken()
	require.Equal(t, token.IDENT, tok.Type)
	require.Equal(t, "say", tok.Literal)
}

func TestLexerIsRestartable(t *testing.T) {
	input := []byte(`say "twice"; x = 1 + 2;`)

	collect := func() []token.Token {
		l := lexer.New(input, nil)
		var toks []token.Token
		for {
			tok := l.NextToken()
			toks = append(toks, tok)
			if tok.Type == token.EOF {
				return toks
			}
		}
	}

	require.Equal(t, collect(), collect())
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
	}{
		{"unknown character", `say @;`, "@"},
		{"bare ampersand", `a & b`, "&"},
		{"bare pipe", `a | b`, "|"},
		{"bare dot", `a . b`, "."},
		{"unterminated string", `say "oops`, "unterminated string"},
		{"newline in string", "say \"oops\nmore\"", "unterminated string"},
		{"bad escape", `say "\q";`, `invalid escape sequence \q`},
		{"unterminated block comment", `/* oops`, "unterminated block comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New([]byte(tt.input), nil)
			for {
				tok := l.NextToken()
				require.NotEqual(t, token.EOF, tok.Type, "expected an ILLEGAL token before EOF")
				if tok.Type == token.ILLEGAL {
					require.Equal(t, tt.literal, tok.Literal)
					return
				}
			}
		})
	}
}

func TestSingleAndDoubleQuotes(t *testing.T) {
	l := lexer.New([]byte(`'it''s' "a \'b\'"`), nil)

	tok := l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "it", tok.Literal)

	tok = l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "s", tok.Literal)

	tok = l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "a 'b'", tok.Literal)
}

func TestNumberAdjacentToRange(t *testing.T) {
	l := lexer.New([]byte(`1..5 2.75`), nil)

	expected := []struct {
		typ token.Type
		lit string
	}{
		{token.INT, "1"},
		{token.DOTDOT, ".."},
		{token.INT, "5"},
		{token.FLOAT, "2.75"},
		{token.EOF, ""},
	}
	for _, e := range expected {
		tok := l.NextToken()
		require.Equal(t, e.typ, tok.Type)
		require.Equal(t, e.lit, tok.Literal)
	}
}
