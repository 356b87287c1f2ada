// Package lexer turns source text into tokens. The reserved-word table is
// injected at construction, so a lexer built from one table is unaffected
// by maps built later; rebuilding behavior means building a new Lexer.
package lexer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/mamba-lang/go-mamba/token"
)

// Lexer holds the state for tokenizing source text.
type Lexer struct {
	input        []byte
	reserved     token.ReservedWords
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New creates a Lexer over input using the supplied reserved-word table.
// A nil table means the language's default keywords.
func New(input []byte, reserved token.ReservedWords) *Lexer {
	if reserved == nil {
		reserved = token.DefaultReserved()
	}
	l := &Lexer{input: input, reserved: reserved, line: 1, column: 1}
	l.readChar()
	return l
}

// NextToken scans the input and returns the next token. Scanning the same
// input with the same table always yields the same sequence.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	tok := token.Token{Line: l.line, Column: l.column}

	switch l.ch {
	case '(', ')', '{', '}', ',', ';', '+', '-', '*', '%':
		tok.Type = token.Type(l.ch)
		tok.Literal = string(l.ch)
	case '=':
		if l.peekChar() == '=' {
			l.advance()
			tok.Type = token.EQ
			tok.Literal = "=="
		} else {
			tok.Type = token.ASSIGN
			tok.Literal = "="
		}
	case '!':
		if l.peekChar() == '=' {
			l.advance()
			tok.Type = token.NOT_EQ
			tok.Literal = "!="
		} else {
			tok.Type = token.NOT
			tok.Literal = "!"
		}
	case '<':
		if l.peekChar() == '=' {
			l.advance()
			tok.Type = token.LE
			tok.Literal = "<="
		} else {
			tok.Type = token.LT
			tok.Literal = "<"
		}
	case '>':
		if l.peekChar() == '=' {
			l.advance()
			tok.Type = token.GE
			tok.Literal = ">="
		} else {
			tok.Type = token.GT
			tok.Literal = ">"
		}
	case '&':
		if l.peekChar() == '&' {
			l.advance()
			tok.Type = token.AND
			tok.Literal = "&&"
		} else {
			tok.Type = token.ILLEGAL
			tok.Literal = "&"
		}
	case '|':
		if l.peekChar() == '|' {
			l.advance()
			tok.Type = token.OR
			tok.Literal = "||"
		} else {
			tok.Type = token.ILLEGAL
			tok.Literal = "|"
		}
	case '.':
		if l.peekChar() == '.' {
			l.advance()
			tok.Type = token.DOTDOT
			tok.Literal = ".."
		} else {
			tok.Type = token.ILLEGAL
			tok.Literal = "."
		}
	case '#':
		tok.Type = token.COMMENT
		tok.Literal = l.readLineComment()
		return tok
	case '/':
		switch l.peekChar() {
		case '/':
			tok.Type = token.COMMENT
			tok.Literal = l.readLineComment()
			return tok
		case '*':
			lit, ok := l.readBlockComment()
			if !ok {
				tok.Type = token.ILLEGAL
			} else {
				tok.Type = token.COMMENT
			}
			tok.Literal = lit
			return tok
		default:
			tok.Type = token.SLASH
			tok.Literal = "/"
		}
	case '"', '\'':
		lit, ok := l.readString(l.ch)
		if !ok {
			tok.Type = token.ILLEGAL
		} else {
			tok.Type = token.STRING
		}
		tok.Literal = lit
		return tok
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	case -1:
		tok.Type = token.ILLEGAL
		tok.Literal = "invalid utf-8"
	default:
		if isDigit(l.ch) {
			return l.readNumber()
		}
		if isIdentifierStart(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = l.reserved.LookupIdent(tok.Literal)
			return tok
		}
		tok.Type = token.ILLEGAL
		tok.Literal = string(l.ch)
	}
	l.advance()
	return tok
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition // Important for correct slicing at EOF
	} else {
		r, size := utf8.DecodeRune(l.input[l.readPosition:])
		if r == utf8.RuneError {
			l.ch = -1
		} else {
			l.ch = r
		}
		l.position = l.readPosition
		l.readPosition += size
	}
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.readChar()
	l.column++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.advance()
	}
}

func (l *Lexer) readLineComment() string {
	l.advance() // consume '#' or first '/'
	if l.ch == '/' {
		l.advance()
	}
	for l.ch == ' ' || l.ch == '\t' {
		l.advance()
	}
	startPos := l.position
	for l.ch != '\n' && l.ch != 0 && l.ch != -1 {
		l.advance()
	}
	return string(l.input[startPos:l.position])
}

func (l *Lexer) readBlockComment() (string, bool) {
	l.advance() // consume '/'
	l.advance() // consume '*'
	startPos := l.position
	for {
		if l.ch == 0 {
			return "unterminated block comment", false
		}
		if l.ch == -1 {
			return "invalid utf-8 in comment", false
		}
		if l.ch == '*' && l.peekChar() == '/' {
			lit := string(l.input[startPos:l.position])
			l.advance()
			l.advance()
			return lit, true
		}
		l.advance()
	}
}

// readString scans a literal delimited by quote. The escape scheme is the
// backslash set \n \t \r \\ \" \'; any other escape is a lexical error.
func (l *Lexer) readString(quote rune) (string, bool) {
	l.advance() // consume opening quote
	var buf bytes.Buffer
	for {
		if l.ch == quote {
			l.advance() // consume closing quote
			return buf.String(), true
		}
		if l.ch == '\n' || l.ch == 0 {
			return "unterminated string", false
		}
		if l.ch == -1 {
			return "invalid utf-8 sequence in string", false
		}
		if l.ch == '\\' {
			l.advance()
			switch l.ch {
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			case 'r':
				buf.WriteByte('\r')
			case '\\', '"', '\'':
				buf.WriteRune(l.ch)
			default:
				return fmt.Sprintf("invalid escape sequence \\%c", l.ch), false
			}
		} else {
			buf.WriteRune(l.ch)
		}
		l.advance()
	}
}

func (l *Lexer) readIdentifier() string {
	startPos := l.position
	for isIdentifierChar(l.ch) {
		l.advance()
	}
	return string(l.input[startPos:l.position])
}

// readNumber scans an INT or FLOAT token. A '.' only joins the number when
// followed by a digit, so "1..5" lexes as INT DOTDOT INT.
func (l *Lexer) readNumber() token.Token {
	tok := token.Token{Type: token.INT, Line: l.line, Column: l.column}
	startPos := l.position
	for isDigit(l.ch) {
		l.advance()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		tok.Type = token.FLOAT
		l.advance()
		for isDigit(l.ch) {
			l.advance()
		}
	}
	tok.Literal = string(l.input[startPos:l.position])
	return tok
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.readPosition:])
	return r
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentifierStart(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isIdentifierChar(ch rune) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}
