package token

// Type is the type of a token. It identifies the grammatical role of a
// lexeme and is stable across keyword remaps: only the surface spelling of
// a reserved word changes, never its Type.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unknown or invalid token
	EOF     Type = "EOF"     // End of input

	// Literals
	IDENT  Type = "IDENT"  // x, counter, name
	INT    Type = "INT"    // 12345
	FLOAT  Type = "FLOAT"  // 123.45
	STRING Type = "STRING" // "hello world"

	// Operators
	ASSIGN   Type = "="
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	PERCENT  Type = "%"
	EQ       Type = "=="
	NOT_EQ   Type = "!="
	LT       Type = "<"
	LE       Type = "<="
	GT       Type = ">"
	GE       Type = ">="
	DOTDOT   Type = ".."

	// Delimiters
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	COMMA     Type = ","
	SEMICOLON Type = ";"

	// Reserved words. Their surface spelling is supplied by a ReservedWords
	// table; the constants below name the canonical kinds.
	IF       Type = "IF"
	ELSE     Type = "ELSE"
	WHILE    Type = "WHILE"
	FOR      Type = "FOR"
	IN       Type = "IN"
	PRINT    Type = "PRINT"
	ASK      Type = "ASK"
	FUNCTION Type = "FUNCTION"
	RETURN   Type = "RETURN"
	EXIT     Type = "EXIT"
	TRUE     Type = "TRUE"
	FALSE    Type = "FALSE"
	NIL      Type = "NIL"
	AND      Type = "AND"
	OR       Type = "OR"
	NOT      Type = "NOT"

	// Comments
	COMMENT Type = "COMMENT" // # a comment, or /* a block comment */
)

// reservedKinds lists every reserved Type in declaration order. The order is
// load-bearing: the keyword remap engine zips shuffled surface words onto
// this slice, so reordering it would change every seed's mapping.
var reservedKinds = []Type{
	IF,
	ELSE,
	WHILE,
	FOR,
	IN,
	PRINT,
	ASK,
	FUNCTION,
	RETURN,
	EXIT,
	TRUE,
	FALSE,
	NIL,
	AND,
	OR,
	NOT,
}

// ReservedKinds returns the reserved token kinds in their fixed, stable
// order. The returned slice is a copy; callers may not perturb the canonical
// ordering.
func ReservedKinds() []Type {
	out := make([]Type, len(reservedKinds))
	copy(out, reservedKinds)
	return out
}

// ReservedWords maps a surface keyword spelling to its token kind. It is an
// explicit value handed to each lexer rather than a package-level table, so
// two lexers with different maps never interfere.
type ReservedWords map[string]Type

// defaultReserved is the language's original, unobfuscated spelling.
var defaultReserved = ReservedWords{
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"say":      PRINT,
	"ask":      ASK,
	"function": FUNCTION,
	"return":   RETURN,
	"exit":     EXIT,
	"true":     TRUE,
	"false":    FALSE,
	"nil":      NIL,
	"and":      AND,
	"or":       OR,
	"not":      NOT,
}

// DefaultReserved returns a fresh copy of the language's original keyword
// table.
func DefaultReserved() ReservedWords {
	out := make(ReservedWords, len(defaultReserved))
	for k, v := range defaultReserved {
		out[k] = v
	}
	return out
}

// LookupIdent checks the reserved-word table for an identifier.
// If the identifier is a reserved word, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func (r ReservedWords) LookupIdent(ident string) Type {
	if tok, ok := r[ident]; ok {
		return tok
	}
	return IDENT
}

// Inverse returns the kind-to-surface view of the table. It is a derived,
// read-only snapshot used by documentation and debugging collaborators.
func (r ReservedWords) Inverse() map[Type]string {
	out := make(map[Type]string, len(r))
	for word, kind := range r {
		out[kind] = word
	}
	return out
}
