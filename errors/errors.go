// Package errors defines the closed error taxonomy shared by the lexer,
// parser and evaluator. Every fault the interpreter can surface is an
// *Error carrying one of the Kind values below, so callers can branch on
// kind without string matching.
package errors

import "fmt"

// Kind classifies an interpreter error.
type Kind int

const (
	// Lexical is an unrecognized character or malformed literal.
	Lexical Kind = iota
	// Syntax is a grammar violation found by the parser.
	Syntax
	// DuplicateSymbol is a name collision within one scope.
	DuplicateSymbol
	// UnknownSymbol is a reference to an undeclared name.
	UnknownSymbol
	// Arithmetic is a numeric fault such as division by zero.
	Arithmetic
	// Type is an operator/operand mismatch.
	Type
	// Timeout means the execution budget was exceeded.
	Timeout
	// InsufficientKeywords means the keyword catalog is too small to cover
	// every reserved token kind. It is fatal at configuration time.
	InsufficientKeywords
)

// String returns the kind's diagnostic name.
func (k Kind) String() string {
	switch k {
	case Lexical:
		return "LexicalError"
	case Syntax:
		return "SyntaxError"
	case DuplicateSymbol:
		return "DuplicateSymbol"
	case UnknownSymbol:
		return "UnknownSymbol"
	case Arithmetic:
		return "ArithmeticError"
	case Type:
		return "TypeError"
	case Timeout:
		return "TimeoutError"
	case InsufficientKeywords:
		return "InsufficientKeywords"
	}
	return "UnknownError"
}

// Error represents a single interpreter fault. Line and Column are 1-based
// and zero when the fault has no source position (e.g. a timeout).
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

// New creates an error with no source position.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt creates an error carrying a source position.
func NewAt(kind Kind, line, column int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Diagnostic renders the "{KindName}: {message}" form delivered on the
// "stderr" handler stream. This is the only place the textual convention
// lives; raise sites carry just the kind and message.
func (e *Error) Diagnostic() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
