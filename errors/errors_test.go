package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
	}{
		{Lexical, "LexicalError"},
		{Syntax, "SyntaxError"},
		{DuplicateSymbol, "DuplicateSymbol"},
		{UnknownSymbol, "UnknownSymbol"},
		{Arithmetic, "ArithmeticError"},
		{Type, "TypeError"},
		{Timeout, "TimeoutError"},
		{InsufficientKeywords, "InsufficientKeywords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.kind.String())
		})
	}
}

func TestDiagnostic(t *testing.T) {
	err := New(Arithmetic, "division by zero")
	require.Equal(t, "ArithmeticError: division by zero", err.Diagnostic())
	require.Equal(t, "ArithmeticError: division by zero", err.Error())
}

func TestErrorWithPosition(t *testing.T) {
	err := NewAt(Syntax, 3, 7, "unexpected token '%s'", "}")
	require.Equal(t, "SyntaxError at line 3, column 7: unexpected token '}'", err.Error())
	// Diagnostic keeps the plain kind-and-message shape regardless of position.
	require.Equal(t, "SyntaxError: unexpected token '}'", err.Diagnostic())
}
