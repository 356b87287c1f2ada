package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	reserved := DefaultReserved()

	tests := []struct {
		input    string
		expected Type
	}{
		{"if", IF},
		{"say", PRINT},
		{"ask", ASK},
		{"function", FUNCTION},
		{"true", TRUE},
		{"nil", NIL},
		{"foobar", IDENT},
		{"my_var", IDENT},
		{"sayit", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := reserved.LookupIdent(tt.input)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestLookupIdentRespectsTable(t *testing.T) {
	// A remapped table must win over the original spelling.
	reserved := ReservedWords{"shout": PRINT, "maybe": IF}

	require.Equal(t, PRINT, reserved.LookupIdent("shout"))
	require.Equal(t, IF, reserved.LookupIdent("maybe"))
	require.Equal(t, IDENT, reserved.LookupIdent("say"))
	require.Equal(t, IDENT, reserved.LookupIdent("if"))
}

func TestDefaultReservedIsACopy(t *testing.T) {
	a := DefaultReserved()
	a["say"] = IDENT
	b := DefaultReserved()
	require.Equal(t, PRINT, b["say"])
}

func TestReservedKindsCoverDefaultTable(t *testing.T) {
	kinds := ReservedKinds()
	require.Len(t, kinds, len(DefaultReserved()))

	seen := make(map[Type]bool)
	for _, kind := range kinds {
		require.False(t, seen[kind], "kind %s listed twice", kind)
		seen[kind] = true
	}
	for _, kind := range DefaultReserved() {
		require.True(t, seen[kind], "kind %s missing from ReservedKinds", kind)
	}
}

func TestInverse(t *testing.T) {
	inv := DefaultReserved().Inverse()
	require.Equal(t, "say", inv[PRINT])
	require.Equal(t, "if", inv[IF])
	require.Len(t, inv, len(DefaultReserved()))
}
