package interp

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultAskReadsSuccessiveLines(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = orig })

	_, err = w.WriteString("alice\nbob\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	ctx := &Context{Output: func(message, stream string) {}}
	require.Equal(t, "alice", ctx.ask("name? "))
	require.Equal(t, "bob", ctx.ask("and yours? "))
}

func TestDefaultAskEchoesPrompt(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = orig })
	_, err = w.WriteString("x\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var prompts []string
	ctx := &Context{Output: func(message, stream string) {
		if stream == StreamStdout {
			prompts = append(prompts, message)
		}
	}}
	require.Equal(t, "x", ctx.ask("who? "))
	require.Equal(t, []string{"who? "}, prompts)
}
