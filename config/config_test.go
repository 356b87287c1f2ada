package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mamba.toml"), []byte(body), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[keywords]
catalog = "words.txt"
seed = 42

[execution]
max-execution-time = "5s"
strict = true
`)

	c, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, c.Keywords.Seed)
	require.Equal(t, int64(42), *c.Keywords.Seed)
	require.Equal(t, filepath.Join(c.Dir, "words.txt"), c.CatalogPath())
	require.Equal(t, 5*time.Second, c.MaxExecutionTime())
	require.True(t, c.Execution.Strict)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	c, err := Load(dir)
	require.NoError(t, err)
	require.Nil(t, c.Keywords.Seed)
	require.Empty(t, c.CatalogPath())
	require.Zero(t, c.MaxExecutionTime())
	require.False(t, c.Execution.Strict)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[execution]
max-execution-time = "soon"
`)

	_, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "max-execution-time")
}

func TestFindAndLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
[keywords]
seed = 7
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	c, err := FindAndLoad(nested)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, int64(7), *c.Keywords.Seed)
}

func TestFindAndLoadMissing(t *testing.T) {
	c, err := FindAndLoad(t.TempDir())
	require.NoError(t, err)
	require.Nil(t, c)
}
