package keyword

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mamba-lang/go-mamba/errors"
	"github.com/mamba-lang/go-mamba/token"
)

func TestLoadSkipsBlankLines(t *testing.T) {
	input := "apple\n\n  \nbreeze\ncandle  \n"
	words, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "breeze", "candle"}, words)
}

func TestDefaultCatalogIsLargeEnough(t *testing.T) {
	words := DefaultCatalog()
	require.GreaterOrEqual(t, len(words), len(token.ReservedKinds()))
}

func TestBuildIsDeterministic(t *testing.T) {
	catalog := DefaultCatalog()

	a, err := Build(catalog, 42)
	require.NoError(t, err)
	b, err := Build(catalog, 42)
	require.NoError(t, err)

	require.Equal(t, a.Reserved(), b.Reserved())
	require.Equal(t, a.Keywords(), b.Keywords())
	require.Equal(t, a.LanguageName(), b.LanguageName())
}

func TestBuildDiffersAcrossSeeds(t *testing.T) {
	catalog := DefaultCatalog()

	a, err := Build(catalog, 1)
	require.NoError(t, err)
	b, err := Build(catalog, 2)
	require.NoError(t, err)

	require.NotEqual(t, a.Reserved(), b.Reserved())
}

func TestBuildIsABijection(t *testing.T) {
	catalog := DefaultCatalog()

	for _, seed := range []int64{0, 1, 7, 1234, -5} {
		m, err := Build(catalog, seed)
		require.NoError(t, err)

		reserved := m.Reserved()
		require.Len(t, reserved, len(token.ReservedKinds()))

		seen := make(map[token.Type]bool)
		for _, kind := range reserved {
			require.False(t, seen[kind], "seed %d maps two keywords to %s", seed, kind)
			seen[kind] = true
		}
		for _, kind := range token.ReservedKinds() {
			require.True(t, seen[kind], "seed %d left %s unmapped", seed, kind)
		}
	}
}

func TestBuildDoesNotMutateCatalog(t *testing.T) {
	catalog := []string{"apple", "breeze", "candle", "dagger", "ember", "falcon",
		"garnet", "harbor", "ivory", "jasper", "keel", "lantern", "maple",
		"nectar", "onyx", "pebble", "quartz", "raven"}
	before := make([]string, len(catalog))
	copy(before, catalog)

	_, err := Build(catalog, 99)
	require.NoError(t, err)
	require.Equal(t, before, catalog)
}

func TestBuildInsufficientKeywords(t *testing.T) {
	_, err := Build([]string{"apple", "breeze"}, 7)
	require.Error(t, err)

	var ierr *errors.Error
	require.ErrorAs(t, err, &ierr)
	require.Equal(t, errors.InsufficientKeywords, ierr.Kind)
	require.Contains(t, ierr.Message, "too short")
}

func TestInverseMatchesReserved(t *testing.T) {
	m, err := Build(DefaultCatalog(), 3)
	require.NoError(t, err)

	inv := m.Inverse()
	for word, kind := range m.Reserved() {
		require.Equal(t, word, inv[kind])
	}
}

func TestKeywordsFollowKindOrder(t *testing.T) {
	m, err := Build(DefaultCatalog(), 11)
	require.NoError(t, err)

	keywords := m.Keywords()
	kinds := token.ReservedKinds()
	require.Len(t, keywords, len(kinds))

	reserved := m.Reserved()
	for i, word := range keywords {
		require.Equal(t, kinds[i], reserved[word])
	}
}
