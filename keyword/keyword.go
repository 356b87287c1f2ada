// Package keyword loads keyword catalogs and builds seeded reserved-word
// maps. A catalog is an ordered list of candidate surface words; the remap
// engine deterministically shuffles it and assigns the first words, one per
// reserved token kind, producing the table a lexer consumes. Building a map
// never mutates the catalog, a previously built map, or any lexer.
package keyword

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/mamba-lang/go-mamba/errors"
	"github.com/mamba-lang/go-mamba/token"
)

//go:embed catalog.txt
var defaultCatalog string

// Load reads a catalog from r: one word per line, blank lines skipped.
// Uniqueness of words is assumed, not enforced.
func Load(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("keyword: reading catalog: %w", err)
	}
	return words, nil
}

// LoadFile reads a catalog from the file at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keyword: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// DefaultCatalog returns the catalog embedded in the package.
func DefaultCatalog() []string {
	words, err := Load(strings.NewReader(defaultCatalog))
	if err != nil {
		// The embedded catalog is a string reader; Load cannot fail on it.
		panic(err)
	}
	return words
}

// Map is a built reserved-word mapping together with the shuffled catalog it
// was drawn from. It is immutable after construction.
type Map struct {
	reserved token.ReservedWords
	shuffled []string
	seed     int64
}

// Build shuffles a copy of catalog with a generator seeded exactly with seed
// and zips the first len(token.ReservedKinds()) words onto the reserved
// kinds in their fixed order.
//
// The shuffle is math/rand's Fisher-Yates via rand.New(rand.NewSource(seed)).
// Benchmark reproducibility depends on the seed-to-mapping function, so this
// choice is permanent.
func Build(catalog []string, seed int64) (*Map, error) {
	kinds := token.ReservedKinds()
	if len(catalog) < len(kinds) {
		return nil, errors.New(errors.InsufficientKeywords,
			"keyword catalog is too short: expected at least %d keywords, got %d",
			len(kinds), len(catalog))
	}

	shuffled := make([]string, len(catalog))
	copy(shuffled, catalog)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	reserved := make(token.ReservedWords, len(kinds))
	for i, kind := range kinds {
		reserved[shuffled[i]] = kind
	}

	return &Map{reserved: reserved, shuffled: shuffled, seed: seed}, nil
}

// Seed returns the seed the map was built with.
func (m *Map) Seed() int64 { return m.seed }

// Reserved returns a copy of the surface-to-kind table for handing to a
// lexer.
func (m *Map) Reserved() token.ReservedWords {
	out := make(token.ReservedWords, len(m.reserved))
	for k, v := range m.reserved {
		out[k] = v
	}
	return out
}

// Inverse returns the kind-to-surface view used by documentation and
// reporting collaborators.
func (m *Map) Inverse() map[token.Type]string {
	return m.reserved.Inverse()
}

// Keywords returns the surface keywords in reserved-kind order, one per
// reserved kind.
func (m *Map) Keywords() []string {
	inv := m.reserved.Inverse()
	kinds := token.ReservedKinds()
	out := make([]string, len(kinds))
	for i, kind := range kinds {
		out[i] = inv[kind]
	}
	return out
}

// LanguageName picks a display name for the obfuscated language: the first
// word of the shuffled catalog, capitalized. Deterministic per seed.
func (m *Map) LanguageName() string {
	word := m.shuffled[0]
	return strings.ToUpper(word[:1]) + word[1:]
}
