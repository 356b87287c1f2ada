package mamba

import (
	"fmt"
	"time"

	"github.com/mamba-lang/go-mamba/interp"
	"github.com/mamba-lang/go-mamba/keyword"
	"github.com/mamba-lang/go-mamba/token"
)

// Option configures a single Execute, ApplySeed or DumpReservedMap call.
type Option func(*settings) error

type settings struct {
	seed    int64
	hasSeed bool

	keywords    token.ReservedWords
	catalogPath string

	output interp.OutputHandler
	input  interp.InputHandler

	maxExecutionTime time.Duration
	strict           bool
	showAST          bool
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// catalog returns the keyword catalog the call should draw from.
func (s *settings) catalog() ([]string, error) {
	if s.catalogPath != "" {
		return keyword.LoadFile(s.catalogPath)
	}
	return keyword.DefaultCatalog(), nil
}

// reservedWords resolves the surface-to-kind table for this call: an
// explicit table wins, then a seeded build, then the canonical spellings.
func (s *settings) reservedWords() (token.ReservedWords, error) {
	if s.keywords != nil {
		return s.keywords, nil
	}
	if !s.hasSeed {
		return token.DefaultReserved(), nil
	}
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	m, err := keyword.Build(catalog, s.seed)
	if err != nil {
		return nil, err
	}
	return m.Reserved(), nil
}

// WithSeed selects a seeded keyword remap. The same seed always yields the
// same surface language.
func WithSeed(seed int64) Option {
	return func(s *settings) error {
		s.seed = seed
		s.hasSeed = true
		return nil
	}
}

// WithKeywords supplies an explicit surface-to-kind table, bypassing the
// seeded remap. The table must cover every reserved kind exactly once.
func WithKeywords(reserved token.ReservedWords) Option {
	return func(s *settings) error {
		kinds := token.ReservedKinds()
		if len(reserved) != len(kinds) {
			return fmt.Errorf("mamba: keyword table must define %d keywords, got %d",
				len(kinds), len(reserved))
		}
		seen := make(map[token.Type]bool, len(reserved))
		for word, kind := range reserved {
			if seen[kind] {
				return fmt.Errorf("mamba: keyword table maps %q onto an already mapped kind", word)
			}
			seen[kind] = true
		}
		s.keywords = reserved
		return nil
	}
}

// WithCatalogPath loads the keyword catalog from a file instead of the
// embedded default.
func WithCatalogPath(path string) Option {
	return func(s *settings) error {
		s.catalogPath = path
		return nil
	}
}

// WithOutputHandler routes all program output and diagnostics through fn.
func WithOutputHandler(fn interp.OutputHandler) Option {
	return func(s *settings) error {
		if fn == nil {
			return fmt.Errorf("mamba: output handler must not be nil")
		}
		s.output = fn
		return nil
	}
}

// WithInputHandler answers the program's ask expressions with fn.
func WithInputHandler(fn interp.InputHandler) Option {
	return func(s *settings) error {
		if fn == nil {
			return fmt.Errorf("mamba: input handler must not be nil")
		}
		s.input = fn
		return nil
	}
}

// WithMaxExecutionTime bounds evaluation wall-clock time. Zero or negative
// means no limit.
func WithMaxExecutionTime(d time.Duration) Option {
	return func(s *settings) error {
		s.maxExecutionTime = d
		return nil
	}
}

// WithStrictErrors returns runtime faults from Execute instead of reporting
// them through the output handler.
func WithStrictErrors() Option {
	return func(s *settings) error {
		s.strict = true
		return nil
	}
}

// WithShowAST prints the parsed program's canonical form on the stdout
// stream after a successful run.
func WithShowAST() Option {
	return func(s *settings) error {
		s.showAST = true
		return nil
	}
}
