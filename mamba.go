package mamba

import (
	"time"

	"github.com/mamba-lang/go-mamba/errors"
	"github.com/mamba-lang/go-mamba/interp"
	"github.com/mamba-lang/go-mamba/keyword"
	"github.com/mamba-lang/go-mamba/lexer"
	"github.com/mamba-lang/go-mamba/parser"
	"github.com/mamba-lang/go-mamba/token"
)

// Outcome reports how a run ended. Diagnostic is empty on success and holds
// the single "{ErrorKind}: {message}" string otherwise.
type Outcome struct {
	Success    bool
	Diagnostic string
}

// Execute runs source through one fresh execution context: tokenize, parse,
// evaluate. Every call builds its own reserved-word table, environment tree
// and handler wiring, so concurrent and back-to-back calls share nothing.
//
// A failure at any stage produces exactly one diagnostic on the output
// handler's "stderr" stream and a failed Outcome. With Strict, the fault is
// returned as an error instead and the handler is not invoked. Errors
// returned without an Outcome are configuration faults (bad option, keyword
// catalog too small) detected before the program ran.
func Execute(source string, opts ...Option) (*Outcome, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	reserved, err := s.reservedWords()
	if err != nil {
		return nil, err
	}

	ctx := &interp.Context{
		Output: s.output,
		Input:  s.input,
		Strict: s.strict,
	}
	if ctx.Output == nil {
		ctx.Output = interp.DefaultOutputHandler
	}
	if s.maxExecutionTime > 0 {
		ctx.Deadline = time.Now().Add(s.maxExecutionTime)
	}

	p := parser.New(lexer.New([]byte(source), reserved))
	program := p.ParseProgram()
	if perr := p.Err(); perr != nil {
		return report(ctx, perr)
	}

	ev := interp.New(ctx)
	if rerr := ev.Run(program); rerr != nil {
		if s.strict {
			return &Outcome{Success: false, Diagnostic: rerr.Diagnostic()}, rerr
		}
		// Run already delivered the diagnostic.
		return &Outcome{Success: false, Diagnostic: rerr.Diagnostic()}, nil
	}

	if s.showAST {
		ctx.Output(program.String()+"\n", interp.StreamStdout)
	}
	return &Outcome{Success: true}, nil
}

// report funnels a pre-evaluation fault into the same diagnostic channel
// the evaluator uses.
func report(ctx *interp.Context, err *errors.Error) (*Outcome, error) {
	if ctx.Strict {
		return &Outcome{Success: false, Diagnostic: err.Diagnostic()}, err
	}
	ctx.Output(err.Diagnostic(), interp.StreamStderr)
	return &Outcome{Success: false, Diagnostic: err.Diagnostic()}, nil
}

// ApplySeed builds the keyword mapping for seed and returns the surface
// keywords in reserved-kind order. It is a read-only view for documentation
// collaborators; no interpreter state changes.
func ApplySeed(seed int64, opts ...Option) ([]string, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}
	m, err := keyword.Build(catalog, seed)
	if err != nil {
		return nil, err
	}
	return m.Keywords(), nil
}

// DumpReservedMap returns the surface-to-kind table the given options would
// execute with, for debugging and CLI introspection.
func DumpReservedMap(opts ...Option) (map[string]token.Type, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	reserved, err := s.reservedWords()
	if err != nil {
		return nil, err
	}
	out := make(map[string]token.Type, len(reserved))
	for word, kind := range reserved {
		out[word] = kind
	}
	return out, nil
}
