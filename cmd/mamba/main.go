// Command mamba runs Mamba programs. With a filename it executes the script;
// without one it starts an interactive REPL. A seeded keyword remap is
// selected with --random-seed.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	mamba "github.com/mamba-lang/go-mamba"
	"github.com/mamba-lang/go-mamba/config"
	"github.com/mamba-lang/go-mamba/keyword"
	"github.com/mamba-lang/go-mamba/token"
)

const appName = "mamba"

type cliOptions struct {
	seed         int64
	hasSeed      bool
	catalogPath  string
	maxExecution time.Duration
	strict       bool
	showAST      bool
	dumpKeywords bool
	configDir    string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `usage: %s [flags] [file.mamba]

Runs the given Mamba script, or starts a REPL when no file is given.

Flags:
`, appName)
		fs.PrintDefaults()
	}

	seed := fs.Int64("random-seed", 0, "keyword remap seed")
	catalog := fs.String("keyword-catalog", "", "path to a keyword catalog file (one word per line)")
	maxTime := fs.Duration("max-execution-time", 0, "abort programs running longer than this (e.g. 5s)")
	strict := fs.Bool("strict", false, "exit with the diagnostic as the process error instead of printing and continuing")
	showAST := fs.Bool("show-ast", false, "print the parsed program after a successful run")
	dump := fs.Bool("dump-keywords", false, "print the surface keyword table and exit")
	configDir := fs.String("config", "", "directory containing mamba.toml (default: search upward from the working directory)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	opts := cliOptions{
		catalogPath:  *catalog,
		maxExecution: *maxTime,
		strict:       *strict,
		showAST:      *showAST,
		dumpKeywords: *dump,
		configDir:    *configDir,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "random-seed" {
			opts.seed = *seed
			opts.hasSeed = true
		}
	})

	if err := applyConfig(&opts, fs); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}

	if opts.dumpKeywords {
		return dumpKeywords(opts)
	}

	switch fs.NArg() {
	case 0:
		return repl(opts)
	case 1:
		return runFile(fs.Arg(0), opts)
	default:
		fmt.Fprintf(os.Stderr, "%s: expected at most one script file\n", appName)
		return 2
	}
}

// applyConfig layers mamba.toml under the flags: a flag the user set wins,
// anything else falls back to the config file.
func applyConfig(opts *cliOptions, fs *flag.FlagSet) error {
	var cfg *config.Config
	var err error
	if opts.configDir != "" {
		cfg, err = config.Load(opts.configDir)
	} else {
		wd, werr := os.Getwd()
		if werr != nil {
			return werr
		}
		cfg, err = config.FindAndLoad(wd)
	}
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !opts.hasSeed && cfg.Keywords.Seed != nil {
		opts.seed = *cfg.Keywords.Seed
		opts.hasSeed = true
	}
	if !set["keyword-catalog"] && cfg.CatalogPath() != "" {
		opts.catalogPath = cfg.CatalogPath()
	}
	if !set["max-execution-time"] {
		opts.maxExecution = cfg.MaxExecutionTime()
	}
	if !set["strict"] {
		opts.strict = cfg.Execution.Strict
	}
	return nil
}

// execOptions translates CLI state into driver options.
func execOptions(opts cliOptions) []mamba.Option {
	var out []mamba.Option
	if opts.hasSeed {
		out = append(out, mamba.WithSeed(opts.seed))
	}
	if opts.catalogPath != "" {
		out = append(out, mamba.WithCatalogPath(opts.catalogPath))
	}
	if opts.maxExecution > 0 {
		out = append(out, mamba.WithMaxExecutionTime(opts.maxExecution))
	}
	if opts.strict {
		out = append(out, mamba.WithStrictErrors())
	}
	if opts.showAST {
		out = append(out, mamba.WithShowAST())
	}
	return out
}

func runFile(path string, opts cliOptions) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	result, err := mamba.Execute(string(src), execOptions(opts)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	if !result.Success {
		// The diagnostic already went to stderr through the default handler.
		return 1
	}
	return 0
}

func dumpKeywords(opts cliOptions) int {
	var reserved token.ReservedWords
	if opts.hasSeed {
		catalog, err := loadCatalog(opts.catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		m, err := keyword.Build(catalog, opts.seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		fmt.Printf("language: %s (seed %d)\n", m.LanguageName(), m.Seed())
		reserved = m.Reserved()
	} else {
		fmt.Println("language: Mamba (no seed)")
		reserved = token.DefaultReserved()
	}

	canonical := token.DefaultReserved().Inverse()
	inverse := reserved.Inverse()
	for _, kind := range token.ReservedKinds() {
		fmt.Printf("%-12s -> %s\n", canonical[kind], inverse[kind])
	}
	return 0
}

func loadCatalog(path string) ([]string, error) {
	if path == "" {
		return keyword.DefaultCatalog(), nil
	}
	return keyword.LoadFile(path)
}
