package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/mamba-lang/go-mamba/interp"
	"github.com/mamba-lang/go-mamba/keyword"
	"github.com/mamba-lang/go-mamba/lexer"
	"github.com/mamba-lang/go-mamba/parser"
	"github.com/mamba-lang/go-mamba/token"
)

const (
	historyFile = ".mamba_history"
	promptMain  = ">> "
	promptCont  = ".. "
)

// repl runs an interactive session. Unlike mamba.Execute, one environment
// persists across inputs so bindings carry over from line to line.
func repl(opts cliOptions) int {
	reserved := token.DefaultReserved()
	language := "Mamba"
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
		reserved = m.Reserved()
		language = m.LanguageName()
	}

	fmt.Printf("%s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit, :keywords for the keyword table.\n", language)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ctx := interp.NewContext()
	ev := interp.New(ctx)

	for {
		code, ok := readBalanced(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			case ":keywords":
				printKeywords(reserved)
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		p := parser.New(lexer.New([]byte(code), reserved))
		program := p.ParseProgram()
		if perr := p.Err(); perr != nil {
			fmt.Fprintln(os.Stderr, perr.Diagnostic())
			continue
		}

		if opts.maxExecution > 0 {
			ctx.Deadline = time.Now().Add(opts.maxExecution)
		}
		// Faults inside Run are already printed through the default handler.
		_ = ev.Run(program)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

func printKeywords(reserved token.ReservedWords) {
	canonical := token.DefaultReserved().Inverse()
	inverse := reserved.Inverse()
	for _, kind := range token.ReservedKinds() {
		fmt.Printf("%-12s -> %s\n", canonical[kind], inverse[kind])
	}
}

// readBalanced collects input lines until braces and parentheses outside
// string literals are balanced, so multi-line blocks can be typed naturally.
func readBalanced(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C discards the partial input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if balanced(b.String()) {
			return b.String(), true
		}
	}
}

func balanced(src string) bool {
	depth := 0
	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		}
	}
	return depth <= 0 && quote == 0
}
