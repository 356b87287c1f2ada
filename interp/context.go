package interp

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// Output stream names used with an OutputHandler.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// OutputHandler receives every observable write the program makes. The
// stream is StreamStdout for program output and StreamStderr for the single
// diagnostic emitted on failure.
type OutputHandler func(message, stream string)

// InputHandler supplies the program's input: it receives the prompt passed
// to ask and returns the line the program reads.
type InputHandler func(prompt string) string

// Context is the per-run bundle of handlers and budget. A Context belongs
// to exactly one execution; it is never shared between concurrent runs.
type Context struct {
	Output OutputHandler
	Input  InputHandler

	// Deadline is the wall-clock instant evaluation must stop by. The zero
	// value means no limit.
	Deadline time.Time

	// Strict makes faults surface to the caller instead of being reported
	// through Output on the stderr stream.
	Strict bool

	// stdin buffers the real standard input for the default ask behavior.
	// One reader per context: a fresh bufio.Reader per ask would discard
	// whatever the previous read buffered ahead.
	stdin *bufio.Reader
}

// NewContext returns a context with the default handlers: output goes to
// the real stdout/stderr, input reads a line from stdin after writing the
// prompt to stdout.
func NewContext() *Context {
	return &Context{
		Output: DefaultOutputHandler,
		Input:  nil, // resolved lazily; see Context.ask
	}
}

// DefaultOutputHandler writes messages verbatim to the process streams.
func DefaultOutputHandler(message, stream string) {
	if stream == StreamStderr {
		fmt.Fprint(os.Stderr, message+"\n")
		return
	}
	fmt.Fprint(os.Stdout, message)
}

// ask routes a prompt through the input handler. Without a handler the
// default behavior is to echo the prompt on the stdout stream and read one
// line from the real standard input.
func (c *Context) ask(prompt string) string {
	if c.Input != nil {
		return c.Input(prompt)
	}
	c.write(prompt, StreamStdout)
	if c.stdin == nil {
		c.stdin = bufio.NewReader(os.Stdin)
	}
	line, _ := c.stdin.ReadString('\n')
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return line
}

func (c *Context) write(message, stream string) {
	if c.Output != nil {
		c.Output(message, stream)
		return
	}
	DefaultOutputHandler(message, stream)
}

// expired reports whether the execution budget has run out.
func (c *Context) expired() bool {
	return !c.Deadline.IsZero() && time.Now().After(c.Deadline)
}
