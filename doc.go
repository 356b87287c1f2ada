/*
Package mamba is an embeddable interpreter for the Mamba toy language with
seeded keyword obfuscation. Programs are small imperative scripts: variables,
arithmetic, strings, booleans, if/else, while and for loops, functions, and
the say and ask I/O statements.

The defining feature is the keyword remap. Every reserved word of the
language can be replaced with a word drawn from a catalog, deterministically
per seed, so the same program logic can be written in an unfamiliar surface
syntax. The remap is bijective and purely lexical: token kinds, grammar, and
semantics never change with the seed.

Running a program is a single call:

	out, err := mamba.Execute(`say "hello, world\n";`)

Every Execute call is fully isolated: it builds its own keyword table,
parser, and environment, so concurrent calls share nothing. Program output
and diagnostics flow through an output handler, which defaults to the
process streams:

	var buf strings.Builder
	out, err := mamba.Execute(src,
		mamba.WithSeed(42),
		mamba.WithOutputHandler(func(msg, stream string) {
			if stream == interp.StreamStdout {
				buf.WriteString(msg)
			}
		}),
		mamba.WithMaxExecutionTime(5*time.Second),
	)

A failing program produces exactly one diagnostic of the form
"{ErrorKind}: {message}" on the handler's stderr stream and a failed
Outcome; with WithStrictErrors the fault is returned as an error instead.

ApplySeed and DumpReservedMap expose the keyword mapping itself, for
generating documentation of a seeded language variant without running any
program.
*/
package mamba
