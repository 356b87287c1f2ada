package interp_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mamba-lang/go-mamba/interp"
	"github.com/mamba-lang/go-mamba/lexer"
	"github.com/mamba-lang/go-mamba/parser"
)

type programCase struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Input  []string `yaml:"input"`
	Stdout []string `yaml:"stdout"`
	Stderr []string `yaml:"stderr"`
}

func TestPrograms(t *testing.T) {
	data, err := os.ReadFile("testdata/programs.yaml")
	require.NoError(t, err)

	var cases []programCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			log := &eventLog{}
			inputs := tc.Input
			ctx := &interp.Context{
				Output: log.handler,
				Input: func(prompt string) string {
					require.NotEmpty(t, inputs, "program asked for more input than the case supplies")
					next := inputs[0]
					inputs = inputs[1:]
					return next
				},
			}

			p := parser.New(lexer.New([]byte(tc.Source), nil))
			program := p.ParseProgram()
			require.Nil(t, p.Err())

			interp.New(ctx).Run(program)

			require.Equal(t, tc.Stdout, log.stdout())
			require.Equal(t, tc.Stderr, log.stderr())
		})
	}
}
