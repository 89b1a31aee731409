// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/creachadair/pcomb"
	"github.com/creachadair/pcomb/ast"
	"github.com/creachadair/pcomb/grammar"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var strict, skipSpaces bool

	cmd := &cobra.Command{
		Use:   "parse [value ...]",
		Short: "Parse each argument, or each line of standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				inputs = lines
			}

			var p pcomb.Parser[ast.Value] = grammar.JSON
			if skipSpaces {
				p = pcomb.Skip(pcomb.Spaces, p)
			}
			return runParse(cmd.OutOrStdout(), p, inputs, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "require each value to consume its entire input")
	cmd.Flags().BoolVarP(&skipSpaces, "skip-spaces", "s", false, "skip leading spaces before each value")

	return cmd
}

// runParse parses each input with p and writes one line per input to w. A
// successful line has the value as JSON and the quoted remainder, separated
// by a tab.
func runParse(w io.Writer, p pcomb.Parser[ast.Value], inputs []string, strict bool) error {
	var nfail int
	for _, in := range inputs {
		if strict {
			v, err := pcomb.Run(p, in)
			if err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				nfail++
				continue
			}
			fmt.Fprintln(w, v.JSON())
			continue
		}

		v, rest, ok := pcomb.Parse(p, in).Get()
		if !ok {
			fmt.Fprintln(w, "no match")
			nfail++
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", v.JSON(), ast.String(rest.StringCopy()).JSON())
	}
	if nfail != 0 {
		return fmt.Errorf("%d of %d inputs failed", nfail, len(inputs))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
