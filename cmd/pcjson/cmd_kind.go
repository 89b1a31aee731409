// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/creachadair/pcomb"
	"github.com/creachadair/pcomb/ast"
	"github.com/creachadair/pcomb/grammar"
	"github.com/spf13/cobra"
)

func newKindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kind <value>",
		Short: "Report the kind of value at the front of the input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, ok := pcomb.Parse(grammar.JSON, args[0]).Get()
			if !ok {
				return errors.New("no value found")
			}
			fmt.Fprintln(cmd.OutOrStdout(), kindOf(v))
			return nil
		},
	}
}

func kindOf(v ast.Value) string {
	switch v.(type) {
	case ast.String:
		return "string"
	case ast.Int:
		return "number"
	case ast.NullValue:
		return "null"
	default:
		return fmt.Sprintf("unknown (%T)", v)
	}
}
