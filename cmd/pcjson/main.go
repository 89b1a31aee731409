// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program pcjson parses values with the pcomb grammar and reports the
// results.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pcjson",
		Short:        "Parse minimal JSON values with parser combinators",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newKindCmd())
	return rootCmd
}
