package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set by -ldflags "-X main.version=...".
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of sleeping-apple",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sleeping-apple %s\n", version)
		},
	}
}
