// Package main is the entry point for resourcectl, a command-line tool that
// replays recorded actions through the resource reducers and lists the
// action types a resource responds to.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// logLevel is the level of the diagnostic logger written to stderr.
var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resourcectl",
		Short: "Inspect and replay resource actions",
		Long: `resourcectl runs recorded RESOURCE/DOMAIN/METHOD actions through the
same reducers the resource service uses and prints the resulting
normalized state. It reads YAML or JSON action logs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error)")

	root.AddCommand(newReplayCmd())
	root.AddCommand(newTypesCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
