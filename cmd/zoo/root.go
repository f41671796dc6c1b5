// Package main provides the entry point for the zoo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/nao1215/zoo/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for zoo.
// Running it without a subcommand prints the farm report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zoo",
		Short: "Print the animals living on the farm",
		Long: `zoo builds the farm roster and prints a report for every animal.

Each report lists the animal's id, name, age and call. Carnivores add their
favourite prey and whether they are dangerous, herbivores their favourite
foods. Cats, dogs and cows then add their own details and show off.

After printing, zoo waits for Enter. Use --no-pause to exit immediately.

Examples:
  # Print the console report
  zoo

  # Print a Markdown report without waiting
  zoo --format markdown --no-pause

  # Print the console report followed by JSON
  zoo -f text,json`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Report flags
	cmd.Flags().StringSliceP("format", "f", []string{config.FormatText.String()},
		"Report formats: text, json, markdown or yaml (comma-separated or repeated)")
	cmd.Flags().Bool("no-pause", false,
		"Exit right after printing instead of waiting for Enter")

	// Add subcommands
	cmd.AddCommand(NewCallCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
