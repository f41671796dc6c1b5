package main

import (
	"fmt"

	"github.com/nao1215/zoo/internal/model"
	"github.com/spf13/cobra"
)

// NewCallCmd creates the call command.
func NewCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call [kind...]",
		Short: "Print the call of each animal kind",
		Long: `Print the call of the given animal kinds (cat, dog, cow).
Without arguments, every kind is printed.

Examples:
  zoo call
  zoo call dog cow`,
		Args: cobra.ArbitraryArgs,
		RunE: runCallCmd,
	}
}

// runCallCmd executes the call command.
func runCallCmd(cmd *cobra.Command, args []string) error {
	kinds := model.Kinds
	if len(args) > 0 {
		kinds = make([]model.Kind, 0, len(args))
		for _, arg := range args {
			k, err := model.ParseKind(arg)
			if err != nil {
				return err
			}
			kinds = append(kinds, k)
		}
	}

	for _, k := range kinds {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, model.KindCall(k))
	}
	return nil
}
