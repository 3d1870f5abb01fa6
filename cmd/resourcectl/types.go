package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types <resource>",
		Short: "Print every action type a resource responds to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resource.New(args[0], resource.Options{}); err != nil {
				return err
			}
			for _, t := range resource.TypesFor(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
