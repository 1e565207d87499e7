package main

import (
	"errors"
	"fmt"

	"github.com/dhamidi/calc/expr"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression ...]",
		Short: "Evaluate arithmetic expressions and print their values",
		Args:  cobra.ArbitraryArgs,
		// A failed evaluation prints its own diagnostic; cobra must not
		// add an error line or usage text on top of it.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				result, err := expr.Eval(arg)
				if err != nil {
					var perr *expr.Error
					if errors.As(err, &perr) {
						fmt.Fprintln(cmd.OutOrStdout(), perr.Diagnostic())
					}
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result)
			}
			return nil
		},
	}
}
