package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/calc/expr"
	"github.com/spf13/cobra"
)

func newREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			fmt.Fprint(out, "> ")
			for in.Scan() {
				line := strings.TrimSpace(in.Text())
				switch line {
				case "":
				case ":quit", ":q", ":exit":
					return nil
				default:
					result, err := expr.Eval(line)
					var perr *expr.Error
					if errors.As(err, &perr) {
						fmt.Fprintln(out, perr.Diagnostic())
					} else {
						fmt.Fprintln(out, result)
					}
				}
				fmt.Fprint(out, "> ")
			}
			return in.Err()
		},
	}
}
