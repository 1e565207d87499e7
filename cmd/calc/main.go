package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "A toasty little expression calculator",
	}

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newREPLCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
