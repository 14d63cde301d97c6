package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "joe-jokes",
		Short: "A tiny in-memory jokes API",
		Long:  "Joe Jokes serves random jokes, lookups by id or type, and key-guarded edits.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSeedsCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
