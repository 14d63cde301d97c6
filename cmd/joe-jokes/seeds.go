package main

import (
	"fmt"

	"github.com/joestump/joe-jokes/internal/config"
	"github.com/joestump/joe-jokes/internal/store"
	"github.com/spf13/cobra"
)

// newSeedsCmd validates a seed list and prints it as YAML. It reads JOKES_SEED_FILE
// (or --file) and falls back to the built-in list. No master key is needed.
func newSeedsCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "seeds",
		Short: "Validate and print the seed list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.SeedFile()
			}
			jokes, err := store.LoadSeed(path)
			if err != nil {
				return err
			}
			if err := store.EncodeSeed(cmd.OutOrStdout(), jokes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d jokes OK\n", len(jokes))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "seed file to validate (default: JOKES_SEED_FILE or the built-in list)")
	return cmd
}
