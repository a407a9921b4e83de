package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	*RootOptions
	Generate bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo or synthetic records",
		Long: `Insert sample records into the store.

Without flags the fixed demo records are inserted when the store is empty.
With --generate twelve months of seasonal synthetic data are added.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireConfig(); err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), opts.Config, opts.Logger)
			if err != nil {
				return err
			}
			defer a.Close()

			seed := a.services.Seed.SeedDemo
			if opts.Generate {
				seed = a.services.Seed.SeedGenerated
			}

			created, err := seed(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %d records\n", created)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Generate, "generate", false, "add twelve months of synthetic data")

	return cmd
}
