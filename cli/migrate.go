package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogem/iris/database"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rootOpts.requireConfig(); err != nil {
				return err
			}

			db, err := database.OpenDB(rootOpts.Config.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := database.RunMigrations(db)
			if err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migrations\n", applied)
			return nil
		},
	}
}
