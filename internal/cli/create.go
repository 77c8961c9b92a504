package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foreverhost/dbengine/internal/clpctl"
	"github.com/foreverhost/dbengine/internal/dbengine"
	"github.com/foreverhost/dbengine/internal/workflows"
)

// newCreateCmd creates the create subcommand
func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <node> <gdps-id>",
		Short: "Create a tenant database and print its password",
		Long: `Create the database and user gdps-<gdps-id> under <node>.<domain suffix>
with a freshly generated password. The password is printed on success.`,
		Example: `  dbengine create myserver 0001`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := dbengine.Engine(cmd.Context())
			if err != nil {
				return err
			}

			node, gdpsID := args[0], args[1]

			ok, password := engine.Create(cmd.Context(), node, gdpsID)
			if !ok {
				return fmt.Errorf("failed to create database %s: %w", clpctl.DatabaseName(gdpsID), workflows.ErrOperationFailed)
			}

			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		},
	}
}
