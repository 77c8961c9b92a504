package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foreverhost/dbengine/internal/clpctl"
	"github.com/foreverhost/dbengine/internal/dbengine"
	"github.com/foreverhost/dbengine/internal/workflows"
)

// newExportCmd creates the export subcommand
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "export <gdps-id> <file>",
		Short:   "Export a tenant database to a dump file",
		Example: `  dbengine export 0001 /tmp/dump.sql`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := dbengine.Engine(cmd.Context())
			if err != nil {
				return err
			}

			if !engine.ExportDatabase(cmd.Context(), args[0], args[1]) {
				return fmt.Errorf("failed to export database %s: %w", clpctl.DatabaseName(args[0]), workflows.ErrOperationFailed)
			}

			return nil
		},
	}
}

// newImportCmd creates the import subcommand
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "import <gdps-id> <file>",
		Short:   "Import a dump file into a tenant database",
		Example: `  dbengine import 0001 /tmp/dump.sql`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := dbengine.Engine(cmd.Context())
			if err != nil {
				return err
			}

			if !engine.ImportDatabase(cmd.Context(), args[0], args[1]) {
				return fmt.Errorf("failed to import database %s: %w", clpctl.DatabaseName(args[0]), workflows.ErrOperationFailed)
			}

			return nil
		},
	}
}
