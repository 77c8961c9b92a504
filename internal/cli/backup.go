package cli

import (
	"github.com/spf13/cobra"

	"github.com/foreverhost/dbengine/internal/dbengine"
	"github.com/foreverhost/dbengine/internal/workflows"
)

// newBackupCmd creates the backup subcommand
func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <dir> <gdps-id>...",
		Short: "Export several tenant databases into a directory",
		Long: `Export each tenant database to <dir>/gdps-<gdps-id><extension>, where the
extension comes from backup.extension in the configuration (default ".sql").`,
		Example: `  dbengine backup /var/backups/gdps 0001 0002`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := dbengine.Config(ctx)
			if err != nil {
				return err
			}

			engine, err := dbengine.Engine(ctx)
			if err != nil {
				return err
			}

			report := workflows.Backup(ctx, engine, args[0], cfg.Backup.Extension, args[1:])
			printReport(cmd.OutOrStdout(), report)

			return report.Err()
		},
	}
}
