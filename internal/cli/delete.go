package cli

import (
	"github.com/spf13/cobra"

	"github.com/foreverhost/dbengine/internal/dbengine"
	"github.com/foreverhost/dbengine/internal/workflows"
)

// newDeleteCmd creates the delete subcommand
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <gdps-id>...",
		Short: "Delete one or more tenant databases",
		Long: `Delete one or more tenant databases. Databases are deleted one after
another; a failure does not stop the remaining deletions.`,
		Example: `  # Delete a single database
  dbengine delete 0001

  # Delete several databases
  dbengine delete 0003 0002 0001`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := dbengine.Engine(cmd.Context())
			if err != nil {
				return err
			}

			report := workflows.DeleteAll(cmd.Context(), engine, args)
			printReport(cmd.OutOrStdout(), report)

			return report.Err()
		},
	}
}
