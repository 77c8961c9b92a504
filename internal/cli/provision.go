package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foreverhost/dbengine/internal/dbengine"
	"github.com/foreverhost/dbengine/internal/workflows"
)

// newProvisionCmd creates the provision subcommand
func newProvisionCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "provision <node> <gdps-id>",
		Short: "Create a tenant database and optionally seed it from a dump",
		Long: `Create a tenant database and, when --from is given, import the dump into it.
The import is skipped if the database could not be created.`,
		Example: `  dbengine provision myserver 0001 --from /srv/templates/gdps.sql`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := dbengine.Engine(cmd.Context())
			if err != nil {
				return err
			}

			report := workflows.Provision(cmd.Context(), engine, args[0], args[1], from)
			printReport(cmd.ErrOrStderr(), report)

			if err := report.Err(); err != nil {
				return err
			}

			for _, res := range report.Results {
				if res.Operation == workflows.OperationCreate {
					fmt.Fprintln(cmd.OutOrStdout(), res.Password)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Dump file to import after creating the database")

	return cmd
}
