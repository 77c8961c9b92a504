package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foreverhost/dbengine/internal/config"
	"github.com/foreverhost/dbengine/internal/dbengine"
)

// newConfigCmd creates the config subcommand
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the dbengine configuration",
	}

	cmd.AddCommand(newConfigViewCmd())

	return cmd
}

func newConfigViewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := dbengine.Config(cmd.Context())
			if err != nil {
				return err
			}

			return cfg.Encode(cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", fmt.Sprintf("Output format. One of: (%s)", strings.Join(config.Formats, ", ")))

	return cmd
}
