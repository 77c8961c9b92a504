package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foreverhost/dbengine/internal/dbengine"
	"github.com/foreverhost/dbengine/internal/password"
)

// newPasswordCmd creates the password subcommand
func newPasswordCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate a database password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				cfg, err := dbengine.Config(cmd.Context())
				if err != nil {
					return err
				}
				length = cfg.Password.Length
			}

			pwd, err := password.Generate(length)
			if err != nil {
				return fmt.Errorf("failed to generate password: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), pwd)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", password.DefaultLength, "Password length")

	return cmd
}
