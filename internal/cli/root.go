package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/foreverhost/dbengine/internal/config"
	"github.com/foreverhost/dbengine/internal/dbengine"
	"github.com/foreverhost/dbengine/internal/executor"
)

// EnvConfigFile names the environment variable holding the default --config value.
const EnvConfigFile = "DBENGINE_CONFIG"

type rootOptions struct {
	configFile string
	logLevel   string
	dryRun     bool
	timeout    time.Duration

	// executor replaces the configured executor when set
	executor executor.Executor
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbengine",
		Short: "Manage tenant databases through clpctl",
		Long: `dbengine creates, exports, imports and deletes tenant databases
by driving the CloudPanel clpctl tool.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := cmd.Help(); err != nil {
				fmt.Fprintf(os.Stderr, "Error showing help: %v\n", err)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", os.Getenv(EnvConfigFile), "Path to configuration file (yaml, toml or json)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print clpctl commands instead of running them")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Timeout for each clpctl call (0 for none)")

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newProvisionCmd())
	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newPasswordCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// setup loads the configuration and stores it, together with the engine
// built from it, in the command context.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.logLevel != "" {
		level, err := log.ParseLevel(o.logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", o.logLevel, err)
		}
		log.SetLevel(level)
	}

	configFile := o.configFile
	if configFile == "" {
		configFile = config.Find()
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if o.timeout > 0 {
		cfg.Executor.Timeout = o.timeout.String()
	}

	exec := o.executor
	if exec == nil {
		exec, err = dbengine.NewExecutor(cfg, o.dryRun, cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	cmd.SetContext(dbengine.New(cmd.Context(), cfg, dbengine.NewEngine(cfg, exec)))
	return nil
}
