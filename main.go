package main

import (
	"os"

	"github.com/foreverhost/dbengine/internal/cli"
)

func main() {
	cli.ConfigureLogging()

	rootCmd := cli.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
