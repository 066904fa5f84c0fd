package main

import (
	"fmt"
	"os"

	"github.com/emberops/firedesk/cmd/cli/sim"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(sim.Group)
	rootCmd.AddCommand(sim.Simulate)
}

var rootCmd = &cobra.Command{ //nolint:exhaustruct // rest are defaults
	Use:  "firedesk-cli",
	Long: `Command line utilities for the FireDesk dispatch dashboard`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
