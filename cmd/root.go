package cmd

import (
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"buildtool/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the `buildtool` CLI.
var rootCmd = &cobra.Command{
	Use:   "buildtool",
	Short: "Build utilities for setting up and packaging the application",

	// PersistentPreRun runs before any subcommand; it initializes the logger
	// based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, installs the stop-signal handler, and runs the
// requested subcommand. It's the entry point for the CLI.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// A Ctrl-C mid-prompt or mid-build should leave the terminal in a sane
	// state rather than with a dangling color escape.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		color.Unset()
		logger.Exit("Stop signal received.")
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
