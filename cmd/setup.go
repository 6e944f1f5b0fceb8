package cmd

import (
	"github.com/spf13/cobra"

	"buildtool/internal/config"
	"buildtool/internal/logger"
	"buildtool/internal/setup"
	"buildtool/internal/ui"
)

var (
	setupYes        bool
	setupConfigPath string
)

// setupCmd prepares the local toolchain before the first `cargo build`.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the toolchain and environment for building the application",
	Long: `Prepare the toolchain and environment for building the application.

On Windows this locates Visual Studio, libclang, and a local FFmpeg binary
distribution (offering to download one), then generates the .cargo/config.toml
the FFmpeg bindings build needs. On macOS it ensures Homebrew and the required
formulae are installed.

Follow the instructions it prints (possibly rerunning it a few times) until it
says you're done, then run ` + "`cargo build`" + `.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if setupYes {
			ui.SetAutoAnswer("y")
		}

		cfg, err := config.Load(setupConfigPath)
		if err != nil {
			logger.Fatal("%v", err)
		}
		setup.Run(cfg)
	},
}

func init() {
	setupCmd.Flags().BoolVarP(&setupYes, "yes", "y", false,
		"Automatically answer yes to every confirmation prompt")
	setupCmd.Flags().StringVarP(&setupConfigPath, "config", "c", config.DefaultPath,
		"Path to the configuration file")
	rootCmd.AddCommand(setupCmd)
}
