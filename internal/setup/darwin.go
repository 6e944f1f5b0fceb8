package setup

import (
	"buildtool/internal/config"
	"buildtool/internal/logger"
	"buildtool/internal/shell"
	"buildtool/internal/ui"
)

// runDarwin prepares a macOS machine: Homebrew must be present, and the
// configured formulae (FFmpeg and pkg-config by default) must be installed.
// The bindings build finds FFmpeg through pkg-config, so no generated config
// is needed here.
func runDarwin(cfg config.Config) {
	if !shell.CommandExists("brew") {
		ui.ActionNeeded("Homebrew isn't installed." +
			" Please install it by following the instructions at https://brew.sh")
		if !shell.CommandExists("brew") {
			logger.Fatal("Couldn't find `brew` on the path.")
		}
	}
	logger.Info("Homebrew found.")

	for _, formula := range cfg.Brew.Formulae {
		if _, err := shell.RunQuiet("brew", "list", "--versions", formula); err == nil {
			logger.Info("`%s` is already installed.", formula)
			continue
		}

		if !ui.Confirm("`%s` isn't installed. Install it with Homebrew now?", formula) {
			logger.Fatal("`%s` is required. Run `brew install %s` and rerun this command.",
				formula, formula)
		}
		if _, err := shell.Run("brew", "install", formula); err != nil {
			logger.Fatal("%v", err)
		}
		logger.Info("`%s` installed.", formula)
	}

	logger.Success("Build setup complete. Try running `cargo build`.")
}
