// Package setup prepares the local toolchain and environment so that
// `cargo build` can compile the application and its FFmpeg bindings.
package setup

import (
	"fmt"
	"runtime"

	"buildtool/internal/config"
	"buildtool/internal/logger"
	"buildtool/internal/shell"
)

// Run performs the platform-specific environment preparation. Each step either
// succeeds quietly, prompts the user, or aborts via logger.Fatal; when Run
// returns, the workspace is ready for `cargo build`.
func Run(cfg config.Config) {
	switch runtime.GOOS {
	case "windows":
		runWindows(cfg)
	case "darwin":
		runDarwin(cfg)
	default:
		logger.Fatal("Unsupported system: `%s`.", runtime.GOOS)
	}
}

// ensureDir aborts with help when no directory exists at path.
func ensureDir(path, help string) {
	ensure(shell.DirExists(path), "directory", path, help)
}

// ensureFile aborts with help when no regular file exists at path.
func ensureFile(path, help string) {
	ensure(shell.FileExists(path), "file", path, help)
}

func ensure(ok bool, kind, path, help string) {
	if ok {
		return
	}
	msg := fmt.Sprintf("Couldn't find %s at `%s`.", kind, path)
	if help != "" {
		msg += "\n" + help
	}
	logger.Fatal("%s", msg)
}
