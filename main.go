package main

import (
	"buildtool/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The buildtool project is a pair of developer-facing build utilities for a
// native application that links against FFmpeg shared libraries:
//   - `buildtool setup` prepares the local toolchain before the first `cargo build`:
//     on Windows it locates Visual Studio, libclang, and a local FFmpeg binary
//     distribution (downloading and extracting one on request) and generates the
//     `.cargo/config.toml` the build needs; on macOS it ensures Homebrew and the
//     required formulae are installed.
//   - `buildtool package` compiles every binary crate in the workspace, stages the
//     binaries (plus the FFmpeg DLLs on Windows), and leaves either a directory or
//     a compressed archive ready for distribution.
//
// Error handling strategy:
//   - Each step either succeeds quietly, asks the user how to proceed, or aborts
//     the whole run with a fatal message. There is no partial-progress state to
//     recover: rerunning a command after fixing the reported issue is always safe.
func main() {
	cmd.Execute()
}
