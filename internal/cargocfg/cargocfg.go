// Package cargocfg generates the `.cargo/config.toml` that wires the FFmpeg
// bindings build. It is the only file the setup command persists.
package cargocfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is where cargo looks for the generated config, relative to the
// workspace root.
const DefaultPath = ".cargo/config.toml"

// Env holds the environment variables the FFmpeg bindings build needs.
// See https://github.com/zmwangx/rust-ffmpeg/wiki/Notes-on-building:
// LIBCLANG_PATH lets bindgen load libclang, FFMPEG_DIR points it at FFmpeg's
// lib/include files (FFmpeg must be dynamically linked).
type Env struct {
	LibclangPath string
	FFmpegDir    string

	// ClangIncludeDir, when non-empty, is passed to bindgen explicitly so it
	// doesn't pick up another compiler's headers (e.g. mingw's).
	ClangIncludeDir string
}

// Render produces the config.toml contents for env.
func Render(env Env) string {
	var b strings.Builder
	b.WriteString("# Generated by `buildtool setup`.\n")
	b.WriteString("[env]\n")
	fmt.Fprintf(&b, "LIBCLANG_PATH = %q\n", env.LibclangPath)
	fmt.Fprintf(&b, "FFMPEG_DIR = %q\n", env.FFmpegDir)
	if env.ClangIncludeDir != "" {
		fmt.Fprintf(&b, "BINDGEN_EXTRA_CLANG_ARGS = %q\n", "-I"+env.ClangIncludeDir)
	}
	return b.String()
}

// Write renders env and writes it to path, creating the parent directory if
// needed. Any existing file is overwritten; the caller is responsible for
// asking the user first.
func Write(path string, env Env) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(Render(env)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
