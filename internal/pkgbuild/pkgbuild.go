// Package pkgbuild compiles the application's binary crates and packages them
// into a distributable directory or archive.
package pkgbuild

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"buildtool/internal/archive"
	"buildtool/internal/logger"
	"buildtool/internal/shell"
	"buildtool/internal/ui"
)

// Options are the resolved package-command flags plus the bits of
// configuration the staging steps need.
type Options struct {
	Profile  string   // Cargo build profile
	Features []string // Cargo features passed to every build
	Out      string   // Output path; its extension selects the archive format
	Clean    bool     // Remove the output path and exit
	CodecDir string   // Local FFmpeg directory (DLL source on Windows)
}

// Run builds and packages the application per opts.
func Run(opts Options) {
	start := time.Now()

	out, err := filepath.Abs(opts.Out)
	if err != nil {
		logger.Fatal("`%s` is not a valid path.", opts.Out)
	}

	if opts.Clean {
		removed, err := shell.RemovePath(out)
		if err != nil {
			logger.Fatal("%v", err)
		}
		if removed {
			logger.Success("Removed `%s`.", out)
		} else {
			logger.Success("Nothing changed.")
		}
		return
	}

	format, wantArchive := archive.FormatForPath(out)
	if !wantArchive {
		if ext := archive.Ext(out); ext != "" {
			if !ui.Confirm("Unsupported archive format `.%s`."+
				" Would you like to create a directory?", ext) {
				logger.Fatal("Unsupported archive format `.%s`.", ext)
			}
		}
	}

	staging := createStagingDir(out, wantArchive)

	if !shell.CommandExists("cargo") {
		logger.Fatal("Couldn't find `cargo` on the path.")
	}
	md := loadMetadata()
	crates := md.binCrates()
	if len(crates) == 0 {
		logger.Fatal("No binary crates found in the workspace.")
	}
	for _, crate := range crates {
		logger.Info("Building binary crate `%s`.", crate)
		buildAndStage(crate, staging, opts.Profile, opts.Features, md.TargetDirectory)
		logger.Info("Staged binary `%s`.", crate)
	}

	switch runtime.GOOS {
	case "windows":
		stageWindows(staging, opts.CodecDir)
	case "darwin":
		// Nothing extra to stage: the Homebrew-installed FFmpeg dylibs are
		// resolved from their install location at runtime.
	default:
		logger.Fatal("Unsupported system: `%s`.", runtime.GOOS)
	}

	outPath := out
	archiveMade := false
	if wantArchive {
		outPath = tryArchive(format, out, staging)
		archiveMade = outPath == out
	}
	outKind := "directory"
	if archiveMade {
		outKind = "archive"
	}

	logger.Success("Packaging completed in %s. See %s: %s",
		formatDuration(time.Since(start)), outKind, outPath)
}

// createStagingDir prepares the directory the built binaries are collected in:
// the output path itself when a directory was requested, a temporary directory
// when the output will be archived.
func createStagingDir(out string, wantArchive bool) string {
	if wantArchive {
		staging, err := os.MkdirTemp("", "buildtool-package-")
		if err != nil {
			logger.Fatal("Failed to initialize staging directory: %v", err)
		}
		logger.Info("Temporary staging directory created (`%s`).", staging)
		return staging
	}

	clearUpPath(out)
	if err := os.MkdirAll(out, 0755); err != nil {
		logger.Fatal("Failed to initialize staging directory: %v", err)
	}
	logger.Info("Staging directory created (`%s`).", out)
	return out
}

// stageWindows copies the FFmpeg DLLs next to the staged executables: on
// Windows the compiled binaries load them from their own directory.
func stageWindows(stagingDir, codecDir string) {
	dlls, err := shell.CopyDirFiles(filepath.Join(codecDir, "bin"), stagingDir, ".dll")
	if err != nil {
		logger.Fatal("%v", err)
	}
	logger.Info("Copied %d DLLs into staging directory.", dlls)
}
