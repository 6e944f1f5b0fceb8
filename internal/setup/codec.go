package setup

import (
	"os"
	"path/filepath"
	"runtime"

	"buildtool/internal/archive"
	"buildtool/internal/config"
	"buildtool/internal/logger"
	"buildtool/internal/shell"
	"buildtool/internal/ui"
)

// ensureCodecDir makes sure the FFmpeg binary distribution is present in the
// workspace and returns its absolute path. It tries, in order: an existing
// directory, extracting an already-downloaded release archive, and downloading
// the release from the internet (with the user's permission).
func ensureCodecDir(cfg config.CodecConfig) string {
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		logger.Fatal("`%s` is not a valid path.", cfg.Dir)
	}

	manualInstallMsg := "You can still manually install.\n" +
		"Please rerun this command after downloading and extracting FFmpeg" +
		" to `" + cfg.Dir + "` from the link below (or anywhere):\n" + cfg.URL

	// A couple of passes may be needed: download leaves an archive behind,
	// extraction leaves a directory behind.
	for {
		if shell.DirExists(dir) {
			fixNestedLayout(dir)

			ensureDir(filepath.Join(dir, "include"), "")
			ensureDir(filepath.Join(dir, "lib"), "")
			ensureDir(filepath.Join(dir, "bin"), "")
			logger.Info("FFmpeg found locally.")

			if shell.PathExists(cfg.Archive) &&
				ui.Confirm("Downloaded FFmpeg archive no longer needed."+
					" Would you like to remove it (`%s`)?", cfg.Archive) {
				if _, err := shell.RemovePath(cfg.Archive); err != nil {
					logger.Warn("%v", err)
				}
			}
			return dir
		}

		if shell.FileExists(cfg.Archive) {
			extractCodecArchive(cfg.Archive, dir)
			continue
		}

		if !ui.Confirm("You don't have FFmpeg installed locally yet." +
			" Do you want to download FFmpeg from the internet now?") {
			logger.Fatal("Skipping auto-download. %s", manualInstallMsg)
		}

		logger.Info("Downloading FFmpeg. This may take a while...")
		if err := downloadFile(cfg.URL, cfg.Archive); err != nil {
			logger.Fatal("Download failed: %v\n%s", err, manualInstallMsg)
		}
		logger.Info("FFmpeg archive downloaded.")
	}
}

// extractCodecArchive unpacks the downloaded release into dir, falling back to
// asking the user to extract it themselves when the archive can't be read.
func extractCodecArchive(src, dir string) {
	logger.Info("Extracting `%s`.", src)

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Fatal("Failed to create `%s`: %v", dir, err)
	}
	_, err := archive.Extract(src, dir)
	if err == nil {
		logger.Info("FFmpeg archive extracted.")
		return
	}
	logger.Warn("Failed to extract `%s`: %v", src, err)

	// Leave no partial extraction behind before handing over to the user.
	if _, err := shell.RemovePath(dir); err != nil {
		logger.Warn("%v", err)
	}

	if runtime.GOOS == "windows" {
		if abs, err := filepath.Abs(src); err == nil {
			logger.Info("Attempting to open file explorer on the FFmpeg archive.")
			if err := shell.Start("explorer", "/select,", abs); err != nil {
				logger.Debug("explorer failed to start: %v", err)
			}
		}
	}
	ui.ActionNeeded("Please extract `%s` to `%s`.", src, dir)

	if !shell.DirExists(dir) {
		logger.Fatal("The FFmpeg directory wasn't extracted.")
	}
}

// fixNestedLayout handles the common case where extracting the release left
// everything inside a single nested directory (e.g. `ffmpeg/ffmpeg-7.1-full_build-shared/...`):
// with the user's permission it pulls the nested children up into dir.
func fixNestedLayout(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 || !entries[0].IsDir() {
		return
	}

	if !ui.Confirm("FFmpeg directory contains only 1 subfolder `%s`."+
		" Attempt auto-fix?", entries[0].Name()) {
		return
	}

	if err := flattenSingleSubdir(dir, entries[0].Name()); err != nil {
		logger.Warn("Auto-fix failed: %v", err)
		return
	}
	logger.Info("FFmpeg directory structure fixed.")
}

// flattenSingleSubdir moves every child of dir's subdirectory sub up into dir
// and removes the then-empty subdirectory.
func flattenSingleSubdir(dir, sub string) error {
	nested := filepath.Join(dir, sub)
	children, err := os.ReadDir(nested)
	if err != nil {
		return err
	}
	for _, child := range children {
		from := filepath.Join(nested, child.Name())
		to := filepath.Join(dir, child.Name())
		if err := os.Rename(from, to); err != nil {
			return err
		}
	}
	return os.Remove(nested)
}
