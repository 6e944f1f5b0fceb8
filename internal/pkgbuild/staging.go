package pkgbuild

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"buildtool/internal/archive"
	"buildtool/internal/logger"
	"buildtool/internal/shell"
	"buildtool/internal/ui"
)

// clearUpPath makes sure nothing exists at path. If something does, the user
// is asked to have it removed (or to move it out of the way themselves). When
// this function returns, the path is clear.
func clearUpPath(path string) {
	if !shell.PathExists(path) {
		return
	}

	if !ui.Confirm("An object already exists at `%s`. Remove it?", path) {
		if shell.PathExists(path) {
			logger.Fatal("Can't continue while an object at `%s` still exists.", path)
		}
		logger.Info("Object at `%s` has moved. Continuing...", path)
		return
	}

	removed, err := shell.RemovePath(path)
	if err != nil {
		logger.Fatal("%v", err)
	}
	if removed {
		logger.Warn("Removed `%s`.", path)
	} else {
		logger.Info("Nothing to remove anymore at `%s`.", path)
	}
}

// tryArchive archives srcDir into outFile and removes srcDir. If creating the
// archive fails, the user is asked whether a plain directory is acceptable
// instead; the staging directory is then moved to the extension-stripped
// output path. The path of whatever was produced is returned, which equals
// outFile exactly when the archive was created.
func tryArchive(format archive.Format, outFile, srcDir string) string {
	ext := archive.Ext(outFile)
	dirFallback := strings.TrimSuffix(outFile, "."+ext)

	clearUpPath(outFile)
	logger.Info("Archiving output.")
	err := archive.Create(format, outFile, srcDir)
	if err == nil {
		if _, err := shell.RemovePath(srcDir); err != nil {
			logger.Warn("%v", err)
		}
		return outFile
	}
	logger.Warn("%v", err)

	errMsg := fmt.Sprintf("Failed to create `.%s` archive.", ext)
	if ui.Confirm("%s A directory `%s` can be created instead."+
		" Would you rather exit?", errMsg, dirFallback) {
		logger.Fatal("%s", errMsg)
	}

	clearUpPath(dirFallback)
	if err := moveDir(srcDir, dirFallback); err != nil {
		logger.Fatal("Failed to move staging directory: %v", err)
	}
	return dirFallback
}

// moveDir renames src to dst, falling back to copy-and-delete when the rename
// crosses filesystems (the temporary staging directory often lives on one).
func moveDir(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return shell.CopyFile(path, target)
	})
	if err != nil {
		return err
	}

	return os.RemoveAll(src)
}
