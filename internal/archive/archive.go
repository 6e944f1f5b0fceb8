// Package archive reads the codec library's release archives and writes the
// distributable archives the package command produces.
package archive

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an archive format the package command can produce.
type Format string

const (
	Zip   Format = "zip"
	Tar   Format = "tar"
	TarGz Format = "tar.gz"
	TarXz Format = "tar.xz"
)

// Ext returns the full extension of a path's base name: everything after the
// first dot (so "app.tar.gz" yields "tar.gz"). It returns "" when the base
// name has no dot.
func Ext(path string) string {
	name := filepath.Base(path)
	if i := strings.Index(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// FormatForPath maps a path's extension to the output Format that produces it.
// ok is false when the extension is missing or not one we can write (notably
// tar.bz: Go has no bzip2 compressor).
func FormatForPath(path string) (f Format, ok bool) {
	switch Ext(path) {
	case "zip":
		return Zip, true
	case "tar":
		return Tar, true
	case "tar.gz":
		return TarGz, true
	case "tar.xz":
		return TarXz, true
	}
	return "", false
}

// safeJoin joins name under dest, rejecting entries that would escape it.
func safeJoin(dest, name string) (string, error) {
	name = filepath.FromSlash(name)
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("archive entry %q escapes the extraction directory", name)
	}
	return filepath.Join(dest, name), nil
}

// topLevelName returns the first path element of an archive entry name.
func topLevelName(name string) string {
	name = strings.TrimLeft(filepath.ToSlash(name), "/")
	if i := strings.Index(name, "/"); i >= 0 {
		return name[:i]
	}
	return name
}
