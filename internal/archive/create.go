package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	ulixz "github.com/ulikunitz/xz" // For writing .xz compressed data
)

// Create archives the contents of srcDir (not srcDir itself) into a new file
// at outPath using the given format.
func Create(format Format, outPath, srcDir string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	switch format {
	case Zip:
		err = writeZip(out, srcDir)
	case Tar, TarGz, TarXz:
		err = writeTar(out, srcDir, format)
	default:
		err = fmt.Errorf("unsupported archive format: %s", format)
	}

	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outPath)
		return err
	}
	return nil
}

func writeZip(out io.Writer, srcDir string) error {
	zw := zip.NewWriter(out)

	err := walkRelative(srcDir, func(rel string, info fs.FileInfo, path string) error {
		hdr, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		hdr.Name = rel
		hdr.Method = zip.Deflate
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		return copyFileInto(w, path)
	})
	if err != nil {
		return err
	}
	return zw.Close()
}

func writeTar(out io.Writer, srcDir string, format Format) error {
	var compressed io.WriteCloser
	switch format {
	case TarGz:
		compressed = gzip.NewWriter(out)
	case TarXz:
		xw, err := ulixz.NewWriter(out)
		if err != nil {
			return err
		}
		compressed = xw
	}

	sink := out
	if compressed != nil {
		sink = compressed
	}
	tw := tar.NewWriter(sink)

	err := walkRelative(srcDir, func(rel string, info fs.FileInfo, path string) error {
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		return copyFileInto(tw, path)
	})
	if err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return err
	}
	if compressed != nil {
		return compressed.Close()
	}
	return nil
}

// walkRelative calls fn for every regular file under srcDir with its
// slash-separated path relative to srcDir.
func walkRelative(srcDir string, fn func(rel string, info fs.FileInfo, path string) error) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), info, path)
	})
}

func copyFileInto(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
