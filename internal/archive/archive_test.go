package archive

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExt(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"package", ""},
		{"package.zip", "zip"},
		{"out/app.tar.gz", "tar.gz"},
		{`out\app.tar.xz`, "tar.xz"},
		{"dir.with.dots/package", ""},
		{"a.b.c", "b.c"},
	}
	for _, c := range cases {
		if got := Ext(c.path); got != c.want {
			t.Errorf("Ext(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestFormatForPath(t *testing.T) {
	cases := []struct {
		path   string
		want   Format
		wantOK bool
	}{
		{"out.zip", Zip, true},
		{"out.tar", Tar, true},
		{"out.tar.gz", TarGz, true},
		{"out.tar.xz", TarXz, true},
		{"out.tar.bz", "", false}, // no bzip2 compressor
		{"out.rar", "", false},
		{"out", "", false},
	}
	for _, c := range cases {
		got, ok := FormatForPath(c.path)
		if got != c.want || ok != c.wantOK {
			t.Errorf("FormatForPath(%q) = (%q, %v), want (%q, %v)",
				c.path, got, ok, c.want, c.wantOK)
		}
	}
}

func TestTopLevelName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"ffmpeg-7.1/bin/ffmpeg.exe", "ffmpeg-7.1"},
		{"README.md", "README.md"},
		{"/rooted/file", "rooted"},
	}
	for _, c := range cases {
		if got := topLevelName(c.name); got != c.want {
			t.Errorf("topLevelName(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

// writeTree lays out a small source tree for the roundtrip tests.
func writeTree(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	files := map[string]string{
		"app":            "binary contents",
		"bin/helper":     "helper contents",
		"doc/README.txt": "read me",
	}
	for name, contents := range files {
		path := filepath.Join(src, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return src
}

func checkTree(t *testing.T, dir string) {
	t.Helper()
	want := map[string]string{
		"app":            "binary contents",
		"bin/helper":     "helper contents",
		"doc/README.txt": "read me",
	}
	for name, contents := range want {
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil {
			t.Errorf("missing extracted file %s: %v", name, err)
			continue
		}
		if string(got) != contents {
			t.Errorf("extracted %s = %q, want %q", name, got, contents)
		}
	}
}

func TestCreateExtractRoundtrip(t *testing.T) {
	for _, format := range []Format{Zip, Tar, TarGz, TarXz} {
		t.Run(string(format), func(t *testing.T) {
			src := writeTree(t)
			out := filepath.Join(t.TempDir(), "pkg."+string(format))

			if err := Create(format, out, src); err != nil {
				t.Fatalf("Create: %v", err)
			}

			dest := t.TempDir()
			if _, err := Extract(out, dest); err != nil {
				t.Fatalf("Extract: %v", err)
			}
			checkTree(t, dest)
		})
	}
}

// The committed fixtures cover the read-only formats Create can't produce:
// the codec library ships as a .7z, and .tar.bz2 has no Go compressor. Both
// hold the same tree: codec-1.0/{bin/codec.dll,include/codec.h}.
func TestExtractFixtures(t *testing.T) {
	for _, fixture := range []string{"fixture.7z", "fixture.tar.bz2"} {
		t.Run(fixture, func(t *testing.T) {
			dest := t.TempDir()

			top, err := Extract(filepath.Join("testdata", fixture), dest)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if want := filepath.Join(dest, "codec-1.0"); top != want {
				t.Errorf("top-level path = %q, want %q", top, want)
			}

			want := map[string]string{
				"bin/codec.dll":   "shared library bytes\n",
				"include/codec.h": "#define CODEC_VERSION 1\n",
			}
			for name, contents := range want {
				got, err := os.ReadFile(filepath.Join(top, filepath.FromSlash(name)))
				if err != nil {
					t.Errorf("missing extracted file %s: %v", name, err)
					continue
				}
				if string(got) != contents {
					t.Errorf("extracted %s = %q, want %q", name, got, contents)
				}
			}
		})
	}
}

func TestCreateUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pkg.rar")
	if err := Create(Format("rar"), out, t.TempDir()); err == nil {
		t.Fatal("Create with unknown format should fail")
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("failed Create left a partial output file behind")
	}
}

func TestExtractUnsupported(t *testing.T) {
	src := filepath.Join(t.TempDir(), "file.rar")
	if err := os.WriteFile(src, []byte("not an archive"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Extract(src, t.TempDir()); err == nil {
		t.Fatal("Extract of unsupported format should fail")
	}
}

func TestSafeJoinRejectsEscapes(t *testing.T) {
	if _, err := safeJoin("/tmp/dest", "../escape"); err == nil {
		t.Error("safeJoin should reject paths that climb out of dest")
	}
	if _, err := safeJoin("/tmp/dest", "ok/inside.txt"); err != nil {
		t.Errorf("safeJoin rejected a local path: %v", err)
	}
}
