package cargocfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	got := Render(Env{
		LibclangPath:    "C:/VS/VC/Tools/LLVM/x64/bin",
		FFmpegDir:       "C:/src/app/ffmpeg",
		ClangIncludeDir: "C:/VS/VC/Tools/LLVM/x64/lib/clang/19/include",
	})

	for _, want := range []string{
		"[env]\n",
		`LIBCLANG_PATH = "C:/VS/VC/Tools/LLVM/x64/bin"`,
		`FFMPEG_DIR = "C:/src/app/ffmpeg"`,
		`BINDGEN_EXTRA_CLANG_ARGS = "-IC:/VS/VC/Tools/LLVM/x64/lib/clang/19/include"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered config missing %q:\n%s", want, got)
		}
	}
}

func TestRenderWithoutClangInclude(t *testing.T) {
	got := Render(Env{LibclangPath: "/l", FFmpegDir: "/f"})
	if strings.Contains(got, "BINDGEN_EXTRA_CLANG_ARGS") {
		t.Errorf("bindgen args should be omitted when the include dir is unknown:\n%s", got)
	}
}

func TestWriteCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cargo", "config.toml")

	env := Env{LibclangPath: "/l", FFmpegDir: "/f"}
	if err := Write(path, env); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != Render(env) {
		t.Error("written file doesn't match the rendered config")
	}
}
