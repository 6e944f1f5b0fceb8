package setup

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"buildtool/internal/cargocfg"
	"buildtool/internal/config"
	"buildtool/internal/logger"
	"buildtool/internal/shell"
	"buildtool/internal/ui"
)

// runWindows prepares a Windows machine: it locates Visual Studio and its
// LLVM/clang components (bindgen needs libclang to generate the FFmpeg
// bindings), locates or downloads the FFmpeg shared-library distribution, and
// writes the `.cargo/config.toml` that points the build at both.
func runWindows(cfg config.Config) {
	if shell.Arch() != "x86_64" {
		logger.Fatal("Windows builds currently only support x86_64.")
	}

	vsDir := vsInstallationDir()
	libclang := libclangDir(vsDir)
	clangInclude := clangIncludeDir(vsDir)
	codecDir := ensureCodecDir(cfg.Codec)

	writeCargoConfig(cargocfg.Env{
		LibclangPath:    filepath.ToSlash(libclang),
		FFmpegDir:       filepath.ToSlash(codecDir),
		ClangIncludeDir: filepath.ToSlash(clangInclude),
	})

	if !shell.CommandExists("cargo") {
		logger.Fatal("Couldn't find `cargo` on the path.")
	}
	if _, err := shell.Run("cargo", "clean"); err != nil {
		logger.Fatal("%v", err)
	}
	logger.Info("Build directory cleaned.")

	logger.Success("Build setup complete. Try running `cargo build`.")
}

// programFiles returns the Program Files path (the x86 one when x86 is true).
func programFiles(x86 bool) string {
	env := "ProgramFiles"
	if x86 {
		env = "ProgramFiles(x86)"
	}
	path := os.Getenv(env)
	if path == "" {
		logger.Fatal("Couldn't find program files (`%%%s%%` isn't set).", env)
	}
	return path
}

// vsInstallerDir locates the Visual Studio Installer directory, checking both
// Program Files roots.
func vsInstallerDir() string {
	const suffix = `\Microsoft Visual Studio\Installer`

	dir := programFiles(true) + suffix
	if shell.DirExists(dir) {
		logger.Info("Found the Visual Studio Installer.")
		return dir
	}

	dir = programFiles(false) + suffix
	ensureDir(dir,
		"You likely don't have the Visual Studio Installer on your system."+
			" Please install it from here:\nhttps://visualstudio.microsoft.com/")
	logger.Info("Found the Visual Studio Installer.")
	return dir
}

// vsInstallationDir asks vswhere for the newest Visual Studio 2022/2026
// installation path.
func vsInstallationDir() string {
	vswhere := vsInstallerDir() + `\vswhere.exe`
	ensureFile(vswhere, "")

	// Only Visual Studio 2022 or 2026.
	dir, err := shell.RunQuiet(vswhere,
		"-property", "installationPath",
		"-version", "[17.0,19.0)",
		"-latest")
	dir = strings.TrimSpace(dir)
	if err != nil || dir == "" {
		logger.Fatal("Couldn't find Visual Studio.")
	}

	logger.Info("Visual Studio found.")
	return dir
}

// libclangDir verifies that Visual Studio's LLVM component is installed and
// returns the directory holding libclang.dll.
func libclangDir(vsDir string) string {
	dir := filepath.Join(vsDir, `VC\Tools\LLVM\x64\bin`)
	ensureFile(filepath.Join(dir, "libclang.dll"),
		"You likely don't have libclang installed.\n"+
			"Please use the Visual Studio Installer to add the"+
			" `C++ Clang Compiler for Windows` component to your system.")
	logger.Info("libclang found.")
	return dir
}

// clangIncludeDir finds the newest clang header directory so bindgen can be
// told to prefer it over any other C compiler's headers (e.g. mingw's) that
// may be on the system. Returns "" when it can't be found; the build usually
// still works without it.
func clangIncludeDir(vsDir string) string {
	clangDir := filepath.Join(vsDir, `VC\Tools\LLVM\x64\lib\clang`)

	entries, err := os.ReadDir(clangDir)
	if err != nil {
		logger.Warn("Failed to find clang's include directory.")
		return ""
	}
	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	if len(versions) == 0 {
		logger.Warn("Failed to find clang's include directory.")
		return ""
	}
	sort.Strings(versions)

	dir := filepath.Join(clangDir, versions[len(versions)-1], "include")
	logger.Info("clang's include directory found.")
	return dir
}

// writeCargoConfig generates `.cargo/config.toml`, asking before overwriting
// an existing one.
func writeCargoConfig(env cargocfg.Env) {
	path := cargocfg.DefaultPath
	if shell.PathExists(path) &&
		!ui.Confirm("A `%s` file already exists. Overwrite?", path) {
		logger.Fatal("Failed to create `%s`.", path)
	}
	if err := cargocfg.Write(path, env); err != nil {
		logger.Fatal("%v", err)
	}
	logger.Info("Cargo config generated.")
}
