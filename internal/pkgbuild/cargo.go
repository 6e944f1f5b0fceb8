package pkgbuild

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"buildtool/internal/logger"
	"buildtool/internal/shell"
)

// The slice of `cargo metadata --format-version 1` output we care about:
// which packages have executable targets, and where build artifacts land.
type cargoMetadata struct {
	Packages        []cargoPackage `json:"packages"`
	TargetDirectory string         `json:"target_directory"`
}

type cargoPackage struct {
	Name    string        `json:"name"`
	Targets []cargoTarget `json:"targets"`
}

type cargoTarget struct {
	Kind []string `json:"kind"`
}

// loadMetadata queries cargo for workspace metadata. Called once per run; the
// result is passed around rather than re-queried.
func loadMetadata() cargoMetadata {
	out, err := shell.RunQuiet("cargo", "metadata",
		"--no-deps", "--offline", "--quiet", "--format-version", "1")
	if err != nil {
		logger.Fatal("%v", err)
	}

	md, err := parseMetadata([]byte(out))
	if err != nil {
		logger.Fatal("Failed to parse cargo metadata: %v", err)
	}
	return md
}

func parseMetadata(data []byte) (cargoMetadata, error) {
	var md cargoMetadata
	if err := json.Unmarshal(data, &md); err != nil {
		return md, err
	}
	if md.TargetDirectory == "" {
		return md, fmt.Errorf("metadata has no target_directory")
	}
	return md, nil
}

// binCrates returns the names of all packages with an executable target.
func (md cargoMetadata) binCrates() []string {
	var names []string
	for _, pkg := range md.Packages {
		for _, target := range pkg.Targets {
			if slices.Contains(target.Kind, "bin") {
				names = append(names, pkg.Name)
				break
			}
		}
	}
	return names
}

// buildAndStage builds one binary crate with the given profile and copies the
// resulting executable into outDir.
func buildAndStage(crate, outDir, profile string, features []string, targetDir string) {
	args := []string{"build", "--bin", crate, "--profile", profile}
	if len(features) > 0 {
		args = append(args, "--features", strings.Join(features, ","))
	}
	if _, err := shell.Run("cargo", args...); err != nil {
		logger.Warn("%v", err)
		logger.Fatal("Failed to build binary `%s`."+
			" Ensure `buildtool setup` has been run.", crate)
	}

	exeSuffix := ""
	if runtime.GOOS == "windows" {
		exeSuffix = ".exe"
	}
	binPath := filepath.Join(targetDir, profile, crate+exeSuffix)
	if !shell.FileExists(binPath) {
		logger.Fatal("Couldn't find file at `%s`.\n"+
			"Cargo built a binary somewhere unexpected.", binPath)
	}

	if err := shell.CopyFile(binPath, filepath.Join(outDir, filepath.Base(binPath))); err != nil {
		logger.Fatal("Failed to copy binary to output directory: %v", err)
	}
}
