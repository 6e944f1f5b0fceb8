package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for overrides when no path is given.
const DefaultPath = "buildtool.yaml"

// Config holds the few knobs the build utilities expose. Everything has a
// baked-in default, so the YAML file is optional and usually absent.
type Config struct {
	Codec CodecConfig `yaml:"codec"`
	Build BuildConfig `yaml:"build"`
	Brew  BrewConfig  `yaml:"brew"`
}

// CodecConfig describes where the FFmpeg binary distribution lives locally and
// where to download it from when it's missing.
type CodecConfig struct {
	Dir     string `yaml:"dir"`     // Local directory holding include/, lib/, bin/
	Archive string `yaml:"archive"` // Local path the downloaded release is saved to
	URL     string `yaml:"url"`     // Release download URL
}

// BuildConfig controls how `cargo build` is invoked when packaging.
type BuildConfig struct {
	Profile  string   `yaml:"profile"`  // Default build profile
	Features []string `yaml:"features"` // Cargo features passed to every build
}

// BrewConfig lists the Homebrew formulae the macOS setup ensures are installed.
type BrewConfig struct {
	Formulae []string `yaml:"formulae"`
}

// Default returns the configuration used when no buildtool.yaml exists.
func Default() Config {
	return Config{
		Codec: CodecConfig{
			Dir:     "ffmpeg",
			Archive: "ffmpeg.7z",
			URL:     "https://www.gyan.dev/ffmpeg/builds/ffmpeg-release-full-shared.7z",
		},
		Build: BuildConfig{
			Profile:  "release-plus",
			Features: []string{"no-console"},
		},
		Brew: BrewConfig{
			Formulae: []string{"ffmpeg", "pkg-config"},
		},
	}
}

// Load reads the YAML config at path, filling in defaults for anything the
// file doesn't set. A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
