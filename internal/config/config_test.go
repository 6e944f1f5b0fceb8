package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of a missing file should not error: %v", err)
	}
	if cfg.Codec.Dir != "ffmpeg" {
		t.Errorf("Codec.Dir = %q, want default", cfg.Codec.Dir)
	}
	if cfg.Build.Profile != "release-plus" {
		t.Errorf("Build.Profile = %q, want default", cfg.Build.Profile)
	}
	if len(cfg.Brew.Formulae) != 2 {
		t.Errorf("Brew.Formulae = %v, want the two defaults", cfg.Brew.Formulae)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildtool.yaml")
	yaml := `
build:
  profile: release
codec:
  dir: vendor/ffmpeg
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Build.Profile != "release" {
		t.Errorf("Build.Profile = %q, want override", cfg.Build.Profile)
	}
	if cfg.Codec.Dir != "vendor/ffmpeg" {
		t.Errorf("Codec.Dir = %q, want override", cfg.Codec.Dir)
	}
	// Untouched settings keep their defaults.
	if cfg.Codec.URL == "" {
		t.Error("Codec.URL default was lost")
	}
	if len(cfg.Build.Features) == 0 {
		t.Error("Build.Features default was lost")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildtool.yaml")
	if err := os.WriteFile(path, []byte("codec: [not: a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load should reject malformed YAML")
	}
}
