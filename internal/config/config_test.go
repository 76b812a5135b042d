package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_Defaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.SpriteSize != 32 {
		t.Errorf("SpriteSize = %d, want 32", cfg.SpriteSize)
	}
	if cfg.Supersample != 1 {
		t.Errorf("Supersample = %d, want 1", cfg.Supersample)
	}
	if cfg.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", cfg.Scale)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.OutputDir == "" {
		t.Error("OutputDir not defaulted")
	}
}

func TestResolve_SpriteSizeClampedToHardwareSizes(t *testing.T) {
	cfg := Config{SpriteSize: 48}
	cfg.Resolve(Flags{})
	if cfg.SpriteSize != 32 {
		t.Errorf("SpriteSize = %d, want 32 for unsupported size", cfg.SpriteSize)
	}

	cfg = Config{SpriteSize: 64}
	cfg.Resolve(Flags{})
	if cfg.SpriteSize != 64 {
		t.Errorf("SpriteSize = %d, want 64 preserved", cfg.SpriteSize)
	}
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	cfg := Config{OutputDir: "/from/file", SpriteSize: 64, LogLevel: "debug"}
	cfg.Resolve(Flags{OutputDir: "/from/flag", SpriteSize: 32, LogLevel: "warn"})

	if cfg.OutputDir != "/from/flag" {
		t.Errorf("OutputDir = %q, want flag value", cfg.OutputDir)
	}
	if cfg.SpriteSize != 32 {
		t.Errorf("SpriteSize = %d, want flag value", cfg.SpriteSize)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want flag value", cfg.LogLevel)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{"output_dir": "/tmp/out", "sprite_size": 64, "scale": 10.0, "camera_distance": 170}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/out" || cfg.SpriteSize != 64 || cfg.Scale != 10.0 || cfg.CameraDistance != 170 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
