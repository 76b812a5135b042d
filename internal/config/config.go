package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configurable paths and export settings.
type Config struct {
	// Paths
	TextureDir string `json:"texture_dir"`
	OutputDir  string `json:"output_dir"`

	// Export settings
	SpriteSize     int     `json:"sprite_size"`     // baked sprite edge, 32 or 64
	Supersample    int     `json:"supersample"`     // bake at N× then downsample
	Scale          float64 `json:"scale"`           // coordinate scale applied before fixed-point conversion
	CameraDistance float64 `json:"camera_distance"` // root Z default in the generated initialiser
	Preview        bool    `json:"preview"`         // dump baked sprites as WebP

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TextureDir string
	OutputDir  string
	SpriteSize int
	LogLevel   string
	Preview    bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.SpriteSize > 0 {
		c.SpriteSize = flags.SpriteSize
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Preview {
		c.Preview = true
	}

	if c.OutputDir == "" {
		cwd, _ := os.Getwd()
		c.OutputDir = cwd
	}
	if c.TextureDir == "" && c.OutputDir != "" {
		c.TextureDir = filepath.Join(c.OutputDir, "textures")
	}

	if c.SpriteSize != 64 {
		// Only the two hardware sprite sizes are meaningful.
		if c.SpriteSize != 32 {
			c.SpriteSize = 32
		}
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Scale == 0 {
		c.Scale = 1.0
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
