package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"saturn-mdl-export/internal/bake"
	"saturn-mdl-export/internal/config"
	"saturn-mdl-export/internal/export"
	"saturn-mdl-export/internal/logger"
	"saturn-mdl-export/internal/scene"
	"saturn-mdl-export/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	scenePath := flag.String("scene", "", "Path to scene YAML document (required)")
	baseName := flag.String("name", "", "Export base name (default: scene name)")
	outputDir := flag.String("output", "", "Output directory (default: current directory)")
	textureDir := flag.String("textures", "", "Source texture directory")
	spriteSize := flag.Int("sprite", 0, "Baked sprite size, 32 or 64 (default: 32)")
	preview := flag.Bool("preview", false, "Dump baked sprites as WebP previews")
	logLevel := flag.String("loglevel", "", "Log level: debug, info, warn, error")

	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scene is required.")
		os.Exit(1)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		TextureDir: *textureDir,
		OutputDir:  *outputDir,
		SpriteSize: *spriteSize,
		LogLevel:   *logLevel,
		Preview:    *preview,
	})

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sc, err := scene.Load(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	base := *baseName
	if base == "" {
		base = sc.Name
	}

	texIndex := texture.BuildIndex(cfg.TextureDir)
	texCache := texture.NewCache(texIndex)

	lightDir := [3]float64{0, 0, -1}
	if sc.HasLights() {
		lightDir = sc.Lights[0].Direction
	}
	host := bake.NewHost(texCache, cfg.Supersample, lightDir)

	fmt.Printf("Saturn MDL Exporter\n")
	fmt.Printf("Scene: %s (%d objects), Textures: %d indexed\n", sc.Name, len(sc.MeshObjects()), texIndex.Len())
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println(strings.Repeat("-", 60))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	exporter := &export.Exporter{
		Scale:          cfg.Scale,
		SpriteSize:     cfg.SpriteSize,
		CameraDistance: cfg.CameraDistance,
		Preview:        cfg.Preview,
		Baker:          host,
	}

	start := time.Now()
	artifacts, results, err := exporter.Run(sc, cfg.OutputDir, base)

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
		}
	}
	fmt.Printf("Exported: %d/%d objects\n", success, len(results))

	if artifacts != nil {
		fmt.Printf("  %s\n", artifacts.ModelPath)
		fmt.Printf("  %s\n", artifacts.CodePath)
		for _, p := range artifacts.TexturePaths {
			fmt.Printf("  %s\n", filepath.ToSlash(p))
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
