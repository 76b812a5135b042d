package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"saturn-mdl-export/internal/bake"
	"saturn-mdl-export/internal/scene"
	"saturn-mdl-export/internal/texture"
)

// bakedump bakes every textured face of a scene and writes the sprite
// buffers as WebP files, for checking bake output without a full export.
func main() {
	scenePath := flag.String("scene", "", "Path to scene YAML document (required)")
	textureDir := flag.String("textures", "", "Source texture directory (required)")
	outDir := flag.String("output", ".", "Output directory")
	size := flag.Int("size", 32, "Sprite size")
	flag.Parse()

	if *scenePath == "" || *textureDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: bakedump -scene <scene.yaml> -textures <dir> [-output <dir>] [-size 32]")
		os.Exit(1)
	}

	sc, err := scene.Load(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	texCache := texture.NewCache(texture.BuildIndex(*textureDir))
	host := bake.NewHost(texCache, 1, [3]float64{0, 0, -1})

	mode := scene.BakeTexture
	if sc.HasLights() {
		mode = scene.BakeCombined
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	errors := 0
	baked := 0
	for _, obj := range sc.MeshObjects() {
		for i := range obj.Mesh.Polygons {
			if !obj.Mesh.Polygons[i].Textured() {
				continue
			}

			img, err := host.BakeFace(obj, i, *size, mode)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERR %v\n", err)
				errors++
				continue
			}

			name := fmt.Sprintf("%s_face%d.webp", obj.Name, i)
			path := filepath.Join(*outDir, name)
			f, err := os.Create(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERR %v\n", err)
				errors++
				continue
			}
			err = nativewebp.Encode(f, img, nil)
			f.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERR %s: %v\n", path, err)
				errors++
				continue
			}
			fmt.Printf("OK  %s\n", path)
			baked++
		}
	}

	fmt.Printf("\nDone. %d sprites baked", baked)
	if errors > 0 {
		fmt.Printf(", %d error(s)", errors)
	}
	fmt.Println(".")
	if errors > 0 {
		os.Exit(1)
	}
}
