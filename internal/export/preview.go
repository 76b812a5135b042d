package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// writePreviews dumps every baked sprite as a lossless WebP for visual
// inspection of the bake output.
func writePreviews(dir string, sprites []bakedSprite) error {
	if len(sprites) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("preview: create %s: %w", dir, err)
	}

	for _, s := range sprites {
		path := filepath.Join(dir, s.Label+".webp")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("preview: create %s: %w", path, err)
		}
		err = nativewebp.Encode(f, s.Image, nil)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("preview: encode %s: %w", path, err)
		}
	}
	return nil
}
