package texture

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, c uint8) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c
		img.Pix[i+3] = 255
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestBuildIndex_And_Resolve(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "Hull.png"), 128)
	sub := filepath.Join(dir, "extra")
	os.MkdirAll(sub, 0755)
	writePNG(t, filepath.Join(sub, "wing.png"), 64)

	idx := BuildIndex(dir)
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}

	// Case-insensitive, prefix and extension stripped.
	if _, ok := idx.ResolvePath("models\\textures\\HULL.tga"); !ok {
		t.Error("ResolvePath failed for authored-side reference")
	}
	if _, ok := idx.ResolvePath("wing.png"); !ok {
		t.Error("ResolvePath failed for subdirectory texture")
	}
	if _, ok := idx.ResolvePath("missing.png"); ok {
		t.Error("ResolvePath resolved a nonexistent texture")
	}
}

func TestCache_ResolveAndCacheMiss(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "hull.png"), 200)

	cache := NewCache(BuildIndex(dir))

	img := cache.Resolve("hull")
	if img == nil {
		t.Fatal("Resolve returned nil for present texture")
	}
	if img.Pix[0] != 200 {
		t.Errorf("decoded pixel = %d, want 200", img.Pix[0])
	}

	if cache.Resolve("absent") != nil {
		t.Error("Resolve returned image for absent texture")
	}

	// Second lookup hits the cache and returns the same image.
	if cache.Resolve("hull") != img {
		t.Error("cache returned a different image on second lookup")
	}
}
