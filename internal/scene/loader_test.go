package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `name: ship
objects:
  - name: Hull
    vertices:
      - [0, 0, 0]
      - [1, 0, 0]
      - [1, 1, 0]
      - [0, 1, 0]
    polygons:
      - indices: [0, 1, 2, 3]
        texture: hull.tga
        uv: [[0, 0], [1, 0], [1, 1], [0, 1]]
  - name: Wing
    parent: Hull
    smooth: true
    vertices:
      - [0, 0, 0]
      - [1, 0, 0]
      - [0, 1, 0]
    polygons:
      - indices: [0, 1, 2]
        normal: [0, 0, 1]
        colors: [[1, 0, 0], [0, 1, 0], [0, 0, 1]]
lights:
  - name: Sun
    direction: [0, -1, 0]
`

func writeScene(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	sc, err := Load(writeScene(t, sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if sc.Name != "ship" {
		t.Errorf("Name = %q, want ship", sc.Name)
	}
	if len(sc.Objects) != 2 {
		t.Fatalf("object count = %d, want 2", len(sc.Objects))
	}
	if !sc.HasLights() {
		t.Error("HasLights() = false")
	}
	if !sc.HasTextures() {
		t.Error("HasTextures() = false")
	}

	hull := sc.Objects[0]
	if !hull.IsRoot() {
		t.Error("Hull should be root")
	}
	if !hull.Mesh.HasUVLayer {
		t.Error("Hull should have an active UV layer")
	}
	if hull.Mesh.HasColorLayer {
		t.Error("Hull should not have a color layer")
	}

	wing := sc.Objects[1]
	if wing.IsRoot() || wing.Parent != "Hull" {
		t.Errorf("Wing parent = %q, want Hull", wing.Parent)
	}
	if !wing.Mesh.HasColorLayer {
		t.Error("Wing should have a color layer")
	}
	if !wing.SmoothShaded() {
		t.Error("Wing should be smooth shaded")
	}
}

func TestLoad_SynthesizesFaceNormal(t *testing.T) {
	sc, err := Load(writeScene(t, sampleDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Hull's quad lies in the XY plane with CCW winding: normal +Z.
	n := sc.Objects[0].Mesh.Polygons[0].Normal
	if math.Abs(n[0]) > 1e-9 || math.Abs(n[1]) > 1e-9 || math.Abs(n[2]-1) > 1e-9 {
		t.Errorf("synthesized normal = %v, want [0 0 1]", n)
	}

	// Wing's explicit normal passes through untouched.
	if got := sc.Objects[1].Mesh.Polygons[0].Normal; got != [3]float64{0, 0, 1} {
		t.Errorf("explicit normal = %v, want [0 0 1]", got)
	}
}

func TestLoad_NameDefaultsToFileStem(t *testing.T) {
	sc, err := Load(writeScene(t, "objects: []\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Name != "scene" {
		t.Errorf("Name = %q, want scene", sc.Name)
	}
}

func TestLoad_TextureWithoutUVFails(t *testing.T) {
	doc := `objects:
  - name: Bad
    vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
    polygons:
      - indices: [0, 1, 2]
        texture: missing_uv.tga
`
	if _, err := Load(writeScene(t, doc)); err == nil {
		t.Error("expected error for textured face without uv")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
