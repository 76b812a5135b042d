package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"saturn-mdl-export/internal/mathutil"
)

// Document schema for scene snapshots. Vertices and polygon fields map
// 1:1 onto the host read interface the pipeline consumes.
type docScene struct {
	Name    string      `yaml:"name"`
	Objects []docObject `yaml:"objects"`
	Lights  []docLight  `yaml:"lights"`
}

type docObject struct {
	Name     string       `yaml:"name"`
	Parent   string       `yaml:"parent"`
	Smooth   bool         `yaml:"smooth"`
	Vertices [][3]float64 `yaml:"vertices"`
	Polygons []docPolygon `yaml:"polygons"`
}

type docPolygon struct {
	Indices []int        `yaml:"indices"`
	Normal  *[3]float64  `yaml:"normal"`
	Texture string       `yaml:"texture"`
	UV      [][2]float64 `yaml:"uv"`
	Colors  [][3]float64 `yaml:"colors"`
}

type docLight struct {
	Name      string      `yaml:"name"`
	Direction *[3]float64 `yaml:"direction"`
}

// Load reads a YAML scene document. When the document omits a face
// normal it is synthesized from the first three vertices; when it omits
// the scene name the file stem is used.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var doc docScene
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	sc := &Scene{Name: doc.Name}
	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	for _, do := range doc.Objects {
		obj := &Object{
			Name:   do.Name,
			Parent: do.Parent,
			Mesh:   Mesh{Vertices: do.Vertices},
		}

		for pi, dp := range do.Polygons {
			poly := Polygon{
				Indices: dp.Indices,
				Texture: dp.Texture,
				UVs:     dp.UV,
				Colors:  dp.Colors,
				Smooth:  do.Smooth,
			}
			if dp.Normal != nil {
				poly.Normal = *dp.Normal
			} else {
				poly.Normal = faceNormal(do.Vertices, dp.Indices)
			}
			if len(dp.Colors) > 0 {
				obj.Mesh.HasColorLayer = true
			}
			if dp.Texture != "" {
				obj.Mesh.HasUVLayer = true
				if len(dp.UV) == 0 {
					return nil, fmt.Errorf("scene: %s polygon %d: texture %q without uv coordinates", do.Name, pi, dp.Texture)
				}
			}
			obj.Mesh.Polygons = append(obj.Mesh.Polygons, poly)
		}

		sc.Objects = append(sc.Objects, obj)
	}

	for _, dl := range doc.Lights {
		l := Light{Name: dl.Name, Direction: [3]float64{0, 0, -1}}
		if dl.Direction != nil {
			l.Direction = *dl.Direction
		}
		sc.Lights = append(sc.Lights, l)
	}

	return sc, nil
}

// faceNormal synthesizes a unit normal from the first three corners.
// Out-of-range indices leave the normal zero; the geometry encoder
// reports those polygons later.
func faceNormal(verts [][3]float64, indices []int) [3]float64 {
	if len(indices) < 3 {
		return [3]float64{}
	}
	for _, idx := range indices[:3] {
		if idx < 0 || idx >= len(verts) {
			return [3]float64{}
		}
	}
	a := mathutil.Vec3(verts[indices[0]])
	b := mathutil.Vec3(verts[indices[1]])
	c := mathutil.Vec3(verts[indices[2]])
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return [3]float64(n)
}
