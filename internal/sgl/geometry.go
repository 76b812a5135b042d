package sgl

import (
	"fmt"

	"saturn-mdl-export/internal/scene"
)

// Point is one scaled model-space position, ready for fixed-point
// conversion by the POStoFIXED macro on the target side.
type Point [3]float64

// PolygonRec is the fixed 4-index-plus-normal record used for both
// quads and triangles; a triangle repeats its first index in the fourth
// slot since the target format has no triangle primitive. Unsupported
// records mark faces with a vertex count outside {3,4}: they are not
// encoded but still hold their slot so downstream arrays stay
// index-aligned.
type PolygonRec struct {
	Normal      [3]float64
	Vertices    [4]int
	Unsupported bool
}

// EncodeGeometry converts one mesh into position and polygon arrays,
// preserving authored vertex and polygon order. Every vertex position is
// multiplied by scale before emission. A vertex index outside the mesh's
// vertex range is a hard error for the whole object.
func EncodeGeometry(m *scene.Mesh, scale float64) ([]Point, []PolygonRec, error) {
	points := make([]Point, len(m.Vertices))
	for i, v := range m.Vertices {
		points[i] = Point{v[0] * scale, v[1] * scale, v[2] * scale}
	}

	polys := make([]PolygonRec, len(m.Polygons))
	for i := range m.Polygons {
		p := &m.Polygons[i]

		n := len(p.Indices)
		if n != 3 && n != 4 {
			polys[i] = PolygonRec{Unsupported: true}
			continue
		}

		var rec PolygonRec
		rec.Normal = p.Normal
		for k, idx := range p.Indices {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, nil, fmt.Errorf("sgl: polygon %d: vertex index %d out of range [0,%d)", i, idx, len(m.Vertices))
			}
			rec.Vertices[k] = idx
		}
		if n == 3 {
			rec.Vertices[3] = p.Indices[0]
		}
		polys[i] = rec
	}

	return points, polys, nil
}
