package sgl

import "saturn-mdl-export/internal/scene"

// Attribute is the resolved render attribute for one polygon: either a
// texture reference (index into the run's texture sequence) or a flat
// vertex color. The variant is decided once here and consumed everywhere
// else.
type Attribute struct {
	Textured bool
	TexIndex int    // valid only when Textured
	Color    [3]int // 5-bit channels, 0–31
}

// ResolveAttributes produces one attribute per polygon, index-aligned
// with EncodeGeometry's polygon array.
//
// Color: when the mesh has an active vertex-color layer the polygon's
// loops are scanned in order and the last loop wins (the original
// exporter's tie-break; consumers may depend on it). Without a layer the
// color defaults to full white. Textured faces additionally consume the
// run's texture index counter.
func ResolveAttributes(m *scene.Mesh, run *Run) []Attribute {
	attrs := make([]Attribute, len(m.Polygons))
	for i := range m.Polygons {
		p := &m.Polygons[i]

		r, g, b := 31, 31, 31
		if m.HasColorLayer {
			for _, c := range p.Colors {
				r = int(c[0] * 31)
				g = int(c[1] * 31)
				b = int(c[2] * 31)
			}
		}

		a := Attribute{Color: [3]int{r, g, b}}
		if m.HasUVLayer && p.Textured() {
			a.Textured = true
			a.TexIndex = run.NextTextureIndex()
		}
		attrs[i] = a
	}
	return attrs
}
