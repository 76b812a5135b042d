// Package scene holds the authored scene snapshot consumed by the export
// pipeline: mesh objects, their polygons, vertex colors, UV/texture
// bindings and the parent hierarchy.
package scene

import "image"

// Polygon is one face of a mesh: 3 or 4 vertex indices, a face normal,
// an optional texture binding with per-corner UVs, and optional per-loop
// vertex colors.
type Polygon struct {
	Indices []int
	Normal  [3]float64
	Texture string       // source texture reference, "" when untextured
	UVs     [][2]float64 // one per corner when textured
	Colors  [][3]float64 // per-loop vertex colors, normalized [0,1]
	Smooth  bool
}

// Textured reports whether the face is bound to a source texture.
func (p *Polygon) Textured() bool {
	return p.Texture != ""
}

// Mesh holds one object's geometry in authored order.
type Mesh struct {
	Vertices [][3]float64
	Polygons []Polygon

	// HasColorLayer mirrors the host's "active vertex-color layer":
	// when false, per-loop colors are ignored even if present.
	HasColorLayer bool
	// HasUVLayer mirrors the host's "active UV layer": when false,
	// texture bindings are ignored.
	HasUVLayer bool
}

// Object is one mesh object in the scene. Parent is a name reference into
// the same scene, never an owning link.
type Object struct {
	Name   string
	Parent string
	Mesh   Mesh
}

// IsRoot reports whether the object has no parent.
func (o *Object) IsRoot() bool {
	return o.Parent == ""
}

// SmoothShaded reports the object's dominant shading mode: smooth when
// every face is smooth, flat when none is, smooth on a mix.
func (o *Object) SmoothShaded() bool {
	for i := range o.Mesh.Polygons {
		if o.Mesh.Polygons[i].Smooth {
			return true
		}
	}
	return false
}

// Light is a scene light source. Only its presence matters to the
// pipeline: it switches sprite baking into lit mode.
type Light struct {
	Name      string
	Direction [3]float64
}

// Scene is one snapshot of the authored scene.
type Scene struct {
	Name    string
	Objects []*Object
	Lights  []Light
}

// MeshObjects returns all objects in scene enumeration order. Every
// object in this model owns a mesh, so this is the full object list;
// the accessor keeps call sites aligned with the host's read interface.
func (s *Scene) MeshObjects() []*Object {
	return s.Objects
}

// HasLights reports whether the scene contains any light source.
func (s *Scene) HasLights() bool {
	return len(s.Lights) > 0
}

// HasTextures reports whether any face in the scene is bound to a
// texture through an active UV layer.
func (s *Scene) HasTextures() bool {
	for _, obj := range s.Objects {
		if !obj.Mesh.HasUVLayer {
			continue
		}
		for i := range obj.Mesh.Polygons {
			if obj.Mesh.Polygons[i].Textured() {
				return true
			}
		}
	}
	return false
}

// BakeMode selects how a sprite is baked.
type BakeMode int

const (
	// BakeTexture samples the source texture only (unlit).
	BakeTexture BakeMode = iota
	// BakeCombined modulates the texture by scene lighting.
	BakeCombined
)

// Baker is the host capability that renders one face's material into a
// fixed-size pixel buffer. It blocks until the bake completes or fails;
// a bake failure is not recoverable by the caller's face loop.
type Baker interface {
	BakeFace(obj *Object, face int, size int, mode BakeMode) (*image.NRGBA, error)
}
