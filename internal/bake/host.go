// Package bake renders a face's material into a fixed-size sprite
// buffer: the texture is sampled across the face's UV quad, optionally
// modulated by scene lighting, then reduced to the hardware sprite size.
package bake

import (
	"fmt"
	"image"

	"saturn-mdl-export/internal/mathutil"
	"saturn-mdl-export/internal/scene"
	"saturn-mdl-export/internal/texture"
)

// Host implements scene.Baker against a texture resolver. Scratch
// buffers are acquired per bake and released on every path, including
// failures.
type Host struct {
	Textures    texture.Resolver
	Supersample int           // bake at Supersample× sprite size, then downsample
	LightDir    mathutil.Vec3 // world-space light direction for lit bakes

	scratch []*image.NRGBA // freelist of released bake buffers
}

// NewHost creates a bake host. A zero supersample factor bakes at the
// sprite size directly.
func NewHost(textures texture.Resolver, supersample int, lightDir [3]float64) *Host {
	if supersample < 1 {
		supersample = 1
	}
	dir := mathutil.Vec3(lightDir).Normalize()
	if dir.Len() == 0 {
		dir = mathutil.Vec3{0, 0, -1}
	}
	return &Host{Textures: textures, Supersample: supersample, LightDir: dir}
}

// BakeFace renders one face's texture into a size×size NRGBA buffer.
// BakeCombined applies a Lambert term from the face normal; smooth-shaded
// objects get a softer ambient floor.
func (h *Host) BakeFace(obj *scene.Object, face int, size int, mode scene.BakeMode) (*image.NRGBA, error) {
	if face < 0 || face >= len(obj.Mesh.Polygons) {
		return nil, fmt.Errorf("bake: %s: face %d out of range", obj.Name, face)
	}
	poly := &obj.Mesh.Polygons[face]
	if !poly.Textured() {
		return nil, fmt.Errorf("bake: %s: face %d has no texture binding", obj.Name, face)
	}
	if len(poly.UVs) < 3 {
		return nil, fmt.Errorf("bake: %s: face %d has %d uv corners", obj.Name, face, len(poly.UVs))
	}

	tex := h.Textures.Resolve(poly.Texture)
	if tex == nil {
		return nil, fmt.Errorf("bake: %s: texture %q not found", obj.Name, poly.Texture)
	}

	shade := 1.0
	if mode == scene.BakeCombined {
		shade = h.lambert(poly.Normal, obj.SmoothShaded())
	}

	bakeSize := size * h.Supersample
	buf := h.acquire(bakeSize)
	defer h.release(buf)

	inv := 1.0 / float64(bakeSize)
	for y := 0; y < bakeSize; y++ {
		fy := (float64(y) + 0.5) * inv
		for x := 0; x < bakeSize; x++ {
			fx := (float64(x) + 0.5) * inv
			u, v := quadUV(poly.UVs, fx, fy)
			r, g, b, a := sampleTexture(tex, u, v)

			i := buf.PixOffset(x, y)
			buf.Pix[i] = uint8(float64(r) * shade)
			buf.Pix[i+1] = uint8(float64(g) * shade)
			buf.Pix[i+2] = uint8(float64(b) * shade)
			buf.Pix[i+3] = a
		}
	}

	out := downsample(buf, size)
	if out == buf {
		// The buffer returns to the freelist; hand back a copy.
		out = image.NewNRGBA(buf.Rect)
		copy(out.Pix, buf.Pix)
	}
	return out, nil
}

// lambert computes the flat lighting term for a face normal. Flat-shaded
// objects darken harder toward back-facing normals.
func (h *Host) lambert(normal [3]float64, smooth bool) float64 {
	ambient := 0.25
	if smooth {
		ambient = 0.4
	}
	d := mathutil.Vec3(normal).Normalize().Dot(h.LightDir.Scale(-1))
	if d < 0 {
		d = 0
	}
	return ambient + (1-ambient)*d
}

func (h *Host) acquire(size int) *image.NRGBA {
	for i := len(h.scratch) - 1; i >= 0; i-- {
		buf := h.scratch[i]
		if buf.Rect.Dx() == size {
			h.scratch = append(h.scratch[:i], h.scratch[i+1:]...)
			return buf
		}
	}
	return image.NewNRGBA(image.Rect(0, 0, size, size))
}

func (h *Host) release(buf *image.NRGBA) {
	h.scratch = append(h.scratch, buf)
}
