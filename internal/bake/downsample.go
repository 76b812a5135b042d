package bake

import (
	"image"

	"golang.org/x/image/draw"
)

// downsample reduces a supersampled bake buffer to the target sprite
// size with CatmullRom filtering. Buffers already at or below the target
// pass through untouched.
func downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
