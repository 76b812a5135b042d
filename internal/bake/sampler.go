package bake

import "image"

// sampleTexture performs bilinear filtering with UV wrapping.
// Returns RGBA as uint8. Accesses tex.Pix directly for performance.
func sampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	// Wrap UVs
	u = u - float64(int(u))
	if u < 0 {
		u += 1.0
	}
	v = v - float64(int(v))
	if v < 0 {
		v += 1.0
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	fr := float64(pix[i00])*w00 + float64(pix[i10])*w10 + float64(pix[i01])*w01 + float64(pix[i11])*w11
	fg := float64(pix[i00+1])*w00 + float64(pix[i10+1])*w10 + float64(pix[i01+1])*w01 + float64(pix[i11+1])*w11
	fb := float64(pix[i00+2])*w00 + float64(pix[i10+2])*w10 + float64(pix[i01+2])*w01 + float64(pix[i11+2])*w11
	fa := float64(pix[i00+3])*w00 + float64(pix[i10+3])*w10 + float64(pix[i01+3])*w01 + float64(pix[i11+3])*w11

	return uint8(fr + 0.5), uint8(fg + 0.5), uint8(fb + 0.5), uint8(fa + 0.5)
}

// quadUV maps a sprite-buffer sample position (fx, fy in [0,1]) onto the
// face's UV quad. Triangles repeat their first corner as the fourth.
func quadUV(uvs [][2]float64, fx, fy float64) (u, v float64) {
	c0 := uvs[0]
	c1 := uvs[1%len(uvs)]
	c2 := uvs[2%len(uvs)]
	c3 := c0
	if len(uvs) >= 4 {
		c3 = uvs[3]
	}

	// Bilinear patch over the authored corner order 0-1-2-3.
	topU := c0[0] + (c1[0]-c0[0])*fx
	topV := c0[1] + (c1[1]-c0[1])*fx
	botU := c3[0] + (c2[0]-c3[0])*fx
	botV := c3[1] + (c2[1]-c3[1])*fx

	return topU + (botU-topU)*fy, topV + (botV-topV)*fy
}
