// Package sgl encodes scene geometry and materials into the fixed
// representations the Saturn graphics library consumes: 16.16 fixed-point
// points, 4-index polygon records, per-polygon attributes and 15-bit
// packed colors.
package sgl

// Pack converts a normalized RGB triple into the hardware's packed
// 15-bit color word: 5 bits per channel plus the fixed high marker bit.
// Channels are truncated, not rounded; inputs must already be in [0,1].
func Pack(r, g, b float64) uint16 {
	return uint16(b*31)<<10 | uint16(g*31)<<5 | uint16(r*31) | 0x8000
}

// Pack8 packs an 8-bit-per-channel sample.
func Pack8(r, g, b uint8) uint16 {
	return Pack(float64(r)/255.0, float64(g)/255.0, float64(b)/255.0)
}
