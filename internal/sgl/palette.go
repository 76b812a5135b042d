package sgl

import "slices"

// PaletteMax is the hardware ceiling on loadable palette entries.
const PaletteMax = 256

// Palette accumulates unique packed colors across all baked textures in
// one export run. Once the cap is reached further colors are dropped
// silently; texture data emitted before finalize still references the
// dropped words. The count of dropped colors is kept for reporting.
type Palette struct {
	colors  map[uint16]struct{}
	dropped int
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{colors: make(map[uint16]struct{})}
}

// Add records a packed color. Duplicates are free; new colors past the
// cap are dropped.
func (p *Palette) Add(c uint16) {
	if _, ok := p.colors[c]; ok {
		return
	}
	if len(p.colors) >= PaletteMax {
		p.dropped++
		return
	}
	p.colors[c] = struct{}{}
}

// Len returns the number of unique colors held.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Dropped returns how many unique colors were discarded past the cap.
func (p *Palette) Dropped() int {
	return p.dropped
}

// Finalize returns the palette sorted ascending by packed value, so the
// emitted table is deterministic regardless of insertion order.
func (p *Palette) Finalize() []uint16 {
	out := make([]uint16, 0, len(p.colors))
	for c := range p.colors {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
