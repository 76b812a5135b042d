package sgl

// Run carries the state shared across all objects of one export run:
// the monotonically increasing texture index and the running size of
// emitted texture data. A fresh Run is created at the start of every
// export so runs stay independent.
type Run struct {
	TexDef string // preprocessor symbol texture indices are offsets of, e.g. "SHIP_TEXNO"

	nextTexture  int
	textureBytes int
}

// NextTextureIndex assigns the next texture index. It strictly increases
// by one per textured polygon and never resets mid-run.
func (r *Run) NextTextureIndex() int {
	n := r.nextTexture
	r.nextTexture++
	return n
}

// TextureCount returns how many texture indices were assigned so far.
func (r *Run) TextureCount() int {
	return r.nextTexture
}

// AdvanceTextureBytes records w×h 16-bit words of emitted texture data
// and returns the byte offset the block starts at.
func (r *Run) AdvanceTextureBytes(w, h int) int {
	off := r.textureBytes
	r.textureBytes += w * h * 2
	return off
}

// TextureBytes returns the total size of emitted texture data in bytes.
func (r *Run) TextureBytes() int {
	return r.textureBytes
}
