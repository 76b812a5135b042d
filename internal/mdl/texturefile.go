package mdl

import (
	"fmt"
	"io"
)

// TexBlock is one baked texture's serialized color words, tagged with
// the owning object and its run-wide texture index.
type TexBlock struct {
	Label string // e.g. "Hull_tex0"
	Words []uint16
}

// TexDef is one texture-table row: sprite dimensions plus the byte
// offset of its data within color RAM.
type TexDef struct {
	Width  int
	Height int
	Offset int
}

// PicDef is one picture-table row binding a texture index to its data.
type PicDef struct {
	Index int
	Label string
}

// wordsPerRow is the fixed row width of serialized color-word tables.
const wordsPerRow = 8

// WriteTextureData emits the texture data artifact: the sorted palette
// table, every TEXDAT block, then the runtime upload function copying
// each block to color RAM at its recorded offset.
func WriteTextureData(w io.Writer, base string, palette []uint16, blocks []TexBlock, defs []TexDef) error {
	baseName := SafeName(base)

	fmt.Fprintf(w, "Uint16 palette_%s[%d] = {\n", baseName, len(palette))
	writeWordRows(w, palette)
	fmt.Fprintf(w, "};\n\n")

	for _, blk := range blocks {
		fmt.Fprintf(w, "TEXDAT %s[] = {\n", blk.Label)
		writeWordRows(w, blk.Words)
		fmt.Fprintf(w, "};\n\n")
	}

	fmt.Fprintf(w, "void %s_LoadTextures() {\n", FuncName(base))
	for i, blk := range blocks {
		off := 0
		if i < len(defs) {
			off = defs[i].Offset
		}
		fmt.Fprintf(w, "   slDMACopy((void *)%s, (void *)(CGADDRESS+%d), sizeof(%s));\n", blk.Label, off, blk.Label)
	}
	fmt.Fprintf(w, "}\n")

	return nil
}

// writeWordRows serializes color words eight per row, matching the
// original table layout.
func writeWordRows(w io.Writer, words []uint16) {
	for i, word := range words {
		switch i % wordsPerRow {
		case 0:
			fmt.Fprintf(w, "   0x%x,", word)
		case wordsPerRow - 1:
			fmt.Fprintf(w, "0x%x,\n", word)
		default:
			fmt.Fprintf(w, "0x%x,", word)
		}
	}
	if len(words)%wordsPerRow != 0 {
		fmt.Fprintf(w, "\n")
	}
}

// WriteTextureTable emits the TEXDEF table, one row per baked texture.
func WriteTextureTable(w io.Writer, defs []TexDef) error {
	fmt.Fprintf(w, "// Number of Textures:%9d\n", len(defs))
	if len(defs) > 0 {
		for _, d := range defs {
			fmt.Fprintf(w, "   TEXDEF(%3d, %3d, CGADDRESS+%9d),\n", d.Width, d.Height, d.Offset)
		}
	} else {
		fmt.Fprintf(w, "// No textures to define!")
	}
	fmt.Fprintf(w, "// Include this in a master texture table\n")
	return nil
}

// WritePictureTable emits the PICDEF table, one row per baked texture.
func WritePictureTable(w io.Writer, pics []PicDef) error {
	fmt.Fprintf(w, "// Number of Pictures:%9d\n", len(pics))
	if len(pics) > 0 {
		for _, p := range pics {
			fmt.Fprintf(w, "   PICDEF(texdef+%3d, COL_32K, %s),\n", p.Index, p.Label)
		}
	} else {
		fmt.Fprintf(w, "// No pictures to define!")
	}
	fmt.Fprintf(w, "// Include this in a master picture table\n")
	return nil
}

// WritePictureDef emits the _DEF.ini with the base texture-number symbol.
func WritePictureDef(w io.Writer, base string) error {
	fmt.Fprintf(w, "#define %s 0", TexDefName(base))
	return nil
}
