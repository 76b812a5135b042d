package export

import (
	"fmt"
	"image"

	"saturn-mdl-export/internal/mdl"
	"saturn-mdl-export/internal/scene"
	"saturn-mdl-export/internal/sgl"
)

// bakedSprite keeps a baked pixel buffer alongside its block label for
// the optional WebP previews.
type bakedSprite struct {
	Label string
	Image *image.NRGBA
}

// bakeObject bakes every textured face of one object. Faces scan in mesh
// polygon order; each textured face reuses the texture index its
// attribute was assigned, quantizes every pixel into the run palette and
// serializes the packed words into a TEXDAT block. The first bake
// failure aborts the object's remaining faces.
func (e *Exporter) bakeObject(obj *scene.Object, attrs []sgl.Attribute, run *sgl.Run, pal *sgl.Palette, mode scene.BakeMode) ([]mdl.TexBlock, []mdl.TexDef, []mdl.PicDef, []bakedSprite, error) {
	var (
		blocks  []mdl.TexBlock
		defs    []mdl.TexDef
		pics    []mdl.PicDef
		sprites []bakedSprite
	)

	objName := mdl.SafeName(obj.Name)

	for i := range attrs {
		if !attrs[i].Textured {
			continue
		}

		img, err := e.Baker.BakeFace(obj, i, e.SpriteSize, mode)
		if err != nil {
			return blocks, defs, pics, sprites, err
		}

		w := img.Rect.Dx()
		h := img.Rect.Dy()
		if w != e.SpriteSize || h != e.SpriteSize {
			return blocks, defs, pics, sprites, fmt.Errorf("bake returned %dx%d buffer, want %dx%d", w, h, e.SpriteSize, e.SpriteSize)
		}

		words := make([]uint16, 0, w*h)
		for y := 0; y < h; y++ {
			row := img.Pix[y*img.Stride : y*img.Stride+w*4]
			for x := 0; x < w*4; x += 4 {
				word := sgl.Pack8(row[x], row[x+1], row[x+2])
				pal.Add(word)
				words = append(words, word)
			}
		}

		label := fmt.Sprintf("%s_tex%d", objName, attrs[i].TexIndex)
		offset := run.AdvanceTextureBytes(w, h)

		blocks = append(blocks, mdl.TexBlock{Label: label, Words: words})
		defs = append(defs, mdl.TexDef{Width: w, Height: h, Offset: offset})
		pics = append(pics, mdl.PicDef{Index: attrs[i].TexIndex, Label: label})
		sprites = append(sprites, bakedSprite{Label: label, Image: img})
	}

	return blocks, defs, pics, sprites, nil
}
