package mdl

import (
	"fmt"
	"io"

	"saturn-mdl-export/internal/sgl"
)

// ModelWriter emits the geometry/attribute artifact: per object a POINT
// array, a POLYGON array, an ATTR array and the XPDATA record binding
// them together.
type ModelWriter struct {
	w    io.Writer
	base string
}

// NewModelWriter wraps w for the given export base name.
func NewModelWriter(w io.Writer, base string) *ModelWriter {
	return &ModelWriter{w: w, base: base}
}

// WriteHeader emits the model comment block and, when any texture is
// referenced, the include/define preamble.
func (mw *ModelWriter) WriteHeader(objectNames []string, hasTextures bool) error {
	fmt.Fprintf(mw.w, "/* Model Name: %s */\n", mw.base)
	fmt.Fprintf(mw.w, "/* Total Objects: %d */\n", len(objectNames))
	fmt.Fprintf(mw.w, "/*\n")
	for _, name := range objectNames {
		fmt.Fprintf(mw.w, "    -%s\n", SafeName(name))
	}
	fmt.Fprintf(mw.w, "*/\n\n")

	if hasTextures {
		fmt.Fprintf(mw.w, "#include \"sgl.h\"\n")
		fmt.Fprintf(mw.w, "#include \"TEXTURES/%s_DEF.ini\"\n", mw.base)
		fmt.Fprintf(mw.w, "#define GRaddr 0xe000\n\n")
	}
	return nil
}

// WriteObject emits one object's four sections. texDef is the texture
// preprocessor symbol indices are offsets of; it is only referenced when
// an attribute is textured.
func (mw *ModelWriter) WriteObject(name string, points []sgl.Point, polys []sgl.PolygonRec, attrs []sgl.Attribute, texDef string) error {
	objName := SafeName(name)

	fmt.Fprintf(mw.w, "POINT point_%s[%d] = {\n", objName, len(points))
	for _, p := range points {
		fmt.Fprintf(mw.w, "   POStoFIXED(%9.6f, %9.6f, %9.6f),\n", p[0], p[1], p[2])
	}
	fmt.Fprintf(mw.w, "};\n\n")

	fmt.Fprintf(mw.w, "POLYGON polygon_%s[%d] = {\n", objName, len(polys))
	for _, rec := range polys {
		if rec.Unsupported {
			fmt.Fprintf(mw.w, "//CANNOT CONVERT THIS FACE!\n")
			continue
		}
		fmt.Fprintf(mw.w, "   NORMAL(%9.6f, %9.6f, %9.6f), VERTICES(%3d,%3d,%3d,%3d),\n",
			rec.Normal[0], rec.Normal[1], rec.Normal[2],
			rec.Vertices[0], rec.Vertices[1], rec.Vertices[2], rec.Vertices[3])
	}
	fmt.Fprintf(mw.w, "};\n\n")

	fmt.Fprintf(mw.w, "ATTR attribute_%s[%d] = {\n", objName, len(attrs))
	for _, a := range attrs {
		texno, spr, colno := "No_Texture", "sprPolygon", "MESHoff|CL_Gouraud"
		if a.Textured {
			// Textured faces use 32K color mode and suppress flat
			// Gouraud in favor of texture-modulated color.
			texno = fmt.Sprintf("%s+%d", texDef, a.TexIndex)
			spr = "sprNoflip"
			colno = "CL32KRGB|MESHoff|CL_Gouraud"
		}
		fmt.Fprintf(mw.w, "   ATTRIBUTE(Single_Plane, SORT_CEN, %s, C_RGB(%d, %d, %d), No_Gouraud, %s, %s, No_Option),\n",
			texno, a.Color[0], a.Color[1], a.Color[2], colno, spr)
	}
	fmt.Fprintf(mw.w, "};\n\n")

	fmt.Fprintf(mw.w, "VECTOR vector_%s[sizeof(point_%s) / sizeof(POINT)];\n\n", objName, objName)
	fmt.Fprintf(mw.w, "XPDATA XPD_%s[6] = {\n", objName)
	fmt.Fprintf(mw.w, "   point_%s, sizeof(point_%s)/sizeof(POINT),\n", objName, objName)
	fmt.Fprintf(mw.w, "   polygon_%s, sizeof(polygon_%s)/sizeof(POLYGON),\n", objName, objName)
	fmt.Fprintf(mw.w, "   attribute_%s,\n", objName)
	fmt.Fprintf(mw.w, "   vector_%s,\n", objName)
	fmt.Fprintf(mw.w, "};\n\n")

	return nil
}
