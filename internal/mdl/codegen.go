package mdl

import (
	"fmt"
	"io"
)

// Hierarchy describes the two-tier draw structure the code generator
// emits: a root matrix named after the export base plus a flat list of
// parentless mesh objects drawn under it. Objects with a parent are
// encoded but receive no draw function of their own.
type Hierarchy struct {
	Base     string
	Children []string // parentless mesh object names, scene order

	// Single holds the sole mesh object's name when the scene contains
	// exactly one; the root draw function then inlines the draw call and
	// no child draw functions are emitted.
	Single string

	// CameraDistance, when nonzero, initialises the root matrix Z
	// position to a platform camera-distance default instead of zero.
	CameraDistance float64
}

// WriteCode emits the hierarchy code artifact: transform-state
// declarations, the combined initialiser and one draw function per
// hierarchy node, applying translate→scale→rotX→rotY→rotZ in fixed order.
func WriteCode(w io.Writer, h Hierarchy) error {
	fmt.Fprintf(w, "#include \"%s.mdl\"\n\n", h.Base)

	multi := h.Single == ""

	if multi {
		for _, name := range h.Children {
			id := CIdent(name)
			fmt.Fprintf(w, "// %s model Properties\n", FuncName(name))
			writeStateDecls(w, id)
		}
	}

	rootID := CIdent(h.Base)
	fmt.Fprintf(w, "// ROOT MATRIX\n")
	writeStateDecls(w, rootID)

	fmt.Fprintf(w, "void %s_Initialise() {\n", FuncName(h.Base))
	if multi {
		for _, name := range h.Children {
			writeStateInit(w, CIdent(name), 0)
		}
	}
	writeStateInit(w, rootID, h.CameraDistance)
	fmt.Fprintf(w, "}\n\n")

	if multi {
		for _, name := range h.Children {
			id := CIdent(name)
			fmt.Fprintf(w, "void %s_Draw(FIXED *light)\n", FuncName(name))
			writeTransforms(w, id)
			fmt.Fprintf(w, "       // Code to draw the object's polygons\n")
			fmt.Fprintf(w, "       slPutPolygonX(&XPD_%s, light);\n", SafeName(name))
			fmt.Fprintf(w, "   }\n")
			fmt.Fprintf(w, "   slPopMatrix();\n")
			fmt.Fprintf(w, "}\n\n")
		}
	}

	fmt.Fprintf(w, "void %s_Draw(FIXED *light)\n", FuncName(h.Base))
	writeTransforms(w, rootID)
	if multi {
		for _, name := range h.Children {
			fmt.Fprintf(w, "       %s_Draw(light);\n", FuncName(name))
		}
	} else {
		fmt.Fprintf(w, "       slPutPolygonX(&XPD_%s, light);\n", SafeName(h.Single))
	}
	fmt.Fprintf(w, "   }\n")
	fmt.Fprintf(w, "   slPopMatrix();\n")
	fmt.Fprintf(w, "}\n\n")

	return nil
}

func writeStateDecls(w io.Writer, id string) {
	fmt.Fprintf(w, "FIXED %s_pos[XYZ];\n", id)
	fmt.Fprintf(w, "ANGLE %s_ang[XYZ];\n", id)
	fmt.Fprintf(w, "FIXED %s_scl[XYZ];\n\n", id)
}

func writeStateInit(w io.Writer, id string, zDistance float64) {
	fmt.Fprintf(w, "  // Initialise %s properties\n", id)
	if zDistance != 0 {
		fmt.Fprintf(w, "  %s_pos[X] = %s_pos[Y] = toFIXED(0.0);\n", id, id)
		fmt.Fprintf(w, "  %s_pos[Z] = toFIXED(%.1f);\n", id, zDistance)
	} else {
		fmt.Fprintf(w, "  %s_pos[X] = %s_pos[Y] = %s_pos[Z] = toFIXED(0.0);\n", id, id, id)
	}
	fmt.Fprintf(w, "  %s_ang[X] = %s_ang[Y] = %s_ang[Z] = DEGtoANG(0.0);\n", id, id, id)
	fmt.Fprintf(w, "  %s_scl[X] = %s_scl[Y] = %s_scl[Z] = toFIXED(1.0);\n\n", id, id, id)
}

func writeTransforms(w io.Writer, id string) {
	fmt.Fprintf(w, "{\n")
	fmt.Fprintf(w, "   slPushMatrix();\n")
	fmt.Fprintf(w, "   {\n")
	fmt.Fprintf(w, "       slTranslate(%s_pos[X], %s_pos[Y], %s_pos[Z]);\n", id, id, id)
	fmt.Fprintf(w, "       slScale(%s_scl[X], %s_scl[Y], %s_scl[Z]);\n", id, id, id)
	fmt.Fprintf(w, "       slRotX(%s_ang[X]);\n", id)
	fmt.Fprintf(w, "       slRotY(%s_ang[Y]);\n", id)
	fmt.Fprintf(w, "       slRotZ(%s_ang[Z]);\n\n", id)
}
