package mdl

import (
	"strings"
	"testing"
)

func TestWriteCode_SingleObjectInlinesDraw(t *testing.T) {
	var buf strings.Builder
	err := WriteCode(&buf, Hierarchy{Base: "cube", Single: "Cube!"})
	if err != nil {
		t.Fatalf("WriteCode: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"#include \"cube.mdl\"\n",
		"// ROOT MATRIX",
		"FIXED cube_pos[XYZ];",
		"ANGLE cube_ang[XYZ];",
		"FIXED cube_scl[XYZ];",
		"void Cube_Initialise() {",
		"void Cube_Draw(FIXED *light)",
		"slPutPolygonX(&XPD_Cube, light);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if n := strings.Count(out, "_Draw(FIXED *light)"); n != 1 {
		t.Errorf("draw function count = %d, want 1 (single-object short-circuit)", n)
	}
	if strings.Contains(out, "_Draw(light);") {
		t.Error("single-object scene must not dispatch to child draw functions")
	}
}

func TestWriteCode_MultiObjectHierarchy(t *testing.T) {
	var buf strings.Builder
	err := WriteCode(&buf, Hierarchy{
		Base:     "ship",
		Children: []string{"Hull"}, // the second object has a parent, so no draw function
	})
	if err != nil {
		t.Fatalf("WriteCode: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"void Hull_Draw(FIXED *light)",
		"slPutPolygonX(&XPD_Hull, light);",
		"void Ship_Draw(FIXED *light)",
		"       Hull_Draw(light);",
		"void Ship_Initialise() {",
		"hull_pos[X] = hull_pos[Y] = hull_pos[Z] = toFIXED(0.0);",
		"hull_scl[X] = hull_scl[Y] = hull_scl[Z] = toFIXED(1.0);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if n := strings.Count(out, "slPushMatrix();"); n != 2 {
		t.Errorf("slPushMatrix count = %d, want 2", n)
	}
	if n := strings.Count(out, "slPopMatrix();"); n != 2 {
		t.Errorf("slPopMatrix count = %d, want 2", n)
	}
}

func TestWriteCode_TransformOrder(t *testing.T) {
	var buf strings.Builder
	WriteCode(&buf, Hierarchy{Base: "cube", Single: "Cube"})
	out := buf.String()

	order := []string{"slTranslate(", "slScale(", "slRotX(", "slRotY(", "slRotZ("}
	last := -1
	for _, call := range order {
		i := strings.Index(out, call)
		if i < 0 {
			t.Fatalf("output missing %q", call)
		}
		if i < last {
			t.Fatalf("%q out of order", call)
		}
		last = i
	}
}

func TestWriteCode_CameraDistanceDefault(t *testing.T) {
	var buf strings.Builder
	WriteCode(&buf, Hierarchy{Base: "cube", Single: "Cube", CameraDistance: 170})
	out := buf.String()

	if !strings.Contains(out, "cube_pos[Z] = toFIXED(170.0);") {
		t.Error("root Z not initialised to camera distance")
	}
	if !strings.Contains(out, "cube_pos[X] = cube_pos[Y] = toFIXED(0.0);") {
		t.Error("root X/Y must still zero")
	}
}
