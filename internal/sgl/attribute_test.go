package sgl

import (
	"testing"

	"saturn-mdl-export/internal/scene"
)

func TestResolveAttributes_IndexAligned(t *testing.T) {
	m := &scene.Mesh{
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		Polygons: []scene.Polygon{
			{Indices: []int{0, 1, 2}},
			{Indices: []int{0, 1, 2, 0, 1}},
			{Indices: []int{2, 1, 0}},
		},
	}
	attrs := ResolveAttributes(m, &Run{})
	if len(attrs) != len(m.Polygons) {
		t.Fatalf("attribute count %d != polygon count %d", len(attrs), len(m.Polygons))
	}
}

func TestResolveAttributes_DefaultWhite(t *testing.T) {
	m := &scene.Mesh{
		Polygons: []scene.Polygon{{Indices: []int{0, 1, 2}}},
	}
	attrs := ResolveAttributes(m, &Run{})
	if attrs[0].Color != [3]int{31, 31, 31} {
		t.Errorf("default color = %v, want full white", attrs[0].Color)
	}
	if attrs[0].Textured {
		t.Error("untextured polygon marked textured")
	}
}

func TestResolveAttributes_LastLoopWins(t *testing.T) {
	m := &scene.Mesh{
		HasColorLayer: true,
		Polygons: []scene.Polygon{{
			Indices: []int{0, 1, 2, 3},
			Colors: [][3]float64{
				{1, 0, 0},
				{0, 1, 0},
				{0, 0, 1},
				{0.5, 0.5, 0.5},
			},
		}},
	}
	attrs := ResolveAttributes(m, &Run{})
	want := [3]int{15, 15, 15} // int(0.5*31)
	if attrs[0].Color != want {
		t.Errorf("color = %v, want last loop %v", attrs[0].Color, want)
	}
}

func TestResolveAttributes_ColorsIgnoredWithoutActiveLayer(t *testing.T) {
	m := &scene.Mesh{
		HasColorLayer: false,
		Polygons: []scene.Polygon{{
			Indices: []int{0, 1, 2},
			Colors:  [][3]float64{{0, 0, 0}},
		}},
	}
	attrs := ResolveAttributes(m, &Run{})
	if attrs[0].Color != [3]int{31, 31, 31} {
		t.Errorf("color = %v, want default white when layer inactive", attrs[0].Color)
	}
}

func TestResolveAttributes_CounterStrictlyIncreasesAcrossMeshes(t *testing.T) {
	run := &Run{}
	mk := func(textured ...bool) *scene.Mesh {
		m := &scene.Mesh{HasUVLayer: true}
		for _, tx := range textured {
			p := scene.Polygon{Indices: []int{0, 1, 2}}
			if tx {
				p.Texture = "checker.tga"
				p.UVs = [][2]float64{{0, 0}, {1, 0}, {1, 1}}
			}
			m.Polygons = append(m.Polygons, p)
		}
		return m
	}

	a := ResolveAttributes(mk(true, false, true), run)
	b := ResolveAttributes(mk(true), run)

	var got []int
	for _, attrs := range [][]Attribute{a, b} {
		for _, at := range attrs {
			if at.Textured {
				got = append(got, at.TexIndex)
			}
		}
	}
	for i, idx := range got {
		if idx != i {
			t.Fatalf("texture indices = %v, want strictly sequential from 0", got)
		}
	}
	if run.TextureCount() != 3 {
		t.Errorf("TextureCount() = %d, want 3", run.TextureCount())
	}
}

func TestRun_AdvanceTextureBytes(t *testing.T) {
	run := &Run{}
	if off := run.AdvanceTextureBytes(32, 32); off != 0 {
		t.Errorf("first offset = %d, want 0", off)
	}
	if off := run.AdvanceTextureBytes(32, 32); off != 2048 {
		t.Errorf("second offset = %d, want 2048", off)
	}
	if run.TextureBytes() != 4096 {
		t.Errorf("TextureBytes() = %d, want 4096", run.TextureBytes())
	}
}
