package main

import (
	"flag"
	"fmt"
	"os"

	"saturn-mdl-export/internal/scene"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect <scene.yaml>")
		os.Exit(1)
	}

	sc, err := scene.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scene: %s\n", sc.Name)
	fmt.Printf("Objects: %d, Lights: %d, Textured: %v\n", len(sc.MeshObjects()), len(sc.Lights), sc.HasTextures())

	for _, obj := range sc.MeshObjects() {
		quads, tris, other, textured := 0, 0, 0, 0
		for i := range obj.Mesh.Polygons {
			p := &obj.Mesh.Polygons[i]
			switch len(p.Indices) {
			case 4:
				quads++
			case 3:
				tris++
			default:
				other++
			}
			if p.Textured() {
				textured++
			}
		}

		role := "root"
		if !obj.IsRoot() {
			role = "child of " + obj.Parent
		}
		fmt.Printf("\n%s (%s)\n", obj.Name, role)
		fmt.Printf("  vertices: %d\n", len(obj.Mesh.Vertices))
		fmt.Printf("  polygons: %d (%d quads, %d tris", len(obj.Mesh.Polygons), quads, tris)
		if other > 0 {
			fmt.Printf(", %d UNSUPPORTED", other)
		}
		fmt.Printf(")\n")
		fmt.Printf("  textured faces: %d, vertex colors: %v\n", textured, obj.Mesh.HasColorLayer)
	}
}
