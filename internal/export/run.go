// Package export sequences one scene snapshot through the encoding
// pipeline and writes the three output artifacts.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"saturn-mdl-export/internal/logger"
	"saturn-mdl-export/internal/mdl"
	"saturn-mdl-export/internal/scene"
	"saturn-mdl-export/internal/sgl"
)

// Exporter holds the settings for one export run.
type Exporter struct {
	Scale          float64 // coordinate scale applied before fixed-point conversion
	SpriteSize     int     // baked sprite edge (32 or 64)
	CameraDistance float64 // root Z default in the generated initialiser
	Preview        bool    // dump baked sprites as WebP
	Baker          scene.Baker
}

// Result holds the outcome of processing one object.
type Result struct {
	Name     string `json:"name"`
	Polygons int    `json:"polygons"`
	Textures int    `json:"textures"`
	Skipped  int    `json:"skipped"` // polygons with unsupported vertex counts
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// Artifacts lists the files one run produced.
type Artifacts struct {
	ModelPath    string
	CodePath     string
	TexturePaths []string
}

// Run exports one scene snapshot into dirPath under the given base name.
// An empty object set is a clean no-op: no files are written. A failure
// while encoding one object is reported and the remaining objects are
// still processed; a host bake failure aborts the texture artifact and
// propagates as the returned error.
func (e *Exporter) Run(sc *scene.Scene, dirPath, base string) (*Artifacts, []Result, error) {
	objects := sc.MeshObjects()
	if len(objects) == 0 {
		logger.Sugar.Infow("no objects to process", "scene", sc.Name)
		return nil, nil, nil
	}

	baseName := mdl.SafeName(base)
	hasTextures := sc.HasTextures()
	run := &sgl.Run{TexDef: mdl.TexDefName(base)}
	pal := sgl.NewPalette()

	mode := scene.BakeTexture
	if sc.HasLights() {
		mode = scene.BakeCombined
	}

	artifacts := &Artifacts{
		ModelPath: filepath.Join(dirPath, baseName+".mdl"),
		CodePath:  filepath.Join(dirPath, baseName+".c"),
	}

	mdlFile, err := os.Create(artifacts.ModelPath)
	if err != nil {
		return nil, nil, fmt.Errorf("export: create %s: %w", artifacts.ModelPath, err)
	}
	defer mdlFile.Close()

	mw := mdl.NewModelWriter(mdlFile, baseName)
	names := make([]string, len(objects))
	for i, obj := range objects {
		names[i] = obj.Name
	}
	if err := mw.WriteHeader(names, hasTextures); err != nil {
		return nil, nil, fmt.Errorf("export: header: %w", err)
	}

	var (
		results []Result
		blocks  []mdl.TexBlock
		defs    []mdl.TexDef
		pics    []mdl.PicDef
		sprites []bakedSprite
		bakeErr error
	)

	for _, obj := range objects {
		res := Result{Name: obj.Name}

		points, polys, err := sgl.EncodeGeometry(&obj.Mesh, e.Scale)
		if err != nil {
			res.Error = err.Error()
			logger.Sugar.Errorw("object skipped", "object", obj.Name, "error", err)
			results = append(results, res)
			continue
		}

		attrs := sgl.ResolveAttributes(&obj.Mesh, run)
		if err := mw.WriteObject(obj.Name, points, polys, attrs, run.TexDef); err != nil {
			res.Error = err.Error()
			logger.Sugar.Errorw("object write failed", "object", obj.Name, "error", err)
			results = append(results, res)
			continue
		}

		res.Polygons = len(polys)
		for i := range polys {
			if polys[i].Unsupported {
				res.Skipped++
			}
		}
		if res.Skipped > 0 {
			logger.Sugar.Warnw("unsupported faces flagged", "object", obj.Name, "count", res.Skipped)
		}
		for i := range attrs {
			if attrs[i].Textured {
				res.Textures++
			}
		}

		if hasTextures && bakeErr == nil && obj.Mesh.HasUVLayer {
			objBlocks, objDefs, objPics, objSprites, err := e.bakeObject(obj, attrs, run, pal, mode)
			if err != nil {
				// Host bake failures are not recovered here: the
				// texture artifact is abandoned and the error is
				// returned to the caller after the remaining
				// geometry is written.
				bakeErr = fmt.Errorf("export: bake %s: %w", obj.Name, err)
				res.Error = bakeErr.Error()
			}
			blocks = append(blocks, objBlocks...)
			defs = append(defs, objDefs...)
			pics = append(pics, objPics...)
			sprites = append(sprites, objSprites...)
		}

		res.Success = res.Error == ""
		results = append(results, res)
	}

	codeFile, err := os.Create(artifacts.CodePath)
	if err != nil {
		return artifacts, results, fmt.Errorf("export: create %s: %w", artifacts.CodePath, err)
	}
	defer codeFile.Close()

	h := mdl.Hierarchy{Base: baseName, CameraDistance: e.CameraDistance}
	if len(objects) == 1 {
		h.Single = objects[0].Name
	} else {
		for _, obj := range objects {
			if obj.IsRoot() {
				h.Children = append(h.Children, obj.Name)
			}
		}
	}
	if err := mdl.WriteCode(codeFile, h); err != nil {
		return artifacts, results, fmt.Errorf("export: code: %w", err)
	}

	if hasTextures && bakeErr == nil {
		paths, err := e.writeTextureArtifacts(dirPath, baseName, base, pal, blocks, defs, pics, sprites)
		if err != nil {
			return artifacts, results, err
		}
		artifacts.TexturePaths = paths
	}

	manifestPath := filepath.Join(dirPath, baseName+"_manifest.json")
	if err := WriteManifest(manifestPath, results); err != nil {
		logger.Sugar.Warnw("manifest write failed", "error", err)
	}

	return artifacts, results, bakeErr
}

// writeTextureArtifacts emits the TEXTURES directory: data file, texture
// table, picture table and the texture-number define.
func (e *Exporter) writeTextureArtifacts(dirPath, baseName, base string, pal *sgl.Palette, blocks []mdl.TexBlock, defs []mdl.TexDef, pics []mdl.PicDef, sprites []bakedSprite) ([]string, error) {
	texDir := filepath.Join(dirPath, "TEXTURES")
	if err := os.MkdirAll(texDir, 0755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", texDir, err)
	}

	if pal.Dropped() > 0 {
		logger.Sugar.Warnw("palette full, colors dropped",
			"kept", pal.Len(), "dropped", pal.Dropped())
	}

	type fileJob struct {
		name  string
		write func(f *os.File) error
	}
	jobs := []fileJob{
		{baseName + ".txr", func(f *os.File) error {
			return mdl.WriteTextureData(f, base, pal.Finalize(), blocks, defs)
		}},
		{baseName + "_TEX.tbl", func(f *os.File) error {
			return mdl.WriteTextureTable(f, defs)
		}},
		{baseName + "_PIC.tbl", func(f *os.File) error {
			return mdl.WritePictureTable(f, pics)
		}},
		{baseName + "_DEF.ini", func(f *os.File) error {
			return mdl.WritePictureDef(f, base)
		}},
	}

	var paths []string
	for _, job := range jobs {
		path := filepath.Join(texDir, job.name)
		f, err := os.Create(path)
		if err != nil {
			return paths, fmt.Errorf("export: create %s: %w", path, err)
		}
		err = job.write(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, fmt.Errorf("export: write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	if e.Preview {
		if err := writePreviews(filepath.Join(texDir, "preview"), sprites); err != nil {
			logger.Sugar.Warnw("preview write failed", "error", err)
		}
	}

	return paths, nil
}
