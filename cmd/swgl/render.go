package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/glrast/swgl/pkg/colour"
	"github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/math3d"
	"github.com/glrast/swgl/pkg/model"
	"github.com/glrast/swgl/pkg/pipeline"
	"github.com/glrast/swgl/pkg/shaders"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	sceneFlag := fs.String("scene", "", "Path to a TOML scene file")
	modelFlag := fs.String("model", "", "Path to an OBJ model (overrides scene)")
	textureFlag := fs.String("texture", "", "Path to a TGA texture (overrides scene)")
	outFlag := fs.String("out", "", "Path to write the rendered TGA (overrides scene)")
	shaderFlag := fs.String("shader", "", "flat, gouraud or phong (overrides scene)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: swgl render [options]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	scene := DefaultScene()
	if *sceneFlag != "" {
		loaded, err := LoadScene(*sceneFlag)
		if err != nil {
			return err
		}
		scene = loaded
	}
	if *modelFlag != "" {
		scene.Model = *modelFlag
	}
	if *textureFlag != "" {
		scene.Texture = *textureFlag
	}
	if *outFlag != "" {
		scene.Output = *outFlag
	}
	if *shaderFlag != "" {
		scene.Shader = *shaderFlag
	}
	if scene.Model == "" {
		return fmt.Errorf("render: no model given (-model or scene.model)")
	}

	m, err := loadOBJ(scene.Model)
	if err != nil {
		return err
	}

	var tex *image.Image
	if scene.Texture != "" {
		tex, err = loadTGA(scene.Texture)
		if err != nil {
			return err
		}
	}

	info := sceneDrawInfo(scene)
	target := image.New(scene.Width, scene.Height, 4)
	target.Clear(colour.Colour[uint8]{R: 20, G: 20, B: 28, A: 255})
	depth := pipeline.NewDepthBuffer(scene.Width, scene.Height)

	counters, err := drawWithShader(scene.Shader, info, m, tex, target, depth)
	if err != nil {
		return err
	}

	if err := saveTGA(scene.Output, target); err != nil {
		return err
	}

	fmt.Printf(
		"wrote %s (%d triangles, %d pixels shaded, %d draws)\n",
		scene.Output, counters.Triangles, counters.Pixels, counters.Draws,
	)
	return nil
}

func sceneDrawInfo(scene Scene) *pipeline.DrawInfo {
	aspect := float64(scene.Width) / float64(scene.Height)
	info := &pipeline.DrawInfo{
		Model:            math3d.Identity(),
		View:             math3d.LookAt(v3(scene.Camera.Eye), v3(scene.Camera.At), v3(scene.Camera.Up)),
		Projection:       math3d.Perspective(scene.Camera.FOVY*math.Pi/180, aspect, scene.Camera.Near, scene.Camera.Far),
		Viewport:         math3d.Viewport(0, 0, float64(scene.Width), float64(scene.Height)),
		Eye:              v3(scene.Camera.Eye),
		DirectionalLight: v3(scene.Lights.Directional),
		PointLight:       v3(scene.Lights.Point),
		AmbientLight:     scene.Lights.Ambient,
	}
	info.Prepare()
	return info
}

// drawWithShader picks the concrete Shader[V] instantiation named by
// shaderName and runs pipeline.Draw with it. The shader's VOut type is
// fixed at compile time per branch, same as the original's CRTP headers
// each binding one concrete pipeline.
func drawWithShader(
	shaderName string,
	info *pipeline.DrawInfo,
	m *model.Model,
	tex *image.Image,
	target *image.Image,
	depth *pipeline.DepthBuffer,
) (pipeline.Counters, error) {
	switch shaderName {
	case "", "gouraud":
		return pipeline.Draw[shaders.GouraudOut](info, &shaders.Gouraud{Albedo: tex}, m, target, depth), nil
	case "flat":
		return pipeline.Draw[shaders.FlatOut](info, &shaders.Flat{Albedo: tex}, m, target, depth), nil
	case "phong":
		return pipeline.Draw[shaders.PhongOut](info, shaders.NewPhong(tex), m, target, depth), nil
	default:
		return pipeline.Counters{}, fmt.Errorf("render: unknown shader %q (want flat, gouraud or phong)", shaderName)
	}
}

func loadOBJ(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %q: %w", path, err)
	}
	defer f.Close()

	m, err := model.ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse model %q: %w", path, err)
	}
	if len(m.Normals) == 0 {
		m.CalculateNormals()
	}
	return m, nil
}

func loadTGA(path string) (*image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, err := image.ReadTGA(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return img, nil
}

func saveTGA(path string, img *image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %q: %w", path, err)
	}
	defer f.Close()

	if err := image.WriteTGA(f, img); err != nil {
		return fmt.Errorf("write output %q: %w", path, err)
	}
	return nil
}
