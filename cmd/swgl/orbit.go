package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/harmonica"

	"github.com/glrast/swgl/pkg/colour"
	"github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/pipeline"
)

// orbitSpring eases an orbit's angular velocity toward a target velocity,
// the same critically-damped decay RotationAxis uses for spin-down, just
// easing toward a nonzero steady speed instead of toward zero.
type orbitSpring struct {
	Angle    float64
	Velocity float64
	accel    float64
	spring   harmonica.Spring
}

func newOrbitSpring(fps int) orbitSpring {
	return orbitSpring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 2.0, 1.0),
	}
}

func (o *orbitSpring) Update(targetVelocity float64) {
	o.Angle += o.Velocity
	o.Velocity, o.accel = o.spring.Update(o.Velocity, o.accel, targetVelocity)
}

func runOrbit(args []string) error {
	fs := flag.NewFlagSet("orbit", flag.ExitOnError)
	sceneFlag := fs.String("scene", "", "Path to a TOML scene file")
	modelFlag := fs.String("model", "", "Path to an OBJ model (overrides scene)")
	textureFlag := fs.String("texture", "", "Path to a TGA texture (overrides scene)")
	shaderFlag := fs.String("shader", "", "flat, gouraud or phong (overrides scene)")
	outDir := fs.String("outdir", "orbit", "Directory to write numbered TGA frames into")
	frames := fs.Int("frames", 60, "Number of frames to render")
	fps := fs.Int("fps", 30, "Frames per second, used by the orbit's velocity spring")
	radius := fs.Float64("radius", 3, "Orbit radius around the scene's look-at point")
	speed := fs.Float64("speed", 0.05, "Target angular velocity in radians/frame")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: swgl orbit [options]\n\n")
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
	if *shaderFlag != "" {
		scene.Shader = *shaderFlag
	}
	if scene.Model == "" {
		return fmt.Errorf("orbit: no model given (-model or scene.model)")
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

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("orbit: create outdir %q: %w", *outDir, err)
	}

	spring := newOrbitSpring(*fps)
	for frame := 0; frame < *frames; frame++ {
		spring.Update(*speed)

		eye := scene.Camera.Eye
		at := scene.Camera.At
		scene.Camera.Eye = [3]float64{
			at[0] + *radius*math.Sin(spring.Angle),
			eye[1],
			at[2] + *radius*math.Cos(spring.Angle),
		}

		info := sceneDrawInfo(scene)
		target := image.New(scene.Width, scene.Height, 4)
		target.Clear(colour.Colour[uint8]{R: 20, G: 20, B: 28, A: 255})
		depth := pipeline.NewDepthBuffer(scene.Width, scene.Height)

		if _, err := drawWithShader(scene.Shader, info, m, tex, target, depth); err != nil {
			return err
		}

		out := filepath.Join(*outDir, fmt.Sprintf("frame-%04d.tga", frame))
		if err := saveTGA(out, target); err != nil {
			return err
		}

		scene.Camera.Eye = eye
	}

	fmt.Printf("wrote %d frames to %s\n", *frames, *outDir)
	return nil
}
