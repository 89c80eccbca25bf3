package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/glrast/swgl/pkg/math3d"
)

// Scene describes everything the render subcommand needs to produce one
// frame: model/texture inputs, camera placement, lights and the shader to
// use. It is the on-disk (TOML) counterpart of pipeline.DrawInfo plus the
// host-side choices DrawInfo doesn't know about.
type Scene struct {
	Model   string `toml:"model"`
	Texture string `toml:"texture"`
	Output  string `toml:"output"`
	Shader  string `toml:"shader"` // "flat", "gouraud" or "phong"
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`

	Camera struct {
		Eye  [3]float64 `toml:"eye"`
		At   [3]float64 `toml:"at"`
		Up   [3]float64 `toml:"up"`
		FOVY float64    `toml:"fovy"`
		Near float64    `toml:"near"`
		Far  float64    `toml:"far"`
	} `toml:"camera"`

	Lights struct {
		Directional [3]float64 `toml:"directional"`
		Point       [3]float64 `toml:"point"`
		Ambient     float64    `toml:"ambient"`
	} `toml:"lights"`
}

// DefaultScene returns a scene with values sane enough to render something
// even when a field is missing from the TOML file.
func DefaultScene() Scene {
	var s Scene
	s.Shader = "gouraud"
	s.Width, s.Height = 800, 800
	s.Output = "out.tga"
	s.Camera.Eye = [3]float64{0, 0, 3}
	s.Camera.Up = [3]float64{0, 1, 0}
	s.Camera.FOVY = 60
	s.Camera.Near = 0.1
	s.Camera.Far = 100
	s.Lights.Directional = [3]float64{0.5, 1, 0.3}
	s.Lights.Point = [3]float64{2, 2, 2}
	s.Lights.Ambient = 0.15
	return s
}

// LoadScene reads a TOML scene file, starting from DefaultScene so a file
// only needs to override the fields it cares about.
func LoadScene(path string) (Scene, error) {
	scene := DefaultScene()

	f, err := os.Open(path)
	if err != nil {
		return scene, fmt.Errorf("open scene %q: %w", path, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	if err := dec.Decode(&scene); err != nil {
		return scene, fmt.Errorf("decode scene %q: %w", path, err)
	}
	return scene, nil
}

func v3(a [3]float64) math3d.Vec3 {
	return math3d.V3(a[0], a[1], a[2])
}
