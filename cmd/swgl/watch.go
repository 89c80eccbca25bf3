package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/glrast/swgl/pkg/colour"
	imgpkg "github.com/glrast/swgl/pkg/image"
	"github.com/glrast/swgl/pkg/pipeline"
)

// runWatch renders the scene on a loop and previews it in the terminal using
// half-block cells: each terminal row packs two rendered rows into one cell,
// foreground for the top pixel and background for the bottom.
func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	sceneFlag := fs.String("scene", "", "Path to a TOML scene file")
	modelFlag := fs.String("model", "", "Path to an OBJ model (overrides scene)")
	textureFlag := fs.String("texture", "", "Path to a TGA texture (overrides scene)")
	shaderFlag := fs.String("shader", "", "flat, gouraud or phong (overrides scene)")
	fps := fs.Int("fps", 24, "Target FPS")
	speed := fs.Float64("speed", 0.02, "Orbit angular velocity in radians/frame")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: swgl watch [options]\n\n")
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
		return fmt.Errorf("watch: no model given (-model or scene.model)")
	}

	m, err := loadOBJ(scene.Model)
	if err != nil {
		return err
	}
	var tex *imgpkg.Image
	if scene.Texture != "" {
		tex, err = loadTGA(scene.Texture)
		if err != nil {
			return err
		}
	}

	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("watch: get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("watch: start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() { <-sigCh; cancel() }()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				cols, rows = ev.Width, ev.Height
				term.Erase()
				term.Resize(cols, rows)
			case uv.KeyPressEvent:
				if ev.MatchString("escape") || ev.MatchString("ctrl+c") || ev.MatchString("q") {
					cancel()
					return
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	spring := newOrbitSpring(*fps)
	targetDuration := time.Second / time.Duration(*fps)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()
		spring.Update(*speed)

		eye := scene.Camera.Eye
		at := scene.Camera.At
		radius := math.Hypot(eye[0]-at[0], eye[2]-at[2])
		if radius == 0 {
			radius = 3
		}
		liveScene := scene
		liveScene.Camera.Eye = [3]float64{
			at[0] + radius*math.Sin(spring.Angle),
			eye[1],
			at[2] + radius*math.Cos(spring.Angle),
		}
		liveScene.Width, liveScene.Height = cols, rows*2

		info := sceneDrawInfo(liveScene)
		target := imgpkg.New(liveScene.Width, liveScene.Height, 4)
		target.Clear(colour.Colour[uint8]{R: 10, G: 10, B: 16, A: 255})
		depth := pipeline.NewDepthBuffer(liveScene.Width, liveScene.Height)

		if _, err := drawWithShader(liveScene.Shader, info, m, tex, target, depth); err != nil {
			cleanup()
			return err
		}

		blitHalfBlocks(term, target, cols, rows)
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("watch: display: %w", err)
		}

		if elapsed := time.Since(frameStart); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// blitHalfBlocks draws img onto scr using the upper-half-block glyph: the
// foreground color carries the top source row, the background the row below.
func blitHalfBlocks(scr uv.Screen, img *imgpkg.Image, cols, rows int) {
	for row := 0; row < rows; row++ {
		topY := row * 2
		botY := topY + 1
		for col := 0; col < cols && col < img.Width; col++ {
			top := toColor(img.Get(col, topY))
			bot := toColor(img.Get(col, botY))
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style:   uv.Style{Fg: top, Bg: bot},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func toColor(c colour.Colour[uint8]) color.Color {
	if c.A == 0 {
		return nil
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
