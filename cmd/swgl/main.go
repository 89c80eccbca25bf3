// swgl is the host-side CLI around the software rasterization engine:
// a one-shot render to a TGA file, an auto-orbiting demo, and a terminal
// preview.
//
// Subcommands:
//
//	render  -scene scene.toml [-model m.obj] [-texture t.tga] [-out out.tga] [-shader flat|gouraud|phong]
//	orbit   -scene scene.toml [-frames N] [-outdir dir]
//	watch   -scene scene.toml
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "orbit":
		err = runOrbit(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "swgl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: swgl <render|orbit|watch> [options]\n")
}
