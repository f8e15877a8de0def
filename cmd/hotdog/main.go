package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Nazar-Okruzhko/Hot-Dog-The-3D-Viewer/engine/app"
)

func main() {
	meshPath := flag.String("mesh", "", "mesh description file (.obj) to load at startup")
	sphereRes := flag.Int("sphere-resolution", 20, "latitude/longitude resolution for the sphere model")
	debug := flag.Bool("debug", false, "show the FPS/TPS overlay")
	flag.Parse()

	opts := []app.Option{
		app.WithSphereResolution(*sphereRes),
	}
	if *meshPath != "" {
		opts = append(opts, app.WithMeshFile(*meshPath))
	}
	if *debug {
		opts = append(opts, app.WithDebugOverlay())
	}

	ebiten.SetWindowSize(app.DesignWidth, app.DesignHeight)
	ebiten.SetWindowSizeLimits(app.MinWidth, app.MinHeight, -1, -1)
	ebiten.SetWindowTitle("Hot-Dog")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app.New(opts...)); err != nil {
		log.Fatal(err)
	}
}
