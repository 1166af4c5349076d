package game

import (
	"fmt"
	"log"
	"path/filepath"

	"chosenoffset.com/ninja/internal/assets"
	"chosenoffset.com/ninja/internal/config"
	"chosenoffset.com/ninja/internal/levels"
	"chosenoffset.com/ninja/internal/render"
	"chosenoffset.com/ninja/internal/sim"
)

// Deps are the backend services a game runs on.
type Deps struct {
	Renderer render.Renderer
	InputMgr render.InputManager
	Loader   render.ResourceLoader
	Sounds   sim.Sounds // nil plays nothing
}

// Load reads the assets and levels below cfg.DataDir and starts the world
// at level start.
func Load(cfg *config.Config, deps Deps, start int) (*Game, error) {
	log.Println("Loading assets...")
	a, err := assets.Load(deps.Loader, filepath.Join(cfg.DataDir, "images"))
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	maps, err := levels.Scan(filepath.Join(cfg.DataDir, "maps"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan levels: %w", err)
	}
	log.Printf("Found %d levels in %s", maps.Count(), maps.Path)

	world, err := sim.New(sim.Options{
		Animations:  a.Animations,
		Levels:      maps,
		Sounds:      deps.Sounds,
		CloudImages: a.Clouds,
		CloudCount:  cfg.Clouds,
		ScreenW:     cfg.Display.Width,
		ScreenH:     cfg.Display.Height,
		CameraLag:   cfg.CameraLag,
	}, start)
	if err != nil {
		return nil, err
	}

	return &Game{
		ScreenWidth:   cfg.Window.Width,
		ScreenHeight:  cfg.Window.Height,
		DisplayWidth:  cfg.Display.Width,
		DisplayHeight: cfg.Display.Height,
		World:         world,
		Assets:        a,
		Renderer:      deps.Renderer,
		InputMgr:      deps.InputMgr,
	}, nil
}
