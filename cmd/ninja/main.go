package main

import (
	"flag"
	"log"
	"path/filepath"

	"chosenoffset.com/ninja/internal/audio"
	"chosenoffset.com/ninja/internal/config"
	"chosenoffset.com/ninja/internal/game"
	ebitenrender "chosenoffset.com/ninja/internal/render/ebiten"
	"chosenoffset.com/ninja/internal/sim"
)

func main() {
	configPath := flag.String("config", "config/game.yaml", "path to the game config")
	dataDir := flag.String("data", "", "data directory (overrides the config)")
	level := flag.Int("level", 0, "level to start on")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	sounds, mixer := setupAudio(cfg)
	if mixer != nil {
		defer mixer.Cleanup()
	}

	g, err := game.Load(cfg, game.Deps{
		Renderer: renderer,
		InputMgr: inputMgr,
		Loader:   loader,
		Sounds:   sounds,
	}, *level)
	if err != nil {
		log.Fatalf("Failed to load game: %v", err)
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetTPS(60)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// setupAudio opens the speaker and loads the sound effects. The game runs
// silently when audio is disabled or the speaker cannot be opened.
func setupAudio(cfg *config.Config) (sim.Sounds, *audio.Mixer) {
	if !cfg.Audio.Enabled {
		return audio.Nop{}, nil
	}

	mixer := audio.NewMixer()
	if err := mixer.Initialize(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
		return audio.Nop{}, nil
	}

	for name := range cfg.Audio.SFX {
		path := filepath.Join(cfg.DataDir, "sfx", name+".wav")
		if err := mixer.Load(name, path, cfg.SoundVolume(name)); err != nil {
			log.Printf("Warning: failed to load sound %s: %v", name, err)
		}
	}
	if cfg.Audio.Music != "" {
		if err := mixer.Load("music", filepath.Join(cfg.DataDir, cfg.Audio.Music), cfg.Audio.MusicVolume); err != nil {
			log.Printf("Warning: failed to load music: %v", err)
		} else {
			mixer.Loop("music")
		}
	}
	if amb := cfg.Audio.Ambience; amb != "" {
		if mixer.Has(amb) {
			mixer.Loop(amb)
		} else {
			log.Printf("Warning: ambience %q is not a loaded sound effect", amb)
		}
	}
	return mixer, mixer
}
