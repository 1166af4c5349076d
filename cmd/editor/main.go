package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chosenoffset.com/ninja/internal/assets"
	"chosenoffset.com/ninja/internal/editor"
	"chosenoffset.com/ninja/internal/levels"
	ebitenrender "chosenoffset.com/ninja/internal/render/ebiten"
)

func main() {
	dataDir := flag.String("data", "data", "data directory")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: editor [-data dir] [edit <levelName>]")
		flag.PrintDefaults()
	}
	flag.Parse()

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	maps, err := levels.Scan(filepath.Join(*dataDir, "maps"))
	if err != nil {
		log.Fatalf("Failed to scan levels: %v", err)
	}
	m, target, err := editor.Open(maps, flag.Args())
	if err != nil {
		flag.Usage()
		log.Printf("%v", err)
		os.Exit(2)
	}

	tiles, err := assets.LoadTiles(loader, filepath.Join(*dataDir, "images"))
	if err != nil {
		log.Fatalf("Failed to load tiles: %v", err)
	}

	ed := editor.New(m, tiles, target)
	ed.Renderer = renderer
	ed.InputMgr = inputMgr

	engine.SetWindowSize(ed.ScreenWidth, ed.ScreenHeight)
	engine.SetWindowTitle("level editor")
	engine.SetTPS(60)

	log.Printf("Editing %s", target)
	if err := engine.RunGame(ed); err != nil {
		log.Fatal(err)
	}
}
