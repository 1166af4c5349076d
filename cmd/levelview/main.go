package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/ninja/internal/levels"
	"chosenoffset.com/ninja/internal/preview"
	"chosenoffset.com/ninja/internal/tilemap"
)

func main() {
	dataDir := flag.String("data", "data", "data directory")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: levelview [-data dir] <levelName>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	maps, err := levels.Scan(filepath.Join(*dataDir, "maps"))
	if err != nil {
		log.Fatalf("Failed to scan levels: %v", err)
	}
	path := maps.Named(flag.Arg(0))
	m, err := tilemap.Load(path)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	preview.New(screen, m, filepath.Base(path)).Run()
}
