// Package placeholders generates stand-in art, sounds and a starter level so
// the game and editor run without shipped assets.
package placeholders

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"chosenoffset.com/ninja/internal/tilemap"
)

// Generate writes the placeholder asset tree under the data directory root.
// An existing starter level is left alone.
func Generate(root string, out io.Writer) error {
	if err := GenerateImages(filepath.Join(root, "images"), out); err != nil {
		return err
	}

	for _, t := range Tones {
		if err := WriteTone(root, t); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "✓ Generated %d sounds in %s\n", len(Tones), root)

	level := filepath.Join(root, "maps", "0.json")
	if _, err := os.Stat(level); err == nil {
		fmt.Fprintf(out, "- Kept existing %s\n", level)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(level), 0755); err != nil {
		return fmt.Errorf("failed to create maps directory: %w", err)
	}
	if err := StarterLevel().Save(level); err != nil {
		return fmt.Errorf("failed to save starter level: %w", err)
	}
	fmt.Fprintf(out, "✓ Generated %s\n", level)
	return nil
}

// StarterLevel is a small autotiled level with a player start, two enemies
// and a leafy tree.
func StarterLevel() *tilemap.Tilemap {
	m := tilemap.New(TileSize)
	fill := func(typ string, x0, y0, x1, y1 int) {
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				m.SetTile(tilemap.Coord{X: x, Y: y}, tilemap.Tile{Type: typ})
			}
		}
	}

	fill("stone", 0, 11, 29, 13)
	fill("stone", 0, 5, 1, 10)
	fill("stone", 28, 5, 29, 10)
	fill("grass", 8, 7, 13, 8)
	fill("grass", 18, 9, 21, 10)
	m.Autotile()

	off := func(typ string, variant, x, y int) {
		m.AddOffgrid(tilemap.Tile{Type: typ, Variant: variant, Pos: tilemap.Coord{X: x, Y: y}})
	}
	off("large_decor", 2, 64, 112)
	off("decor", 0, 240, 160)
	off("decor", 2, 300, 160)
	off("spawner", 0, 40, 160)
	off("spawner", 1, 168, 96)
	off("spawner", 1, 400, 160)
	return m
}
