// Package assets loads the read-only image registry shared by the game and
// the editor: tile sets, single images and animation templates.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/ninja/internal/anim"
	"chosenoffset.com/ninja/internal/render"
	"chosenoffset.com/ninja/internal/tilemap"
)

// TileSets lists the tile types in the editor's cycling order.
var TileSets = []string{"decor", "grass", "large_decor", "stone", "spawner"}

// tileDirs maps a tile type to its directory below the images root.
var tileDirs = map[string]string{
	"decor":       "tiles/decor",
	"grass":       "tiles/grass",
	"large_decor": "tiles/large_decor",
	"stone":       "tiles/stone",
	"spawner":     "tiles/spawners",
}

// animationSpec describes one animation template.
type animationSpec struct {
	kind, action string
	dir          string
	duration     int
	loop         bool
}

var animationSpecs = []animationSpec{
	{"player", "idle", "entities/player/idle", 5, true},
	{"player", "run", "entities/player/run", 4, true},
	{"player", "jump", "entities/player/jump", 5, true},
	{"player", "wall_slide", "entities/player/wall_slide", 5, true},
	{"particle", "leaf", "particles/leaf", 12, false},
	{"particle", "dash", "particles/particle", 6, false},
	{"enemy", "idle", "entities/enemy/idle", 6, true},
	{"enemy", "run", "entities/enemy/run", 4, true},
}

// Assets is everything the game draws.
type Assets struct {
	Tiles      map[string][]render.Image
	Player     render.Image
	Background render.Image
	Gun        render.Image
	Projectile render.Image
	Clouds     []render.Image
	Animations anim.Library
}

// Load reads the whole registry from the images directory root.
func Load(loader render.ResourceLoader, root string) (*Assets, error) {
	tiles, err := LoadTiles(loader, root)
	if err != nil {
		return nil, err
	}
	a := &Assets{Tiles: tiles, Animations: make(anim.Library, len(animationSpecs))}

	singles := []struct {
		dst  *render.Image
		path string
	}{
		{&a.Player, "entities/player.png"},
		{&a.Background, "background.png"},
		{&a.Gun, "gun.png"},
		{&a.Projectile, "projectile.png"},
	}
	for _, s := range singles {
		img, err := loader.LoadImage(filepath.Join(root, filepath.FromSlash(s.path)))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", s.path, err)
		}
		*s.dst = img
	}

	if a.Clouds, err = LoadImages(loader, filepath.Join(root, "clouds")); err != nil {
		return nil, err
	}

	for _, spec := range animationSpecs {
		images, err := LoadImages(loader, filepath.Join(root, filepath.FromSlash(spec.dir)))
		if err != nil {
			return nil, err
		}
		if len(images) == 0 {
			return nil, fmt.Errorf("animation %s has no frames in %s", anim.Key(spec.kind, spec.action), spec.dir)
		}
		a.Animations[anim.Key(spec.kind, spec.action)] = anim.New(images, spec.duration, spec.loop)
	}
	return a, nil
}

// LoadTiles reads every tile set below the images directory root.
func LoadTiles(loader render.ResourceLoader, root string) (map[string][]render.Image, error) {
	tiles := make(map[string][]render.Image, len(TileSets))
	for _, name := range TileSets {
		images, err := LoadImages(loader, filepath.Join(root, filepath.FromSlash(tileDirs[name])))
		if err != nil {
			return nil, err
		}
		tiles[name] = images
	}
	return tiles, nil
}

// LoadImages loads every image in dir in file name order. Hidden files and
// subdirectories are skipped.
func LoadImages(loader render.ResourceLoader, dir string) ([]render.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var images []render.Image
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		img, err := loader.LoadImage(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", e.Name(), err)
		}
		images = append(images, img)
	}
	return images, nil
}

// TileImage returns the image of t's type and variant.
func (a *Assets) TileImage(t tilemap.Tile) (render.Image, bool) {
	return Variant(a.Tiles, t.Type, t.Variant)
}

// Variant looks up one image of a tile set.
func Variant(tiles map[string][]render.Image, typ string, variant int) (render.Image, bool) {
	set := tiles[typ]
	if variant < 0 || variant >= len(set) {
		return nil, false
	}
	return set[variant], true
}
