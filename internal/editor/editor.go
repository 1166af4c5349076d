// Package editor is the level editor: it paints tiles from the tile sets
// onto a tilemap and saves it as a level file.
package editor

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"chosenoffset.com/ninja/internal/assets"
	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/levels"
	"chosenoffset.com/ninja/internal/render"
	"chosenoffset.com/ninja/internal/tilemap"
)

const (
	// TileSize of new levels.
	TileSize = 16
	// PanSpeed is the camera movement per tick in pixels.
	PanSpeed = 2
)

// ErrUsage is returned by Open for arguments it does not understand.
var ErrUsage = errors.New("usage: editor [edit <levelName>]")

// Open resolves the command line arguments to the level being edited and
// the file it is saved to. "edit <name>" opens maps/<name>.json; no
// arguments start a new level in the next free slot. A missing level file
// starts an empty level.
func Open(maps *levels.Dir, args []string) (*tilemap.Tilemap, string, error) {
	switch {
	case len(args) == 0:
		return tilemap.New(TileSize), maps.Next(), nil
	case len(args) == 2 && args[0] == "edit":
	default:
		return nil, "", ErrUsage
	}

	path := maps.Named(args[1])
	m, err := tilemap.Load(path)
	if errors.Is(err, tilemap.ErrMissingLevel) {
		log.Printf("No map found at %s. You should create one.", path)
		return tilemap.New(TileSize), path, nil
	}
	if err != nil {
		return nil, "", err
	}
	return m, path, nil
}

// Editor is the editing state.
type Editor struct {
	Map    *tilemap.Tilemap
	Tiles  map[string][]render.Image
	Target string // file the level is saved to

	TileSet     int // index into assets.TileSets
	TileVariant int
	OnGrid      bool
	Scroll      geom.Vec
	Status      string

	// Window and logical display size.
	ScreenWidth   int
	ScreenHeight  int
	DisplayWidth  int
	DisplayHeight int

	Renderer render.Renderer
	InputMgr render.InputManager

	display render.Image
}

// New creates an editor on m that saves to target.
func New(m *tilemap.Tilemap, tiles map[string][]render.Image, target string) *Editor {
	return &Editor{
		Map:           m,
		Tiles:         tiles,
		Target:        target,
		OnGrid:        true,
		ScreenWidth:   640,
		ScreenHeight:  480,
		DisplayWidth:  320,
		DisplayHeight: 240,
	}
}

// Brush is the tile type and variant being painted.
func (e *Editor) Brush() tilemap.Pair {
	return tilemap.Pair{Type: assets.TileSets[e.TileSet], Variant: e.TileVariant}
}

// Spawner reports whether the brush is a spawner marker. Spawners are
// always placed off the grid.
func (e *Editor) Spawner() bool {
	return e.Brush().Type == "spawner"
}

// Placing reports whether a click paints a grid cell rather than adding an
// off-grid tile.
func (e *Editor) Placing() bool {
	return e.OnGrid && !e.Spawner()
}

// NextSet moves to the next (dir > 0) or previous tile set and resets the
// variant.
func (e *Editor) NextSet(dir int) {
	n := len(assets.TileSets)
	e.TileSet = ((e.TileSet+dir)%n + n) % n
	e.TileVariant = 0
}

// NextVariant moves to the next (dir > 0) or previous variant of the
// current tile set.
func (e *Editor) NextVariant(dir int) {
	n := len(e.Tiles[e.Brush().Type])
	if n == 0 {
		e.TileVariant = 0
		return
	}
	e.TileVariant = ((e.TileVariant+dir)%n + n) % n
}

// ToggleGrid switches between grid and free placement. Spawners stay in
// free placement.
func (e *Editor) ToggleGrid() {
	if e.Spawner() {
		return
	}
	e.OnGrid = !e.OnGrid
}

// Cell returns the grid cell under a cursor in display pixels.
func (e *Editor) Cell(cursor geom.Vec) tilemap.Coord {
	ts := float64(e.Map.TileSize)
	return tilemap.Coord{
		X: int(math.Floor((cursor.X + e.Scroll.X) / ts)),
		Y: int(math.Floor((cursor.Y + e.Scroll.Y) / ts)),
	}
}

// Paint sets the grid cell under the cursor to the brush.
func (e *Editor) Paint(cursor geom.Vec) {
	b := e.Brush()
	e.Map.SetTile(e.Cell(cursor), tilemap.Tile{Type: b.Type, Variant: b.Variant})
}

// Drop adds the brush as an off-grid tile at the cursor.
func (e *Editor) Drop(cursor geom.Vec) {
	b := e.Brush()
	e.Map.AddOffgrid(tilemap.Tile{
		Type:    b.Type,
		Variant: b.Variant,
		Pos: tilemap.Coord{
			X: int(cursor.X + e.Scroll.X),
			Y: int(cursor.Y + e.Scroll.Y),
		},
	})
}

// Erase removes the grid tile under the cursor and the first off-grid tile
// whose image covers it.
func (e *Editor) Erase(cursor geom.Vec) {
	e.Map.RemoveTile(e.Cell(cursor))
	e.Map.RemoveOffgrid(func(t tilemap.Tile) bool {
		img, ok := assets.Variant(e.Tiles, t.Type, t.Variant)
		if !ok {
			return false
		}
		w, h := img.Size()
		r := geom.Rect{
			X: float64(t.Pos.X) - e.Scroll.X,
			Y: float64(t.Pos.Y) - e.Scroll.Y,
			W: float64(w),
			H: float64(h),
		}
		return r.Contains(cursor)
	})
}

// Autotile fixes the variants of the autotiled tile types.
func (e *Editor) Autotile() {
	n := e.Map.Autotile()
	e.Status = fmt.Sprintf("autotiled %d tiles", n)
}

// Save writes the level to its target file.
func (e *Editor) Save() error {
	if err := os.MkdirAll(filepath.Dir(e.Target), 0755); err != nil {
		e.Status = "save failed"
		return fmt.Errorf("failed to create maps directory: %w", err)
	}
	if err := e.Map.Save(e.Target); err != nil {
		e.Status = "save failed"
		return err
	}
	e.Status = "saved " + e.Target
	log.Printf("Saved level to %s", e.Target)
	return nil
}

// cursor returns the mouse position in display pixels.
func (e *Editor) cursor() geom.Vec {
	x, y := e.InputMgr.GetCursorPosition()
	return geom.Vec{
		X: float64(x) * float64(e.DisplayWidth) / float64(e.ScreenWidth),
		Y: float64(y) * float64(e.DisplayHeight) / float64(e.ScreenHeight),
	}
}

// Update handles one tick of input.
func (e *Editor) Update() error {
	in := e.InputMgr
	if in.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	var pan geom.Vec
	if in.IsKeyPressed(render.KeyA) {
		pan.X--
	}
	if in.IsKeyPressed(render.KeyD) {
		pan.X++
	}
	if in.IsKeyPressed(render.KeyW) {
		pan.Y--
	}
	if in.IsKeyPressed(render.KeyS) {
		pan.Y++
	}
	e.Scroll = e.Scroll.Add(pan.Scale(PanSpeed))

	// Wheel up selects the previous entry.
	if wheel := in.Wheel(); wheel != 0 {
		dir := 1
		if wheel > 0 {
			dir = -1
		}
		if in.IsKeyPressed(render.KeyShift) {
			e.NextVariant(dir)
		} else {
			e.NextSet(dir)
		}
	}

	if in.IsKeyJustPressed(render.KeyG) {
		e.ToggleGrid()
	}
	if in.IsKeyJustPressed(render.KeyT) {
		e.Autotile()
	}
	if in.IsKeyJustPressed(render.KeyO) {
		if err := e.Save(); err != nil {
			log.Printf("Failed to save level: %v", err)
		}
	}

	cursor := e.cursor()
	if e.Placing() {
		if in.IsMouseButtonPressed(render.MouseButtonLeft) {
			e.Paint(cursor)
		}
	} else if in.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		e.Drop(cursor)
	}
	if in.IsMouseButtonPressed(render.MouseButtonRight) {
		e.Erase(cursor)
	}
	return nil
}

// Layout returns the editor's logical screen size.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.ScreenWidth, e.ScreenHeight
}
