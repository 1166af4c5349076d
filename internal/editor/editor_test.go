package editor

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/ninja/internal/assets"
	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/levels"
	"chosenoffset.com/ninja/internal/render"
	"chosenoffset.com/ninja/internal/tilemap"
)

type fakeImage struct {
	w, h  int
	draws []*render.DrawImageOptions
}

func (i *fakeImage) Size() (int, int) { return i.w, i.h }
func (i *fakeImage) Fill(color.Color) {}
func (i *fakeImage) Clear() {}
func (i *fakeImage) DrawTriangles([]render.Vertex, []uint16, render.Image) {}

func (i *fakeImage) DrawImage(_ render.Image, opts *render.DrawImageOptions) {
	i.draws = append(i.draws, opts)
}

type fakeGeoM struct{}

func (*fakeGeoM) Translate(float64, float64) {}
func (*fakeGeoM) Scale(float64, float64) {}

func init() {
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }
}

type fakeRenderer struct {
	texts []string
	textY []int
}

func (r *fakeRenderer) NewImage(w, h int) render.Image { return &fakeImage{w: w, h: h} }
func (r *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {}
func (r *fakeRenderer) FillPolygon(render.Image, []render.Point, color.Color) {}
func (r *fakeRenderer) MeasureText(text string, _ float64) (int, int) { return 6 * len(text), 10 }

func (r *fakeRenderer) DrawText(_ render.Image, text string, _, y int, _ color.Color, _ float64) {
	r.texts = append(r.texts, text)
	r.textY = append(r.textY, y)
}

type fakeInput struct {
	pressed     map[render.Key]bool
	just        map[render.Key]bool
	buttons     map[render.MouseButton]bool
	justButtons map[render.MouseButton]bool
	x, y        int
	wheel       float64
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.just[k] }
func (f *fakeInput) GetCursorPosition() (int, int) { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(b render.MouseButton) bool { return f.buttons[b] }
func (f *fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool { return f.justButtons[b] }
func (f *fakeInput) Wheel() float64 { return f.wheel }

func testTiles() map[string][]render.Image {
	sizes := map[string]int{"decor": 4, "grass": 9, "large_decor": 3, "stone": 9, "spawner": 2}
	tiles := make(map[string][]render.Image)
	for set, n := range sizes {
		for range n {
			tiles[set] = append(tiles[set], &fakeImage{w: 16, h: 16})
		}
	}
	return tiles
}

func newEditor(t *testing.T) (*Editor, *fakeInput) {
	t.Helper()
	in := &fakeInput{}
	e := New(tilemap.New(TileSize), testTiles(), filepath.Join(t.TempDir(), "maps", "0.json"))
	e.InputMgr = in
	e.Renderer = &fakeRenderer{}
	return e, in
}

func setIndex(name string) int {
	for i, s := range assets.TileSets {
		if s == name {
			return i
		}
	}
	return -1
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	existing := tilemap.New(8)
	existing.SetTile(tilemap.Coord{X: 1, Y: 1}, tilemap.Tile{Type: "stone"})
	require.NoError(t, existing.Save(filepath.Join(dir, "0.json")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0644))
	maps, err := levels.Scan(dir)
	require.NoError(t, err)

	t.Run("new level takes the next slot", func(t *testing.T) {
		m, target, err := Open(maps, nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "2.json"), target)
		assert.Zero(t, m.Len())
		assert.Equal(t, TileSize, m.TileSize)
	})
	t.Run("edit existing", func(t *testing.T) {
		m, target, err := Open(maps, []string{"edit", "0"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "0.json"), target)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, 8, m.TileSize)
	})
	t.Run("edit missing starts empty", func(t *testing.T) {
		m, target, err := Open(maps, []string{"edit", "7"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "7.json"), target)
		assert.Zero(t, m.Len())
	})
	t.Run("edit malformed", func(t *testing.T) {
		_, _, err := Open(maps, []string{"edit", "bad"})
		assert.ErrorIs(t, err, tilemap.ErrMalformedLevel)
	})
	t.Run("bad usage", func(t *testing.T) {
		_, _, err := Open(maps, []string{"open", "1"})
		assert.ErrorIs(t, err, ErrUsage)
	})
}

func TestBrushCycling(t *testing.T) {
	e, _ := newEditor(t)
	require.Equal(t, "decor", e.Brush().Type)

	e.NextSet(-1)
	assert.Equal(t, "spawner", e.Brush().Type)
	e.NextSet(1)
	assert.Equal(t, "decor", e.Brush().Type)

	e.NextSet(1)
	e.NextVariant(-1)
	assert.Equal(t, tilemap.Pair{Type: "grass", Variant: 8}, e.Brush())
	e.NextVariant(1)
	assert.Equal(t, 0, e.TileVariant)

	e.NextVariant(1)
	e.NextSet(1)
	assert.Equal(t, 0, e.TileVariant, "changing set resets the variant")
}

func TestSpawnersPlaceOffGrid(t *testing.T) {
	e, _ := newEditor(t)
	e.TileSet = setIndex("spawner")

	assert.False(t, e.Placing())
	e.ToggleGrid()
	assert.True(t, e.OnGrid, "grid toggle ignored for spawners")

	e.TileSet = setIndex("stone")
	assert.True(t, e.Placing())
	e.ToggleGrid()
	assert.False(t, e.Placing())
}

func TestPaintDropErase(t *testing.T) {
	e, _ := newEditor(t)
	e.TileSet = setIndex("stone")
	e.TileVariant = 3
	e.Scroll = geom.Vec{X: -20, Y: 10}

	e.Paint(geom.Vec{X: 50, Y: 30})
	tile, ok := e.Map.Tile(tilemap.Coord{X: 1, Y: 2})
	require.True(t, ok)
	assert.Equal(t, tilemap.Tile{Type: "stone", Variant: 3, Pos: tilemap.Coord{X: 1, Y: 2}}, tile)

	e.Paint(geom.Vec{X: 0, Y: 0})
	_, ok = e.Map.Tile(tilemap.Coord{X: -2, Y: 0})
	assert.True(t, ok, "negative cells floor")

	e.TileSet = setIndex("decor")
	e.Drop(geom.Vec{X: 100.7, Y: 40.2})
	require.Len(t, e.Map.Offgrid(), 1)
	assert.Equal(t, tilemap.Coord{X: 80, Y: 50}, e.Map.Offgrid()[0].Pos)

	e.Erase(geom.Vec{X: 50, Y: 30})
	_, ok = e.Map.Tile(tilemap.Coord{X: 1, Y: 2})
	assert.False(t, ok)
	assert.Len(t, e.Map.Offgrid(), 1, "off-grid tile not under the cursor")

	e.Erase(geom.Vec{X: 115, Y: 55})
	assert.Empty(t, e.Map.Offgrid())
}

func TestAutotileAndSave(t *testing.T) {
	e, _ := newEditor(t)
	e.TileSet = setIndex("grass")
	e.Paint(geom.Vec{X: 0, Y: 0})
	e.Paint(geom.Vec{X: 16, Y: 0})
	e.Paint(geom.Vec{X: 0, Y: 16})

	e.Autotile()
	tile, _ := e.Map.Tile(tilemap.Coord{X: 0, Y: 0})
	assert.Equal(t, 0, tile.Variant)
	assert.Equal(t, "autotiled 1 tiles", e.Status)

	require.NoError(t, e.Save())
	loaded, err := tilemap.Load(e.Target)
	require.NoError(t, err)
	assert.Equal(t, e.Map.Grid(), loaded.Grid())
}

func TestUpdateInput(t *testing.T) {
	e, in := newEditor(t)

	in.pressed = map[render.Key]bool{render.KeyD: true, render.KeyS: true}
	require.NoError(t, e.Update())
	assert.Equal(t, geom.Vec{X: 2, Y: 2}, e.Scroll)

	in.pressed = nil
	in.wheel = -1
	require.NoError(t, e.Update())
	assert.Equal(t, "grass", e.Brush().Type, "wheel down selects the next set")

	in.pressed = map[render.Key]bool{render.KeyShift: true}
	in.wheel = 1
	require.NoError(t, e.Update())
	assert.Equal(t, tilemap.Pair{Type: "grass", Variant: 8}, e.Brush())

	in.pressed = nil
	in.wheel = 0
	in.x, in.y = 100, 60 // display (50, 30)
	in.buttons = map[render.MouseButton]bool{render.MouseButtonLeft: true}
	require.NoError(t, e.Update())
	_, ok := e.Map.Tile(tilemap.Coord{X: 3, Y: 2})
	assert.True(t, ok, "held click paints the cell under the cursor")

	in.buttons = nil
	in.just = map[render.Key]bool{render.KeyG: true}
	require.NoError(t, e.Update())
	assert.False(t, e.OnGrid)

	in.just = nil
	in.buttons = map[render.MouseButton]bool{render.MouseButtonLeft: true}
	require.NoError(t, e.Update())
	assert.Empty(t, e.Map.Offgrid(), "free placement waits for a fresh click")
	in.justButtons = map[render.MouseButton]bool{render.MouseButtonLeft: true}
	require.NoError(t, e.Update())
	assert.Len(t, e.Map.Offgrid(), 1)

	in.buttons, in.justButtons = nil, nil
	in.just = map[render.Key]bool{render.KeyO: true}
	require.NoError(t, e.Update())
	_, err := os.Stat(e.Target)
	assert.NoError(t, err)

	in.just = map[render.Key]bool{render.KeyEscape: true}
	assert.ErrorIs(t, e.Update(), render.ErrQuit)
}

func TestDrawShowsBrushAndStatus(t *testing.T) {
	e, _ := newEditor(t)
	e.TileSet = setIndex("stone")
	e.Paint(geom.Vec{X: 10, Y: 10})

	screen := &fakeImage{w: 640, h: 480}
	e.Draw(screen)

	require.Len(t, screen.draws, 1)
	display := e.display.(*fakeImage)
	require.Len(t, display.draws, 3)
	assert.Nil(t, display.draws[0].ColorScale)
	assert.Same(t, preview, display.draws[1].ColorScale)
	assert.Same(t, preview, display.draws[2].ColorScale)

	r := e.Renderer.(*fakeRenderer)
	require.Len(t, r.texts, 1)
	assert.Contains(t, r.texts[0], "stone 0 | grid")
	assert.Equal(t, []int{e.DisplayHeight - 10 - statusMargin}, r.textY, "status sits on the bottom edge")
}
