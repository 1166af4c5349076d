package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/ninja/internal/geom"
)

func grass(x, y int) Tile {
	return Tile{Type: "grass", Variant: 0, Pos: Coord{x, y}}
}

func TestCoordStringAndParse(t *testing.T) {
	tests := []struct {
		coord Coord
		key   string
	}{
		{Coord{0, 0}, "0,0"},
		{Coord{-3, 4}, "-3,4"},
		{Coord{12, -100}, "12,-100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.coord.String())
		got, err := ParseCoord(tt.key)
		require.NoError(t, err)
		assert.Equal(t, tt.coord, got)
	}

	for _, bad := range []string{"", "1", "1, 2", "01,2", "+1,2", "1,2,3", "a,b"} {
		_, err := ParseCoord(bad)
		assert.Error(t, err, "key %q", bad)
	}
}

func TestSetTileForcesPosition(t *testing.T) {
	m := New(16)
	m.SetTile(Coord{2, 3}, Tile{Type: "stone", Pos: Coord{9, 9}})

	got, ok := m.Tile(Coord{2, 3})
	require.True(t, ok)
	assert.Equal(t, Coord{2, 3}, got.Pos)

	assert.True(t, m.RemoveTile(Coord{2, 3}))
	assert.False(t, m.RemoveTile(Coord{2, 3}))
	assert.Equal(t, 0, m.Len())
}

func TestSolidTile(t *testing.T) {
	m := New(16)
	m.SetTile(Coord{2, 3}, grass(2, 3))
	m.SetTile(Coord{0, 0}, Tile{Type: "decor"})
	m.SetTile(Coord{-1, -1}, Tile{Type: "stone"})

	tile, ok := m.SolidTile(geom.Vec{X: 40, Y: 50})
	require.True(t, ok)
	assert.Equal(t, "grass", tile.Type)

	_, ok = m.SolidTile(geom.Vec{X: 5, Y: 5})
	assert.False(t, ok, "decor is not collidable")

	_, ok = m.SolidTile(geom.Vec{X: -0.5, Y: -16})
	assert.True(t, ok, "negative positions floor towards -inf")

	_, ok = m.SolidTile(geom.Vec{X: 100, Y: 100})
	assert.False(t, ok)
}

func TestTilesAroundAndCollisionRects(t *testing.T) {
	m := New(16)
	for _, c := range []Coord{{1, 1}, {2, 2}, {3, 3}, {0, 2}, {4, 4}} {
		m.SetTile(c, grass(c.X, c.Y))
	}
	m.SetTile(Coord{2, 1}, Tile{Type: "decor"})

	around := m.TilesAround(geom.Vec{X: 40, Y: 40})
	assert.Len(t, around, 4, "3x3 window around (2,2) excludes (0,2) and (4,4)")

	rects := m.ClosestCollisionRects(geom.Vec{X: 40, Y: 40})
	assert.ElementsMatch(t, []geom.Rect{
		{X: 16, Y: 16, W: 16, H: 16},
		{X: 32, Y: 32, W: 16, H: 16},
		{X: 48, Y: 48, W: 16, H: 16},
	}, rects)
}

func TestExtract(t *testing.T) {
	build := func() *Tilemap {
		m := New(16)
		m.SetTile(Coord{1, 2}, Tile{Type: "large_decor", Variant: 2})
		m.SetTile(Coord{3, 4}, grass(3, 4))
		m.AddOffgrid(Tile{Type: "spawner", Variant: 0, Pos: Coord{40, 50}})
		m.AddOffgrid(Tile{Type: "decor", Variant: 1, Pos: Coord{7, 7}})
		m.AddOffgrid(Tile{Type: "spawner", Variant: 1, Pos: Coord{80, 20}})
		return m
	}
	pairs := []Pair{{"spawner", 0}, {"spawner", 1}, {"large_decor", 2}}

	m := build()
	got := m.Extract(pairs, false)
	assert.Equal(t, []Tile{
		{Type: "spawner", Variant: 0, Pos: Coord{40, 50}},
		{Type: "spawner", Variant: 1, Pos: Coord{80, 20}},
		{Type: "large_decor", Variant: 2, Pos: Coord{16, 32}},
	}, got)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []Tile{{Type: "decor", Variant: 1, Pos: Coord{7, 7}}}, m.Offgrid())
	stored, ok := m.Tile(Coord{3, 4})
	require.True(t, ok)
	assert.Equal(t, Coord{3, 4}, stored.Pos)

	m = build()
	got = m.Extract(pairs, true)
	assert.Len(t, got, 3)
	assert.Equal(t, 2, m.Len())
	assert.Len(t, m.Offgrid(), 3)
	kept, _ := m.Tile(Coord{1, 2})
	assert.Equal(t, Coord{1, 2}, kept.Pos, "returned copies are scaled, stored tiles are not")
}

func TestRemoveOffgridRemovesFirstMatch(t *testing.T) {
	m := New(16)
	m.AddOffgrid(Tile{Type: "decor", Pos: Coord{1, 1}})
	m.AddOffgrid(Tile{Type: "decor", Pos: Coord{2, 2}})

	removed := m.RemoveOffgrid(func(t Tile) bool { return t.Type == "decor" })
	assert.True(t, removed)
	assert.Equal(t, []Tile{{Type: "decor", Pos: Coord{2, 2}}}, m.Offgrid())
	assert.False(t, m.RemoveOffgrid(func(t Tile) bool { return t.Type == "stone" }))
}

func TestVisible(t *testing.T) {
	m := New(16)
	m.SetTile(Coord{0, 0}, grass(0, 0))
	m.SetTile(Coord{20, 15}, grass(20, 15))
	m.SetTile(Coord{21, 0}, grass(21, 0))
	m.SetTile(Coord{-1, 0}, grass(-1, 0))
	m.AddOffgrid(Tile{Type: "decor", Pos: Coord{5000, 5000}})

	placed := m.Visible(geom.Vec{}, 320, 240)

	require.Len(t, placed, 3)
	assert.Equal(t, "decor", placed[0].Type, "off-grid tiles are always included first")
	var cells []Coord
	for _, p := range placed[1:] {
		cells = append(cells, p.Pos)
		assert.Equal(t, float64(p.Pos.X*16), p.X)
	}
	assert.ElementsMatch(t, []Coord{{0, 0}, {20, 15}}, cells, "upper bound cell is inclusive")
}
