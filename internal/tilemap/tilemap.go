// Package tilemap stores level tiles on a grid and off it, and answers the
// spatial queries the physics and render code need.
package tilemap

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"chosenoffset.com/ninja/internal/geom"
)

// PhysicsTypes are the tile types that take part in collision.
var PhysicsTypes = map[string]bool{
	"grass": true,
	"stone": true,
}

// neighborOffsets is the 3x3 window searched around a cell.
var neighborOffsets = []Coord{
	{-1, 0},  // left
	{-1, -1}, // top-left
	{0, -1},  // top
	{1, -1},  // top-right
	{1, 0},   // right
	{0, 0},   // center
	{-1, 1},  // bottom-left
	{0, 1},   // bottom
	{1, 1},   // bottom-right
}

// Coord is a pair of integer coordinates. On-grid tiles use it as a grid
// cell, off-grid tiles as a pixel position.
type Coord struct {
	X, Y int
}

// String returns the canonical "x,y" form used as a level file key.
func (c Coord) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// ParseCoord parses the canonical "x,y" form. Anything Coord.String would not
// produce (spaces, leading zeros, "+" signs) is rejected.
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, &KeyError{Key: s}
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coord{}, &KeyError{Key: s}
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coord{}, &KeyError{Key: s}
	}
	c := Coord{x, y}
	if c.String() != s {
		return Coord{}, &KeyError{Key: s}
	}
	return c, nil
}

// KeyError reports a grid key that is not in canonical "x,y" form.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return "invalid tile key " + strconv.Quote(e.Key)
}

// Tile is a single placed tile.
type Tile struct {
	Type    string
	Variant int
	Pos     Coord
}

// Pair identifies a tile kind by type and variant.
type Pair struct {
	Type    string
	Variant int
}

// Pair returns the tile's type/variant pair.
func (t Tile) Pair() Pair {
	return Pair{t.Type, t.Variant}
}

// Placed is a tile together with its position in world pixels.
type Placed struct {
	Tile
	X, Y float64
}

// Tilemap owns the on-grid tiles, the off-grid tiles and the tile size.
type Tilemap struct {
	TileSize int

	grid    map[Coord]Tile
	offgrid []Tile
}

// New creates an empty tilemap.
func New(tileSize int) *Tilemap {
	return &Tilemap{
		TileSize: tileSize,
		grid:     make(map[Coord]Tile),
	}
}

// SetTile places t at the grid cell key. The stored tile's Pos is always key.
func (m *Tilemap) SetTile(key Coord, t Tile) {
	t.Pos = key
	m.grid[key] = t
}

// RemoveTile deletes the tile at key and reports whether one was there.
func (m *Tilemap) RemoveTile(key Coord) bool {
	if _, ok := m.grid[key]; !ok {
		return false
	}
	delete(m.grid, key)
	return true
}

// Tile returns the on-grid tile at key.
func (m *Tilemap) Tile(key Coord) (Tile, bool) {
	t, ok := m.grid[key]
	return t, ok
}

// Len returns the number of on-grid tiles.
func (m *Tilemap) Len() int {
	return len(m.grid)
}

// Keys returns the occupied grid cells in row-major order.
func (m *Tilemap) Keys() []Coord {
	keys := make([]Coord, 0, len(m.grid))
	for k := range m.grid {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return keys
}

// Grid returns a copy of the on-grid tiles.
func (m *Tilemap) Grid() map[Coord]Tile {
	out := make(map[Coord]Tile, len(m.grid))
	for k, t := range m.grid {
		out[k] = t
	}
	return out
}

// AddOffgrid appends a free-placed tile. Its Pos is in pixels.
func (m *Tilemap) AddOffgrid(t Tile) {
	m.offgrid = append(m.offgrid, t)
}

// Offgrid returns a copy of the off-grid tiles in insertion order.
func (m *Tilemap) Offgrid() []Tile {
	return slices.Clone(m.offgrid)
}

// RemoveOffgrid removes the first off-grid tile for which match returns true.
func (m *Tilemap) RemoveOffgrid(match func(Tile) bool) bool {
	i := slices.IndexFunc(m.offgrid, match)
	if i < 0 {
		return false
	}
	m.offgrid = slices.Delete(m.offgrid, i, i+1)
	return true
}

// Extract returns copies of every tile whose type/variant is in pairs.
// Off-grid matches come first, in insertion order, followed by on-grid
// matches in row-major order. On-grid copies have their Pos scaled to
// pixels. Unless keep is set the matches are removed from the map.
func (m *Tilemap) Extract(pairs []Pair, keep bool) []Tile {
	var matches []Tile

	kept := m.offgrid[:0:0]
	for _, t := range m.offgrid {
		if !slices.Contains(pairs, t.Pair()) {
			kept = append(kept, t)
			continue
		}
		matches = append(matches, t)
		if keep {
			kept = append(kept, t)
		}
	}
	m.offgrid = kept

	for _, k := range m.Keys() {
		t := m.grid[k]
		if !slices.Contains(pairs, t.Pair()) {
			continue
		}
		scaled := t
		scaled.Pos = Coord{t.Pos.X * m.TileSize, t.Pos.Y * m.TileSize}
		matches = append(matches, scaled)
		if !keep {
			delete(m.grid, k)
		}
	}

	return matches
}

// GridPos returns the grid cell containing the pixel position p.
func (m *Tilemap) GridPos(p geom.Vec) Coord {
	ts := float64(m.TileSize)
	return Coord{int(math.Floor(p.X / ts)), int(math.Floor(p.Y / ts))}
}

// SolidTile returns the tile in the cell containing p if it is collidable.
func (m *Tilemap) SolidTile(p geom.Vec) (Tile, bool) {
	t, ok := m.grid[m.GridPos(p)]
	if !ok || !PhysicsTypes[t.Type] {
		return Tile{}, false
	}
	return t, true
}

// TilesAround returns the tiles in the 3x3 block of cells centred on the
// cell containing p.
func (m *Tilemap) TilesAround(p geom.Vec) []Tile {
	var tiles []Tile
	loc := m.GridPos(p)
	for _, off := range neighborOffsets {
		if t, ok := m.grid[loc.Add(off)]; ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// ClosestCollisionRects returns the boxes of the collidable tiles around p.
// Only the 3x3 window is searched, so callers must keep their bodies smaller
// than a tile.
func (m *Tilemap) ClosestCollisionRects(p geom.Vec) []geom.Rect {
	var rects []geom.Rect
	ts := float64(m.TileSize)
	for _, t := range m.TilesAround(p) {
		if PhysicsTypes[t.Type] {
			rects = append(rects, geom.Rect{X: float64(t.Pos.X) * ts, Y: float64(t.Pos.Y) * ts, W: ts, H: ts})
		}
	}
	return rects
}

// Visible returns every off-grid tile followed by the on-grid tiles inside
// the w x h view whose top-left corner is offset. Positions are in world
// pixels.
func (m *Tilemap) Visible(offset geom.Vec, w, h int) []Placed {
	placed := make([]Placed, 0, len(m.offgrid))
	for _, t := range m.offgrid {
		placed = append(placed, Placed{Tile: t, X: float64(t.Pos.X), Y: float64(t.Pos.Y)})
	}

	ts := float64(m.TileSize)
	from := m.GridPos(offset)
	to := m.GridPos(geom.Vec{X: offset.X + float64(w), Y: offset.Y + float64(h)})
	for x := from.X; x <= to.X; x++ {
		for y := from.Y; y <= to.Y; y++ {
			if t, ok := m.grid[Coord{x, y}]; ok {
				placed = append(placed, Placed{Tile: t, X: float64(x) * ts, Y: float64(y) * ts})
			}
		}
	}
	return placed
}
