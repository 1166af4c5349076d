package tilemap

// AutotileTypes are the tile types whose variant is picked from their
// same-type neighbours.
var AutotileTypes = map[string]bool{
	"grass": true,
	"stone": true,
}

// neighbors is a set of orthogonal directions packed into a bitmask, so the
// same set always has the same value no matter the discovery order.
type neighbors uint8

const (
	right neighbors = 1 << iota
	left
	down
	up
)

var orthogonal = []struct {
	off Coord
	bit neighbors
}{
	{Coord{1, 0}, right},
	{Coord{-1, 0}, left},
	{Coord{0, -1}, up},
	{Coord{0, 1}, down},
}

// autotileVariants maps a neighbour set to the blob tileset variant.
var autotileVariants = map[neighbors]int{
	right | down:             0,
	right | down | left:      1,
	left | down:              2,
	left | up | down:         3,
	left | up:                4,
	left | up | right:        5,
	right | up:               6,
	right | up | down:        7,
	right | left | down | up: 8,
}

// neighborsOf collects the orthogonal directions holding a tile of the same
// type as the tile at key.
func (m *Tilemap) neighborsOf(key Coord) neighbors {
	t := m.grid[key]
	var set neighbors
	for _, o := range orthogonal {
		if n, ok := m.grid[key.Add(o.off)]; ok && n.Type == t.Type {
			set |= o.bit
		}
	}
	return set
}

// Autotile sets the variant of every autotile-eligible tile from its
// same-type neighbours. Tiles whose neighbour set is not in the table keep
// their variant. It returns the number of tiles that matched the table.
func (m *Tilemap) Autotile() int {
	matched := 0
	for key, t := range m.grid {
		if !AutotileTypes[t.Type] {
			continue
		}
		variant, ok := autotileVariants[m.neighborsOf(key)]
		if !ok {
			continue
		}
		t.Variant = variant
		m.grid[key] = t
		matched++
	}
	return matched
}
