package tilemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

var (
	// ErrMissingLevel is returned by Load when the level file does not exist.
	ErrMissingLevel = errors.New("level file not found")
	// ErrMalformedLevel is returned when a level file cannot be decoded into
	// a valid tilemap.
	ErrMalformedLevel = errors.New("malformed level data")
)

// tileRecord is the on-disk form of a tile.
type tileRecord struct {
	Type    string `json:"type"`
	Variant int    `json:"variant"`
	Pos     []int  `json:"pos"`
}

// levelFile is the on-disk form of a level.
type levelFile struct {
	Tilemap  map[string]tileRecord `json:"tilemap"`
	TileSize int                   `json:"tile_size"`
	Offgrid  []tileRecord          `json:"offgrid"`
}

func toRecord(t Tile) tileRecord {
	return tileRecord{Type: t.Type, Variant: t.Variant, Pos: []int{t.Pos.X, t.Pos.Y}}
}

func (r tileRecord) tile() Tile {
	return Tile{Type: r.Type, Variant: r.Variant, Pos: Coord{r.Pos[0], r.Pos[1]}}
}

// Encode writes the tilemap in level file format.
func (m *Tilemap) Encode(w io.Writer) error {
	lf := levelFile{
		Tilemap:  make(map[string]tileRecord, len(m.grid)),
		TileSize: m.TileSize,
		Offgrid:  make([]tileRecord, 0, len(m.offgrid)),
	}
	for k, t := range m.grid {
		lf.Tilemap[k.String()] = toRecord(t)
	}
	for _, t := range m.offgrid {
		lf.Offgrid = append(lf.Offgrid, toRecord(t))
	}
	return json.NewEncoder(w).Encode(lf)
}

// Decode reads a tilemap in level file format.
func Decode(r io.Reader) (*Tilemap, error) {
	var lf levelFile
	if err := json.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}
	if err := validateLevel(&lf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}

	m := New(lf.TileSize)
	for key, rec := range lf.Tilemap {
		c, _ := ParseCoord(key)
		m.grid[c] = rec.tile()
	}
	for _, rec := range lf.Offgrid {
		m.offgrid = append(m.offgrid, rec.tile())
	}
	return m, nil
}

// validateLevel checks the decoded level against the tilemap invariants.
func validateLevel(lf *levelFile) error {
	if lf.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", lf.TileSize)
	}
	for key, rec := range lf.Tilemap {
		c, err := ParseCoord(key)
		if err != nil {
			return err
		}
		if len(rec.Pos) != 2 {
			return fmt.Errorf("tile %q has %d position values, want 2", key, len(rec.Pos))
		}
		if c.X != rec.Pos[0] || c.Y != rec.Pos[1] {
			return fmt.Errorf("tile %q has position [%d,%d]", key, rec.Pos[0], rec.Pos[1])
		}
	}
	for i, rec := range lf.Offgrid {
		if len(rec.Pos) != 2 {
			return fmt.Errorf("off-grid tile %d has %d position values, want 2", i, len(rec.Pos))
		}
	}
	return nil
}

// Load reads a level file. A missing file yields an error wrapping
// ErrMissingLevel; undecodable content one wrapping ErrMalformedLevel.
func Load(path string) (*Tilemap, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrMissingLevel, err)
		}
		return nil, fmt.Errorf("failed to open level %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", path, err)
	}
	return m, nil
}

// Save writes the tilemap to path, replacing any existing file.
func (m *Tilemap) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create level %s: %w", path, err)
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write level %s: %w", path, err)
	}
	return f.Close()
}
