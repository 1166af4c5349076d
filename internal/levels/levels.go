// Package levels finds the level files of a game in its maps directory.
// Levels are numbered from 0 and stored as "<n>.json".
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Dir is a directory of level files.
type Dir struct {
	Path  string // Directory holding the level files
	count int
}

// Scan reads the maps directory and counts its level files. A missing
// directory is an empty set of levels.
func Scan(path string) (*Dir, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Dir{Path: path}, nil
		}
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(strings.ToLower(name), ".json") {
			count++
		}
	}

	return &Dir{Path: path, count: count}, nil
}

// Count returns the number of level files found by Scan.
func (d *Dir) Count() int {
	return d.count
}

// Level returns the file of level n.
func (d *Dir) Level(n int) string {
	return d.Named(strconv.Itoa(n))
}

// Named returns the file of the level called name.
func (d *Dir) Named(name string) string {
	return filepath.Join(d.Path, name+".json")
}

// Next returns the file a new level is saved to: the first number after
// the existing levels.
func (d *Dir) Next() string {
	return d.Level(d.count)
}
