// Package preview draws a level in the terminal, one grid cell per
// character, for looking at level files without opening a window.
package preview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/ninja/internal/tilemap"
)

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[string]glyph{
	"grass":       {'"', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	"stone":       {'#', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	"decor":       {'*', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
	"large_decor": {'&', tcell.StyleDefault.Foreground(tcell.ColorOlive)},
}

var (
	playerGlyph  = glyph{'P', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)}
	enemyGlyph   = glyph{'E', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)}
	unknownGlyph = glyph{'?', tcell.StyleDefault}
	statusStyle  = tcell.StyleDefault.Reverse(true)
)

// Glyph returns the character and style a tile is shown with.
func Glyph(t tilemap.Tile) (rune, tcell.Style) {
	g, ok := glyphs[t.Type]
	switch {
	case t.Type == "spawner" && t.Variant == 0:
		g = playerGlyph
	case t.Type == "spawner":
		g = enemyGlyph
	case !ok:
		g = unknownGlyph
	}
	return g.r, g.style
}

// Viewer shows one level on a screen.
type Viewer struct {
	Screen tcell.Screen
	Map    *tilemap.Tilemap
	Title  string
	// Origin is the grid cell in the top-left corner of the view.
	Origin tilemap.Coord
}

// New creates a viewer whose view starts at the top-left of the level.
func New(screen tcell.Screen, m *tilemap.Tilemap, title string) *Viewer {
	v := &Viewer{Screen: screen, Map: m, Title: title}
	first := true
	visit := func(c tilemap.Coord) {
		if first {
			v.Origin, first = c, false
			return
		}
		v.Origin.X = min(v.Origin.X, c.X)
		v.Origin.Y = min(v.Origin.Y, c.Y)
	}
	for _, k := range m.Keys() {
		visit(k)
	}
	for _, t := range m.Offgrid() {
		visit(v.cellOf(t))
	}
	return v
}

// cellOf returns the grid cell containing an off-grid tile.
func (v *Viewer) cellOf(t tilemap.Tile) tilemap.Coord {
	ts := float64(v.Map.TileSize)
	return tilemap.Coord{
		X: int(math.Floor(float64(t.Pos.X) / ts)),
		Y: int(math.Floor(float64(t.Pos.Y) / ts)),
	}
}

// Draw renders the status line and the visible part of the level.
// Off-grid tiles are drawn over the grid.
func (v *Viewer) Draw() {
	s := v.Screen
	s.Clear()
	w, h := s.Size()

	put := func(c tilemap.Coord, t tilemap.Tile) {
		x, y := c.X-v.Origin.X, c.Y-v.Origin.Y+1
		if x < 0 || x >= w || y < 1 || y >= h {
			return
		}
		r, style := Glyph(t)
		s.SetContent(x, y, r, nil, style)
	}
	for k, t := range v.Map.Grid() {
		put(k, t)
	}
	for _, t := range v.Map.Offgrid() {
		put(v.cellOf(t), t)
	}

	status := fmt.Sprintf(" %s  %d tiles, %d off-grid  origin %s  arrows pan, q quits ",
		v.Title, v.Map.Len(), len(v.Map.Offgrid()), v.Origin)
	runes := []rune(status)
	for x := range w {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		s.SetContent(x, 0, r, nil, statusStyle)
	}
	s.Show()
}

// HandleEvent applies one terminal event. It returns false when the viewer
// should close.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.Origin.X--
		case tcell.KeyRight:
			v.Origin.X++
		case tcell.KeyUp:
			v.Origin.Y--
		case tcell.KeyDown:
			v.Origin.Y++
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		v.Screen.Sync()
	}
	return true
}

// Run draws and handles events until the user quits.
func (v *Viewer) Run() {
	v.Draw()
	for {
		ev := v.Screen.PollEvent()
		if ev == nil || !v.HandleEvent(ev) {
			return
		}
		v.Draw()
	}
}
