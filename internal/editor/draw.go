package editor

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/ninja/internal/assets"
	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/render"
)

const (
	// previewAlpha is the opacity of the brush preview.
	previewAlpha = 100.0 / 255
	// statusMargin is the gap below the status line in display pixels.
	statusMargin = 2
)

var (
	preview     = &render.ColorScale{R: previewAlpha, G: previewAlpha, B: previewAlpha, A: previewAlpha}
	statusColor = color.RGBA{230, 230, 230, 255}
)

// Draw renders the level, the brush preview and the status line.
func (e *Editor) Draw(screen render.Image) {
	if e.display == nil {
		e.display = e.Renderer.NewImage(e.DisplayWidth, e.DisplayHeight)
	}
	e.display.Fill(color.Black)

	scroll := geom.Vec{X: math.Trunc(e.Scroll.X), Y: math.Trunc(e.Scroll.Y)}
	for _, t := range e.Map.Visible(scroll, e.DisplayWidth, e.DisplayHeight) {
		img, ok := assets.Variant(e.Tiles, t.Type, t.Variant)
		if !ok {
			continue
		}
		drawImage(e.display, img, t.X-scroll.X, t.Y-scroll.Y, nil)
	}

	b := e.Brush()
	if brush, ok := assets.Variant(e.Tiles, b.Type, b.Variant); ok {
		drawImage(e.display, brush, 5, 5, preview)

		cursor := e.cursor()
		if e.Placing() {
			cell := e.Cell(cursor)
			ts := float64(e.Map.TileSize)
			drawImage(e.display, brush, float64(cell.X)*ts-e.Scroll.X, float64(cell.Y)*ts-e.Scroll.Y, preview)
		} else {
			drawImage(e.display, brush, cursor.X, cursor.Y, preview)
		}
	}

	status := e.statusLine()
	_, h := e.Renderer.MeasureText(status, 1)
	e.Renderer.DrawText(e.display, status, 5, e.DisplayHeight-h-statusMargin, statusColor, 1)

	geo := render.NewGeoM()
	geo.Scale(float64(e.ScreenWidth)/float64(e.DisplayWidth), float64(e.ScreenHeight)/float64(e.DisplayHeight))
	screen.DrawImage(e.display, &render.DrawImageOptions{GeoM: geo})
}

func (e *Editor) statusLine() string {
	mode := "grid"
	if !e.Placing() {
		mode = "free"
	}
	b := e.Brush()
	line := fmt.Sprintf("%s %d | %s | %s", b.Type, b.Variant, mode, e.Target)
	if e.Status != "" {
		line += " | " + e.Status
	}
	return line
}

func drawImage(dst, img render.Image, x, y float64, cs *render.ColorScale) {
	geo := render.NewGeoM()
	geo.Translate(x, y)
	dst.DrawImage(img, &render.DrawImageOptions{GeoM: geo, ColorScale: cs})
}
