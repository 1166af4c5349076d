package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// TileSize is the size of placeholder tiles, matching the level tile size.
const TileSize = 16

// ColorPalette defines colors for the placeholder art (forest theme)
var ColorPalette = struct {
	// Terrain
	Grass     color.RGBA
	GrassTop  color.RGBA
	Stone     color.RGBA
	StoneEdge color.RGBA

	// Decoration
	Flower color.RGBA
	Bark   color.RGBA
	Leaf   color.RGBA
	Rock   color.RGBA

	// Entities
	Player      color.RGBA
	PlayerScarf color.RGBA
	Enemy       color.RGBA
	Gun         color.RGBA
	Projectile  color.RGBA
	Spark       color.RGBA

	// Markers
	PlayerSpawn color.RGBA
	EnemySpawn  color.RGBA

	// Sky
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Cloud     color.RGBA
}{
	Grass:     color.RGBA{60, 130, 60, 255},
	GrassTop:  color.RGBA{110, 190, 80, 255},
	Stone:     color.RGBA{110, 110, 120, 255},
	StoneEdge: color.RGBA{70, 70, 80, 255},

	Flower: color.RGBA{230, 90, 140, 255},
	Bark:   color.RGBA{100, 70, 45, 255},
	Leaf:   color.RGBA{70, 160, 70, 255},
	Rock:   color.RGBA{130, 125, 115, 255},

	Player:      color.RGBA{40, 40, 55, 255},
	PlayerScarf: color.RGBA{220, 50, 50, 255},
	Enemy:       color.RGBA{150, 60, 170, 255},
	Gun:         color.RGBA{90, 90, 90, 255},
	Projectile:  color.RGBA{255, 230, 120, 255},
	Spark:       color.RGBA{255, 255, 255, 255},

	PlayerSpawn: color.RGBA{0, 255, 100, 255},
	EnemySpawn:  color.RGBA{255, 50, 50, 255},

	SkyTop:    color.RGBA{120, 170, 220, 255},
	SkyBottom: color.RGBA{200, 225, 245, 255},
	Cloud:     color.RGBA{240, 245, 250, 255},
}

// CreateSolid creates a w x h image filled with col.
func CreateSolid(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile whose open sides carry a border. Each of
// top, right, bottom and left selects one side.
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int, top, right, bottom, left bool) *image.RGBA {
	img := CreateSolid(TileSize, TileSize, fillColor)

	for i := 0; i < borderWidth; i++ {
		for x := 0; x < TileSize; x++ {
			if top {
				img.Set(x, i, borderColor)
			}
			if bottom {
				img.Set(x, TileSize-1-i, borderColor)
			}
		}
		for y := 0; y < TileSize; y++ {
			if left {
				img.Set(i, y, borderColor)
			}
			if right {
				img.Set(TileSize-1-i, y, borderColor)
			}
		}
	}

	return img
}

// CreateEllipse creates a w x h sprite holding a filled ellipse on a
// transparent background.
func CreateEllipse(w, h int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	cx, cy := float64(w)/2, float64(h)/2
	rx, ry := cx-0.5, cy-0.5
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := dx*dx + dy*dy
			switch {
			case d <= 0.7:
				img.Set(x, y, fillColor)
			case d <= 1:
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// FillRect paints r on img.
func FillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r, &image.Uniform{col}, image.Point{}, draw.Src)
}

// VerticalGradient creates a w x h image blending from top to bottom.
func VerticalGradient(w, h int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(1, h-1))
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		FillRect(img, image.Rect(0, y, w, y+1), c)
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// SavePNG saves an image to a PNG file, creating its directory.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
