package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
)

// Sprite is one generated image and its path below the images directory.
type Sprite struct {
	Path  string
	Image *image.RGBA
}

// openSides lists, per autotile variant, which sides of the tile face air
// (top, right, bottom, left).
var openSides = [9][4]bool{
	{true, false, false, true},   // 0: neighbours right and below
	{true, false, false, false},  // 1: right, below, left
	{true, true, false, false},   // 2: left, below
	{false, true, false, false},  // 3: left, above, below
	{false, true, true, false},   // 4: left, above
	{false, false, true, false},  // 5: left, above, right
	{false, false, true, true},   // 6: right, above
	{false, false, false, true},  // 7: right, above, below
	{false, false, false, false}, // 8: surrounded
}

// Sprites returns the complete placeholder image tree.
func Sprites() []Sprite {
	var out []Sprite
	add := func(path string, img *image.RGBA) {
		out = append(out, Sprite{Path: path, Image: img})
	}
	set := func(dir string, imgs ...*image.RGBA) {
		for i, img := range imgs {
			add(dir+"/"+frameName(i), img)
		}
	}

	p := ColorPalette
	grass := make([]*image.RGBA, 0, len(openSides))
	stone := make([]*image.RGBA, 0, len(openSides))
	for _, s := range openSides {
		g := CreateBorderedTile(p.Grass, Darken(p.Grass, 0.7), 1, s[0], s[1], s[2], s[3])
		if s[0] {
			FillRect(g, image.Rect(0, 0, TileSize, 3), p.GrassTop)
		}
		grass = append(grass, g)
		stone = append(stone, CreateBorderedTile(p.Stone, p.StoneEdge, 2, s[0], s[1], s[2], s[3]))
	}
	set("tiles/grass", grass...)
	set("tiles/stone", stone...)

	set("tiles/decor", flower(p.Flower), flower(Lighten(p.Flower, 0.5)), tuft(), tuft())
	set("tiles/large_decor",
		CreateEllipse(32, 16, p.Rock, Darken(p.Rock, 0.7)),
		CreateEllipse(32, 20, p.Leaf, Darken(p.Leaf, 0.7)),
		tree(),
	)
	set("tiles/spawners", marker(p.PlayerSpawn), marker(p.EnemySpawn))

	add("entities/player.png", ninja(0))
	set("entities/player/idle", ninja(0), ninja(0), ninja(1), ninja(1))
	set("entities/player/run", ninja(0), ninja(1), ninja(2), ninja(1), ninja(0), ninja(-1), ninja(-2), ninja(-1))
	set("entities/player/jump", ninja(-2))
	set("entities/player/wall_slide", ninja(2))
	set("entities/enemy/idle", gunner(0), gunner(0), gunner(1), gunner(1))
	set("entities/enemy/run", gunner(0), gunner(1), gunner(2), gunner(1))

	leaves := make([]*image.RGBA, 0, 18)
	for i := range 18 {
		leaves = append(leaves, leaf(i))
	}
	set("particles/leaf", leaves...)
	set("particles/particle", dot(7), dot(5), dot(3), dot(1))

	set("clouds",
		CreateEllipse(48, 20, p.Cloud, Darken(p.Cloud, 0.95)),
		CreateEllipse(64, 28, p.Cloud, Darken(p.Cloud, 0.95)),
	)

	add("background.png", VerticalGradient(320, 240, p.SkyTop, p.SkyBottom))
	gun := image.NewRGBA(image.Rect(0, 0, 7, 4))
	FillRect(gun, image.Rect(0, 0, 7, 2), p.Gun)
	FillRect(gun, image.Rect(1, 2, 3, 4), Darken(p.Gun, 0.7))
	add("gun.png", gun)
	add("projectile.png", CreateSolid(5, 3, p.Projectile))

	return out
}

// frameName is the zero-padded file name of frame i, so a sorted directory
// listing keeps the frame order.
func frameName(i int) string {
	s := strconv.Itoa(i)
	for len(s) < 2 {
		s = "0" + s
	}
	return s + ".png"
}

// ninja draws a 10x13 body inside the -3,-3 render margin. bob shifts the
// scarf to animate the frames.
func ninja(bob int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 19))
	FillRect(img, image.Rect(3, 3, 13, 16), ColorPalette.Player)
	FillRect(img, image.Rect(3, 6, 13, 7), ColorPalette.PlayerScarf)
	FillRect(img, image.Rect(0, 6+abs(bob)/2, 3, 7+abs(bob)/2), ColorPalette.PlayerScarf)
	FillRect(img, image.Rect(9, 4, 11, 5), color.RGBA{255, 255, 255, 255})
	return img
}

// gunner draws an 8x15 body inside the -3,-3 render margin.
func gunner(step int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 14, 21))
	FillRect(img, image.Rect(3, 3, 11, 18-step%2), ColorPalette.Enemy)
	FillRect(img, image.Rect(7, 5, 9, 7), color.RGBA{255, 255, 255, 255})
	return img
}

func flower(petal color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	FillRect(img, image.Rect(7, 8, 9, 16), ColorPalette.Leaf)
	FillRect(img, image.Rect(5, 4, 11, 8), petal)
	return img
}

func tuft() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	for x := 2; x < TileSize-2; x += 3 {
		FillRect(img, image.Rect(x, 10+x%2*2, x+1, TileSize), ColorPalette.GrassTop)
	}
	return img
}

func tree() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 48, 64))
	FillRect(img, image.Rect(20, 28, 28, 64), ColorPalette.Bark)
	canopy := CreateEllipse(44, 32, ColorPalette.Leaf, Darken(ColorPalette.Leaf, 0.7))
	for y := range 32 {
		for x := range 44 {
			if c := canopy.RGBAAt(x, y); c.A > 0 {
				img.SetRGBA(x+2, y, c)
			}
		}
	}
	return img
}

func marker(col color.RGBA) *image.RGBA {
	img := CreateEllipse(TileSize, TileSize, col, Darken(col, 0.6))
	FillRect(img, image.Rect(7, 3, 9, 13), Lighten(col, 0.6))
	return img
}

// leaf is a 3x3 leaf turning with frame i.
func leaf(i int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	c := ColorPalette.Leaf
	switch i % 4 {
	case 0:
		FillRect(img, image.Rect(0, 1, 3, 2), c)
	case 1:
		img.SetRGBA(0, 2, c)
		img.SetRGBA(1, 1, c)
		img.SetRGBA(2, 0, c)
	case 2:
		FillRect(img, image.Rect(1, 0, 2, 3), c)
	default:
		img.SetRGBA(0, 0, c)
		img.SetRGBA(1, 1, c)
		img.SetRGBA(2, 2, c)
	}
	return img
}

func dot(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 7, 7))
	o := (7 - size) / 2
	FillRect(img, image.Rect(o, o, o+size, o+size), ColorPalette.Spark)
	return img
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// GenerateImages writes every sprite below dir, reporting each file to out.
func GenerateImages(dir string, out io.Writer) error {
	sprites := Sprites()
	for _, s := range sprites {
		if err := SavePNG(s.Image, filepath.Join(dir, filepath.FromSlash(s.Path))); err != nil {
			return fmt.Errorf("failed to save %s: %w", s.Path, err)
		}
	}
	fmt.Fprintf(out, "✓ Generated %d images in %s\n", len(sprites), dir)
	return nil
}
