package fx

import (
	"cmp"
	"math"
	"slices"

	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/render"
)

// Rand is the random source used to scatter clouds.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Cloud drifts right forever. Depth scales how much it follows the camera.
type Cloud struct {
	Pos   geom.Vec
	Image render.Image
	Speed float64
	Depth float64
}

// Update moves the cloud one tick.
func (c *Cloud) Update() {
	c.Pos.X += c.Speed
}

// ScreenPos returns where the cloud is drawn on a surface of the given
// size for the camera offset. Clouds leaving one edge come back on the
// other once they are fully out of view.
func (c *Cloud) ScreenPos(offset geom.Vec, surfW, surfH int) geom.Vec {
	w, h := c.Image.Size()
	x := c.Pos.X - offset.X*c.Depth
	y := c.Pos.Y - offset.Y*c.Depth
	return geom.Vec{
		X: floorMod(x, float64(surfW+w)) - float64(w),
		Y: floorMod(y, float64(surfH+h)) - float64(h),
	}
}

// floorMod is the modulo whose result takes the sign of m.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// Clouds is the parallax cloud layer, ordered back to front.
type Clouds []*Cloud

// NewClouds scatters count clouds using images.
func NewClouds(images []render.Image, count int, rng Rand) Clouds {
	if len(images) == 0 {
		return nil
	}
	clouds := make(Clouds, 0, count)
	for range count {
		pos := geom.Vec{X: rng.Float64() * 99999, Y: rng.Float64() * 99999}
		img := images[rng.IntN(len(images))]
		clouds = append(clouds, &Cloud{
			Pos:   pos,
			Image: img,
			Speed: rng.Float64()*0.05 + 0.1,
			Depth: rng.Float64()*0.6 + 0.2,
		})
	}
	slices.SortStableFunc(clouds, func(a, b *Cloud) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
	return clouds
}

// Update moves every cloud.
func (cs Clouds) Update() {
	for _, c := range cs {
		c.Update()
	}
}
