package actor

import (
	"chosenoffset.com/ninja/internal/anim"
	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/render"
	"chosenoffset.com/ninja/internal/tilemap"
)

type stubImage struct{ render.Image }

func testLibrary() anim.Library {
	frames := []render.Image{&stubImage{}, &stubImage{}}
	lib := anim.Library{}
	for _, key := range []string{
		"player/idle", "player/run", "player/jump", "player/wall_slide",
		"enemy/idle", "enemy/run",
	} {
		lib[key] = anim.New(frames, 5, true)
	}
	return lib
}

// recorder is an Effects sink that remembers every call.
type recorder struct {
	particles   []string
	projectiles []float64
	sparks      int
	explosions  int
	shake       int
	kills       int
	sounds      []string
}

func (r *recorder) SpawnParticle(kind string, _, _ geom.Vec, _ int) {
	r.particles = append(r.particles, kind)
}

func (r *recorder) SpawnProjectile(_ geom.Vec, dir float64) {
	r.projectiles = append(r.projectiles, dir)
}

func (r *recorder) SpawnSparks(n int, _ geom.Vec, _, _ float64) { r.sparks += n }
func (r *recorder) Explode(n int, _, _ geom.Vec)                { r.explosions += n }
func (r *recorder) Shake(n int)                                 { r.shake = max(r.shake, n) }
func (r *recorder) Kill()                                       { r.kills++ }
func (r *recorder) Play(sound string)                           { r.sounds = append(r.sounds, sound) }

// fixedRand returns the same values on every draw.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

// floorMap returns a tilemap with a stone floor on row 3 spanning cells
// [from, to].
func floorMap(from, to int) *tilemap.Tilemap {
	m := tilemap.New(16)
	for x := from; x <= to; x++ {
		m.SetTile(tilemap.Coord{X: x, Y: 3}, tilemap.Tile{Type: "stone"})
	}
	return m
}

// dummy is a Target that never moves.
type dummy struct {
	pos  geom.Vec
	dash int
}

func (d dummy) Position() geom.Vec { return d.pos }
func (d dummy) Hitbox() geom.Rect  { return geom.Rect{X: d.pos.X, Y: d.pos.Y, W: 10, H: 13} }
func (d dummy) DashStrength() int  { return d.dash }
