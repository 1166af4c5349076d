// Package fx holds the short-lived visual objects of the game: sparks,
// particles, projectiles and the parallax clouds.
package fx

import (
	"math"

	"chosenoffset.com/ninja/internal/anim"
	"chosenoffset.com/ninja/internal/geom"
)

// sparkDecay is subtracted from a spark's speed every tick.
const sparkDecay = 0.1

// Projectile is a bullet in flight. It moves Dir pixels per tick along x.
type Projectile struct {
	Pos geom.Vec
	Dir float64
	Age int
}

// Spark is a white diamond that flies along Angle and slows down until it
// vanishes.
type Spark struct {
	Pos   geom.Vec
	Angle float64
	Speed float64
}

// Update moves the spark and reports whether it has expired.
func (s *Spark) Update() bool {
	s.Pos = s.Pos.Add(geom.Polar(s.Angle, s.Speed))
	s.Speed = max(0, s.Speed-sparkDecay)
	return s.Speed == 0
}

// Diamond returns the four corners of the spark shape in screen space:
// front, right side, back, left side.
func (s *Spark) Diamond(offset geom.Vec) [4]geom.Vec {
	c := s.Pos.Sub(offset)
	long, short := s.Speed*3, s.Speed*0.5
	return [4]geom.Vec{
		c.Add(geom.Polar(s.Angle, long)),
		c.Add(geom.Polar(s.Angle+math.Pi*0.5, short)),
		c.Add(geom.Polar(s.Angle+math.Pi, long)),
		c.Add(geom.Polar(s.Angle-math.Pi*0.5, short)),
	}
}

// Particle is an animated point that drifts with a constant velocity and
// disappears after its one-shot animation ends.
type Particle struct {
	Kind     string
	Pos      geom.Vec
	Velocity geom.Vec
	Anim     *anim.Animation
}

// NewParticle creates a particle playing the "particle/<kind>" animation
// from frame.
func NewParticle(lib anim.Library, kind string, pos, vel geom.Vec, frame int) *Particle {
	return &Particle{
		Kind:     kind,
		Pos:      pos,
		Velocity: vel,
		Anim:     lib.MustGet("particle", kind).CopyAt(frame),
	}
}

// Update moves the particle and ticks its animation. It reports whether
// the animation had already finished before this tick, so the last frame
// is shown once.
func (p *Particle) Update() bool {
	done := p.Anim.Done()
	p.Pos = p.Pos.Add(p.Velocity)
	p.Anim.Update()
	return done
}
