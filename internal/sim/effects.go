package sim

import (
	"math"

	"chosenoffset.com/ninja/internal/fx"
	"chosenoffset.com/ninja/internal/geom"
)

// The World is the Effects sink of its actors.

// SpawnParticle adds a particle playing "particle/<kind>" from frame.
func (w *World) SpawnParticle(kind string, pos, vel geom.Vec, frame int) {
	w.Particles = append(w.Particles, fx.NewParticle(w.opts.Animations, kind, pos, vel, frame))
}

// SpawnProjectile fires a projectile from pos.
func (w *World) SpawnProjectile(pos geom.Vec, dir float64) {
	w.Projectiles = append(w.Projectiles, &fx.Projectile{Pos: pos, Dir: dir})
}

// SpawnSparks adds n sparks sharing the same position, angle and speed.
func (w *World) SpawnSparks(n int, pos geom.Vec, angle, speed float64) {
	for range n {
		w.Sparks = append(w.Sparks, &fx.Spark{Pos: pos, Angle: angle, Speed: speed})
	}
}

// Explode bursts n sparks outward from sparkAt and n particles from
// particleAt, each particle flying opposite to its spark.
func (w *World) Explode(n int, sparkAt, particleAt geom.Vec) {
	for range n {
		angle := w.rng.Float64() * math.Pi * 2
		speed := w.rng.Float64() * 2
		w.Sparks = append(w.Sparks, &fx.Spark{Pos: sparkAt, Angle: angle, Speed: speed})
		w.SpawnParticle("dash", particleAt, geom.Polar(angle+math.Pi, speed), w.rng.IntN(8))
	}
}

// Shake raises the screenshake to at least n.
func (w *World) Shake(n int) {
	w.Screenshake = max(n, w.Screenshake)
}

// Kill starts the death sequence. It does nothing while the player is
// already dead, so a second hit does not restart the death countdown.
func (w *World) Kill() {
	if w.Dead == 0 {
		w.Dead = 1
	}
}

// Play forwards a sound to the audio sink.
func (w *World) Play(sound string) {
	w.opts.Sounds.Play(sound)
}
