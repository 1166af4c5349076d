// Package actor holds the player and enemy behaviour built on top of
// physics bodies. Actors never reach into the world directly: spawning,
// sounds and other side effects go through an Effects sink.
package actor

import (
	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/physics"
	"chosenoffset.com/ninja/internal/tilemap"
)

// Sound names understood by the audio sink.
const (
	SoundJump  = "jump"
	SoundDash  = "dash"
	SoundHit   = "hit"
	SoundShoot = "shoot"
)

// Effects receives the side effects of an actor update.
type Effects interface {
	// SpawnParticle adds a particle of the given kind starting at frame.
	SpawnParticle(kind string, pos, vel geom.Vec, frame int)
	// SpawnProjectile adds a projectile moving horizontally by dir per tick.
	SpawnProjectile(pos geom.Vec, dir float64)
	// SpawnSparks adds n identical sparks.
	SpawnSparks(n int, pos geom.Vec, angle, speed float64)
	// Explode adds n sparks in random directions at sparkAt and n particles
	// flying the opposite way from particleAt.
	Explode(n int, sparkAt, particleAt geom.Vec)
	// Shake raises the screenshake to at least n ticks.
	Shake(n int)
	// Kill starts the player death sequence.
	Kill()
	// Play triggers a sound.
	Play(sound string)
}

// Rand is the random source used by actor behaviour. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Terrain is what actors need from the level: collision boxes for the body
// and point queries for ledge probing.
type Terrain interface {
	physics.Terrain
	SolidTile(p geom.Vec) (tilemap.Tile, bool)
}

// Target is the actor enemies look for and can be killed by.
type Target interface {
	Position() geom.Vec
	Hitbox() geom.Rect
	DashStrength() int
}

// randInt returns a uniform integer in [lo, hi].
func randInt(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
