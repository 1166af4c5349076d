package actor

import (
	"math"

	"chosenoffset.com/ninja/internal/anim"
	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/physics"
)

const (
	// FireRate is the number of ticks between two shots.
	FireRate = 60

	patrolChance  = 0.01
	patrolMinTime = 25
	patrolMaxTime = 110
	patrolSpeed   = 0.5
	// ledgeProbe is how far ahead of and below the body the floor is probed.
	ledgeProbe = 6.0
	// sightRange is the vertical gap under which the player is in view.
	sightRange      = 12.0
	projectileSpeed = 1.25
	muzzleOffset    = 2.0
	killExplosion   = 30
	killShake       = 12
)

// EnemySize is the collision box of an enemy.
var EnemySize = geom.Vec{X: 8, Y: 15}

// Enemy patrols its platform and shoots at the player when it sees them.
type Enemy struct {
	*physics.Body

	// Walking is the number of patrol ticks left.
	Walking  int
	FireTime int
}

// NewEnemy creates an enemy at pos.
func NewEnemy(pos geom.Vec, lib anim.Library) *Enemy {
	return &Enemy{Body: physics.NewBody("enemy", pos, EnemySize, lib)}
}

// Update advances the enemy one tick. It returns true when the enemy was
// killed by a dashing target and must be removed.
func (e *Enemy) Update(terrain Terrain, target Target, fx Effects, rng Rand) bool {
	var movement geom.Vec

	if e.Walking > 0 {
		ahead := -ledgeProbe
		if !e.Flip {
			ahead = ledgeProbe
		}
		probe := geom.Vec{X: e.Center().X + ahead, Y: e.Rect().Bottom() + ledgeProbe}
		if _, solid := terrain.SolidTile(probe); solid {
			if e.Collisions.Side() {
				e.Flip = !e.Flip
			} else if e.Flip {
				movement.X = -patrolSpeed
			} else {
				movement.X = patrolSpeed
			}
		} else {
			e.Flip = !e.Flip
		}
		e.Walking--
	} else if rng.Float64() < patrolChance {
		e.Walking = randInt(rng, patrolMinTime, patrolMaxTime)
	}

	if e.Walking == 0 {
		e.scan(target, fx, rng)
	}

	if movement.X != 0 {
		e.SetAction("run")
	} else {
		e.SetAction("idle")
	}

	e.Body.Update(terrain, movement)

	if target.DashStrength() >= dashBurst && e.Rect().Overlaps(target.Hitbox()) {
		fx.Play(SoundHit)
		fx.Explode(killExplosion, e.Center(), e.Center())
		fx.Shake(killShake)
		return true
	}
	return false
}

// scan shoots at the target when it is level with the enemy and in front
// of it. The fire timer runs whenever the target is level.
func (e *Enemy) scan(target Target, fx Effects, rng Rand) {
	dist := target.Position().Sub(e.Pos)
	if math.Abs(dist.Y) >= sightRange {
		return
	}

	facing := (e.Flip && dist.X < 0) || (!e.Flip && dist.X > 0)
	if facing && e.FireTime == 0 {
		c := e.Center()
		muzzle := geom.Vec{X: c.X + muzzleOffset, Y: c.Y}
		dir := projectileSpeed
		angle := rng.Float64() - 0.25
		if e.Flip {
			muzzle.X = c.X - muzzleOffset
			dir = -projectileSpeed
			angle += math.Pi
		}
		fx.Play(SoundShoot)
		fx.SpawnProjectile(muzzle, dir)
		fx.SpawnSparks(6, muzzle, angle, 1+rng.Float64())
	}

	e.FireTime = (e.FireTime + 1) % FireRate
}

// GunPos returns where the gun image of width gunW is drawn, in world
// pixels. The gun sits beside the body centre on the facing side.
func (e *Enemy) GunPos(gunW float64) geom.Vec {
	c := e.Center()
	if e.Flip {
		return geom.Vec{X: c.X - gunW - muzzleOffset, Y: c.Y}
	}
	return geom.Vec{X: c.X + muzzleOffset, Y: c.Y}
}
