package actor

import (
	"math"

	"chosenoffset.com/ninja/internal/anim"
	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/physics"
)

const (
	// FatalAirTime is how many ticks the player may spend airborne, outside
	// a wall slide, before dying.
	FatalAirTime = 180
	// DashDuration is the length of a dash in ticks.
	DashDuration = 60
	// dashBurst is the dash counter magnitude above which the burst speed
	// applies.
	dashBurst = 50

	dashSpeed     = 7.0
	jumpSpeed     = -3.0
	wallJumpSpeed = 2.0
	wallSlideCap  = 0.5
	friction      = 0.1
	// coyoteTicks is the airtime after which the player counts as airborne.
	coyoteTicks = 5
)

// PlayerSize is the collision box of the player.
var PlayerSize = geom.Vec{X: 10, Y: 13}

// Player is the controllable ninja.
type Player struct {
	*physics.Body

	Jumps     int
	AirTime   int
	WallSlide bool
	// Dashing counts from ±DashDuration towards zero; the sign is the
	// dash direction.
	Dashing int

	prevMovement geom.Vec
}

// NewPlayer creates a player at pos.
func NewPlayer(pos geom.Vec, lib anim.Library) *Player {
	return &Player{
		Body:  physics.NewBody("player", pos, PlayerSize, lib),
		Jumps: 1,
	}
}

// Position returns the player's top-left corner.
func (p *Player) Position() geom.Vec { return p.Pos }

// Hitbox returns the player's collision box.
func (p *Player) Hitbox() geom.Rect { return p.Rect() }

// DashStrength returns the magnitude of the dash counter.
func (p *Player) DashStrength() int { return abs(p.Dashing) }

// Visible reports whether the player should be drawn. The player turns
// invisible during the burst part of a dash.
func (p *Player) Visible() bool {
	return abs(p.Dashing) <= dashBurst
}

// Update advances the player one tick with the given horizontal intent.
func (p *Player) Update(terrain physics.Terrain, movement geom.Vec, fx Effects, rng Rand) {
	p.Body.Update(terrain, movement)
	p.AirTime++
	p.prevMovement = movement

	if p.AirTime >= FatalAirTime && !p.WallSlide {
		fx.Kill()
	}

	p.WallSlide = false
	if p.Collisions.Side() && p.AirTime > coyoteTicks {
		p.WallSlide = true
		p.Velocity.Y = min(p.Velocity.Y, wallSlideCap)
		p.Flip = !p.Collisions.Right
		p.SetAction("wall_slide")
	}

	if !p.WallSlide {
		if p.Collisions.Down {
			p.AirTime = 0
			p.Jumps = 1
		}
		switch {
		case p.AirTime > coyoteTicks:
			p.SetAction("jump")
		case movement.X != 0:
			p.SetAction("run")
		default:
			p.SetAction("idle")
		}
	}

	if d := abs(p.Dashing); d == DashDuration || d == dashBurst {
		for range 20 {
			angle := rng.Float64() * math.Pi * 2
			speed := rng.Float64()*0.5 + 0.25
			fx.SpawnParticle("dash", p.Center(), geom.Polar(angle, speed), randInt(rng, 0, 5))
		}
	}

	if p.Dashing > 0 {
		p.Dashing--
	} else if p.Dashing < 0 {
		p.Dashing++
	}

	if abs(p.Dashing) > dashBurst {
		dir := float64(p.Dashing / abs(p.Dashing))
		p.Velocity.X = dir * dashSpeed
		if abs(p.Dashing) == dashBurst+1 {
			p.Velocity.X *= 0.1
		}
		trail := geom.Vec{X: dir * rng.Float64() * 3}
		fx.SpawnParticle("dash", p.Center(), trail, randInt(rng, 0, 5))
	}

	if p.Velocity.X > 0 {
		p.Velocity.X = max(p.Velocity.X-friction, 0)
	} else {
		p.Velocity.X = min(p.Velocity.X+friction, 0)
	}
}

// Jump starts a jump or a wall jump and reports whether it did.
// A wall jump needs the player to be sliding and still pushing into
// the wall.
func (p *Player) Jump(fx Effects) bool {
	if p.WallSlide {
		switch {
		case p.Flip && p.prevMovement.X < 0:
			p.Velocity = geom.Vec{X: wallJumpSpeed, Y: -wallJumpSpeed}
		case !p.Flip && p.prevMovement.X > 0:
			p.Velocity = geom.Vec{X: -wallJumpSpeed, Y: -wallJumpSpeed}
		default:
			return false
		}
		p.AirTime = coyoteTicks
		p.Jumps--
		return true
	}
	if p.Jumps != 1 {
		return false
	}
	fx.Play(SoundJump)
	p.Velocity.Y = jumpSpeed
	p.Jumps--
	p.AirTime = coyoteTicks
	return true
}

// Dash starts a dash in the facing direction unless one is running.
func (p *Player) Dash(fx Effects) bool {
	if p.Dashing != 0 {
		return false
	}
	fx.Play(SoundDash)
	if p.Flip {
		p.Dashing = -DashDuration
	} else {
		p.Dashing = DashDuration
	}
	return true
}
