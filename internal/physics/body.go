// Package physics moves axis-aligned bodies through a tilemap.
package physics

import (
	"chosenoffset.com/ninja/internal/anim"
	"chosenoffset.com/ninja/internal/geom"
)

const (
	// Gravity is added to the vertical velocity every tick.
	Gravity = 0.1
	// MaxFallSpeed caps the vertical velocity.
	MaxFallSpeed = 5.0
)

// Terrain supplies the collision boxes near a position.
type Terrain interface {
	ClosestCollisionRects(p geom.Vec) []geom.Rect
}

// Collisions records which sides of a body touched terrain this tick.
type Collisions struct {
	Up, Down, Left, Right bool
}

// Side reports whether either horizontal side collided.
func (c Collisions) Side() bool {
	return c.Left || c.Right
}

// Body is a moving box that collides with terrain and plays an animation
// chosen by its current action.
type Body struct {
	Kind       string
	Pos        geom.Vec
	Size       geom.Vec
	Velocity   geom.Vec
	Collisions Collisions
	Action     string
	Flip       bool
	Anim       *anim.Animation
	AnimOffset geom.Vec

	lib anim.Library
}

// NewBody creates a body in the idle action.
func NewBody(kind string, pos, size geom.Vec, lib anim.Library) *Body {
	b := &Body{
		Kind:       kind,
		Pos:        pos,
		Size:       size,
		AnimOffset: geom.Vec{X: -3, Y: -3},
		lib:        lib,
	}
	b.SetAction("idle")
	return b
}

// Rect returns the body's collision box.
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Center returns the centre of the collision box.
func (b *Body) Center() geom.Vec {
	return b.Rect().Center()
}

// SetAction switches the animation when the action changes. Requesting the
// current action keeps the running animation.
func (b *Body) SetAction(action string) {
	if action == b.Action {
		return
	}
	b.Action = action
	b.Anim = b.lib.MustGet(b.Kind, action).Copy()
}

// Update moves the body by movement plus its velocity, resolving the
// vertical axis before the horizontal one, then applies gravity and ticks
// the animation.
func (b *Body) Update(terrain Terrain, movement geom.Vec) {
	b.Collisions = Collisions{}

	frame := movement.Add(b.Velocity)
	rects := terrain.ClosestCollisionRects(b.Pos)

	b.Pos.Y += frame.Y
	for _, r := range rects {
		if !b.Rect().Overlaps(r) {
			continue
		}
		if frame.Y > 0 {
			b.Pos.Y = r.Top() - b.Size.Y
			b.Collisions.Down = true
		}
		if frame.Y < 0 {
			b.Pos.Y = r.Bottom()
			b.Collisions.Up = true
		}
	}

	b.Pos.X += frame.X
	for _, r := range rects {
		if !b.Rect().Overlaps(r) {
			continue
		}
		if frame.X > 0 {
			b.Pos.X = r.Left() - b.Size.X
			b.Collisions.Right = true
		}
		if frame.X < 0 {
			b.Pos.X = r.Right()
			b.Collisions.Left = true
		}
	}

	if frame.X > 0 {
		b.Flip = false
	} else if frame.X < 0 {
		b.Flip = true
	}

	b.Velocity.Y = min(MaxFallSpeed, b.Velocity.Y+Gravity)
	if b.Collisions.Down || b.Collisions.Up {
		b.Velocity.Y = 0
	}

	b.Anim.Update()
}
