package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/tilemap"
)

func standingPlayer(t *testing.T, m *tilemap.Tilemap, fx *recorder) *Player {
	t.Helper()
	p := NewPlayer(geom.Vec{X: 20, Y: 30}, testLibrary())
	for i := 0; i < 60 && !p.Collisions.Down; i++ {
		p.Update(m, geom.Vec{}, fx, fixedRand{f: 0.5})
	}
	require.True(t, p.Collisions.Down, "player never landed")
	return p
}

func TestPlayerJump(t *testing.T) {
	fx := &recorder{}
	p := standingPlayer(t, floorMap(0, 4), fx)
	assert.Equal(t, 1, p.Jumps)
	assert.Equal(t, "idle", p.Action)

	require.True(t, p.Jump(fx))
	assert.Equal(t, -3.0, p.Velocity.Y)
	assert.Equal(t, 0, p.Jumps)
	assert.Equal(t, 5, p.AirTime)
	assert.Equal(t, []string{SoundJump}, fx.sounds)

	assert.False(t, p.Jump(fx), "no double jump")

	p.Update(floorMap(0, 4), geom.Vec{}, fx, fixedRand{f: 0.5})
	assert.Equal(t, "jump", p.Action)
}

func TestPlayerRunsOnGround(t *testing.T) {
	fx := &recorder{}
	m := floorMap(0, 8)
	p := standingPlayer(t, m, fx)

	p.Update(m, geom.Vec{X: 1}, fx, fixedRand{f: 0.5})
	assert.Equal(t, "run", p.Action)
	assert.False(t, p.Flip)

	p.Update(m, geom.Vec{X: -1}, fx, fixedRand{f: 0.5})
	assert.True(t, p.Flip)
}

func TestPlayerDash(t *testing.T) {
	fx := &recorder{}
	m := floorMap(0, 20)
	p := standingPlayer(t, m, fx)
	fx.sounds = nil

	require.True(t, p.Dash(fx))
	assert.Equal(t, DashDuration, p.Dashing)
	assert.False(t, p.Dash(fx), "dash already running")
	assert.Equal(t, []string{SoundDash}, fx.sounds)

	p.Update(m, geom.Vec{}, fx, fixedRand{f: 0.5})
	assert.Len(t, fx.particles, 21, "burst of 20 plus one trail particle")
	assert.Equal(t, 59, p.Dashing)
	assert.InDelta(t, 6.9, p.Velocity.X, 1e-9)
	assert.False(t, p.Visible())
	assert.Equal(t, 59, p.DashStrength())

	for p.Dashing > 51 {
		p.Update(m, geom.Vec{}, fx, fixedRand{f: 0.5})
	}
	// Last burst tick: 7 * 0.1 minus friction.
	assert.InDelta(t, 0.6, p.Velocity.X, 1e-9)

	p.Update(m, geom.Vec{}, fx, fixedRand{f: 0.5})
	assert.Equal(t, 50, p.Dashing)
	assert.InDelta(t, 0.5, p.Velocity.X, 1e-9)
	assert.True(t, p.Visible())

	for p.Dashing != 0 {
		p.Update(m, geom.Vec{}, fx, fixedRand{f: 0.5})
	}
	assert.Equal(t, 0.0, p.Velocity.X, "friction stops the player")
}

func TestPlayerDashFollowsFacing(t *testing.T) {
	fx := &recorder{}
	p := NewPlayer(geom.Vec{}, testLibrary())
	p.Flip = true
	require.True(t, p.Dash(fx))
	assert.Equal(t, -DashDuration, p.Dashing)
}

func TestPlayerDiesAfterLongFall(t *testing.T) {
	fx := &recorder{}
	p := NewPlayer(geom.Vec{}, testLibrary())
	empty := tilemap.New(16)

	for i := 0; i < FatalAirTime-1; i++ {
		p.Update(empty, geom.Vec{}, fx, fixedRand{f: 0.5})
	}
	assert.Equal(t, 0, fx.kills)

	p.Update(empty, geom.Vec{}, fx, fixedRand{f: 0.5})
	assert.Equal(t, 1, fx.kills)
}

func TestPlayerWallSlideAndWallJump(t *testing.T) {
	fx := &recorder{}
	m := tilemap.New(16)
	for y := 0; y <= 4; y++ {
		m.SetTile(tilemap.Coord{X: 2, Y: y}, tilemap.Tile{Type: "stone"})
	}
	p := NewPlayer(geom.Vec{X: 20, Y: 20}, testLibrary())

	for i := 0; i < 10; i++ {
		p.Update(m, geom.Vec{X: 1}, fx, fixedRand{f: 0.5})
	}
	require.True(t, p.WallSlide)
	assert.Equal(t, "wall_slide", p.Action)
	assert.LessOrEqual(t, p.Velocity.Y, 0.5)
	assert.False(t, p.Flip, "faces the wall on the right")
	assert.Equal(t, 32.0, p.Rect().Right())

	require.True(t, p.Jump(fx))
	assert.Equal(t, geom.Vec{X: -2, Y: -2}, p.Velocity)
	assert.Equal(t, 5, p.AirTime)
	assert.Empty(t, fx.sounds, "wall jumps are silent")
}

func TestPlayerWallJumpNeedsPush(t *testing.T) {
	fx := &recorder{}
	p := NewPlayer(geom.Vec{}, testLibrary())
	p.WallSlide = true
	assert.False(t, p.Jump(fx))
}
