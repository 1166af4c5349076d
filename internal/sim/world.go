// Package sim runs the game world one fixed tick at a time: level loading,
// camera, transitions, death and the interactions between the player,
// enemies and effects.
package sim

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"chosenoffset.com/ninja/internal/actor"
	"chosenoffset.com/ninja/internal/anim"
	"chosenoffset.com/ninja/internal/fx"
	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/render"
	"chosenoffset.com/ninja/internal/tilemap"
)

const (
	// TileSize is the tile size of empty levels.
	TileSize = 16
	// TransitionDuration is the length of the circular wipe in ticks.
	TransitionDuration = 30

	deathTicks         = 30
	projectileLifetime = 300
	hitExplosion       = 15
	hitShake           = 12
	// A leaf spawns with a chance of leafChance in 101 per spawner per tick.
	leafChance = 3
)

var (
	leafSpawnerTiles = []tilemap.Pair{{Type: "large_decor", Variant: 2}}
	spawnerTiles     = []tilemap.Pair{{Type: "spawner", Variant: 0}, {Type: "spawner", Variant: 1}}
	leafSpawnerSize  = geom.Vec{X: 20, Y: 15}
	leafVelocity     = geom.Vec{X: -0.15, Y: 0.5}
)

// Levels resolves level numbers to files.
type Levels interface {
	Count() int
	Level(n int) string
}

// Sounds plays named sound effects.
type Sounds interface {
	Play(name string)
}

// Rand is the random source of the world. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Input is the player's intent for one tick.
type Input struct {
	Left, Right bool // Held
	Jump, Dash  bool // Pressed this tick
}

// Options configures a World.
type Options struct {
	Animations  anim.Library
	Levels      Levels
	Sounds      Sounds // nil plays nothing
	Rand        Rand   // nil uses a randomly seeded source
	CloudImages []render.Image
	CloudCount  int
	ScreenW     int
	ScreenH     int
	CameraLag   float64 // below 1 means 1
}

// World is the complete game state.
type World struct {
	Level    int
	MaxLevel int

	Map          *tilemap.Tilemap
	Player       *actor.Player
	Enemies      []*actor.Enemy
	Projectiles  []*fx.Projectile
	Sparks       []*fx.Spark
	Particles    []*fx.Particle
	Clouds       fx.Clouds
	LeafSpawners []geom.Rect

	Scroll      geom.Vec
	Screenshake int
	// Transition is positive while the level fades out and negative while
	// the next one fades in.
	Transition int
	// Dead counts the ticks since the player died, 0 while alive.
	Dead int

	opts Options
	rng  Rand
	held Input
}

type nopSounds struct{}

func (nopSounds) Play(string) {}

// New creates a world and loads its first level.
func New(opts Options, level int) (*World, error) {
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.CameraLag < 1 {
		opts.CameraLag = 1
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	w := &World{
		MaxLevel: max(1, opts.Levels.Count()),
		Player:   actor.NewPlayer(geom.Vec{}, opts.Animations),
		Clouds:   fx.NewClouds(opts.CloudImages, opts.CloudCount, rng),
		opts:     opts,
		rng:      rng,
	}
	if err := w.LoadLevel(level); err != nil {
		return nil, err
	}
	w.Transition = -TransitionDuration
	return w, nil
}

// LoadLevel replaces the current level with level n. A missing level file
// gives an empty level; a malformed one is an error and leaves the world
// unchanged.
func (w *World) LoadLevel(n int) error {
	path := w.opts.Levels.Level(n)
	m, err := tilemap.Load(path)
	if errors.Is(err, tilemap.ErrMissingLevel) {
		log.Printf("No map found at %s, starting with an empty level", path)
		m = tilemap.New(TileSize)
	} else if err != nil {
		return fmt.Errorf("failed to load level %d: %w", n, err)
	}
	w.Level = n
	w.install(m)
	return nil
}

// reload loads level n from inside the game loop, where a broken level
// must not stop the game.
func (w *World) reload(n int) {
	if err := w.LoadLevel(n); err != nil {
		log.Printf("%v, starting with an empty level", err)
		w.Level = n
		w.install(tilemap.New(TileSize))
	}
}

// install resets the per-level state and turns the map's markers into
// leaf spawners, the player start and enemies.
func (w *World) install(m *tilemap.Tilemap) {
	w.Map = m
	w.Scroll = geom.Vec{}
	w.Projectiles = nil
	w.Particles = nil
	w.Sparks = nil

	w.LeafSpawners = nil
	for _, t := range m.Extract(leafSpawnerTiles, true) {
		w.LeafSpawners = append(w.LeafSpawners, geom.Rect{
			X: float64(t.Pos.X), Y: float64(t.Pos.Y),
			W: leafSpawnerSize.X, H: leafSpawnerSize.Y,
		})
	}

	w.Enemies = nil
	for _, t := range m.Extract(spawnerTiles, false) {
		pos := geom.Vec{X: float64(t.Pos.X), Y: float64(t.Pos.Y)}
		if t.Variant == 0 {
			w.Player.Pos = pos
			w.Player.AirTime = 0
			continue
		}
		w.Enemies = append(w.Enemies, actor.NewEnemy(pos, w.opts.Animations))
	}
}

// Update advances the world one tick. Held movement in `in` takes effect on
// the next tick, like a key event handled after the player moved.
func (w *World) Update(in Input) {
	w.Screenshake = max(0, w.Screenshake-1)

	if len(w.Enemies) == 0 {
		w.Transition++
		if w.Transition > TransitionDuration {
			w.reload((w.Level + 1) % w.MaxLevel)
			w.Transition = -TransitionDuration
		}
	}
	if w.Transition < 0 {
		w.Transition++
	}

	if w.Dead > 0 {
		w.Dead++
		if w.Dead > deathTicks {
			w.reload(w.Level)
			w.Dead = 0
			w.Transition = -TransitionDuration
		} else {
			w.Transition++
		}
	}

	w.updateCamera()
	w.Clouds.Update()
	w.spawnLeaves()
	w.updateProjectiles()

	w.Sparks = retain(w.Sparks, func(s *fx.Spark) bool {
		return !s.Update()
	})
	w.Particles = retain(w.Particles, func(p *fx.Particle) bool {
		kill := p.Update()
		if p.Kind == "leaf" {
			p.Pos.X += math.Sin(float64(p.Anim.Frame()) * 0.15)
		}
		return !kill
	})
	w.Enemies = retain(w.Enemies, func(e *actor.Enemy) bool {
		return !e.Update(w.Map, w.Player, w, w.rng)
	})

	if w.Dead == 0 {
		w.Player.Update(w.Map, w.movement(), w, w.rng)
	}

	w.held = in
	if in.Jump {
		w.Player.Jump(w)
	}
	if in.Dash {
		w.Player.Dash(w)
	}
}

// movement is the horizontal intent from the keys held last tick.
func (w *World) movement() geom.Vec {
	var m geom.Vec
	if w.held.Right {
		m.X++
	}
	if w.held.Left {
		m.X--
	}
	return m
}

func (w *World) updateCamera() {
	target := w.Player.Center().Sub(geom.Vec{X: float64(w.opts.ScreenW) * 0.5, Y: float64(w.opts.ScreenH) * 0.5})
	w.Scroll = w.Scroll.Add(target.Sub(w.Scroll).Scale(1 / w.opts.CameraLag))
}

func (w *World) spawnLeaves() {
	for _, r := range w.LeafSpawners {
		if w.rng.IntN(101) >= leafChance {
			continue
		}
		pos := geom.Vec{X: r.X + w.rng.Float64()*r.W, Y: r.Y + w.rng.Float64()*r.H}
		w.SpawnParticle("leaf", pos, leafVelocity, 5+w.rng.IntN(11))
	}
}

func (w *World) updateProjectiles() {
	w.Projectiles = retain(w.Projectiles, func(p *fx.Projectile) bool {
		p.Pos.X += p.Dir
		p.Age++

		if _, solid := w.Map.SolidTile(p.Pos); solid {
			angle := w.rng.Float64() - 0.5
			if p.Dir > 0 {
				angle += math.Pi
			}
			w.SpawnSparks(6, p.Pos, angle, 1+w.rng.Float64())
			return false
		}
		if p.Age > projectileLifetime {
			return false
		}
		if w.Player.DashStrength() < 50 && w.Player.Rect().Contains(p.Pos) {
			w.Play(actor.SoundHit)
			w.Kill()
			w.Shake(hitShake)
			r := w.Player.Rect()
			w.Explode(hitExplosion, r.Center(), geom.Vec{X: r.X, Y: r.Y})
			return false
		}
		return true
	})
}

// RenderScroll is the camera offset truncated to whole pixels.
func (w *World) RenderScroll() geom.Vec {
	return geom.Vec{X: math.Trunc(w.Scroll.X), Y: math.Trunc(w.Scroll.Y)}
}

// ShakeOffset returns a random jitter within the current screenshake.
func (w *World) ShakeOffset() geom.Vec {
	s := float64(w.Screenshake)
	return geom.Vec{
		X: w.rng.Float64()*s - s*0.5,
		Y: w.rng.Float64()*s - s*0.5,
	}
}

// TransitionRadius is the radius of the visible circle of the wipe on a
// screen width pixels wide. It returns false when no wipe is running.
func (w *World) TransitionRadius(width int) (int, bool) {
	if w.Transition == 0 {
		return 0, false
	}
	perTick := width / TransitionDuration
	if w.Transition > 0 {
		return width - perTick*w.Transition, true
	}
	return perTick * (TransitionDuration + w.Transition), true
}

// retain keeps the elements for which keep returns true, visiting each
// element exactly once, and reuses the backing array.
func retain[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}
