// Package game is the windowed front end of the simulation: it turns key
// state into sim.Input once per tick and renders the world.
package game

import (
	"chosenoffset.com/ninja/internal/assets"
	"chosenoffset.com/ninja/internal/render"
	"chosenoffset.com/ninja/internal/sim"
)

// Game holds the world and everything needed to show it.
type Game struct {
	// Window size; the display surface is scaled up to it.
	ScreenWidth  int
	ScreenHeight int
	// Logical surface the world is drawn on.
	DisplayWidth  int
	DisplayHeight int

	World    *sim.World
	Assets   *assets.Assets
	Renderer render.Renderer
	InputMgr render.InputManager

	// Offscreen layers, created on first draw.
	display render.Image // outlined gameplay layer
	outline render.Image // background, clouds and the player
	wipe    render.Image
	hole    render.Image
}

// ReadInput maps the keyboard to the simulation input. Movement follows the
// held arrow keys; jump and dash fire once per key press.
func ReadInput(in render.InputManager) sim.Input {
	return sim.Input{
		Left:  in.IsKeyPressed(render.KeyLeft),
		Right: in.IsKeyPressed(render.KeyRight),
		Jump:  in.IsKeyJustPressed(render.KeyUp),
		Dash:  in.IsKeyJustPressed(render.KeySpace),
	}
}

// Update advances the world one tick. Escape ends the game.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}
	g.World.Update(ReadInput(g.InputMgr))
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
