package render

import (
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	FillPolygon(dst Image, points []Point, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Point is a vertex of a polygon in destination pixels.
type Point struct {
	X, Y float32
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)
	DrawTriangles(vertices []Vertex, indices []uint16, src Image)
}

// Blend selects how a drawn image is combined with the destination.
type Blend int

const (
	// BlendSourceOver is regular alpha compositing.
	BlendSourceOver Blend = iota
	// BlendDestinationOut erases the destination where the source is opaque.
	BlendDestinationOut
)

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM

	// ColorScale multiplies the source colour. The zero value leaves it unchanged.
	ColorScale *ColorScale

	Blend Blend
}

// ColorScale is a per-channel multiplier applied to a drawn image.
type ColorScale struct {
	R, G, B, A float32
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Vertex represents a vertex for triangle rendering.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// Fan triangulates a convex polygon as a fan around its first point. Every
// vertex samples source pixel (1,1) tinted with clr. It returns nothing for
// fewer than three points.
func Fan(points []Point, clr color.Color) ([]Vertex, []uint16) {
	if len(points) < 3 {
		return nil, nil
	}
	cr, cg, cb, ca := clr.RGBA()
	vertices := make([]Vertex, len(points))
	for i, p := range points {
		vertices[i] = Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		}
	}
	indices := make([]uint16, 0, (len(points)-2)*3)
	for i := 1; i < len(points)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	return vertices, indices
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
	IsMouseButtonJustPressed(button MouseButton) bool
	// Wheel returns the vertical scroll of this tick; positive is up.
	Wheel() float64
}

// Key represents a keyboard key.
type Key int

// Key constants for common keys
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyG // Grid toggle (editor)
	KeyT // Autotile (editor)
	KeyO // Save (editor)
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyShift
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// ErrQuit may be returned from Game.Update to end the loop cleanly.
var ErrQuit = errQuit{}

type errQuit struct{}

func (errQuit) Error() string { return "quit" }

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	// Returning ErrQuit from Update ends the loop without an error.
	RunGame(game Game) error
}
