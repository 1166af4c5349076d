package game

import (
	"image/color"
	"math"

	"chosenoffset.com/ninja/internal/geom"
	"chosenoffset.com/ninja/internal/physics"
	"chosenoffset.com/ninja/internal/render"
)

// silhouetteOffsets are the four directions the outline is stamped in.
var silhouetteOffsets = []geom.Vec{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}

// silhouette turns every drawn pixel into translucent black.
var silhouette = &render.ColorScale{R: 0, G: 0, B: 0, A: 100.0 / 255}

var sparkColor = color.White

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	g.ensureLayers()
	g.display.Clear()
	g.outline.Clear()

	w := g.World
	scroll := w.RenderScroll()

	g.drawBackground(g.outline)
	g.drawClouds(g.outline, scroll)

	g.drawProjectiles(g.display, scroll)
	g.drawSparks(g.display, scroll)
	g.drawParticles(g.display, scroll)
	g.drawTiles(g.display, scroll)
	g.drawEnemies(g.display, scroll)
	if w.Dead == 0 && w.Player.Visible() {
		g.drawBody(g.outline, w.Player.Body, scroll)
	}

	g.drawTransition(g.display)
	g.drawOutline()

	shake := w.ShakeOffset()
	geo := render.NewGeoM()
	geo.Scale(float64(g.ScreenWidth)/float64(g.DisplayWidth), float64(g.ScreenHeight)/float64(g.DisplayHeight))
	geo.Translate(shake.X, shake.Y)
	screen.DrawImage(g.outline, &render.DrawImageOptions{GeoM: geo})
}

func (g *Game) ensureLayers() {
	if g.display != nil {
		return
	}
	g.display = g.Renderer.NewImage(g.DisplayWidth, g.DisplayHeight)
	g.outline = g.Renderer.NewImage(g.DisplayWidth, g.DisplayHeight)
	g.wipe = g.Renderer.NewImage(g.DisplayWidth, g.DisplayHeight)
	g.hole = g.Renderer.NewImage(g.DisplayWidth, g.DisplayHeight)
}

// drawAt draws img with its top-left corner at (x, y), mirrored
// horizontally when flip is set.
func drawAt(dst, img render.Image, x, y float64, flip bool) {
	geo := render.NewGeoM()
	if flip {
		w, _ := img.Size()
		geo.Scale(-1, 1)
		geo.Translate(float64(w), 0)
	}
	geo.Translate(x, y)
	dst.DrawImage(img, &render.DrawImageOptions{GeoM: geo})
}

func (g *Game) drawBackground(dst render.Image) {
	bg := g.Assets.Background
	if bg == nil {
		dst.Fill(color.Black)
		return
	}
	w, h := bg.Size()
	geo := render.NewGeoM()
	geo.Scale(float64(g.DisplayWidth)/float64(w), float64(g.DisplayHeight)/float64(h))
	dst.DrawImage(bg, &render.DrawImageOptions{GeoM: geo})
}

func (g *Game) drawClouds(dst render.Image, scroll geom.Vec) {
	for _, c := range g.World.Clouds {
		p := c.ScreenPos(scroll, g.DisplayWidth, g.DisplayHeight)
		drawAt(dst, c.Image, p.X, p.Y, false)
	}
}

func (g *Game) drawProjectiles(dst render.Image, scroll geom.Vec) {
	img := g.Assets.Projectile
	w, h := img.Size()
	for _, p := range g.World.Projectiles {
		x := math.Trunc(p.Pos.X-float64(w)*0.5) - scroll.X
		y := math.Trunc(p.Pos.Y-float64(h)*0.5) - scroll.Y
		drawAt(dst, img, x, y, false)
	}
}

func (g *Game) drawSparks(dst render.Image, scroll geom.Vec) {
	for _, s := range g.World.Sparks {
		d := s.Diamond(scroll)
		points := make([]render.Point, len(d))
		for i, v := range d {
			points[i] = render.Point{X: float32(v.X), Y: float32(v.Y)}
		}
		g.Renderer.FillPolygon(dst, points, sparkColor)
	}
}

func (g *Game) drawParticles(dst render.Image, scroll geom.Vec) {
	for _, p := range g.World.Particles {
		drawAt(dst, p.Anim.Image(), math.Trunc(p.Pos.X-scroll.X), math.Trunc(p.Pos.Y-scroll.Y), false)
	}
}

func (g *Game) drawTiles(dst render.Image, scroll geom.Vec) {
	for _, t := range g.World.Map.Visible(scroll, g.DisplayWidth, g.DisplayHeight) {
		img, ok := g.Assets.TileImage(t.Tile)
		if !ok {
			continue
		}
		drawAt(dst, img, t.X-scroll.X, t.Y-scroll.Y, false)
	}
}

func (g *Game) drawBody(dst render.Image, b *physics.Body, scroll geom.Vec) {
	x := math.Trunc(b.Pos.X) - scroll.X + b.AnimOffset.X
	y := math.Trunc(b.Pos.Y) - scroll.Y + b.AnimOffset.Y
	drawAt(dst, b.Anim.Image(), x, y, b.Flip)
}

func (g *Game) drawEnemies(dst render.Image, scroll geom.Vec) {
	gun := g.Assets.Gun
	gunW, _ := gun.Size()
	for _, e := range g.World.Enemies {
		g.drawBody(dst, e.Body, scroll)
		p := e.GunPos(float64(gunW))
		drawAt(dst, gun, math.Trunc(p.X)-scroll.X, math.Trunc(p.Y)-scroll.Y, e.Flip)
	}
}

// drawTransition covers dst with black outside the circle of the level
// wipe.
func (g *Game) drawTransition(dst render.Image) {
	radius, ok := g.World.TransitionRadius(g.DisplayWidth)
	if !ok {
		return
	}
	g.wipe.Fill(color.Black)
	g.hole.Clear()
	if radius > 0 {
		g.Renderer.FillCircle(g.hole, float32(g.DisplayWidth/2), float32(g.DisplayHeight/2), float32(radius), color.White)
		g.wipe.DrawImage(g.hole, &render.DrawImageOptions{Blend: render.BlendDestinationOut})
	}
	dst.DrawImage(g.wipe, nil)
}

// drawOutline stamps the gameplay layer's silhouette around itself onto the
// outline layer, then draws the gameplay layer on top.
func (g *Game) drawOutline() {
	for _, off := range silhouetteOffsets {
		geo := render.NewGeoM()
		geo.Translate(off.X, off.Y)
		g.outline.DrawImage(g.display, &render.DrawImageOptions{GeoM: geo, ColorScale: silhouette})
	}
	g.outline.DrawImage(g.display, nil)
}
