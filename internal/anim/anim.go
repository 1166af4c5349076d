// Package anim plays image sequences frame by frame.
package anim

import (
	"fmt"

	"chosenoffset.com/ninja/internal/render"
)

// Animation steps through a shared, read-only list of images. Each image is
// shown for Duration consecutive updates.
type Animation struct {
	images   []render.Image
	duration int
	loop     bool

	frame    int
	complete bool
}

// New creates an animation. A duration below 1 is treated as 1.
func New(images []render.Image, duration int, loop bool) *Animation {
	if duration < 1 {
		duration = 1
	}
	return &Animation{images: images, duration: duration, loop: loop}
}

// Copy returns a fresh animation sharing the same images.
func (a *Animation) Copy() *Animation {
	return a.CopyAt(0)
}

// CopyAt returns a fresh animation sharing the same images, starting at frame.
func (a *Animation) CopyAt(frame int) *Animation {
	c := New(a.images, a.duration, a.loop)
	c.SetFrame(frame)
	return c
}

// Len is the number of updates one pass through the images takes.
func (a *Animation) Len() int {
	return a.duration * len(a.images)
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	total := a.Len()
	if total == 0 {
		return
	}
	if a.loop {
		a.frame = (a.frame + 1) % total
		return
	}
	a.frame = min(a.frame+1, total-1)
	if a.frame >= total-1 {
		a.complete = true
	}
}

// Image returns the image for the current frame.
func (a *Animation) Image() render.Image {
	if len(a.images) == 0 {
		return nil
	}
	return a.images[min(a.frame/a.duration, len(a.images)-1)]
}

// Frame returns the current tick counter.
func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame moves the tick counter, clamped to the animation's range.
func (a *Animation) SetFrame(frame int) {
	a.frame = max(0, min(frame, a.Len()-1))
}

// Done reports whether a one-shot animation has reached its last frame.
func (a *Animation) Done() bool {
	return a.complete
}

// Library holds animation templates keyed "<kind>/<action>".
type Library map[string]*Animation

// Key builds a library key.
func Key(kind, action string) string {
	return kind + "/" + action
}

// MustGet returns the template for kind/action. A missing template is a
// programming error and panics.
func (l Library) MustGet(kind, action string) *Animation {
	a, ok := l[Key(kind, action)]
	if !ok {
		panic(fmt.Sprintf("anim: no animation %q", Key(kind, action)))
	}
	return a
}
