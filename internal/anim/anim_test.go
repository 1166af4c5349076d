package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/ninja/internal/render"
)

// frameImage is a stand-in image that only carries an index.
type frameImage struct {
	render.Image
	id int
}

func images(n int) []render.Image {
	out := make([]render.Image, n)
	for i := range out {
		out[i] = &frameImage{id: i}
	}
	return out
}

func id(img render.Image) int {
	return img.(*frameImage).id
}

func TestLoopingAnimationWraps(t *testing.T) {
	const n, d = 4, 5
	a := New(images(n), d, true)

	for i := 0; i < n*d-1; i++ {
		a.Update()
		assert.Equal(t, (i+1)/d, id(a.Image()))
		assert.False(t, a.Done())
	}
	a.Update()

	assert.Equal(t, 0, a.Frame())
	assert.Equal(t, 0, id(a.Image()))
	for i := 0; i < 3*n*d; i++ {
		a.Update()
		require.False(t, a.Done())
	}
}

func TestOneShotAnimationCompletes(t *testing.T) {
	const n, d = 3, 6
	a := New(images(n), d, false)

	for i := 0; i < n*d-2; i++ {
		a.Update()
		assert.False(t, a.Done(), "tick %d", i)
	}
	a.Update()
	assert.True(t, a.Done())
	assert.Equal(t, n-1, id(a.Image()))

	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.True(t, a.Done())
	assert.Equal(t, n*d-1, a.Frame())
	assert.Equal(t, n-1, id(a.Image()))
}

func TestCopySharesImagesNotProgress(t *testing.T) {
	tmpl := New(images(2), 3, false)
	tmpl.Update()
	tmpl.Update()

	c := tmpl.Copy()
	assert.Equal(t, 0, c.Frame())
	assert.False(t, c.Done())
	c.SetFrame(3)
	assert.Same(t, tmpl.CopyAt(3).Image(), c.Image())
	c.SetFrame(0)

	c.Update()
	assert.Equal(t, 2, tmpl.Frame())

	at := tmpl.CopyAt(4)
	assert.Equal(t, 4, at.Frame())
	assert.Equal(t, 1, id(at.Image()))

	clamped := tmpl.CopyAt(100)
	assert.Equal(t, 5, clamped.Frame())
}

func TestLibraryMustGet(t *testing.T) {
	lib := Library{"player/idle": New(images(1), 5, true)}

	assert.NotNil(t, lib.MustGet("player", "idle"))
	assert.Panics(t, func() { lib.MustGet("player", "fly") })
}
