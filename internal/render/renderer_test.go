package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFan(t *testing.T) {
	diamond := []Point{{X: 0, Y: 5}, {X: 5, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 10}}
	vertices, indices := Fan(diamond, color.RGBA{255, 0, 0, 255})

	assert.Len(t, vertices, 4)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, indices)
	for i, v := range vertices {
		assert.Equal(t, diamond[i].X, v.DstX)
		assert.Equal(t, diamond[i].Y, v.DstY)
		assert.Equal(t, float32(1), v.SrcX)
		assert.Equal(t, float32(1), v.ColorR)
		assert.Equal(t, float32(0), v.ColorG)
		assert.Equal(t, float32(1), v.ColorA)
	}
}

func TestFanNeedsThreePoints(t *testing.T) {
	vertices, indices := Fan([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, color.White)
	assert.Nil(t, vertices)
	assert.Nil(t, indices)
}
