package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPerspective(t *testing.T) {
	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9, 0.1, 100)
	assert.True(t, Perspective(45, 1600, 900, 0.1, 100).ApproxEqual(want))

	square := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	assert.True(t, Perspective(45, 800, 0, 0.1, 100).ApproxEqual(square))
}
