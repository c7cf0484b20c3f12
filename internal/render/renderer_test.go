package render

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTextureFilterIsLinear(t *testing.T) {
	assert.Equal(t, rl.FilterBilinear, textureFilter)
}

func TestToMatrixKeepsColumnMajorOrder(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3)
	got := toMatrix(m)
	assert.Equal(t, float32(1), got.M12)
	assert.Equal(t, float32(2), got.M13)
	assert.Equal(t, float32(3), got.M14)
	assert.Equal(t, float32(1), got.M15)
	assert.Equal(t, float32(0), got.M3)
}
