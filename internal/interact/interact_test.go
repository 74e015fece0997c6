package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bavatarinee.dev/internal/models"
)

var card = models.Rect{Left: 100, Top: 50, Width: 200, Height: 100}

func TestOffset(t *testing.T) {
	x, y := Offset(models.Pointer{X: 200, Y: 100}, card)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = Offset(models.Pointer{X: 300, Y: 50}, card)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, -1.0, y)

	x, y = Offset(models.Pointer{X: 1, Y: 1}, models.Rect{})
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestTilt(t *testing.T) {
	style := Tilt(models.Pointer{X: 300, Y: 50}, card)
	assert.Equal(t, "translateY(-6px) rotateX(3deg) rotateY(3deg)", style.Transform)
	assert.Equal(t, HoverTransition, style.Transition)

	style = Tilt(models.Pointer{X: 150, Y: 125}, card)
	assert.Equal(t, "translateY(-6px) rotateX(-1.5deg) rotateY(-1.5deg)", style.Transform)

	style = Tilt(models.Pointer{X: 200, Y: 100}, card)
	assert.Equal(t, "translateY(-6px) rotateX(0deg) rotateY(0deg)", style.Transform)
}

func TestLeave(t *testing.T) {
	style := Leave()
	assert.Empty(t, style.Transform)
	assert.Equal(t, "transform 0.4s cubic-bezier(0.16, 1, 0.3, 1), border-color 0.4s", style.Transition)
}

func TestGlow(t *testing.T) {
	assert.Equal(t,
		"radial-gradient(ellipse at 25.0% 75.0%, rgba(125,155,118,0.1), transparent 65%)",
		Glow(models.Pointer{X: 150, Y: 125}, card))
}
