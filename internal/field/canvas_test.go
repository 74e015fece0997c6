package field

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientAt(t *testing.T) {
	stops := []ColorStop{
		{Offset: 0, Color: RGBA{0, 0, 0, 0}},
		{Offset: 0.5, Color: RGBA{200, 100, 50, 1}},
		{Offset: 1, Color: RGBA{0, 0, 0, 0}},
	}

	assert.Equal(t, stops[0].Color, gradientAt(stops, -1))
	assert.Equal(t, stops[1].Color, gradientAt(stops, 0.5))
	assert.Equal(t, stops[2].Color, gradientAt(stops, 2))

	mid := gradientAt(stops, 0.25)
	assert.InDelta(t, 0.5, mid.A, 1e-9)
	assert.InDelta(t, 100, float64(mid.R), 1)
}

func TestHSL(t *testing.T) {
	c := HSL{H: 135, S: 40, L: 50}
	assert.Equal(t, "hsl(135, 40%, 50%)", c.CSS())

	rgba := c.RGBA(0.3)
	assert.Equal(t, 0.3, rgba.A)
	assert.Greater(t, rgba.G, rgba.R, "sage is green dominant")
	assert.Greater(t, rgba.G, rgba.B)
}

func TestRGBA_CSS(t *testing.T) {
	assert.Equal(t, "rgba(125, 155, 118, 0.04)", RGBA{125, 155, 118, 0.04}.CSS())
}

func TestImageCanvas_FillCircleCompositesOver(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.FillCircle(5.5, 5.5, 1, HSL{H: 0, S: 100, L: 50}, 1)

	px := c.Image().RGBAAt(5, 5)
	assert.Equal(t, uint8(255), px.A)
	assert.Equal(t, uint8(255), px.R)

	assert.Zero(t, c.Image().RGBAAt(0, 0).A, "far pixels untouched")
}

func TestImageCanvas_EncodePNG(t *testing.T) {
	c := NewImageCanvas(16, 8)
	c.FillBand(0, 8, []ColorStop{{0, RGBA{255, 255, 255, 1}}, {1, RGBA{255, 255, 255, 1}}})

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestTermCanvas_ParticleBecomesGlyph(t *testing.T) {
	tc := NewTermCanvas(10, 4)
	w, h := tc.PixelSize()
	assert.Equal(t, 80, w)
	assert.Equal(t, 64, h)

	tc.FillRadial(40, 32, 80, DefaultTheme().Background)
	tc.FillCircle(20, 20, 1.0, HSL{H: 135, S: 40, L: 55}, 0.5)

	cell := tc.Get(Point{2, 1})
	assert.Equal(t, "•", cell.Glyph)
	assert.Equal(t, " ", tc.Get(Point{0, 0}).Glyph)

	view := tc.View()
	assert.Contains(t, view, "•")
}
