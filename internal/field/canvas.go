package field

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a CSS-style colour: 8-bit channels with a fractional alpha.
type RGBA struct {
	R uint8   `json:"r" yaml:"r"`
	G uint8   `json:"g" yaml:"g"`
	B uint8   `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// CSS renders the colour as an rgba() expression.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// WithAlpha returns the colour with a replaced alpha.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Colorful converts the RGB part to a go-colorful colour for blending.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful builds an RGBA from a go-colorful colour and an alpha.
func FromColorful(c colorful.Color, a float64) RGBA {
	r, g, b := c.Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: a}
}

// ColorStop is one stop of a gradient, Offset in [0, 1].
type ColorStop struct {
	Offset float64 `json:"offset" yaml:"offset"`
	Color  RGBA    `json:"color" yaml:"color"`
}

// HSL is a particle colour in CSS hsl() units: hue in degrees,
// saturation and lightness in percent.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGBA converts to an RGBA with the given alpha.
func (c HSL) RGBA(alpha float64) RGBA {
	return FromColorful(colorful.Hsl(c.H, c.S/100, c.L/100), alpha)
}

// CSS renders the colour as an hsl() expression.
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// Canvas is the 2D surface a Renderer paints on. Implementations decide
// what a paint means: a display list, a raster, or terminal cells.
type Canvas interface {
	// SetSize sets the pixel dimensions of the surface.
	SetSize(width, height int)
	// Clear erases the whole surface.
	Clear()
	// FillRadial fills the surface with a radial gradient centred at
	// (cx, cy) running from radius 0 to radius.
	FillRadial(cx, cy, radius float64, stops []ColorStop)
	// StrokeLine draws a straight line.
	StrokeLine(x0, y0, x1, y1, width float64, color RGBA)
	// FillBand fills a full-width horizontal band between y0 and y1 with a
	// vertical linear gradient.
	FillBand(y0, y1 float64, stops []ColorStop)
	// FillCircle paints a filled circle.
	FillCircle(x, y, r float64, color HSL, alpha float64)
}

// gradientAt samples a gradient at position t in [0, 1].
func gradientAt(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return RGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if t <= next.Offset {
			span := next.Offset - prev.Offset
			if span <= 0 {
				return next.Color
			}
			f := (t - prev.Offset) / span
			c := prev.Color.Colorful().BlendRgb(next.Color.Colorful(), f)
			return FromColorful(c, prev.Color.A+(next.Color.A-prev.Color.A)*f)
		}
	}
	return stops[len(stops)-1].Color
}
