package field

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// ImageCanvas rasterises onto an RGBA image with source-over compositing.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas creates a raster canvas of the given size
func NewImageCanvas(width, height int) *ImageCanvas {
	c := &ImageCanvas{}
	c.SetSize(width, height)
	return c
}

// Image returns the underlying raster.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the raster as a PNG.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *ImageCanvas) SetSize(width, height int) {
	if c.img != nil && c.img.Bounds().Dx() == width && c.img.Bounds().Dy() == height {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
}

func (c *ImageCanvas) Clear() {
	clear(c.img.Pix)
}

func (c *ImageCanvas) FillRadial(cx, cy, radius float64, stops []ColorStop) {
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := 1.0
			if radius > 0 {
				t = math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / radius
			}
			c.blend(x, y, gradientAt(stops, math.Min(t, 1)), 1)
		}
	}
}

func (c *ImageCanvas) StrokeLine(x0, y0, x1, y1, width float64, col RGBA) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		c.blend(int(x0), int(y0), col, 1)
		return
	}
	half := int(math.Max(width, 1)) / 2
	dx, dy := (x1-x0)/float64(steps), (y1-y0)/float64(steps)
	for i := 0; i < steps; i++ {
		px, py := int(x0+dx*float64(i)), int(y0+dy*float64(i))
		for o := -half; o <= half; o++ {
			if dx == 0 {
				c.blend(px+o, py, col, 1)
			} else {
				c.blend(px, py+o, col, 1)
			}
		}
	}
}

func (c *ImageCanvas) FillBand(y0, y1 float64, stops []ColorStop) {
	b := c.img.Bounds()
	span := y1 - y0
	if span <= 0 {
		return
	}
	top := max(int(math.Floor(y0)), b.Min.Y)
	bottom := min(int(math.Ceil(y1)), b.Max.Y)
	for y := top; y < bottom; y++ {
		col := gradientAt(stops, (float64(y)+0.5-y0)/span)
		for x := b.Min.X; x < b.Max.X; x++ {
			c.blend(x, y, col, 1)
		}
	}
}

func (c *ImageCanvas) FillCircle(x, y, r float64, hsl HSL, alpha float64) {
	col := hsl.RGBA(alpha)
	reach := int(math.Ceil(r + 0.5))
	ix, iy := int(x), int(y)
	for py := iy - reach; py <= iy+reach; py++ {
		for px := ix - reach; px <= ix+reach; px++ {
			d := math.Hypot(float64(px)+0.5-x, float64(py)+0.5-y)
			coverage := math.Min(math.Max(r+0.5-d, 0), 1)
			if coverage > 0 {
				c.blend(px, py, col, coverage)
			}
		}
	}
}

// blend composites col over the pixel at (x, y) with extra coverage.
// image.RGBA is premultiplied, so source-over is a straight lerp.
func (c *ImageCanvas) blend(x, y int, col RGBA, coverage float64) {
	if !(image.Point{X: x, Y: y}.In(c.img.Bounds())) {
		return
	}
	a := math.Min(col.A*coverage, 1)
	if a <= 0 {
		return
	}
	dst := c.img.RGBAAt(x, y)
	over := func(s, d uint8, sa float64) uint8 {
		return uint8(math.Round(math.Min(float64(s)*sa+float64(d)*(1-a), 255)))
	}
	c.img.SetRGBA(x, y, color.RGBA{
		R: over(col.R, dst.R, a),
		G: over(col.G, dst.G, a),
		B: over(col.B, dst.B, a),
		A: over(255, dst.A, a),
	})
}
