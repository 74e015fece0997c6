package field

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Point represents a cell coordinate
type Point struct {
	X, Y int
}

// Cell is one terminal character with its colours
type Cell struct {
	Glyph string
	FG    colorful.Color
	BG    colorful.Color
}

// TermCanvas paints onto a grid of terminal cells. Each cell covers
// CellWidth×CellHeight canvas pixels.
type TermCanvas struct {
	Cols, Rows            int
	CellWidth, CellHeight float64
	Cells                 [][]Cell
}

// NewTermCanvas creates a canvas for a cols×rows terminal
func NewTermCanvas(cols, rows int) *TermCanvas {
	t := &TermCanvas{CellWidth: 8, CellHeight: 16}
	t.SetGrid(cols, rows)
	return t
}

// SetGrid resizes the cell grid. The canvas pixel size follows.
func (t *TermCanvas) SetGrid(cols, rows int) {
	t.Cols, t.Rows = max(cols, 1), max(rows, 1)
	t.Cells = make([][]Cell, t.Rows)
	for y := range t.Cells {
		t.Cells[y] = make([]Cell, t.Cols)
	}
	t.Clear()
}

// PixelSize returns the canvas size a renderer should use for this grid.
func (t *TermCanvas) PixelSize() (int, int) {
	return int(float64(t.Cols) * t.CellWidth), int(float64(t.Rows) * t.CellHeight)
}

// InBounds checks if a point is within the grid
func (t *TermCanvas) InBounds(p Point) bool {
	return p.X >= 0 && p.X < t.Cols && p.Y >= 0 && p.Y < t.Rows
}

// Set puts a glyph at a position, keeping the cell background
func (t *TermCanvas) Set(p Point, glyph string, fg colorful.Color) {
	if t.InBounds(p) {
		t.Cells[p.Y][p.X].Glyph = glyph
		t.Cells[p.Y][p.X].FG = fg
	}
}

// Get returns the cell at a position
func (t *TermCanvas) Get(p Point) Cell {
	if t.InBounds(p) {
		return t.Cells[p.Y][p.X]
	}
	return Cell{}
}

// CellAt maps canvas pixels to a cell
func (t *TermCanvas) CellAt(x, y float64) Point {
	return Point{int(math.Floor(x / t.CellWidth)), int(math.Floor(y / t.CellHeight))}
}

// SetSize is a no-op: the grid is sized by the terminal, not the renderer.
func (t *TermCanvas) SetSize(width, height int) {}

func (t *TermCanvas) Clear() {
	for y := range t.Cells {
		for x := range t.Cells[y] {
			t.Cells[y][x] = Cell{Glyph: " "}
		}
	}
}

func (t *TermCanvas) FillRadial(cx, cy, radius float64, stops []ColorStop) {
	for y := range t.Cells {
		for x := range t.Cells[y] {
			px, py := t.center(x, y)
			tt := 1.0
			if radius > 0 {
				tt = math.Min(math.Hypot(px-cx, py-cy)/radius, 1)
			}
			t.blendBG(x, y, gradientAt(stops, tt))
		}
	}
}

func (t *TermCanvas) StrokeLine(x0, y0, x1, y1, width float64, col RGBA) {
	from, to := t.CellAt(x0, y0), t.CellAt(x1, y1)
	for y := min(from.Y, to.Y); y <= max(from.Y, to.Y); y++ {
		for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
			if t.InBounds(Point{x, y}) {
				t.blendBG(x, y, col)
			}
		}
	}
}

func (t *TermCanvas) FillBand(y0, y1 float64, stops []ColorStop) {
	span := y1 - y0
	if span <= 0 {
		return
	}
	for y := range t.Cells {
		_, py := t.center(0, y)
		if py < y0 || py >= y1 {
			continue
		}
		col := gradientAt(stops, (py-y0)/span)
		for x := range t.Cells[y] {
			t.blendBG(x, y, col)
		}
	}
}

func (t *TermCanvas) FillCircle(x, y, r float64, hsl HSL, alpha float64) {
	p := t.CellAt(x, y)
	if !t.InBounds(p) || alpha <= 0 {
		return
	}
	glyph := "·"
	if r > 0.8 {
		glyph = "•"
	}
	bg := t.Cells[p.Y][p.X].BG
	fg := bg.BlendRgb(colorful.Hsl(hsl.H, hsl.S/100, hsl.L/100), math.Min(alpha*1.6, 1))
	t.Set(p, glyph, fg)
}

// View renders the grid with lipgloss colours, one line per row.
func (t *TermCanvas) View() string {
	var b strings.Builder
	for y, row := range t.Cells {
		for _, c := range row {
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(c.BG.Hex())).
				Foreground(lipgloss.Color(c.FG.Hex()))
			b.WriteString(style.Render(c.Glyph))
		}
		if y < len(t.Cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (t *TermCanvas) center(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * t.CellWidth, (float64(y) + 0.5) * t.CellHeight
}

func (t *TermCanvas) blendBG(x, y int, col RGBA) {
	c := &t.Cells[y][x]
	c.BG = c.BG.BlendRgb(col.Colorful(), math.Min(math.Max(col.A, 0), 1))
}
