package field

import (
	"sync"
)

// Op kinds of a display list.
const (
	OpClear  = "clear"
	OpRadial = "radial"
	OpLine   = "line"
	OpBand   = "band"
	OpCircle = "circle"
)

// Op is one drawing instruction. Only the fields relevant to Kind are set.
type Op struct {
	Kind   string      `json:"op"`
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
	X1     float64     `json:"x1,omitempty"`
	Y1     float64     `json:"y1,omitempty"`
	R      float64     `json:"r,omitempty"`
	Width  float64     `json:"width,omitempty"`
	Stroke *RGBA       `json:"stroke,omitempty"`
	Fill   string      `json:"fill,omitempty"`
	Color  *HSL        `json:"hsl,omitempty"`
	Alpha  float64     `json:"alpha,omitempty"`
	Stops  []ColorStop `json:"stops,omitempty"`
}

// Scene is a finished frame as a display list.
type Scene struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Ops    []Op `json:"ops"`
}

// Recorder is a Canvas that records a display list. Painting fills a
// pending list; Commit publishes it so readers never see half a frame.
type Recorder struct {
	mu      sync.RWMutex
	width   int
	height  int
	pending []Op
	scene   Scene
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetSize(width, height int) {
	r.width, r.height = width, height
}

func (r *Recorder) Clear() {
	r.pending = append(r.pending[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillRadial(cx, cy, radius float64, stops []ColorStop) {
	r.pending = append(r.pending, Op{Kind: OpRadial, X: cx, Y: cy, R: radius, Stops: stops})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, color RGBA) {
	c := color
	r.pending = append(r.pending, Op{Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Stroke: &c})
}

func (r *Recorder) FillBand(y0, y1 float64, stops []ColorStop) {
	r.pending = append(r.pending, Op{Kind: OpBand, Y: y0, Y1: y1, Stops: stops})
}

func (r *Recorder) FillCircle(x, y, radius float64, color HSL, alpha float64) {
	c := color
	r.pending = append(r.pending, Op{Kind: OpCircle, X: x, Y: y, R: radius, Fill: c.CSS(), Color: &c, Alpha: alpha})
}

// Commit publishes the pending display list as the current scene.
func (r *Recorder) Commit() {
	ops := make([]Op, len(r.pending))
	copy(ops, r.pending)

	r.mu.Lock()
	r.scene = Scene{Width: r.width, Height: r.height, Ops: ops}
	r.mu.Unlock()
}

// Scene returns the last committed frame.
func (r *Recorder) Scene() Scene {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scene
}

// Replay paints a scene onto another canvas.
func Replay(s Scene, c Canvas) {
	c.SetSize(s.Width, s.Height)
	for _, op := range s.Ops {
		switch op.Kind {
		case OpClear:
			c.Clear()
		case OpRadial:
			c.FillRadial(op.X, op.Y, op.R, op.Stops)
		case OpLine:
			if op.Stroke != nil {
				c.StrokeLine(op.X, op.Y, op.X1, op.Y1, op.Width, *op.Stroke)
			}
		case OpBand:
			c.FillBand(op.Y, op.Y1, op.Stops)
		case OpCircle:
			if op.Color != nil {
				c.FillCircle(op.X, op.Y, op.R, *op.Color, op.Alpha)
			}
		}
	}
}
