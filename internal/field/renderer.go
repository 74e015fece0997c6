package field

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFrameInterval is one display refresh at 60Hz.
const DefaultFrameInterval = time.Second / 60

// Options configures a Renderer.
type Options struct {
	Width, Height int
	Seed          uint64
	FrameInterval time.Duration
	Theme         *Theme
}

// Renderer owns a particle pool and repaints a canvas every frame.
// All methods are safe for concurrent use; the pool is only mutated while
// the renderer lock is held.
type Renderer struct {
	mu        sync.Mutex
	canvas    Canvas
	theme     *Theme
	rng       *RNG
	particles []Particle
	scan      ScanLine
	width     float64
	height    float64
	frames    uint64
	interval  time.Duration

	onFrame func()

	ran      atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewRenderer creates a renderer painting onto canvas. The canvas is sized
// and the pool seeded before it returns.
func NewRenderer(canvas Canvas, opts Options) *Renderer {
	theme := DefaultTheme()
	if opts.Theme != nil {
		t := *opts.Theme
		t.merge(theme)
		theme = &t
	}
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	r := &Renderer{
		canvas:   canvas,
		theme:    theme,
		rng:      NewRNG(opts.Seed),
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	r.Resize(opts.Width, opts.Height)
	return r
}

// OnFrame registers a hook called after every frame, with the renderer
// lock held. Hosts use it to capture the finished frame.
func (r *Renderer) OnFrame(fn func()) {
	r.mu.Lock()
	r.onFrame = fn
	r.mu.Unlock()
}

// Resize recomputes the canvas dimensions from the host-reported on-screen
// size and reseeds the pool. Positions re-randomise rather than rescale.
func (r *Renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width = float64(max(width, 1))
	r.height = float64(max(height, 1))
	r.canvas.SetSize(int(r.width), int(r.height))
	r.initParticles()
}

// InitParticles reallocates the fixed-size pool.
func (r *Renderer) InitParticles() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initParticles()
}

func (r *Renderer) initParticles() {
	r.particles = make([]Particle, PoolSize)
	for i := range r.particles {
		r.particles[i].spawn(r.rng, r.theme, r.width, r.height, true)
	}
}

// Frame paints one frame: background, grid, scan line, then every
// particle after advancing it.
func (r *Renderer) Frame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.canvas
	c.Clear()

	w, h := r.width, r.height
	c.FillRadial(w/2, h/2, math.Max(w, h), r.theme.Background)

	r.drawGrid()
	r.drawScanLine()

	for i := range r.particles {
		p := &r.particles[i]
		p.Update(r.rng, r.theme, w, h)
		p.Draw(c)
	}

	r.frames++
	if r.onFrame != nil {
		r.onFrame()
	}
}

func (r *Renderer) drawGrid() {
	step := r.theme.GridStep
	for x := 0.0; x < r.width; x += step {
		r.canvas.StrokeLine(x, 0, x, r.height, 1, r.theme.GridColor)
	}
	for y := 0.0; y < r.height; y += step {
		r.canvas.StrokeLine(0, y, r.width, y, 1, r.theme.GridColor)
	}
}

func (r *Renderer) drawScanLine() {
	top, bottom := r.scan.Bounds()
	r.canvas.FillBand(top, bottom, r.theme.bandStops())
	r.scan.Advance(r.height)
}

// Run repaints on every tick until ctx is cancelled or Stop is called.
// A renderer runs at most once; later calls return immediately.
func (r *Renderer) Run(ctx context.Context) {
	if !r.ran.CompareAndSwap(false, true) {
		return
	}
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stop:
			return
		case <-ticker.C:
			r.Frame()
		}
	}
}

// Stop signals a running loop to exit; wait on Done for it to return.
// Stop is idempotent.
func (r *Renderer) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Done is closed once Run has returned.
func (r *Renderer) Done() <-chan struct{} {
	return r.done
}

// Size returns the current pixel dimensions.
func (r *Renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int(r.width), int(r.height)
}

// Frames returns the number of frames painted so far.
func (r *Renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Particles returns a copy of the pool.
func (r *Renderer) Particles() []Particle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Particle, len(r.particles))
	copy(out, r.particles)
	return out
}

// ScanY returns the current scan line offset.
func (r *Renderer) ScanY() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scan.Y
}
