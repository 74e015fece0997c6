package field

// PoolSize is the fixed number of particles in a field.
const PoolSize = 80

// Particle is one recyclable point of the ambient animation. It is never
// freed: when it dies it is reinitialised in place.
type Particle struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Alpha  float64 // base opacity
	Age    float64
	Life   float64
	Color  HSL
}

// spawn reinitialises the particle. Initial particles are scattered over
// the whole height; later births start just below the visible frame.
func (p *Particle) spawn(rng *RNG, theme *Theme, width, height float64, initial bool) {
	p.X = rng.Float64() * width
	if initial {
		p.Y = rng.Float64() * height
	} else {
		p.Y = height + 10
	}
	p.Radius = rng.Range(0.2, 1.2)
	p.VY = -rng.Range(0.12, 0.4)
	p.VX = (rng.Float64() - 0.5) * 0.2
	p.Alpha = rng.Range(0.1, 0.5)
	p.Life = rng.Range(100, 200)
	p.Age = 0

	hue := theme.PrimaryHue
	if rng.Chance(theme.AccentChance) {
		hue = theme.AccentHue
	}
	p.Color = HSL{
		H: hue,
		S: rng.Range(35, 20),
		L: rng.Range(45, 20),
	}
}

// Update advances the particle one frame and reports whether it was
// reborn this tick.
func (p *Particle) Update(rng *RNG, theme *Theme, width, height float64) bool {
	p.X += p.VX
	p.Y += p.VY
	p.Age++
	if p.Age > p.Life || p.Y < -10 {
		p.spawn(rng, theme, width, height, false)
		return true
	}
	return false
}

// Opacity returns the eased opacity for the particle's current age.
func (p *Particle) Opacity() float64 {
	if p.Life <= 0 {
		return 0
	}
	return p.Alpha * Envelope(p.Age/p.Life)
}

// Draw paints the particle onto the canvas.
func (p *Particle) Draw(c Canvas) {
	c.FillCircle(p.X, p.Y, p.Radius, p.Color, p.Opacity())
}

// Envelope is the lifetime fade curve: linear fade-in over the first 10%,
// full through 80%, linear fade-out over the last 20%.
func Envelope(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t < 0.1:
		return t / 0.1
	case t <= 0.8:
		return 1
	case t < 1:
		return (1 - t) / 0.2
	default:
		return 0
	}
}
