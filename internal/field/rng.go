package field

// RNG is a simple seeded random number generator (LCG).
// Seeding makes a particle field reproducible frame for frame.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns a pseudo-random uint64
func (r *RNG) Uint64() uint64 {
	// LCG parameters from Numerical Recipes
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a pseudo-random float64 in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Range returns a pseudo-random float64 in [min, min+span)
func (r *RNG) Range(min, span float64) float64 {
	return r.Float64()*span + min
}

// Chance reports true with probability p
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}
