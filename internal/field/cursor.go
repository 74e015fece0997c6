package field

import "github.com/charmbracelet/harmonica"

// DefaultCursorEase is the fraction of the remaining distance the cursor
// follower covers each frame.
const DefaultCursorEase = 0.1

// Follower trails the pointer: the cursor dot sits exactly on the pointer
// and the follower ring eases toward it once per frame.
type Follower struct {
	PointerX, PointerY float64
	X, Y               float64

	ease   float64
	spring *harmonica.Spring
	vx, vy float64
}

// NewFollower creates a follower with linear easing
func NewFollower(ease float64) *Follower {
	if ease <= 0 || ease > 1 {
		ease = DefaultCursorEase
	}
	return &Follower{ease: ease}
}

// NewSpringFollower creates a follower driven by a damped spring
func NewSpringFollower(fps int, frequency, damping float64) *Follower {
	s := harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
	return &Follower{spring: &s}
}

// MoveTo records a new pointer position.
func (f *Follower) MoveTo(x, y float64) {
	f.PointerX, f.PointerY = x, y
}

// Step advances the follower one frame and returns its position.
func (f *Follower) Step() (float64, float64) {
	if f.spring != nil {
		f.X, f.vx = f.spring.Update(f.X, f.vx, f.PointerX)
		f.Y, f.vy = f.spring.Update(f.Y, f.vy, f.PointerY)
		return f.X, f.Y
	}
	f.X += (f.PointerX - f.X) * f.ease
	f.Y += (f.PointerY - f.Y) * f.ease
	return f.X, f.Y
}
