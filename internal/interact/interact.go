// Package interact computes the inline styles project cards receive while
// hovered.
package interact

import (
	"fmt"

	"bavatarinee.dev/internal/models"
)

const (
	// MaxTilt is the rotation in degrees at the card edge.
	MaxTilt = 3.0
	// Lift raises a hovered card.
	Lift = "translateY(-6px)"

	HoverTransition = "transform 0.1s, box-shadow 0.1s"
	LeaveTransition = "transform 0.4s cubic-bezier(0.16, 1, 0.3, 1), border-color 0.4s"

	glowColor = "rgba(125,155,118,0.1)"
)

// Offset returns the pointer position relative to the card centre,
// normalised to [-1, 1] on each axis inside the card.
func Offset(p models.Pointer, r models.Rect) (x, y float64) {
	if r.Width <= 0 || r.Height <= 0 {
		return 0, 0
	}
	x = (p.X - r.Left - r.Width/2) / (r.Width / 2)
	y = (p.Y - r.Top - r.Height/2) / (r.Height / 2)
	return x, y
}

// Tilt returns the hover transform for a pointer over a card.
func Tilt(p models.Pointer, r models.Rect) models.HoverStyle {
	x, y := Offset(p, r)
	return models.HoverStyle{
		Transform:  fmt.Sprintf("%s rotateX(%sdeg) rotateY(%sdeg)", Lift, num(-y*MaxTilt), num(x*MaxTilt)),
		Transition: HoverTransition,
		Glow:       Glow(p, r),
	}
}

// Leave returns the style that settles a card back when the pointer leaves.
func Leave() models.HoverStyle {
	return models.HoverStyle{Transform: "", Transition: LeaveTransition}
}

// Glow returns the radial highlight that follows the pointer.
func Glow(p models.Pointer, r models.Rect) string {
	px, py := 0.0, 0.0
	if r.Width > 0 && r.Height > 0 {
		px = (p.X - r.Left) / r.Width * 100
		py = (p.Y - r.Top) / r.Height * 100
	}
	return fmt.Sprintf("radial-gradient(ellipse at %.1f%% %.1f%%, %s, transparent 65%%)", px, py, glowColor)
}

// num formats a number the way a browser stringifies it: no trailing zeros
// and no negative zero.
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return fmt.Sprintf("%g", v)
}
