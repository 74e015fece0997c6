package field

const (
	scanStep = 0.5
	scanHalf = 60.0
)

// ScanLine is the translucent band sweeping down the field. Its offset
// moves by a fixed step per frame and wraps from below the bottom edge back
// above the top, so it is periodic modulo height+120.
type ScanLine struct {
	Y float64
}

// Bounds returns the vertical extent of the band.
func (s *ScanLine) Bounds() (top, bottom float64) {
	return s.Y - scanHalf, s.Y + scanHalf
}

// Advance moves the band one frame for a field of the given height.
func (s *ScanLine) Advance(height float64) {
	s.Y += scanStep
	if s.Y > height+scanHalf {
		s.Y = -scanHalf
	}
}

// Period returns the number of frames after which the offset repeats.
func (s *ScanLine) Period(height float64) int {
	return int((height+2*scanHalf)/scanStep) + 1
}
