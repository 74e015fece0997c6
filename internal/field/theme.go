package field

// Theme defines the colours a field is painted with
type Theme struct {
	// Background
	Background []ColorStop `yaml:"background"`

	// Grid
	GridColor RGBA    `yaml:"grid_color"`
	GridStep  float64 `yaml:"grid_step"`

	// Scan line
	BandColor RGBA    `yaml:"band_color"`
	BandPeak  float64 `yaml:"band_peak"`

	// Particles
	PrimaryHue   float64 `yaml:"primary_hue"`
	AccentHue    float64 `yaml:"accent_hue"`
	AccentChance float64 `yaml:"accent_chance"`
}

// DefaultTheme returns the sage and olive palette
func DefaultTheme() *Theme {
	return &Theme{
		Background: []ColorStop{
			{Offset: 0, Color: RGBA{20, 30, 22, 0.95}},
			{Offset: 0.6, Color: RGBA{14, 20, 16, 0.98}},
			{Offset: 1, Color: RGBA{10, 14, 11, 1}},
		},
		GridColor:    RGBA{125, 155, 118, 0.04},
		GridStep:     80,
		BandColor:    RGBA{125, 155, 118, 0},
		BandPeak:     0.025,
		PrimaryHue:   135, // sage
		AccentHue:    90,  // olive
		AccentChance: 0.3,
	}
}

// bandStops returns the transparent-peak-transparent scan line gradient
func (t *Theme) bandStops() []ColorStop {
	return []ColorStop{
		{Offset: 0, Color: t.BandColor.WithAlpha(0)},
		{Offset: 0.5, Color: t.BandColor.WithAlpha(t.BandPeak)},
		{Offset: 1, Color: t.BandColor.WithAlpha(0)},
	}
}

// merge fills zero-valued fields from the defaults
func (t *Theme) merge(def *Theme) {
	if len(t.Background) == 0 {
		t.Background = def.Background
	}
	if t.GridColor == (RGBA{}) {
		t.GridColor = def.GridColor
	}
	if t.GridStep <= 0 {
		t.GridStep = def.GridStep
	}
	if t.BandColor == (RGBA{}) {
		t.BandColor = def.BandColor
	}
	if t.BandPeak <= 0 {
		t.BandPeak = def.BandPeak
	}
	if t.PrimaryHue == 0 && t.AccentHue == 0 {
		t.PrimaryHue, t.AccentHue = def.PrimaryHue, def.AccentHue
	}
	if t.AccentChance <= 0 {
		t.AccentChance = def.AccentChance
	}
}
