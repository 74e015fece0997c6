package models

// Pointer is a mouse position in client coordinates
type Pointer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an element's bounding client rectangle
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HoverStyle is the inline style a hovered card receives
type HoverStyle struct {
	Transform  string `json:"transform"`
	Transition string `json:"transition"`
	Glow       string `json:"glow,omitempty"`
}
