package plot2d

// Property2D holds the display attributes a 2D actor is drawn with. It is
// applied at render time, so changing it does not trigger a geometry
// rebuild.
type Property2D struct {
	// Color is the stroke and text color.
	Color RGBA

	// Opacity multiplies the color's alpha, in [0, 1].
	Opacity float64

	// LineWidth is the stroke width in pixels.
	LineWidth float64

	// PointSize is the diameter of rendered points in pixels.
	PointSize float64
}

// NewProperty2D creates a property with white color, full opacity, and
// 1-pixel lines and points.
func NewProperty2D() *Property2D {
	return &Property2D{
		Color:     White,
		Opacity:   1,
		LineWidth: 1,
		PointSize: 1,
	}
}

// EffectiveColor returns the color with opacity applied.
func (p *Property2D) EffectiveColor() RGBA {
	return p.Color.WithOpacity(p.Opacity)
}
