package plot2d

// CoordinateSystem selects how a Coordinate's value maps to viewport
// pixels.
type CoordinateSystem int

const (
	// CoordNormalizedViewport interprets values as fractions of the
	// viewport size, in [0, 1].
	CoordNormalizedViewport CoordinateSystem = iota
	// CoordViewport interprets values as absolute viewport pixels.
	CoordViewport
)

// String returns the string representation of the coordinate system.
func (s CoordinateSystem) String() string {
	switch s {
	case CoordNormalizedViewport:
		return "NormalizedViewport"
	case CoordViewport:
		return "Viewport"
	default:
		return "Unknown"
	}
}

// Coordinate is a 2D position with an associated coordinate system. Actors
// use pairs of coordinates for the corners of their bounding box; the
// position resolves to integer pixels only against a concrete viewport.
type Coordinate struct {
	system CoordinateSystem
	x, y   float64
	mtime  TimeStamp
}

// NewCoordinate creates a coordinate in the normalized-viewport system at
// the origin.
func NewCoordinate() *Coordinate {
	c := &Coordinate{system: CoordNormalizedViewport}
	c.mtime.Modified()
	return c
}

// SetCoordinateSystem changes the coordinate system.
func (c *Coordinate) SetCoordinateSystem(s CoordinateSystem) {
	if c.system == s {
		return
	}
	c.system = s
	c.mtime.Modified()
}

// SetCoordinateSystemToNormalizedViewport selects fractional coordinates.
func (c *Coordinate) SetCoordinateSystemToNormalizedViewport() {
	c.SetCoordinateSystem(CoordNormalizedViewport)
}

// SetCoordinateSystemToViewport selects absolute pixel coordinates.
func (c *Coordinate) SetCoordinateSystemToViewport() {
	c.SetCoordinateSystem(CoordViewport)
}

// CoordinateSystem returns the current coordinate system.
func (c *Coordinate) CoordinateSystem() CoordinateSystem { return c.system }

// SetValue sets the position in the current coordinate system.
func (c *Coordinate) SetValue(x, y float64) {
	if c.x == x && c.y == y {
		return
	}
	c.x, c.y = x, y
	c.mtime.Modified()
}

// Value returns the position in the current coordinate system.
func (c *Coordinate) Value() (x, y float64) { return c.x, c.y }

// ComputedViewportValue resolves the position to integer viewport pixels.
func (c *Coordinate) ComputedViewportValue(vp Viewport) (x, y int) {
	switch c.system {
	case CoordNormalizedViewport:
		w, h := vp.Size()
		return int(c.x * float64(w)), int(c.y * float64(h))
	default:
		return int(c.x), int(c.y)
	}
}

// MTime returns the coordinate's modification time.
func (c *Coordinate) MTime() TimeStamp { return c.mtime }
