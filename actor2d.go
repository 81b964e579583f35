package plot2d

// Actor2D carries the state common to all 2D overlay actors: the two
// corner coordinates of the actor's bounding box, a display property,
// visibility, and a modification time. Concrete actors embed it.
//
// Every setter advances the actor's modification time; actors compare it
// (together with their input's and viewport's times) against their last
// build time to decide whether to rebuild cached geometry.
type Actor2D struct {
	position  *Coordinate
	position2 *Coordinate
	property  *Property2D
	visible   bool
	mtime     TimeStamp
}

// newActor2D initializes the embedded base with normalized-viewport corner
// coordinates and a default property.
func newActor2D() Actor2D {
	a := Actor2D{
		position:  NewCoordinate(),
		position2: NewCoordinate(),
		property:  NewProperty2D(),
		visible:   true,
	}
	a.mtime.Modified()
	return a
}

// PositionCoordinate returns the coordinate of the first bounding-box
// corner. Mutating it marks the actor modified through the coordinate's
// own timestamp.
func (a *Actor2D) PositionCoordinate() *Coordinate { return a.position }

// Position2Coordinate returns the coordinate of the opposite corner.
func (a *Actor2D) Position2Coordinate() *Coordinate { return a.position2 }

// SetPosition sets the first corner in its current coordinate system.
func (a *Actor2D) SetPosition(x, y float64) { a.position.SetValue(x, y) }

// SetPosition2 sets the opposite corner in its current coordinate system.
func (a *Actor2D) SetPosition2(x, y float64) { a.position2.SetValue(x, y) }

// Property returns the actor's display property.
func (a *Actor2D) Property() *Property2D { return a.property }

// SetProperty replaces the actor's display property. A nil property
// restores the default.
func (a *Actor2D) SetProperty(p *Property2D) {
	if p == nil {
		p = NewProperty2D()
	}
	a.property = p
}

// Visibility reports whether the actor should be rendered.
func (a *Actor2D) Visibility() bool { return a.visible }

// SetVisibility toggles rendering of the actor.
func (a *Actor2D) SetVisibility(visible bool) {
	if a.visible == visible {
		return
	}
	a.visible = visible
	a.Modified()
}

// Modified advances the actor's own modification time.
func (a *Actor2D) Modified() { a.mtime.Modified() }

// MTime returns the actor's effective modification time: the latest of its
// own timestamp and those of its corner coordinates.
func (a *Actor2D) MTime() TimeStamp {
	t := maxTime(a.mtime, a.position.MTime())
	return maxTime(t, a.position2.MTime())
}
