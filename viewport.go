package plot2d

import "github.com/gogpu/plot2d/text"

// Viewport is the on-screen pixel rectangle an actor is permitted to draw
// within. Implementations report their pixel size and a modification time
// that advances whenever the size changes, so actors can decide whether
// cached layout geometry is stale. The optional Canvas is the drawing
// surface; a nil Canvas makes rendering a pure layout pass, which is
// useful for tests.
type Viewport interface {
	// Size returns the viewport size in pixels.
	Size() (width, height int)

	// MTime returns the viewport's modification time.
	MTime() TimeStamp

	// Canvas returns the drawing surface, or nil for layout-only viewports.
	Canvas() Canvas
}

// Window identifies the rendering window graphics resources belong to.
// Actors receive it in ReleaseGraphicsResources.
type Window interface {
	// Size returns the window size in pixels.
	Size() (width, height int)

	// MTime returns the window's modification time.
	MTime() TimeStamp
}

// Canvas is a drawing surface actors emit geometry and text to. The render
// package provides a software implementation; GPU-backed surfaces can
// implement it as well.
type Canvas interface {
	// DrawPolyData draws a mesh: line cells are stroked with the actor
	// property's color and line width, polygon cells are filled with their
	// per-cell colors. Returns the number of cells drawn.
	DrawPolyData(pd *PolyData, prop *Property2D) int

	// DrawText draws a string anchored at (x, y) in viewport coordinates.
	// Horizontal placement follows the style's justification; the string
	// is vertically centered on y. Returns 1 if anything was drawn.
	DrawText(s string, x, y int, style text.Property, prop *Property2D) int

	// ReleaseResources drops cached graphics resources (font faces,
	// scratch buffers). The canvas remains usable afterwards.
	ReleaseResources()
}

// BasicViewport is a concrete viewport backed by nothing but a size and an
// optional canvas. It also satisfies Window.
type BasicViewport struct {
	width, height int
	canvas        Canvas
	mtime         TimeStamp
}

// NewBasicViewport creates a viewport with the given pixel size and no
// canvas.
func NewBasicViewport(width, height int) *BasicViewport {
	v := &BasicViewport{width: width, height: height}
	v.mtime.Modified()
	return v
}

// Size returns the viewport size in pixels.
func (v *BasicViewport) Size() (width, height int) { return v.width, v.height }

// SetSize resizes the viewport, advancing its modification time if the
// size actually changed.
func (v *BasicViewport) SetSize(width, height int) {
	if v.width == width && v.height == height {
		return
	}
	v.width, v.height = width, height
	v.mtime.Modified()
}

// Canvas returns the drawing surface, or nil if none is attached.
func (v *BasicViewport) Canvas() Canvas { return v.canvas }

// SetCanvas attaches a drawing surface.
func (v *BasicViewport) SetCanvas(c Canvas) {
	v.canvas = c
	v.mtime.Modified()
}

// MTime returns the viewport's modification time.
func (v *BasicViewport) MTime() TimeStamp { return v.mtime }
