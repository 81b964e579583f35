package plot2d

import (
	"fmt"
	"math"

	"github.com/gogpu/plot2d/text"
)

// Default axis appearance.
const (
	defaultTickLength  = 5
	defaultLabelOffset = 2
)

// AxisLabel is one positioned, formatted tick label produced by an axis
// build.
type AxisLabel struct {
	// Text is the formatted label.
	Text string
	// X, Y anchor the label in viewport pixels.
	X, Y int
	// Style is the snapshot of the label text property the label was
	// placed with, justification resolved toward the axis.
	Style text.Property
}

// AxisActor2D draws a single annotated axis: a line between two endpoint
// coordinates, perpendicular tick marks, formatted tick labels, and an
// optional centered title. The parallel-coordinates actor allocates one
// per independent variable; it is also usable on its own.
type AxisActor2D struct {
	Actor2D

	point1 *Coordinate
	point2 *Coordinate

	rangeMin, rangeMax float64
	numberOfLabels     int
	labelFormat        string
	adjustLabels       bool
	tickLength         int

	title             string
	labelTextProperty text.Property
	titleTextProperty text.Property

	axisData  *PolyData
	labels    []AxisLabel
	titleX    int
	titleY    int
	buildTime TimeStamp
}

// NewAxisActor2D creates an axis spanning the viewport bottom edge in
// normalized coordinates, with 5 adjusted labels in "%-#6.3g" format.
func NewAxisActor2D() *AxisActor2D {
	a := &AxisActor2D{
		Actor2D:           newActor2D(),
		point1:            NewCoordinate(),
		point2:            NewCoordinate(),
		rangeMax:          1,
		numberOfLabels:    5,
		labelFormat:       "%-#6.3g",
		adjustLabels:      true,
		tickLength:        defaultTickLength,
		labelTextProperty: text.DefaultProperty(),
		titleTextProperty: text.DefaultProperty(),
		axisData:          NewPolyData(),
	}
	a.point1.SetValue(0, 0)
	a.point2.SetValue(1, 0)
	return a
}

// Point1Coordinate returns the coordinate of the axis start (range
// minimum end).
func (a *AxisActor2D) Point1Coordinate() *Coordinate { return a.point1 }

// Point2Coordinate returns the coordinate of the axis end (range maximum
// end).
func (a *AxisActor2D) Point2Coordinate() *Coordinate { return a.point2 }

// SetRange sets the data values at the two axis endpoints.
func (a *AxisActor2D) SetRange(min, max float64) {
	if min == a.rangeMin && max == a.rangeMax {
		return
	}
	a.rangeMin, a.rangeMax = min, max
	a.Modified()
}

// Range returns the data values at the two axis endpoints.
func (a *AxisActor2D) Range() (min, max float64) { return a.rangeMin, a.rangeMax }

// SetNumberOfLabels sets how many tick labels are drawn. Negative counts
// are treated as zero.
func (a *AxisActor2D) SetNumberOfLabels(n int) {
	if n < 0 {
		n = 0
	}
	if n == a.numberOfLabels {
		return
	}
	a.numberOfLabels = n
	a.Modified()
}

// NumberOfLabels returns the configured label count.
func (a *AxisActor2D) NumberOfLabels() int { return a.numberOfLabels }

// SetLabelFormat sets the printf-style format labels are printed with.
func (a *AxisActor2D) SetLabelFormat(format string) {
	if format == a.labelFormat {
		return
	}
	a.labelFormat = format
	a.Modified()
}

// LabelFormat returns the label format string.
func (a *AxisActor2D) LabelFormat() string { return a.labelFormat }

// SetAdjustLabels toggles tick adjustment. When on, tick values snap to
// round numbers near the range; when off, exactly NumberOfLabels labels
// are placed evenly over the range.
func (a *AxisActor2D) SetAdjustLabels(adjust bool) {
	if adjust == a.adjustLabels {
		return
	}
	a.adjustLabels = adjust
	a.Modified()
}

// AdjustLabels reports whether tick adjustment is enabled.
func (a *AxisActor2D) AdjustLabels() bool { return a.adjustLabels }

// SetTickLength sets the tick mark length in pixels.
func (a *AxisActor2D) SetTickLength(l int) {
	if l == a.tickLength {
		return
	}
	a.tickLength = l
	a.Modified()
}

// SetTitle sets the axis title.
func (a *AxisActor2D) SetTitle(title string) {
	if title == a.title {
		return
	}
	a.title = title
	a.Modified()
}

// Title returns the axis title.
func (a *AxisActor2D) Title() string { return a.title }

// SetLabelTextProperty sets the style tick labels are drawn with. The
// property is copied; later changes to the caller's value have no effect.
func (a *AxisActor2D) SetLabelTextProperty(p text.Property) {
	a.labelTextProperty = p
	a.Modified()
}

// LabelTextProperty returns a copy of the label style.
func (a *AxisActor2D) LabelTextProperty() text.Property { return a.labelTextProperty }

// SetTitleTextProperty sets the style the title is drawn with, by value.
func (a *AxisActor2D) SetTitleTextProperty(p text.Property) {
	a.titleTextProperty = p
	a.Modified()
}

// TitleTextProperty returns a copy of the title style.
func (a *AxisActor2D) TitleTextProperty() text.Property { return a.titleTextProperty }

// MTime returns the actor's effective modification time, including the
// endpoint coordinates.
func (a *AxisActor2D) MTime() TimeStamp {
	t := maxTime(a.Actor2D.MTime(), a.point1.MTime())
	return maxTime(t, a.point2.MTime())
}

// Labels returns the labels placed by the last build.
func (a *AxisActor2D) Labels() []AxisLabel { return a.labels }

// AxisData returns the line-and-tick mesh built by the last build.
func (a *AxisActor2D) AxisData() *PolyData { return a.axisData }

// BuildAxis recomputes the axis geometry and labels against the viewport.
// RenderOverlay calls it automatically when the actor is dirty.
func (a *AxisActor2D) BuildAxis(vp Viewport) {
	x1, y1 := a.point1.ComputedViewportValue(vp)
	x2, y2 := a.point2.ComputedViewportValue(vp)
	p1 := Pt(float64(x1), float64(y1))
	p2 := Pt(float64(x2), float64(y2))

	dir := p2.Sub(p1).Normalize()
	// Ticks extend below a horizontal axis and left of a vertical one.
	var perp Point
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		perp = Pt(dir.Y, -dir.X)
	} else {
		perp = Pt(-dir.Y, dir.X)
	}

	a.axisData.Initialize()
	id1 := a.axisData.InsertNextPoint(p1.X, p1.Y)
	id2 := a.axisData.InsertNextPoint(p2.X, p2.Y)
	a.axisData.InsertNextLine([]int{id1, id2})

	ticks := a.tickValues()
	a.labels = a.labels[:0]

	labelStyle := a.labelTextProperty
	switch {
	case perp.X < -0.5:
		labelStyle.Justification = text.JustificationRight
	case perp.X > 0.5:
		labelStyle.Justification = text.JustificationLeft
	default:
		labelStyle.Justification = text.JustificationCentered
	}

	span := a.rangeMax - a.rangeMin
	for _, v := range ticks {
		t := 0.5
		if span != 0 {
			t = (v - a.rangeMin) / span
		}
		pos := p1.Lerp(p2, t)
		tip := pos.Add(perp.Mul(float64(a.tickLength)))
		ta := a.axisData.InsertNextPoint(pos.X, pos.Y)
		tb := a.axisData.InsertNextPoint(tip.X, tip.Y)
		a.axisData.InsertNextLine([]int{ta, tb})

		anchor := tip.Add(perp.Mul(defaultLabelOffset))
		a.labels = append(a.labels, AxisLabel{
			Text:  fmt.Sprintf(a.labelFormat, v),
			X:     int(anchor.X),
			Y:     int(anchor.Y),
			Style: labelStyle,
		})
	}

	if a.title != "" {
		mid := p1.Lerp(p2, 0.5)
		offset := perp.Mul(float64(a.tickLength) + 4*defaultLabelOffset +
			a.titleTextProperty.EffectiveSize())
		a.titleX = int(mid.X + offset.X)
		a.titleY = int(mid.Y + offset.Y)
	}

	a.buildTime.Modified()
	Logger().Debug("built axis",
		"ticks", len(ticks), "range_min", a.rangeMin, "range_max", a.rangeMax)
}

// tickValues returns the data values to place ticks at.
func (a *AxisActor2D) tickValues() []float64 {
	if a.numberOfLabels == 0 {
		return nil
	}
	if a.numberOfLabels == 1 {
		return []float64{a.rangeMin + 0.5*(a.rangeMax-a.rangeMin)}
	}
	if a.adjustLabels {
		return niceTicks(a.rangeMin, a.rangeMax, a.numberOfLabels)
	}
	vals := make([]float64, a.numberOfLabels)
	step := (a.rangeMax - a.rangeMin) / float64(a.numberOfLabels-1)
	for i := range vals {
		vals[i] = a.rangeMin + float64(i)*step
	}
	return vals
}

// RenderOverlay draws the axis, rebuilding first if anything changed
// since the last build. Returns the number of items rendered.
func (a *AxisActor2D) RenderOverlay(vp Viewport) int {
	if !a.Visibility() {
		return 0
	}
	if a.buildTime.Value() == 0 || a.MTime().After(a.buildTime) {
		a.BuildAxis(vp)
	}

	rendered := 1
	if canvas := vp.Canvas(); canvas != nil {
		canvas.DrawPolyData(a.axisData, a.Property())
		for _, l := range a.labels {
			canvas.DrawText(l.Text, l.X, l.Y, l.Style, a.Property())
		}
		if a.title != "" {
			style := a.titleTextProperty
			style.Justification = text.JustificationCentered
			canvas.DrawText(a.title, a.titleX, a.titleY, style, a.Property())
		}
	}
	rendered += len(a.labels)
	if a.title != "" {
		rendered++
	}
	return rendered
}

// RenderOpaqueGeometry draws the axis as opaque geometry. The axis has no
// translucent parts, so this is the same as RenderOverlay.
func (a *AxisActor2D) RenderOpaqueGeometry(vp Viewport) int {
	return a.RenderOverlay(vp)
}

// ReleaseGraphicsResources releases resources held for the given window.
// The axis itself holds none; canvas-side caches are released through the
// canvas.
func (a *AxisActor2D) ReleaseGraphicsResources(_ Window) {}

// niceTicks returns about count round tick values covering [min, max],
// snapped to 1/2/5 multiples of a power of ten.
func niceTicks(min, max float64, count int) []float64 {
	if count < 2 || min == max {
		return []float64{min}
	}
	if min > max {
		min, max = max, min
	}
	rawStep := (max - min) / float64(count-1)
	mag := math.Pow(10, math.Floor(math.Log10(rawStep)))
	var step float64
	switch norm := rawStep / mag; {
	case norm <= 1:
		step = mag
	case norm <= 2:
		step = 2 * mag
	case norm <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	start := math.Ceil(min/step) * step
	var vals []float64
	for v := start; v <= max+step*1e-9; v += step {
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		vals = []float64{min}
	}
	return vals
}
