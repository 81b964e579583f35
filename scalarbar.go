package plot2d

import (
	"fmt"

	"github.com/gogpu/plot2d/text"
)

// Orientation selects how a scalar bar is laid out.
type Orientation int

const (
	// OrientationHorizontal lays the bar along X, labels below it.
	OrientationHorizontal Orientation = iota
	// OrientationVertical lays the bar along Y, labels to its right.
	OrientationVertical
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "Horizontal"
	case OrientationVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Label count bounds for the scalar bar.
const (
	minScalarBarLabels = 0
	maxScalarBarLabels = 64
)

// ScalarBarActor renders a color legend for a lookup table: a bar of
// constant-color segments sampled from the table, annotated with value
// labels and an optional title, so the viewer can read off the
// correspondence between color and data value.
//
// The default actor shows at most 64 colors and 5 labels in "%-#6.3g"
// format, vertically, in a box (0.05 x 0.8) of the viewport on its right
// side.
type ScalarBarActor struct {
	Actor2D

	lookupTable *LookupTable

	maximumNumberOfColors int
	numberOfLabels        int
	orientation           Orientation
	title                 string
	labelFormat           string

	labelTextProperty text.Property
	titleTextProperty text.Property

	measurer *text.Measurer

	barData             *PolyData
	labels              []AxisLabel
	numberOfLabelsBuilt int
	titleX, titleY      int
	titleStyle          text.Property

	buildTime  TimeStamp
	lastSize   [2]int
	lastOrigin [2]int
}

// NewScalarBarActor creates a vertical scalar bar with the traditional
// defaults: 64 maximum colors, 5 labels, "%-#6.3g" label format, no
// title, bold italic shadowed text.
func NewScalarBarActor(opts ...ActorOption) *ScalarBarActor {
	o := defaultActorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()

	labels := text.DefaultProperty()
	labels.Bold = true
	labels.Italic = true
	labels.Shadow = true

	a := &ScalarBarActor{
		Actor2D:               newActor2D(),
		maximumNumberOfColors: 64,
		numberOfLabels:        5,
		orientation:           OrientationVertical,
		labelFormat:           "%-#6.3g",
		labelTextProperty:     labels,
		titleTextProperty:     labels,
		measurer:              o.measurer,
		barData:               NewPolyData(),
	}
	a.SetPosition(0.82, 0.1)
	a.SetPosition2(0.87, 0.9)
	return a
}

// SetLookupTable attaches the lookup table the bar legends. The actor
// borrows the table.
func (a *ScalarBarActor) SetLookupTable(lut *LookupTable) {
	if lut == a.lookupTable {
		return
	}
	a.lookupTable = lut
	a.Modified()
}

// LookupTable returns the attached lookup table, nil if none.
func (a *ScalarBarActor) LookupTable() *LookupTable { return a.lookupTable }

// SetMaximumNumberOfColors sets the maximum number of bar segments,
// clamped to at least 2. Tables with more colors are sampled down.
func (a *ScalarBarActor) SetMaximumNumberOfColors(n int) {
	if n < 2 {
		n = 2
	}
	if n == a.maximumNumberOfColors {
		return
	}
	a.maximumNumberOfColors = n
	a.Modified()
}

// MaximumNumberOfColors returns the maximum number of bar segments.
func (a *ScalarBarActor) MaximumNumberOfColors() int { return a.maximumNumberOfColors }

// SetNumberOfLabels sets the number of value labels, clamped to [0, 64].
func (a *ScalarBarActor) SetNumberOfLabels(n int) {
	if n < minScalarBarLabels {
		n = minScalarBarLabels
	}
	if n > maxScalarBarLabels {
		n = maxScalarBarLabels
	}
	if n == a.numberOfLabels {
		return
	}
	a.numberOfLabels = n
	a.Modified()
}

// NumberOfLabels returns the configured label count.
func (a *ScalarBarActor) NumberOfLabels() int { return a.numberOfLabels }

// NumberOfLabelsBuilt returns how many labels the last build placed.
func (a *ScalarBarActor) NumberOfLabelsBuilt() int { return a.numberOfLabelsBuilt }

// SetOrientation selects horizontal or vertical layout.
func (a *ScalarBarActor) SetOrientation(o Orientation) {
	if o == a.orientation {
		return
	}
	a.orientation = o
	a.Modified()
}

// SetOrientationToHorizontal lays the bar along X.
func (a *ScalarBarActor) SetOrientationToHorizontal() {
	a.SetOrientation(OrientationHorizontal)
}

// SetOrientationToVertical lays the bar along Y.
func (a *ScalarBarActor) SetOrientationToVertical() {
	a.SetOrientation(OrientationVertical)
}

// Orientation returns the current layout orientation.
func (a *ScalarBarActor) Orientation() Orientation { return a.orientation }

// SetTitle sets the legend title.
func (a *ScalarBarActor) SetTitle(title string) {
	if title == a.title {
		return
	}
	a.title = title
	a.Modified()
}

// Title returns the legend title.
func (a *ScalarBarActor) Title() string { return a.title }

// SetLabelFormat sets the printf-style format labels are printed with.
func (a *ScalarBarActor) SetLabelFormat(format string) {
	if format == a.labelFormat {
		return
	}
	a.labelFormat = format
	a.Modified()
}

// LabelFormat returns the label format string.
func (a *ScalarBarActor) LabelFormat() string { return a.labelFormat }

// SetLabelTextProperty sets the style value labels are drawn with, by
// value.
func (a *ScalarBarActor) SetLabelTextProperty(p text.Property) {
	a.labelTextProperty = p
	a.Modified()
}

// LabelTextProperty returns a copy of the label style.
func (a *ScalarBarActor) LabelTextProperty() text.Property { return a.labelTextProperty }

// SetTitleTextProperty sets the style the title is drawn with, by value.
func (a *ScalarBarActor) SetTitleTextProperty(p text.Property) {
	a.titleTextProperty = p
	a.Modified()
}

// TitleTextProperty returns a copy of the title style.
func (a *ScalarBarActor) TitleTextProperty() text.Property { return a.titleTextProperty }

// SetFontFamily sets the font family on both the label and title styles.
func (a *ScalarBarActor) SetFontFamily(f text.FontFamily) {
	a.labelTextProperty.FontFamily = f
	a.titleTextProperty.FontFamily = f
	a.Modified()
}

// FontFamily returns the title style's font family.
func (a *ScalarBarActor) FontFamily() text.FontFamily {
	return a.titleTextProperty.FontFamily
}

// SetBold sets bold on both the label and title styles.
func (a *ScalarBarActor) SetBold(bold bool) {
	a.labelTextProperty.Bold = bold
	a.titleTextProperty.Bold = bold
	a.Modified()
}

// Bold returns the title style's bold flag.
func (a *ScalarBarActor) Bold() bool { return a.titleTextProperty.Bold }

// SetItalic sets italic on both the label and title styles.
func (a *ScalarBarActor) SetItalic(italic bool) {
	a.labelTextProperty.Italic = italic
	a.titleTextProperty.Italic = italic
	a.Modified()
}

// Italic returns the title style's italic flag.
func (a *ScalarBarActor) Italic() bool { return a.titleTextProperty.Italic }

// SetShadow sets the shadow flag on both the label and title styles.
func (a *ScalarBarActor) SetShadow(shadow bool) {
	a.labelTextProperty.Shadow = shadow
	a.titleTextProperty.Shadow = shadow
	a.Modified()
}

// Shadow returns the title style's shadow flag.
func (a *ScalarBarActor) Shadow() bool { return a.titleTextProperty.Shadow }

// BarData returns the segment mesh built by the last rebuild: one
// constant-color quad per segment.
func (a *ScalarBarActor) BarData() *PolyData { return a.barData }

// Labels returns the value labels placed by the last rebuild.
func (a *ScalarBarActor) Labels() []AxisLabel { return a.labels }

// RenderOverlay draws the cached bar, labels, and title. With no lookup
// table attached it logs an error and reports zero items rendered.
func (a *ScalarBarActor) RenderOverlay(vp Viewport) int {
	if a.lookupTable == nil {
		Logger().Error("nothing to render", "actor", "ScalarBarActor", "err", ErrNoLookupTable)
		return 0
	}
	if a.buildTime.Value() == 0 {
		return 0
	}

	canvas := vp.Canvas()
	rendered := 1
	if canvas != nil {
		canvas.DrawPolyData(a.barData, a.Property())
		for _, l := range a.labels {
			canvas.DrawText(l.Text, l.X, l.Y, l.Style, a.Property())
		}
		if a.title != "" {
			canvas.DrawText(a.title, a.titleX, a.titleY, a.titleStyle, a.Property())
		}
	}
	rendered += a.numberOfLabelsBuilt
	if a.title != "" {
		rendered++
	}
	return rendered
}

// RenderOpaqueGeometry rebuilds the bar if anything changed since the
// last build, then draws it.
func (a *ScalarBarActor) RenderOpaqueGeometry(vp Viewport) int {
	if a.lookupTable == nil {
		Logger().Error("nothing to render", "actor", "ScalarBarActor", "err", ErrNoLookupTable)
		return 0
	}

	// A viewport change only dirties the actor when the resolved origin
	// or size of the bar's box actually moved.
	if vp.MTime().After(a.buildTime) {
		p1x, p1y := a.PositionCoordinate().ComputedViewportValue(vp)
		p2x, p2y := a.Position2Coordinate().ComputedViewportValue(vp)
		size := [2]int{p2x - p1x, p2y - p1y}
		origin := [2]int{p1x, p1y}
		if size != a.lastSize || origin != a.lastOrigin {
			a.lastSize = size
			a.lastOrigin = origin
			a.Modified()
		}
	}

	if a.MTime().After(a.buildTime) || a.lookupTable.MTime().After(a.buildTime) {
		Logger().Debug("rebuilding scalar bar")
		a.buildScalarBar(vp)
		a.buildTime.Modified()
	}

	return a.RenderOverlay(vp)
}

// buildScalarBar lays out the segment quads, labels, and title inside the
// actor's box.
func (a *ScalarBarActor) buildScalarBar(vp Viewport) {
	p1x, p1y := a.PositionCoordinate().ComputedViewportValue(vp)
	p2x, p2y := a.Position2Coordinate().ComputedViewportValue(vp)
	width := float64(p2x - p1x)
	height := float64(p2y - p1y)

	lut := a.lookupTable
	rangeMin, rangeMax := lut.Range()
	numColors := lut.NumberOfColors()
	if numColors > a.maximumNumberOfColors {
		numColors = a.maximumNumberOfColors
	}

	a.barData.Initialize()
	a.labels = a.labels[:0]

	// Reserve a band for the title at the top of the box.
	titleH := 0.0
	if a.title != "" {
		style := a.titleTextProperty
		style.Justification = text.JustificationCentered
		if style.FontSize <= 0 {
			style.FontSize = a.measurer.FitSize(a.title, style, width, height/10)
		}
		_, titleH = a.measurer.Measure(a.title, style)
		a.titleX = p1x + int(width/2)
		a.titleY = p2y - int(titleH/2)
		a.titleStyle = style
	}

	if a.orientation == OrientationVertical {
		a.buildVertical(p1x, p1y, width, height-titleH, numColors, rangeMin, rangeMax)
	} else {
		a.buildHorizontal(p1x, p1y, width, height-titleH, numColors, rangeMin, rangeMax)
	}
	a.numberOfLabelsBuilt = len(a.labels)

	Logger().Debug("built scalar bar",
		"segments", numColors, "labels", a.numberOfLabelsBuilt, "orientation", a.orientation)
}

// buildVertical stacks segments bottom to top with labels to the right.
func (a *ScalarBarActor) buildVertical(p1x, p1y int, width, height float64, numColors int, rangeMin, rangeMax float64) {
	barW := 0.4 * width
	a.emitSegments(numColors, rangeMin, rangeMax, func(t0, t1 float64) [4]Point {
		return [4]Point{
			Pt(float64(p1x), float64(p1y)+t0*height),
			Pt(float64(p1x)+barW, float64(p1y)+t0*height),
			Pt(float64(p1x)+barW, float64(p1y)+t1*height),
			Pt(float64(p1x), float64(p1y)+t1*height),
		}
	})

	style := a.labelTextProperty
	style.Justification = text.JustificationLeft
	a.placeLabels(rangeMin, rangeMax, width-barW-defaultLabelOffset, height, style,
		func(t float64) (int, int) {
			return p1x + int(barW) + defaultLabelOffset, p1y + int(t*height)
		})
}

// buildHorizontal runs segments left to right with labels below.
func (a *ScalarBarActor) buildHorizontal(p1x, p1y int, width, height float64, numColors int, rangeMin, rangeMax float64) {
	labelBand := height / 3
	barY0 := float64(p1y) + labelBand
	barH := height - labelBand
	a.emitSegments(numColors, rangeMin, rangeMax, func(t0, t1 float64) [4]Point {
		return [4]Point{
			Pt(float64(p1x)+t0*width, barY0),
			Pt(float64(p1x)+t1*width, barY0),
			Pt(float64(p1x)+t1*width, barY0+barH),
			Pt(float64(p1x)+t0*width, barY0+barH),
		}
	})

	style := a.labelTextProperty
	style.Justification = text.JustificationCentered
	labelW := width
	if a.numberOfLabels > 1 {
		labelW = width / float64(a.numberOfLabels)
	}
	a.placeLabels(rangeMin, rangeMax, labelW, labelBand, style,
		func(t float64) (int, int) {
			return p1x + int(t*width), p1y + int(labelBand/2)
		})
}

// emitSegments appends numColors constant-color quads, sampling the
// lookup table at each segment's midpoint value.
func (a *ScalarBarActor) emitSegments(numColors int, rangeMin, rangeMax float64, corners func(t0, t1 float64) [4]Point) {
	a.barData.AllocatePoints(4 * numColors)
	for i := 0; i < numColors; i++ {
		t0 := float64(i) / float64(numColors)
		t1 := float64(i+1) / float64(numColors)
		mid := rangeMin + (t0+t1)/2*(rangeMax-rangeMin)

		quad := corners(t0, t1)
		ids := make([]int, 4)
		for k, p := range quad {
			ids[k] = a.barData.InsertNextPoint(p.X, p.Y)
		}
		a.barData.InsertNextPoly(ids, a.lookupTable.Color(mid))
	}
}

// placeLabels formats the label values, sizes them to a common font size
// that fits the tightest one, and anchors them along the bar.
func (a *ScalarBarActor) placeLabels(rangeMin, rangeMax, maxW, maxH float64, style text.Property, anchor func(t float64) (int, int)) {
	n := a.numberOfLabels
	if n == 0 {
		return
	}

	texts := make([]string, n)
	for i := range texts {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		texts[i] = fmt.Sprintf(a.labelFormat, rangeMin+t*(rangeMax-rangeMin))
	}

	if style.FontSize <= 0 {
		perLabelH := maxH / float64(n)
		size := 0.0
		for _, s := range texts {
			fit := a.measurer.FitSize(s, style, maxW, perLabelH)
			if size == 0 || fit < size {
				size = fit
			}
		}
		style.FontSize = size
	}

	for i, s := range texts {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		x, y := anchor(t)
		a.labels = append(a.labels, AxisLabel{Text: s, X: x, Y: y, Style: style})
	}
}

// ReleaseGraphicsResources releases resources held for the given window.
// The bar's geometry is plain data; canvas-side caches are released
// through the canvas.
func (a *ScalarBarActor) ReleaseGraphicsResources(_ Window) {}
