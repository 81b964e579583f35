package plot2d

import (
	"math"

	"github.com/gogpu/plot2d/text"
)

// IndependentVariables selects whether the input table's columns or rows
// are the plot's independent variables. The other dimension enumerates
// the observations.
type IndependentVariables int

const (
	// IndependentVariablesColumns draws one axis per column; each row
	// becomes one polyline.
	IndependentVariablesColumns IndependentVariables = iota
	// IndependentVariablesRows draws one axis per row; each column
	// becomes one polyline.
	IndependentVariablesRows
)

// String returns the string representation of the mode.
func (v IndependentVariables) String() string {
	switch v {
	case IndependentVariablesColumns:
		return "Columns"
	case IndependentVariablesRows:
		return "Rows"
	default:
		return "Unknown"
	}
}

// maxVariableCount is the sanity ceiling on the number of independent
// variables. The row count starts here before taking the minimum tuple
// count, so a field with no usable rows fails the count check instead of
// allocating.
const maxVariableCount = 1 << 30

// parallelAxis bundles the per-variable state of one vertical axis: its
// actor, observed value range, and screen X position. The slice of these
// replaces four parallel arrays; everything sized by the variable count
// is allocated and discarded together.
type parallelAxis struct {
	actor    *AxisActor2D
	min, max float64
	x        int
}

// ParallelCoordinatesActor renders a field of numeric arrays as a
// parallel-coordinates plot: N evenly spaced vertical axes, one per
// independent variable, and one polyline per observation crossing every
// axis at the observation's value interpolated into the axis range.
//
// The actor draws inside the box spanned by its two corner coordinates,
// by default (0.1, 0.1) to (0.9, 0.8) of the viewport. Geometry is cached
// and rebuilt only when the input, the actor's configuration, or the
// resolved pixel corners of the box change.
type ParallelCoordinatesActor struct {
	Actor2D

	input                *FieldData
	independentVariables IndependentVariables

	title          string
	numberOfLabels int
	labelFormat    string

	labelTextProperty text.Property
	titleTextProperty text.Property

	measurer *text.Measurer

	// Built state. axes is nil and n is 0 until a rebuild succeeds.
	axes       []parallelAxis
	n          int
	yMin, yMax int
	plotData   *PolyData
	titleX     int
	titleY     int
	titleStyle text.Property

	buildTime     TimeStamp
	lastPosition  [2]int
	lastPosition2 [2]int
}

// NewParallelCoordinatesActor creates an actor with column-mode
// variables, 2 labels per axis in "%-#6.3g" format, and bold italic
// shadowed labels, matching the traditional defaults for this plot.
func NewParallelCoordinatesActor(opts ...ActorOption) *ParallelCoordinatesActor {
	o := defaultActorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()

	labels := text.DefaultProperty()
	labels.Bold = true
	labels.Italic = true
	labels.Shadow = true

	a := &ParallelCoordinatesActor{
		Actor2D:              newActor2D(),
		independentVariables: IndependentVariablesColumns,
		numberOfLabels:       2,
		labelFormat:          "%-#6.3g",
		labelTextProperty:    labels,
		titleTextProperty:    labels,
		measurer:             o.measurer,
		plotData:             NewPolyData(),
	}
	a.SetPosition(0.1, 0.1)
	a.SetPosition2(0.9, 0.8)
	return a
}

// SetInput attaches the field to plot. The actor borrows the field; it is
// never mutated.
func (a *ParallelCoordinatesActor) SetInput(f *FieldData) {
	if f == a.input {
		return
	}
	a.input = f
	a.Modified()
}

// Input returns the attached field, nil if none.
func (a *ParallelCoordinatesActor) Input() *FieldData { return a.input }

// SetIndependentVariables selects columns or rows as the independent
// variables.
func (a *ParallelCoordinatesActor) SetIndependentVariables(v IndependentVariables) {
	if v == a.independentVariables {
		return
	}
	a.independentVariables = v
	a.Modified()
}

// SetIndependentVariablesToColumns selects one axis per column.
func (a *ParallelCoordinatesActor) SetIndependentVariablesToColumns() {
	a.SetIndependentVariables(IndependentVariablesColumns)
}

// SetIndependentVariablesToRows selects one axis per row.
func (a *ParallelCoordinatesActor) SetIndependentVariablesToRows() {
	a.SetIndependentVariables(IndependentVariablesRows)
}

// IndependentVariablesMode returns the current mode.
func (a *ParallelCoordinatesActor) IndependentVariablesMode() IndependentVariables {
	return a.independentVariables
}

// SetTitle sets the plot title, drawn centered above the axes.
func (a *ParallelCoordinatesActor) SetTitle(title string) {
	if title == a.title {
		return
	}
	a.title = title
	a.Modified()
}

// Title returns the plot title.
func (a *ParallelCoordinatesActor) Title() string { return a.title }

// SetNumberOfLabels sets the label count passed to every axis. The value
// is passed through unclamped; each axis treats negative counts as zero.
func (a *ParallelCoordinatesActor) SetNumberOfLabels(n int) {
	if n == a.numberOfLabels {
		return
	}
	a.numberOfLabels = n
	a.Modified()
}

// NumberOfLabels returns the configured per-axis label count.
func (a *ParallelCoordinatesActor) NumberOfLabels() int { return a.numberOfLabels }

// SetLabelFormat sets the printf-style format axis labels are printed
// with, e.g. "%-#6.3g".
func (a *ParallelCoordinatesActor) SetLabelFormat(format string) {
	if format == a.labelFormat {
		return
	}
	a.labelFormat = format
	a.Modified()
}

// LabelFormat returns the label format string.
func (a *ParallelCoordinatesActor) LabelFormat() string { return a.labelFormat }

// SetLabelTextProperty sets the style axis labels are drawn with. The
// property is copied; later changes to the caller's value have no effect
// until it is set again.
func (a *ParallelCoordinatesActor) SetLabelTextProperty(p text.Property) {
	a.labelTextProperty = p
	a.Modified()
}

// LabelTextProperty returns a copy of the label style.
func (a *ParallelCoordinatesActor) LabelTextProperty() text.Property {
	return a.labelTextProperty
}

// SetTitleTextProperty sets the style the title is drawn with, by value.
func (a *ParallelCoordinatesActor) SetTitleTextProperty(p text.Property) {
	a.titleTextProperty = p
	a.Modified()
}

// TitleTextProperty returns a copy of the title style.
func (a *ParallelCoordinatesActor) TitleTextProperty() text.Property {
	return a.titleTextProperty
}

// SetFontFamily sets the font family on both the label and title styles.
// Kept for compatibility with code that styles the whole actor at once;
// new code should use SetLabelTextProperty and SetTitleTextProperty.
func (a *ParallelCoordinatesActor) SetFontFamily(f text.FontFamily) {
	a.labelTextProperty.FontFamily = f
	a.titleTextProperty.FontFamily = f
	a.Modified()
}

// FontFamily returns the title style's font family.
func (a *ParallelCoordinatesActor) FontFamily() text.FontFamily {
	return a.titleTextProperty.FontFamily
}

// SetBold sets bold on both the label and title styles.
func (a *ParallelCoordinatesActor) SetBold(bold bool) {
	a.labelTextProperty.Bold = bold
	a.titleTextProperty.Bold = bold
	a.Modified()
}

// Bold returns the title style's bold flag.
func (a *ParallelCoordinatesActor) Bold() bool { return a.titleTextProperty.Bold }

// SetItalic sets italic on both the label and title styles.
func (a *ParallelCoordinatesActor) SetItalic(italic bool) {
	a.labelTextProperty.Italic = italic
	a.titleTextProperty.Italic = italic
	a.Modified()
}

// Italic returns the title style's italic flag.
func (a *ParallelCoordinatesActor) Italic() bool { return a.titleTextProperty.Italic }

// SetShadow sets the shadow flag on both the label and title styles.
func (a *ParallelCoordinatesActor) SetShadow(shadow bool) {
	a.labelTextProperty.Shadow = shadow
	a.titleTextProperty.Shadow = shadow
	a.Modified()
}

// Shadow returns the title style's shadow flag.
func (a *ParallelCoordinatesActor) Shadow() bool { return a.titleTextProperty.Shadow }

// N returns the number of independent variables laid out by the last
// successful rebuild, 0 before any.
func (a *ParallelCoordinatesActor) N() int { return a.n }

// Mins returns the observed minimum of each variable, one per axis.
func (a *ParallelCoordinatesActor) Mins() []float64 {
	mins := make([]float64, len(a.axes))
	for i := range a.axes {
		mins[i] = a.axes[i].min
	}
	return mins
}

// Maxs returns the observed maximum of each variable, one per axis.
func (a *ParallelCoordinatesActor) Maxs() []float64 {
	maxs := make([]float64, len(a.axes))
	for i := range a.axes {
		maxs[i] = a.axes[i].max
	}
	return maxs
}

// Xs returns the screen X position of each axis in viewport pixels.
func (a *ParallelCoordinatesActor) Xs() []int {
	xs := make([]int, len(a.axes))
	for i := range a.axes {
		xs[i] = a.axes[i].x
	}
	return xs
}

// YRange returns the shared vertical extent of all axes in viewport
// pixels: the resolved Y of the two corner coordinates.
func (a *ParallelCoordinatesActor) YRange() (yMin, yMax int) { return a.yMin, a.yMax }

// Axis returns the axis actor for variable i from the last rebuild.
func (a *ParallelCoordinatesActor) Axis(i int) *AxisActor2D { return a.axes[i].actor }

// PlotData returns the polyline mesh built by the last rebuild: one line
// cell per observation.
func (a *ParallelCoordinatesActor) PlotData() *PolyData { return a.plotData }

// initialize discards the per-axis state from the previous build. All
// N-sized state goes together.
func (a *ParallelCoordinatesActor) initialize() {
	a.axes = nil
	a.n = 0
}

// RenderOverlay draws the cached title, polylines, and axes. It does not
// rebuild; call RenderOpaqueGeometry first in each pass. With no input or
// nothing laid out it logs an error and reports zero items rendered.
func (a *ParallelCoordinatesActor) RenderOverlay(vp Viewport) int {
	if a.input == nil || a.n <= 0 {
		Logger().Error("nothing to plot", "actor", "ParallelCoordinatesActor")
		return 0
	}

	canvas := vp.Canvas()
	rendered := 0

	if a.title != "" {
		if canvas != nil {
			canvas.DrawText(a.title, a.titleX, a.titleY, a.titleStyle, a.Property())
		}
		rendered++
	}

	if canvas != nil {
		canvas.DrawPolyData(a.plotData, a.Property())
	}
	rendered++

	for i := range a.axes {
		rendered += a.axes[i].actor.RenderOverlay(vp)
	}
	return rendered
}

// RenderOpaqueGeometry rebuilds the layout if anything changed since the
// last build, then draws it. Returns the number of items rendered; zero
// with an error logged when there is nothing to plot.
func (a *ParallelCoordinatesActor) RenderOpaqueGeometry(vp Viewport) int {
	Logger().Debug("plotting parallel coordinates")

	if a.input == nil {
		Logger().Error("nothing to plot", "actor", "ParallelCoordinatesActor")
		return 0
	}

	// A viewport change only dirties the actor when the resolved pixel
	// corners actually moved; a size change that leaves the box corners
	// in place is a no-op.
	if vp.MTime().After(a.buildTime) {
		p1x, p1y := a.PositionCoordinate().ComputedViewportValue(vp)
		p2x, p2y := a.Position2Coordinate().ComputedViewportValue(vp)
		if p1x != a.lastPosition[0] || p1y != a.lastPosition[1] ||
			p2x != a.lastPosition2[0] || p2y != a.lastPosition2[1] {
			a.lastPosition = [2]int{p1x, p1y}
			a.lastPosition2 = [2]int{p2x, p2y}
			a.Modified()
		}
	}

	if a.MTime().After(a.buildTime) || a.input.MTime().After(a.buildTime) {
		Logger().Debug("rebuilding plot")
		if err := a.placeAxes(vp); err != nil {
			Logger().Error("nothing to plot", "err", err)
			return 0
		}
		a.placeTitle(vp)
		a.buildTime.Modified()
	}

	return a.RenderOverlay(vp)
}

// placeAxes runs the layout: computes per-variable ranges, allocates and
// positions the axes, and emits the polyline mesh. On failure the actor
// is left in the empty state (previous axes discarded).
func (a *ParallelCoordinatesActor) placeAxes(vp Viewport) error {
	a.initialize()

	input := a.input
	if input == nil {
		return ErrNoInput
	}
	if input.NumberOfArrays() == 0 {
		return ErrNoFieldData
	}

	// Shape of the field: columns are concatenated components, the row
	// count is the minimum tuple count so ragged arrays cannot be read
	// past their end.
	numColumns := input.NumberOfComponents()
	numRows := maxVariableCount
	for i := 0; i < input.NumberOfArrays(); i++ {
		if t := input.Array(i).NumberOfTuples(); t < numRows {
			numRows = t
		}
	}

	n := numColumns
	if a.independentVariables == IndependentVariablesRows {
		n = numRows
	}
	if n <= 0 || n >= maxVariableCount {
		return ErrInvalidVariableCount
	}

	a.axes = make([]parallelAxis, n)
	a.n = n
	for i := range a.axes {
		a.axes[i].min = math.Inf(1)
		a.axes[i].max = math.Inf(-1)
	}

	// Range scan. Plain comparisons: a NaN sample never replaces a bound,
	// infinities propagate into the range.
	if a.independentVariables == IndependentVariablesColumns {
		for j := 0; j < numColumns; j++ {
			for i := 0; i < numRows; i++ {
				v := input.Component(i, j)
				if v < a.axes[j].min {
					a.axes[j].min = v
				}
				if v > a.axes[j].max {
					a.axes[j].max = v
				}
			}
		}
	} else {
		for j := 0; j < numRows; j++ {
			for i := 0; i < numColumns; i++ {
				v := input.Component(j, i)
				if v < a.axes[j].min {
					a.axes[j].min = v
				}
				if v > a.axes[j].max {
					a.axes[j].max = v
				}
			}
		}
	}

	p1x, p1y := a.PositionCoordinate().ComputedViewportValue(vp)
	p2x, p2y := a.Position2Coordinate().ComputedViewportValue(vp)
	a.yMin, a.yMax = p1y, p2y

	for i := range a.axes {
		x := int(float64(p1x) + float64(i)/float64(n)*float64(p2x-p1x))
		a.axes[i].x = x

		axis := NewAxisActor2D()
		axis.Point1Coordinate().SetCoordinateSystemToViewport()
		axis.Point2Coordinate().SetCoordinateSystemToViewport()
		axis.Point1Coordinate().SetValue(float64(x), float64(a.yMin))
		axis.Point2Coordinate().SetValue(float64(x), float64(a.yMax))
		axis.SetRange(a.axes[i].min, a.axes[i].max)
		axis.SetAdjustLabels(false)
		axis.SetNumberOfLabels(a.numberOfLabels)
		axis.SetLabelFormat(a.labelFormat)
		axis.SetLabelTextProperty(a.labelTextProperty)
		axis.SetProperty(a.Property())
		a.axes[i].actor = axis
	}

	a.buildPolylines(numRows, numColumns)

	Logger().Debug("placed axes", "n", n, "rows", numRows, "columns", numColumns)
	return nil
}

// buildPolylines emits one polyline per observation into the plot mesh.
func (a *ParallelCoordinatesActor) buildPolylines(numRows, numColumns int) {
	a.plotData.Initialize()
	a.plotData.AllocatePoints(numRows * numColumns)

	if a.independentVariables == IndependentVariablesColumns {
		for j := 0; j < numRows; j++ {
			line := make([]int, 0, numColumns)
			for i := 0; i < numColumns; i++ {
				v := a.input.Component(j, i)
				id := a.plotData.InsertNextPoint(float64(a.axes[i].x), a.axisY(i, v))
				line = append(line, id)
			}
			a.plotData.InsertNextLine(line)
		}
	} else {
		for j := 0; j < numColumns; j++ {
			line := make([]int, 0, numRows)
			for i := 0; i < numRows; i++ {
				v := a.input.Component(i, j)
				id := a.plotData.InsertNextPoint(float64(a.axes[i].x), a.axisY(i, v))
				line = append(line, id)
			}
			a.plotData.InsertNextLine(line)
		}
	}
}

// axisY maps a sample value onto axis i's vertical span by linear min-max
// normalization. A degenerate axis (max == min) places every sample at
// the vertical midpoint to avoid dividing by zero.
func (a *ParallelCoordinatesActor) axisY(i int, v float64) float64 {
	min, max := a.axes[i].min, a.axes[i].max
	if max-min == 0 {
		return float64(a.yMin) + 0.5*float64(a.yMax-a.yMin)
	}
	return float64(a.yMin) + (v-min)/(max-min)*float64(a.yMax-a.yMin)
}

// placeTitle sizes and centers the title above the axes. Must run after a
// successful placeAxes.
func (a *ParallelCoordinatesActor) placeTitle(vp Viewport) {
	if a.title == "" {
		return
	}
	style := a.titleTextProperty
	style.Justification = text.JustificationCentered

	// Size the title to the viewport when the style does not pin a size.
	if a.titleTextProperty.FontSize <= 0 {
		vw, vh := vp.Size()
		style.FontSize = a.measurer.FitSize(a.title, style, float64(vw)/2, float64(vh)/10)
	}

	_, h := a.measurer.Measure(a.title, style)
	a.titleX = (a.axes[0].x + a.axes[a.n-1].x) / 2
	a.titleY = a.yMax + int(h/2)
	a.titleStyle = style
}

// ReleaseGraphicsResources releases resources held for the given window
// by the actor and its axes.
func (a *ParallelCoordinatesActor) ReleaseGraphicsResources(w Window) {
	for i := range a.axes {
		a.axes[i].actor.ReleaseGraphicsResources(w)
	}
}
