package plot2d

import (
	"fmt"
	"math"
	"testing"

	"github.com/gogpu/plot2d/text"
)

// verticalAxis builds an axis pinned to viewport pixels (x, y1)-(x, y2).
func verticalAxis(x, y1, y2 float64) *AxisActor2D {
	a := NewAxisActor2D()
	a.Point1Coordinate().SetCoordinateSystemToViewport()
	a.Point1Coordinate().SetValue(x, y1)
	a.Point2Coordinate().SetCoordinateSystemToViewport()
	a.Point2Coordinate().SetValue(x, y2)
	return a
}

func TestAxisDefaults(t *testing.T) {
	a := NewAxisActor2D()
	if got := a.NumberOfLabels(); got != 5 {
		t.Errorf("default label count = %d, want 5", got)
	}
	if got := a.LabelFormat(); got != "%-#6.3g" {
		t.Errorf("default label format = %q", got)
	}
	if !a.AdjustLabels() {
		t.Error("label adjustment should default on")
	}
	if min, max := a.Range(); min != 0 || max != 1 {
		t.Errorf("default range = (%v, %v), want (0, 1)", min, max)
	}
}

func TestAxisLabelFormatting(t *testing.T) {
	// The default format pads with the alternate %g form.
	got := fmt.Sprintf("%-#6.3g", 1.0)
	if got != "1.00  " {
		t.Errorf("format sample = %q, want %q", got, "1.00  ")
	}
}

func TestAxisBuildVertical(t *testing.T) {
	a := verticalAxis(50, 0, 100)
	a.SetRange(0, 10)
	a.SetAdjustLabels(false)
	a.SetNumberOfLabels(3)

	vp := NewBasicViewport(200, 200)
	a.BuildAxis(vp)

	pd := a.AxisData()
	// Axis line plus one tick per label.
	if got := pd.NumberOfLines(); got != 1+3 {
		t.Fatalf("NumberOfLines() = %d, want 4", got)
	}
	if p := pd.Point(0); p != Pt(50, 0) {
		t.Errorf("axis start = %+v, want (50, 0)", p)
	}
	if p := pd.Point(1); p != Pt(50, 100) {
		t.Errorf("axis end = %+v, want (50, 100)", p)
	}

	labels := a.Labels()
	if len(labels) != 3 {
		t.Fatalf("built %d labels, want 3", len(labels))
	}
	// Evenly spaced values with adjustment off.
	wantVals := []float64{0, 5, 10}
	for i, l := range labels {
		if want := fmt.Sprintf("%-#6.3g", wantVals[i]); l.Text != want {
			t.Errorf("label %d text = %q, want %q", i, l.Text, want)
		}
		// Ticks and labels sit left of a bottom-up vertical axis.
		if l.X >= 50 {
			t.Errorf("label %d X = %d, want < 50", i, l.X)
		}
		if l.Style.Justification != text.JustificationRight {
			t.Errorf("label %d justification = %v, want Right", i, l.Style.Justification)
		}
	}
	if labels[0].Y != 0 || labels[2].Y != 100 {
		t.Errorf("label Ys = %d, %d, want 0 and 100", labels[0].Y, labels[2].Y)
	}
}

func TestAxisBuildHorizontal(t *testing.T) {
	a := NewAxisActor2D() // normalized (0,0)-(1,0) by default
	a.SetAdjustLabels(false)
	a.SetNumberOfLabels(2)

	vp := NewBasicViewport(100, 100)
	a.BuildAxis(vp)

	for i, l := range a.Labels() {
		// Labels hang below a left-to-right horizontal axis, centered.
		if l.Y >= 0 {
			t.Errorf("label %d Y = %d, want below the axis", i, l.Y)
		}
		if l.Style.Justification != text.JustificationCentered {
			t.Errorf("label %d justification = %v, want Centered", i, l.Style.Justification)
		}
	}
}

func TestAxisTickValues(t *testing.T) {
	a := NewAxisActor2D()
	a.SetRange(0, 10)

	t.Run("zero labels", func(t *testing.T) {
		a.SetNumberOfLabels(0)
		if got := a.tickValues(); got != nil {
			t.Errorf("tickValues() = %v, want nil", got)
		}
	})

	t.Run("negative clamps to zero", func(t *testing.T) {
		a.SetNumberOfLabels(-3)
		if got := a.NumberOfLabels(); got != 0 {
			t.Errorf("NumberOfLabels() = %d, want 0", got)
		}
	})

	t.Run("single label at midpoint", func(t *testing.T) {
		a.SetNumberOfLabels(1)
		got := a.tickValues()
		if len(got) != 1 || got[0] != 5 {
			t.Errorf("tickValues() = %v, want [5]", got)
		}
	})

	t.Run("even spacing without adjustment", func(t *testing.T) {
		a.SetAdjustLabels(false)
		a.SetNumberOfLabels(5)
		got := a.tickValues()
		want := []float64{0, 2.5, 5, 7.5, 10}
		if len(got) != len(want) {
			t.Fatalf("tickValues() = %v, want %v", got, want)
		}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("tickValues()[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})
}

func TestNiceTicks(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		count    int
		want     []float64
	}{
		{"unit range snaps to halves", 0, 1, 5, []float64{0, 0.5, 1}},
		{"snaps to twos", 0, 7, 5, []float64{0, 2, 4, 6}},
		{"snaps to fives", 0, 10, 5, []float64{0, 5, 10}},
		{"degenerate range", 3, 3, 5, []float64{3}},
		{"reversed range", 10, 0, 5, []float64{0, 5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := niceTicks(tt.min, tt.max, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("niceTicks = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("niceTicks[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAxisRenderRebuildsLazily(t *testing.T) {
	a := verticalAxis(10, 0, 100)
	vp := NewBasicViewport(100, 100)

	rendered := a.RenderOverlay(vp)
	if rendered == 0 {
		t.Fatal("RenderOverlay rendered nothing")
	}
	built := a.buildTime

	a.RenderOverlay(vp)
	if a.buildTime != built {
		t.Error("second render rebuilt an unchanged axis")
	}

	a.SetRange(0, 50)
	a.RenderOverlay(vp)
	if !a.buildTime.After(built) {
		t.Error("render after SetRange did not rebuild")
	}
}

func TestAxisRenderCounts(t *testing.T) {
	a := verticalAxis(10, 0, 100)
	a.SetAdjustLabels(false)
	a.SetNumberOfLabels(2)
	vp := NewBasicViewport(100, 100)

	// Line mesh plus two labels.
	if got := a.RenderOverlay(vp); got != 3 {
		t.Errorf("RenderOverlay = %d, want 3", got)
	}

	a.SetTitle("pressure")
	if got := a.RenderOverlay(vp); got != 4 {
		t.Errorf("RenderOverlay with title = %d, want 4", got)
	}

	a.SetVisibility(false)
	if got := a.RenderOverlay(vp); got != 0 {
		t.Errorf("RenderOverlay when invisible = %d, want 0", got)
	}
}
