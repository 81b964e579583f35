package plot2d

import "testing"

func TestCoordinateSystemString(t *testing.T) {
	tests := []struct {
		sys  CoordinateSystem
		want string
	}{
		{CoordNormalizedViewport, "NormalizedViewport"},
		{CoordViewport, "Viewport"},
		{CoordinateSystem(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.sys.String(); got != tt.want {
			t.Errorf("CoordinateSystem(%d).String() = %q, want %q", int(tt.sys), got, tt.want)
		}
	}
}

func TestCoordinateComputedViewportValue(t *testing.T) {
	vp := NewBasicViewport(200, 100)

	t.Run("normalized", func(t *testing.T) {
		c := NewCoordinate()
		c.SetValue(0.5, 0.25)
		x, y := c.ComputedViewportValue(vp)
		if x != 100 || y != 25 {
			t.Errorf("ComputedViewportValue = (%d, %d), want (100, 25)", x, y)
		}
	})

	t.Run("viewport pixels", func(t *testing.T) {
		c := NewCoordinate()
		c.SetCoordinateSystemToViewport()
		c.SetValue(42.9, 7.1)
		x, y := c.ComputedViewportValue(vp)
		if x != 42 || y != 7 {
			t.Errorf("ComputedViewportValue = (%d, %d), want truncated (42, 7)", x, y)
		}
	})
}

func TestCoordinateSettersAdvanceMTime(t *testing.T) {
	c := NewCoordinate()
	before := c.MTime()

	c.SetValue(0, 0) // unchanged
	c.SetCoordinateSystem(CoordNormalizedViewport)
	if c.MTime().After(before) {
		t.Error("no-op setters advanced MTime")
	}

	c.SetValue(0.3, 0.3)
	mid := c.MTime()
	if !mid.After(before) {
		t.Error("SetValue did not advance MTime")
	}

	c.SetCoordinateSystemToViewport()
	if !c.MTime().After(mid) {
		t.Error("SetCoordinateSystem did not advance MTime")
	}
}

func TestBasicViewport(t *testing.T) {
	vp := NewBasicViewport(640, 480)
	if w, h := vp.Size(); w != 640 || h != 480 {
		t.Errorf("Size() = (%d, %d)", w, h)
	}
	if vp.Canvas() != nil {
		t.Error("new viewport should have no canvas")
	}

	before := vp.MTime()
	vp.SetSize(640, 480) // unchanged
	if vp.MTime().After(before) {
		t.Error("no-op SetSize advanced MTime")
	}
	vp.SetSize(800, 600)
	if !vp.MTime().After(before) {
		t.Error("SetSize did not advance MTime")
	}
}
