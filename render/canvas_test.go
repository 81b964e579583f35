package render

import (
	"testing"

	"github.com/gogpu/plot2d"
	"github.com/gogpu/plot2d/text"
)

func TestCanvasDrawPolyDataLines(t *testing.T) {
	c := NewCanvas(100, 100)
	prop := plot2d.NewProperty2D()

	pd := plot2d.NewPolyData()
	a := pd.InsertNextPoint(10, 10)
	b := pd.InsertNextPoint(50, 10)
	pd.InsertNextLine([]int{a, b})

	if got := c.DrawPolyData(pd, prop); got != 1 {
		t.Fatalf("DrawPolyData returned %d, want 1", got)
	}

	// Viewport y=10 lands on pixmap row 89 (origin flips to top-left).
	if got := c.Pixmap().GetPixel(30, 89); got != plot2d.White {
		t.Errorf("pixel (30,89) = %+v, want white", got)
	}
	if got := c.Pixmap().GetPixel(30, 10); got != plot2d.Transparent {
		t.Errorf("pixel (30,10) = %+v, want untouched", got)
	}
}

func TestCanvasDrawPolyDataLineWidth(t *testing.T) {
	c := NewCanvas(100, 100)
	prop := plot2d.NewProperty2D()
	prop.LineWidth = 3

	pd := plot2d.NewPolyData()
	a := pd.InsertNextPoint(20, 50)
	b := pd.InsertNextPoint(80, 50)
	pd.InsertNextLine([]int{a, b})
	c.DrawPolyData(pd, prop)

	// A 3-wide horizontal line covers one row above and below.
	row := 99 - 50
	for _, y := range []int{row - 1, row, row + 1} {
		if got := c.Pixmap().GetPixel(50, y); got != plot2d.White {
			t.Errorf("pixel (50,%d) = %+v, want white", y, got)
		}
	}
}

func TestCanvasDrawPolyDataPolys(t *testing.T) {
	c := NewCanvas(100, 100)
	prop := plot2d.NewProperty2D()

	pd := plot2d.NewPolyData()
	ids := []int{
		pd.InsertNextPoint(20, 20),
		pd.InsertNextPoint(40, 20),
		pd.InsertNextPoint(40, 40),
		pd.InsertNextPoint(20, 40),
	}
	pd.InsertNextPoly(ids, plot2d.RGB(0, 1, 0))

	if got := c.DrawPolyData(pd, prop); got != 1 {
		t.Fatalf("DrawPolyData returned %d, want 1", got)
	}

	inside := c.Pixmap().GetPixel(30, 99-30)
	if inside.G != 1 || inside.A != 1 {
		t.Errorf("interior pixel = %+v, want green", inside)
	}
	outside := c.Pixmap().GetPixel(50, 99-30)
	if outside != plot2d.Transparent {
		t.Errorf("exterior pixel = %+v, want untouched", outside)
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(200, 60)
	prop := plot2d.NewProperty2D()
	style := text.DefaultProperty()

	if got := c.DrawText("", 100, 30, style, prop); got != 0 {
		t.Errorf("DrawText(empty) returned %d, want 0", got)
	}
	if got := c.DrawText("value", 100, 30, style, prop); got != 1 {
		t.Errorf("DrawText returned %d, want 1", got)
	}

	lit := 0
	for _, b := range c.Pixmap().Data() {
		if b != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("DrawText left the pixmap empty")
	}
}

func TestCanvasDrawTextJustification(t *testing.T) {
	// Right-justified text ends at the anchor; nothing should land to its
	// right. Left-justified text starts there; nothing to its left.
	for _, tt := range []struct {
		name  string
		just  text.Justification
		check func(pm *Pixmap) bool
	}{
		{"right stays left of anchor", text.JustificationRight, func(pm *Pixmap) bool {
			for y := 0; y < pm.Height(); y++ {
				for x := 105; x < pm.Width(); x++ {
					if pm.GetPixel(x, y).A != 0 {
						return false
					}
				}
			}
			return true
		}},
		{"left stays right of anchor", text.JustificationLeft, func(pm *Pixmap) bool {
			for y := 0; y < pm.Height(); y++ {
				for x := 0; x < 95; x++ {
					if pm.GetPixel(x, y).A != 0 {
						return false
					}
				}
			}
			return true
		}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(200, 60)
			style := text.DefaultProperty()
			style.Justification = tt.just
			c.DrawText("abc", 100, 30, style, plot2d.NewProperty2D())
			if !tt.check(c.Pixmap()) {
				t.Error("glyphs landed on the wrong side of the anchor")
			}
		})
	}
}

func TestCanvasReleaseResources(t *testing.T) {
	c := NewCanvas(100, 40)
	prop := plot2d.NewProperty2D()
	style := text.DefaultProperty()

	c.DrawText("x", 50, 20, style, prop)
	c.ReleaseResources()

	// Caches refill on demand; drawing still works.
	if got := c.DrawText("y", 50, 20, style, prop); got != 1 {
		t.Errorf("DrawText after ReleaseResources returned %d, want 1", got)
	}
}

func TestCanvasWithPixmap(t *testing.T) {
	pm := NewPixmap(30, 30)
	c := NewCanvas(30, 30, WithPixmap(pm))
	if c.Pixmap() != pm {
		t.Error("WithPixmap did not install the provided pixmap")
	}
}
