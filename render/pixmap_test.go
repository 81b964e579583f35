package render

import (
	"image/color"
	"testing"

	"github.com/gogpu/plot2d"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixel(3, 4, plot2d.RGB(1, 0, 0))
	got := pm.GetPixel(3, 4)
	if got.R != 1 || got.G != 0 || got.B != 0 || got.A != 1 {
		t.Errorf("GetPixel(3,4) = %+v, want red", got)
	}

	// Out of bounds reads are transparent, writes are ignored.
	if got := pm.GetPixel(-1, 0); got != plot2d.Transparent {
		t.Errorf("GetPixel(-1,0) = %+v, want transparent", got)
	}
	pm.SetPixel(100, 100, plot2d.White)
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(plot2d.RGB(0, 0, 1))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.GetPixel(x, y); got.B != 1 || got.A != 1 {
				t.Fatalf("pixel (%d,%d) = %+v after Clear, want blue", x, y, got)
			}
		}
	}
}

func TestPixmapToImage(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.SetPixel(2, 2, plot2d.White)

	img := pm.ToImage()
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 5 {
		t.Fatalf("image bounds = %v, want 5x5", b)
	}
	r, g, b, a := img.At(2, 2).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("At(2,2) = %d,%d,%d,%d, want opaque white", r, g, b, a)
	}
}

func TestPixmapDrawImage(t *testing.T) {
	pm := NewPixmap(8, 8)

	// Set via the draw.Image interface, read back via image.Image.
	pm.Set(1, 1, color.RGBA{R: 255, A: 255})
	got := pm.At(1, 1).(color.RGBA)
	if got.R != 255 || got.A != 255 {
		t.Errorf("At(1,1) = %+v, want opaque red", got)
	}
	if got := pm.At(-1, 0).(color.RGBA); got.A != 0 {
		t.Errorf("At(-1,0) = %+v, want zero", got)
	}
}
