package plot2d

import (
	"image/color"
	"math"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.5, 0.25, 1)
	if c.R != 0.5 || c.G != 0.25 || c.B != 1 || c.A != 1 {
		t.Errorf("RGB(0.5, 0.25, 1) = %+v", c)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    RGBA
	}{
		{"red", 0, 1, 1, RGB(1, 0, 0)},
		{"green", 1.0 / 3.0, 1, 1, RGB(0, 1, 0)},
		{"blue", 2.0 / 3.0, 1, 1, RGB(0, 0, 1)},
		{"hue wraps", 1, 1, 1, RGB(1, 0, 0)},
		{"gray when desaturated", 0.5, 0, 0.5, RGB(0.5, 0.5, 0.5)},
		{"black at zero value", 0.2, 1, 0, RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSV(tt.h, tt.s, tt.v)
			const eps = 1e-9
			if math.Abs(got.R-tt.want.R) > eps ||
				math.Abs(got.G-tt.want.G) > eps ||
				math.Abs(got.B-tt.want.B) > eps {
				t.Errorf("HSV(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestColorConversion(t *testing.T) {
	got := RGB(1, 0.5, 0).Color().(color.NRGBA)
	if got.R != 255 || got.G != 127 || got.B != 0 || got.A != 255 {
		t.Errorf("Color() = %+v", got)
	}

	// Components outside [0, 1] clamp instead of overflowing.
	over := RGBA{R: 2, G: -1, B: 0, A: 1}.Color().(color.NRGBA)
	if over.R != 255 || over.G != 0 {
		t.Errorf("out-of-range Color() = %+v, want clamped", over)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := RGB(0.2, 0.4, 0.8)
	back := FromColor(orig.Color())
	const eps = 0.01 // 8-bit quantization
	if math.Abs(back.R-orig.R) > eps || math.Abs(back.G-orig.G) > eps ||
		math.Abs(back.B-orig.B) > eps || math.Abs(back.A-orig.A) > eps {
		t.Errorf("round trip %+v -> %+v", orig, back)
	}
}

func TestWithOpacity(t *testing.T) {
	c := White.WithOpacity(0.5)
	if c.A != 0.5 {
		t.Errorf("WithOpacity(0.5).A = %v, want 0.5", c.A)
	}
	if White.A != 1 {
		t.Error("WithOpacity mutated the receiver")
	}
}
