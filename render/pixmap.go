package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/plot2d"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c plot2d.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	nrgba := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	i := (y*p.width + x) * 4
	p.data[i+0] = nrgba.R
	p.data[i+1] = nrgba.G
	p.data[i+2] = nrgba.B
	p.data[i+3] = nrgba.A
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) plot2d.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return plot2d.Transparent
	}
	i := (y*p.width + x) * 4
	return plot2d.RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c plot2d.RGBA) {
	nrgba := color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = nrgba.R
		p.data[i+1] = nrgba.G
		p.data[i+2] = nrgba.B
		p.data[i+3] = nrgba.A
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Set implements the draw.Image interface, letting font drawers blend
// glyphs directly into the buffer.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	i := (y*p.width + x) * 4
	p.data[i+0] = rgba.R
	p.data[i+1] = rgba.G
	p.data[i+2] = rgba.B
	p.data[i+3] = rgba.A
}
