package render

import (
	"image"
	"math"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/plot2d"
	"github.com/gogpu/plot2d/text"
)

// Option configures a Canvas during creation.
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	pixmap   *Pixmap
	measurer *text.Measurer
}

// WithPixmap renders into an existing pixmap instead of allocating one.
// The pixmap dimensions should match the Canvas dimensions.
func WithPixmap(pm *Pixmap) Option {
	return func(o *options) {
		o.pixmap = pm
	}
}

// WithMeasurer uses an existing text measurer, sharing its font cache
// with the actors that size their labels through it.
func WithMeasurer(m *text.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// fontKey identifies one parsed font.
type fontKey struct {
	family       text.FontFamily
	bold, italic bool
}

// faceCacheKey identifies one sized face.
type faceCacheKey struct {
	fontKey
	size float64
}

// Canvas is a software implementation of plot2d.Canvas. It rasterizes
// line cells, filled polygon cells, and styled text into a Pixmap.
//
// Canvas assumes the single rendering thread the actors assume; it is not
// safe for concurrent use.
type Canvas struct {
	pixmap   *Pixmap
	measurer *text.Measurer

	fonts map[fontKey]*sfnt.Font
	faces map[faceCacheKey]font.Face
}

// NewCanvas creates a canvas with a fresh pixmap of the given size.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pixmap == nil {
		o.pixmap = NewPixmap(width, height)
	}
	if o.measurer == nil {
		o.measurer = text.NewMeasurer()
	}
	return &Canvas{
		pixmap:   o.pixmap,
		measurer: o.measurer,
		fonts:    make(map[fontKey]*sfnt.Font),
		faces:    make(map[faceCacheKey]font.Face),
	}
}

// Pixmap returns the pixel buffer the canvas draws into.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// DrawPolyData implements plot2d.Canvas. Line cells are stroked with the
// property's color and line width; polygon cells are filled with their
// per-cell colors.
func (c *Canvas) DrawPolyData(pd *plot2d.PolyData, prop *plot2d.Property2D) int {
	drawn := 0
	col := prop.EffectiveColor()
	width := int(prop.LineWidth + 0.5)
	if width < 1 {
		width = 1
	}

	for i := 0; i < pd.NumberOfLines(); i++ {
		ids := pd.Line(i)
		for k := 0; k+1 < len(ids); k++ {
			p0 := pd.Point(ids[k])
			p1 := pd.Point(ids[k+1])
			c.strokeLine(p0, p1, width, col)
		}
		drawn++
	}

	for i := 0; i < pd.NumberOfPolys(); i++ {
		ids := pd.Poly(i)
		pts := make([]plot2d.Point, len(ids))
		for k, id := range ids {
			p := pd.Point(id)
			pts[k] = plot2d.Pt(p.X, c.flipY(p.Y))
		}
		c.fillPoly(pts, pd.PolyColor(i).WithOpacity(prop.Opacity))
		drawn++
	}

	return drawn
}

// DrawText implements plot2d.Canvas. The anchor is justified horizontally
// per the style and the text is vertically centered on y.
func (c *Canvas) DrawText(s string, x, y int, style text.Property, prop *plot2d.Property2D) int {
	if s == "" {
		return 0
	}
	face, err := c.faceFor(style)
	if err != nil {
		plot2d.Logger().Error("text face unavailable", "err", err)
		return 0
	}

	w, _ := c.measurer.Measure(s, style)
	left := float64(x)
	switch style.Justification {
	case text.JustificationCentered:
		left -= w / 2
	case text.JustificationRight:
		left -= w
	}

	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	descent := float64(metrics.Descent) / 64
	baseline := c.flipY(float64(y)) + (ascent-descent)/2

	if style.Shadow {
		shadow := plot2d.RGBA{A: prop.Opacity}
		c.drawString(s, face, left+1, baseline+1, shadow)
	}
	c.drawString(s, face, left, baseline, prop.EffectiveColor())
	return 1
}

// ReleaseResources implements plot2d.Canvas: drops the cached parsed
// fonts and sized faces. The canvas remains usable; caches refill on
// demand.
func (c *Canvas) ReleaseResources() {
	c.fonts = make(map[fontKey]*sfnt.Font)
	c.faces = make(map[faceCacheKey]font.Face)
}

// flipY converts a viewport Y (origin bottom-left) to a pixmap Y (origin
// top-left).
func (c *Canvas) flipY(y float64) float64 {
	return float64(c.pixmap.height-1) - y
}

// drawString blends a string into the pixmap at a baseline position.
func (c *Canvas) drawString(s string, face font.Face, x, baseline float64, col plot2d.RGBA) {
	d := font.Drawer{
		Dst:  c.pixmap,
		Src:  image.NewUniform(col.Color()),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(baseline * 64),
		},
	}
	d.DrawString(s)
}

// faceFor returns a cached sized face for a text style.
func (c *Canvas) faceFor(style text.Property) (font.Face, error) {
	fk := fontKey{family: style.FontFamily, bold: style.Bold, italic: style.Italic}
	ck := faceCacheKey{fontKey: fk, size: style.EffectiveSize()}
	if face, ok := c.faces[ck]; ok {
		return face, nil
	}

	f, ok := c.fonts[fk]
	if !ok {
		parsed, err := opentype.Parse(text.FontData(style.FontFamily, style.Bold, style.Italic))
		if err != nil {
			return nil, err
		}
		c.fonts[fk] = parsed
		f = parsed
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    ck.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	c.faces[ck] = face
	return face, nil
}

// strokeLine draws a line between two viewport points with the given
// width in pixels.
func (c *Canvas) strokeLine(p0, p1 plot2d.Point, width int, col plot2d.RGBA) {
	x0, y0 := int(p0.X), int(c.flipY(p0.Y))
	x1, y1 := int(p1.X), int(c.flipY(p1.Y))

	// Thickness by offsetting along the minor axis.
	horizontalish := abs(x1-x0) >= abs(y1-y0)
	for off := -(width - 1) / 2; off <= width/2; off++ {
		if horizontalish {
			c.bresenham(x0, y0+off, x1, y1+off, col)
		} else {
			c.bresenham(x0+off, y0, x1+off, y1, col)
		}
	}
}

// bresenham draws a 1-pixel line in pixmap coordinates.
func (c *Canvas) bresenham(x0, y0, x1, y1 int, col plot2d.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.pixmap.SetPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillPoly fills a polygon given in pixmap coordinates with even-odd
// scanline filling.
func (c *Canvas) fillPoly(pts []plot2d.Point, col plot2d.RGBA) {
	if len(pts) < 3 {
		return
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	var xs []float64
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		sample := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if (a.Y <= sample) == (b.Y <= sample) {
				continue
			}
			t := (sample - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); x < int(math.Ceil(xs[i+1]-0.5)); x++ {
				c.pixmap.SetPixel(x, y, col)
			}
		}
	}
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
