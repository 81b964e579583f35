package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// faceKey identifies one concrete font: family plus weight and slant.
type faceKey struct {
	family FontFamily
	bold   bool
	italic bool
}

// FontData returns the embedded TTF bytes for a family, weight, and
// slant. The render package parses the same data it measures against, so
// measured and rasterized text agree.
func FontData(family FontFamily, bold, italic bool) []byte {
	return fontData(faceKey{family: family, bold: bold, italic: italic})
}

// fontData returns the embedded TTF bytes for a face key.
func fontData(k faceKey) []byte {
	if k.family == FontFamilyCourier {
		switch {
		case k.bold && k.italic:
			return gomonobolditalic.TTF
		case k.bold:
			return gomonobold.TTF
		case k.italic:
			return gomonoitalic.TTF
		default:
			return gomono.TTF
		}
	}
	// Arial and Times both map to the proportional Go face.
	switch {
	case k.bold && k.italic:
		return gobolditalic.TTF
	case k.bold:
		return gobold.TTF
	case k.italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}

// Measurer computes pixel dimensions of styled text. It shapes with
// go-text/typesetting's HarfBuzz implementation, caching one parsed
// font.Font per face key (font.Font is read-only and safe for concurrent
// use; the per-call font.Face wrappers are not, so each call creates its
// own). HarfbuzzShaper instances carry internal buffers and are pooled.
//
// Measurer is safe for concurrent use.
type Measurer struct {
	shaperPool sync.Pool

	mu    sync.RWMutex
	fonts map[faceKey]*font.Font
}

// NewMeasurer creates a measurer with an empty font cache.
func NewMeasurer() *Measurer {
	return &Measurer{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[faceKey]*font.Font),
	}
}

// Measure returns the pixel width and height of s styled by p. The height
// is the face's line height (ascent plus descent) at p's size, so labels
// of differing content get consistent boxes. An empty string measures as
// (0, 0). A shadow adds one pixel on each axis.
func (m *Measurer) Measure(s string, p Property) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	out, ok := m.shape(s, p)
	if !ok {
		return 0, 0
	}
	w = fixedToFloat(out.Advance)
	h = fixedToFloat(out.LineBounds.Ascent) - fixedToFloat(out.LineBounds.Descent)
	if p.Shadow {
		w++
		h++
	}
	return w, h
}

// FitSize returns the largest integer font size at which s fits within
// maxW by maxH pixels, at least 1. Returns 0 if s is empty or the box is
// degenerate.
func (m *Measurer) FitSize(s string, p Property, maxW, maxH float64) float64 {
	if s == "" || maxW <= 0 || maxH <= 0 {
		return 0
	}
	lo, hi := 1, 512
	for lo < hi {
		mid := (lo + hi + 1) / 2
		p.FontSize = float64(mid)
		w, h := m.Measure(s, p)
		if w <= maxW && h <= maxH {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return float64(lo)
}

// shape runs HarfBuzz shaping for s at p's effective size.
func (m *Measurer) shape(s string, p Property) (shaping.Output, bool) {
	f, err := m.fontFor(faceKey{family: p.FontFamily, bold: p.Bold, italic: p.Italic})
	if err != nil {
		return shaping.Output{}, false
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(s),
		Face:      font.NewFace(f),
		Size:      floatToFixed(p.EffectiveSize()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	m.shaperPool.Put(shaper)
	return out, true
}

// fontFor returns the cached parsed font for a face key, parsing the
// embedded TTF data on first use.
func (m *Measurer) fontFor(k faceKey) (*font.Font, error) {
	m.mu.RLock()
	f, ok := m.fonts[k]
	m.mu.RUnlock()
	if ok {
		return f, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fonts[k]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(fontData(k)))
	if err != nil {
		return nil, err
	}
	m.fonts[k] = face.Font
	return face.Font, nil
}

// baseDirection picks the base text direction of s with the Unicode bidi
// algorithm: the direction of the first resolved run wins.
func baseDirection(s string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Plot labels are single-script in practice.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
