package plot2d

// LookupTable maps scalar values in a range onto colors. The table is
// built from an HSV ramp; the default runs blue through red, the familiar
// rainbow map. Values outside the range clamp to the nearest table end.
type LookupTable struct {
	numberOfColors     int
	rangeMin, rangeMax float64
	hueMin, hueMax     float64
	satMin, satMax     float64
	valMin, valMax     float64
	alpha              float64

	table []RGBA
	mtime TimeStamp
}

// NewLookupTable creates a 256-entry blue-to-red table over [0, 1].
func NewLookupTable() *LookupTable {
	l := &LookupTable{
		numberOfColors: 256,
		rangeMin:       0,
		rangeMax:       1,
		hueMin:         2.0 / 3.0,
		hueMax:         0,
		satMin:         1,
		satMax:         1,
		valMin:         1,
		valMax:         1,
		alpha:          1,
	}
	l.mtime.Modified()
	return l
}

// SetNumberOfColors sets the number of table entries, at least 2.
// Invalidates the built table.
func (l *LookupTable) SetNumberOfColors(n int) {
	if n < 2 {
		n = 2
	}
	if n == l.numberOfColors {
		return
	}
	l.numberOfColors = n
	l.invalidate()
}

// NumberOfColors returns the number of table entries.
func (l *LookupTable) NumberOfColors() int { return l.numberOfColors }

// SetRange sets the scalar range the table spans.
func (l *LookupTable) SetRange(min, max float64) {
	if min == l.rangeMin && max == l.rangeMax {
		return
	}
	l.rangeMin, l.rangeMax = min, max
	l.mtime.Modified()
}

// Range returns the scalar range the table spans.
func (l *LookupTable) Range() (min, max float64) { return l.rangeMin, l.rangeMax }

// SetHueRange sets the hue ramp endpoints, each in [0, 1].
func (l *LookupTable) SetHueRange(min, max float64) {
	l.hueMin, l.hueMax = min, max
	l.invalidate()
}

// SetSaturationRange sets the saturation ramp endpoints, each in [0, 1].
func (l *LookupTable) SetSaturationRange(min, max float64) {
	l.satMin, l.satMax = min, max
	l.invalidate()
}

// SetValueRange sets the brightness ramp endpoints, each in [0, 1].
func (l *LookupTable) SetValueRange(min, max float64) {
	l.valMin, l.valMax = min, max
	l.invalidate()
}

// SetAlpha sets the constant alpha of all table entries.
func (l *LookupTable) SetAlpha(a float64) {
	l.alpha = a
	l.invalidate()
}

// Build fills the color table from the HSV ramps. Color and TableValue
// call it lazily; an explicit call after configuration is optional.
func (l *LookupTable) Build() {
	l.table = make([]RGBA, l.numberOfColors)
	n := float64(l.numberOfColors - 1)
	for i := range l.table {
		t := float64(i) / n
		c := HSV(
			l.hueMin+t*(l.hueMax-l.hueMin),
			l.satMin+t*(l.satMax-l.satMin),
			l.valMin+t*(l.valMax-l.valMin),
		)
		c.A = l.alpha
		l.table[i] = c
	}
	l.mtime.Modified()
}

// TableValue returns entry i of the built table.
func (l *LookupTable) TableValue(i int) RGBA {
	if l.table == nil {
		l.Build()
	}
	return l.table[i]
}

// Color maps a scalar to its table color, clamping to the range ends.
// A degenerate range maps everything to the first entry.
func (l *LookupTable) Color(v float64) RGBA {
	if l.table == nil {
		l.Build()
	}
	span := l.rangeMax - l.rangeMin
	if span == 0 {
		return l.table[0]
	}
	t := (v - l.rangeMin) / span
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	i := int(t * float64(l.numberOfColors-1))
	return l.table[i]
}

// MTime returns the table's modification time.
func (l *LookupTable) MTime() TimeStamp { return l.mtime }

// invalidate drops the built table and marks the lookup table modified.
func (l *LookupTable) invalidate() {
	l.table = nil
	l.mtime.Modified()
}
