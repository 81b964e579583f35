package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// FontFamily selects one of the built-in font families.
type FontFamily int

const (
	// FontFamilyArial is the default proportional sans-serif family.
	FontFamilyArial FontFamily = iota
	// FontFamilyCourier is a fixed-pitch family.
	FontFamilyCourier
	// FontFamilyTimes is a serif family. The embedded Go fonts carry no
	// serif face, so it renders with the proportional family.
	FontFamilyTimes
)

// String returns the string representation of the font family.
func (f FontFamily) String() string {
	switch f {
	case FontFamilyArial:
		return "Arial"
	case FontFamilyCourier:
		return "Courier"
	case FontFamilyTimes:
		return "Times"
	default:
		return unknownStr
	}
}

// Justification selects horizontal text placement relative to the anchor.
type Justification int

const (
	// JustificationLeft places the anchor at the left edge of the text.
	JustificationLeft Justification = iota
	// JustificationCentered centers the text on the anchor.
	JustificationCentered
	// JustificationRight places the anchor at the right edge of the text.
	JustificationRight
)

// String returns the string representation of the justification.
func (j Justification) String() string {
	switch j {
	case JustificationLeft:
		return "Left"
	case JustificationCentered:
		return "Centered"
	case JustificationRight:
		return "Right"
	default:
		return unknownStr
	}
}

// DefaultFontSize is used when a Property's FontSize is zero or negative.
const DefaultFontSize = 12

// Property describes the styling of a run of text. It is a plain value:
// assigning it copies it, and the copy is immune to later changes of the
// original. Multiple actors may start from one shared default and
// customize their own copies independently.
type Property struct {
	// FontFamily selects the typeface.
	FontFamily FontFamily

	// FontSize is the size in pixels. Zero or negative means
	// DefaultFontSize.
	FontSize float64

	// Bold selects the bold weight.
	Bold bool

	// Italic selects the italic slant.
	Italic bool

	// Shadow draws a dark offset copy behind the text.
	Shadow bool

	// Justification controls horizontal placement around the anchor.
	Justification Justification
}

// DefaultProperty returns a plain left-justified property in the default
// family and size.
func DefaultProperty() Property {
	return Property{
		FontFamily: FontFamilyArial,
		FontSize:   DefaultFontSize,
	}
}

// EffectiveSize returns the font size with the zero default applied.
func (p Property) EffectiveSize() float64 {
	if p.FontSize <= 0 {
		return DefaultFontSize
	}
	return p.FontSize
}
