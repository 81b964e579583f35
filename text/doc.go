// Package text provides text styling and measurement for plot2d actors.
//
// Property is a pure value type describing how a run of text is styled
// (font family, size, weight, slant, shadow, justification). Actors store
// properties by value, so a copy taken when a label is placed is a
// snapshot: mutating a shared default afterwards never bleeds into
// already-placed text.
//
// Measurer turns a string plus a Property into pixel dimensions. It shapes
// text with go-text/typesetting's HarfBuzz implementation over the
// embedded Go fonts from golang.org/x/image/font/gofont, so measurement
// needs no font files on disk and matches what the render package draws.
package text
