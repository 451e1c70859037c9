package glyphatlas

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/runenames"
)

// DiagKind classifies a per-glyph problem.
type DiagKind int

const (
	// DiagMissingGlyph: the font has no glyph for the code point.
	DiagMissingGlyph DiagKind = iota

	// DiagGlyphLoad: the font engine failed on an existing glyph.
	DiagGlyphLoad

	// DiagCrop: glyph ink did not fit its cell.
	DiagCrop
)

// String returns the kind name.
func (k DiagKind) String() string {
	switch k {
	case DiagMissingGlyph:
		return "missing glyph"
	case DiagGlyphLoad:
		return "glyph load failure"
	case DiagCrop:
		return "crop"
	default:
		return fmt.Sprintf("DiagKind(%d)", int(k))
	}
}

// CropEdge is the side of the cell a glyph was cut at.
type CropEdge int

const (
	CropTop CropEdge = iota
	CropBottom
	CropRight
)

// String returns the edge name.
func (e CropEdge) String() string {
	switch e {
	case CropTop:
		return "top"
	case CropBottom:
		return "bottom"
	case CropRight:
		return "right"
	default:
		return fmt.Sprintf("CropEdge(%d)", int(e))
	}
}

// Diagnostic is a non-fatal per-glyph problem. Diagnostics are kept in the
// order they were found: measurement problems first, then composition.
type Diagnostic struct {
	Kind      DiagKind
	Slot      int
	CodePoint rune

	// Edge and Amount (in atlas pixels) are set for DiagCrop.
	Edge   CropEdge
	Amount int

	// Err is set for DiagGlyphLoad.
	Err error
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagCrop:
		return fmt.Sprintf("U+%04X truncated at %s by %d pixels", d.CodePoint, d.Edge, d.Amount)
	case DiagGlyphLoad:
		return fmt.Sprintf("U+%04X could not be loaded: %v", d.CodePoint, d.Err)
	default:
		return fmt.Sprintf("U+%04X has no glyph", d.CodePoint)
	}
}

// log writes d at warning level.
func (d Diagnostic) log(l *slog.Logger) {
	attrs := []any{
		"codepoint", fmt.Sprintf("U+%04X", d.CodePoint),
		"slot", d.Slot,
	}
	switch d.Kind {
	case DiagMissingGlyph:
		if name := runenames.Name(d.CodePoint); name != "" {
			attrs = append(attrs, "name", name)
		}
		l.Warn("no glyph for code point", attrs...)
	case DiagGlyphLoad:
		l.Warn("could not load glyph", append(attrs, "err", d.Err)...)
	case DiagCrop:
		l.Warn("glyph truncated", append(attrs, "edge", d.Edge.String(), "pixels", d.Amount)...)
	}
}

// diagnostics collects diagnostics and logs each as it is added.
type diagnostics struct {
	list []Diagnostic
	log  *slog.Logger
}

func (ds *diagnostics) add(d Diagnostic) {
	ds.list = append(ds.list, d)
	d.log(ds.log)
}

// crops returns the crop diagnostics.
func (ds *diagnostics) crops() []Diagnostic {
	var out []Diagnostic
	for _, d := range ds.list {
		if d.Kind == DiagCrop {
			out = append(out, d)
		}
	}
	return out
}
