package text

// Metrics holds font metrics of a Face in final pixels, after dividing out
// the oversample factor.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64 `json:"ascent"`

	// Descent is the distance from the baseline to the bottom of the font (positive, below baseline).
	Descent float64 `json:"descent"`

	// LineGap is the recommended gap between lines.
	LineGap float64 `json:"lineGap"`

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64 `json:"xHeight"`

	// CapHeight is the height of uppercase letters.
	CapHeight float64 `json:"capHeight"`
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
