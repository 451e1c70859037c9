package text

import (
	"bytes"

	seehuhn "seehuhn.de/go/sfnt"
)

// Description is human-oriented information about a font, written into
// atlas metadata.
type Description struct {
	Family         string `json:"family"`
	PostScriptName string `json:"postScriptName,omitempty"`
	Weight         int    `json:"weight,omitempty"`
	Italic         bool   `json:"italic,omitempty"`
	FixedPitch     bool   `json:"fixedPitch,omitempty"`
	UnitsPerEm     int    `json:"unitsPerEm,omitempty"`
}

// Describe reads the naming and style tables of the font. Collections and
// fonts the table reader rejects still get a Description carrying the
// family name.
func (s *FontSource) Describe() Description {
	s.copyCheck()

	d := Description{
		Family:     s.name,
		UnitsPerEm: int(s.font.UnitsPerEm()),
	}
	if s.numFonts > 1 || s.isClosed() {
		return d
	}

	info, err := seehuhn.Read(bytes.NewReader(s.data))
	if err != nil {
		return d
	}
	if info.FamilyName != "" {
		d.Family = info.FamilyName
	}
	d.PostScriptName = info.PostScriptName()
	d.Weight = int(info.Weight)
	d.Italic = info.IsItalic
	d.FixedPitch = info.IsFixedPitch()
	return d
}
