package pitch

import "github.com/swaralipi/swaralipi/model"

// Bhatkhande accepts Devanagari glyphs alongside their Roman
// equivalents; both resolve to the same degrees. Canonical output is
// the Roman form.
var bhatkhandeLetters = [7]string{"S", "R", "G", "M", "P", "D", "N"}

var (
	bhatkhandeTable     = buildBhatkhandeTable()
	bhatkhandeCanonical = buildCanonical(bhatkhandeLetters)
)

func buildBhatkhandeTable() map[string]model.Degree {
	t := buildTable(bhatkhandeLetters)
	devanagari := map[string]int{
		"स":  0,
		"रे": 1,
		"ग":  2,
		"म":  3,
		"प":  4,
		"ध":  5,
		"नि": 6,
		"न":  6,
	}
	for glyph, step := range devanagari {
		for _, acc := range accidentals {
			t[glyph+acc.Suffix] = model.DegreeFrom(step, acc.Offset)
		}
	}
	return t
}
