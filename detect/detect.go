// Package detect scores the five notation systems over an input and
// picks the best fit. The verdict is advisory; an explicit "system:"
// directive overrides it.
package detect

import (
	"unicode"
	"unicode/utf8"

	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/pitch"
)

// matchedChars counts the characters covered by non-overlapping
// maximal-munch matches of the system's symbol set. Whitespace and
// barline pipes are skipped.
func matchedChars(input string, system model.NotationSystem) int {
	re := pitch.Matcher(system)
	matched := 0
	for i := 0; i < len(input); {
		r, sz := utf8.DecodeRuneInString(input[i:])
		if unicode.IsSpace(r) || r == '|' {
			i += sz
			continue
		}
		if m := re.FindString(input[i:]); m != "" {
			matched += utf8.RuneCountInString(m)
			i += len(m)
			continue
		}
		i += sz
	}
	return matched
}

func musicalChars(input string) int {
	n := 0
	for _, r := range input {
		if !unicode.IsSpace(r) && r != '|' {
			n++
		}
	}
	return n
}

// Scores returns every system's ratio matched/musical, in tie-break
// order: Tabla, Sargam, Number, Western, Bhatkhande.
func Scores(input string) []model.SystemScore {
	musical := musicalChars(input)
	res := make([]model.SystemScore, 0, 5)
	for _, sys := range model.AllSystems() {
		score := 0.0
		if musical > 0 {
			score = float64(matchedChars(input, sys)) / float64(musical)
		}
		res = append(res, model.SystemScore{System: sys, Score: score})
	}
	return res
}

// Detect returns the argmax system with its score. Ties go to the
// earlier system in the documented order; empty input yields Number
// with score 0.
func Detect(input string) model.SystemScore {
	if musicalChars(input) == 0 {
		return model.SystemScore{System: model.SystemNumber, Score: 0}
	}
	best := model.SystemScore{System: model.SystemNumber, Score: -1}
	for _, s := range Scores(input) {
		if s.Score > best.Score {
			best = s
		}
	}
	return best
}
