package lines

import (
	"unicode"
	"unicode/utf8"

	"github.com/swaralipi/swaralipi/model"
)

// ParseLowerElements parses a lower annotation or lyrics line. The
// caller wraps the elements in a LowerLine or LyricsLine.
func ParseLowerElements(body string, line, docIndex int) []model.LowerElement {
	var elements []model.LowerElement

	idx := 0
	byteOff := 0
	pos := func(runeIdx int) model.Position {
		return model.Position{Line: line, Column: runeIdx + 1, IndexInLine: runeIdx, IndexInDoc: docIndex + runeIdx}
	}
	add := func(kind model.LowerElementKind, value string, at int) {
		elements = append(elements, model.LowerElement{Kind: kind, Value: value, Position: pos(at)})
	}

	for byteOff < len(body) {
		rest := body[byteOff:]
		r, sz := utf8.DecodeRuneInString(rest)
		start := idx

		switch {
		case r == ' ' || r == '\t':
			run := takeRun(rest, func(c rune) bool { return c == ' ' || c == '\t' })
			add(model.LowerSpace, run, start)
			byteOff += len(run)
			idx += utf8.RuneCountInString(run)

		case r == '.' || r == ':':
			add(model.LowerOctaveMarker, string(r), start)
			byteOff += sz
			idx++

		case r == '_':
			run := takeRun(rest, func(c rune) bool { return c == '_' })
			if len(run) >= 2 {
				add(model.LowerBeatGroup, run, start)
			} else {
				add(model.LowerKommal, run, start)
			}
			byteOff += len(run)
			idx += utf8.RuneCountInString(run)

		case unicode.IsLetter(r):
			// Syllable: letters with internal hyphens or apostrophes;
			// a trailing hyphen marks a continuing syllable.
			run := takeRun(rest, func(c rune) bool {
				return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' || c == '\''
			})
			add(model.LowerSyllable, run, start)
			byteOff += len(run)
			idx += utf8.RuneCountInString(run)

		default:
			run := takeRun(rest, func(c rune) bool { return !isLowerBreak(c) })
			if run == "" {
				run = string(r)
			}
			add(model.LowerUnknown, run, start)
			byteOff += len(run)
			idx += utf8.RuneCountInString(run)
		}
	}
	return elements
}

func isLowerBreak(c rune) bool {
	return c == ' ' || c == '\t' || c == '.' || c == ':' || c == '_' || unicode.IsLetter(c)
}
