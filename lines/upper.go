package lines

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/pitch"
)

// ParseUpper parses an upper annotation line into typed elements.
// system is the stave's notation system; ornament pitches are looked
// up in its table.
func ParseUpper(body string, system model.NotationSystem, line, docIndex int) *model.UpperLine {
	res := &model.UpperLine{Position: model.Position{Line: line, Column: 1, IndexInDoc: docIndex}}
	matcher := pitch.Matcher(system)

	idx := 0
	byteOff := 0
	pos := func(runeIdx int) model.Position {
		return model.Position{Line: line, Column: runeIdx + 1, IndexInLine: runeIdx, IndexInDoc: docIndex + runeIdx}
	}
	add := func(kind model.UpperElementKind, value string, at int, pitches []model.Degree) {
		res.Elements = append(res.Elements, model.UpperElement{
			Kind: kind, Value: value, Position: pos(at), Pitches: pitches,
		})
	}
	// A run of adjacent pitches forms one ornament.
	ornament := func(start int) {
		var value strings.Builder
		var pitches []model.Degree
		for byteOff < len(body) {
			m := matcher.FindString(body[byteOff:])
			if m == "" {
				break
			}
			d, _ := pitch.Lookup(m, system)
			pitches = append(pitches, d)
			value.WriteString(m)
			byteOff += len(m)
			idx += utf8.RuneCountInString(m)
		}
		add(model.UpperOrnament, value.String(), start, pitches)
	}

	for byteOff < len(body) {
		rest := body[byteOff:]
		r, sz := utf8.DecodeRuneInString(rest)
		start := idx

		switch {
		case r == ' ' || r == '\t':
			run := takeRun(rest, func(c rune) bool { return c == ' ' || c == '\t' })
			add(model.UpperSpace, run, start, nil)
			byteOff += len(run)
			idx += utf8.RuneCountInString(run)

		case r == '.' || r == ':' || r == '*' || r == '\'':
			add(model.UpperOctaveMarker, string(r), start, nil)
			byteOff += sz
			idx++

		case r == '_':
			run := takeRun(rest, func(c rune) bool { return c == '_' })
			add(model.UpperSlur, run, start, nil)
			byteOff += len(run)
			idx += utf8.RuneCountInString(run)

		case r == '~':
			add(model.UpperMordent, "~", start, nil)
			byteOff += sz
			idx++

		case r == '[':
			// Chord symbol, up to and including the closing bracket.
			end := strings.IndexRune(rest, ']')
			var value string
			if end < 0 {
				value = rest
			} else {
				value = rest[:end+1]
			}
			add(model.UpperChord, value, start, nil)
			byteOff += len(value)
			idx += utf8.RuneCountInString(value)

		case r == '+':
			add(model.UpperTala, "+", start, nil)
			byteOff += sz
			idx++

		case r >= '0' && r <= '6':
			// A digit is an ending marker when followed by a dot, an
			// ornament when it begins a run of pitches, otherwise a
			// tala count.
			if strings.HasPrefix(rest[sz:], ".") {
				add(model.UpperEnding, rest[:sz+1], start, nil)
				byteOff += sz + 1
				idx += 2
			} else if m := matcher.FindString(rest); m != "" && matcher.FindString(rest[len(m):]) != "" {
				ornament(start)
			} else {
				add(model.UpperTala, string(r), start, nil)
				byteOff += sz
				idx++
			}

		default:
			if matcher.FindString(rest) != "" {
				ornament(start)
				continue
			}
			run := takeRun(rest, func(c rune) bool { return !isUpperBreak(c) })
			if run == "" {
				run = string(r)
			}
			add(model.UpperUnknown, run, start, nil)
			byteOff += len(run)
			idx += utf8.RuneCountInString(run)
		}
	}
	return res
}

func isUpperBreak(c rune) bool {
	return c == ' ' || c == '\t' || c == '.' || c == ':' || c == '*' || c == '\'' ||
		c == '_' || c == '~' || c == '[' || c == '+' || unicode.IsDigit(c)
}

func takeRun(s string, pred func(rune) bool) string {
	for i, r := range s {
		if !pred(r) {
			return s[:i]
		}
	}
	return s
}
