// Package parse turns raw notation text into the typed document tree.
// It normalizes newlines, reads header directives, classifies each
// line and assembles staves around content lines. Spatial binding and
// rhythm analysis are separate passes run on the result.
package parse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/swaralipi/swaralipi/lexer"
	"github.com/swaralipi/swaralipi/lines"
	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/pitch"
	"github.com/swaralipi/swaralipi/util"
)

// Error is a structural parse failure. Line and Column are 1-based
// for diagnostics.
type Error struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// rawLine is one physical line of the normalized input.
type rawLine struct {
	body     string
	newline  string
	number   int // zero-based
	docIndex int // rune offset of the line start
	kind     lines.Kind
	system   model.NotationSystem
}

func (l rawLine) pos() model.Position {
	return model.Position{Line: l.number, Column: 1, IndexInDoc: l.docIndex}
}

var directiveRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]+)\s*:\s*(.*)$`)

// ParseDocument runs header scanning, line classification and stave
// assembly over the whole input. CRLF newlines are normalized to LF
// before anything else, so every position refers to the normalized
// text.
func ParseDocument(input string) (*model.Document, error) {
	source := strings.ReplaceAll(input, "\r\n", "\n")
	raw := splitLines(source)

	doc := &model.Document{
		Directives: map[string]string{},
		Source:     source,
	}

	headerEnd, err := scanHeader(doc, raw)
	if err != nil {
		return nil, err
	}
	body := raw[headerEnd:]

	var override *model.NotationSystem
	if name, ok := doc.Directives["system"]; ok {
		if sys, ok := model.SystemFromName(strings.ToLower(strings.TrimSpace(name))); ok {
			override = &sys
		}
	}

	haveContent := false
	for i := range body {
		body[i].kind, body[i].system = lines.Classify(body[i].body, override)
		if body[i].kind == lines.KindContent {
			haveContent = true
		}
	}
	if !haveContent {
		return nil, &Error{Message: "no content line found", Line: 1, Column: 1}
	}

	assemble(doc, body)
	return doc, nil
}

// splitLines keeps each line's terminator separate so the document can
// reproduce the input exactly. docIndex counts runes.
func splitLines(source string) []rawLine {
	var res []rawLine
	offset := 0
	number := 0
	rest := source
	for len(rest) > 0 {
		body := rest
		newline := ""
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			body = rest[:i]
			newline = "\n"
			rest = rest[i+1:]
		} else {
			rest = ""
		}
		res = append(res, rawLine{body: body, newline: newline, number: number, docIndex: offset})
		offset += utf8.RuneCountInString(body) + len(newline)
		number++
	}
	return res
}

// scanHeader consumes the leading run of directive lines, together
// with any blank lines between them, and fills the document's
// directive map. It returns the index of the first body line.
func scanHeader(doc *model.Document, raw []rawLine) (int, error) {
	end := 0
	for i, l := range raw {
		trimmed := strings.TrimSpace(l.body)
		if trimmed == "" {
			continue
		}
		m := directiveRe.FindStringSubmatch(l.body)
		if m == nil {
			break
		}
		if strings.TrimSpace(m[2]) == "" {
			return 0, &Error{
				Message: fmt.Sprintf("directive %q has no value", m[1]),
				Line:    l.number + 1,
				Column:  len(m[1]) + 2,
			}
		}
		end = i + 1
	}

	for _, l := range raw[:end] {
		tl := &model.TextLine{Value: l.body, Position: l.pos(), Newline: l.newline}
		doc.Header = append(doc.Header, tl)
		m := directiveRe.FindStringSubmatch(l.body)
		if m == nil {
			continue
		}
		key := strings.ToLower(m[1])
		value := strings.TrimSpace(m[2])
		doc.Directives[key] = value
		switch key {
		case "title":
			doc.Title = value
		case "author":
			doc.Author = value
		case "key", "tonic":
			doc.Tonic = lookupTonic(value)
		}
	}
	return end, nil
}

// lookupTonic resolves a tonic directive against the pitched systems.
// An unrecognized value is kept in the directive map but yields no
// tonic.
func lookupTonic(value string) *model.Degree {
	for _, sys := range []model.NotationSystem{
		model.SystemNumber, model.SystemWestern, model.SystemSargam, model.SystemBhatkhande,
	} {
		if d, ok := pitch.Lookup(value, sys); ok {
			return &d
		}
	}
	return nil
}

// assemble walks classified body lines and emits BlankLines runs and
// staves. Every non-blank line between two content lines joins the
// stave of the nearer one; on a tie the stave above wins.
func assemble(doc *model.Document, body []rawLine) {
	i := 0
	for i < len(body) {
		if body[i].kind == lines.KindBlank {
			blank := &model.BlankLines{Position: body[i].pos()}
			for i < len(body) && body[i].kind == lines.KindBlank {
				blank.Lines = append(blank.Lines, body[i].body+body[i].newline)
				i++
			}
			doc.Elements = append(doc.Elements, blank)
			continue
		}

		start := i
		for i < len(body) && body[i].kind != lines.KindBlank {
			i++
		}
		run := body[start:i]

		var contentIdx []int
		for j, l := range run {
			if l.kind == lines.KindContent {
				contentIdx = append(contentIdx, j)
			}
		}
		if len(contentIdx) == 0 {
			// A run with no content line is loose text.
			for _, l := range run {
				doc.Elements = append(doc.Elements, looseText(l))
			}
			continue
		}

		owner := assignOwners(len(run), contentIdx)
		for ci, c := range contentIdx {
			stave := &model.Stave{System: run[c].system, Position: run[c].pos()}
			for j, l := range run {
				if owner[j] != ci {
					continue
				}
				switch {
				case j == c:
					stave.Lines = append(stave.Lines, buildContentLine(l))
				case j < c:
					stave.Lines = append(stave.Lines, buildPreLine(l, run[c].system))
				default:
					stave.Lines = append(stave.Lines, buildPostLine(l))
				}
			}
			doc.Elements = append(doc.Elements, stave)
		}
	}
}

// assignOwners maps every line of a non-blank run to the index (into
// contentIdx) of the content line whose stave it joins. Distance
// ties go to the content line above.
func assignOwners(n int, contentIdx []int) []int {
	owner := make([]int, n)
	for j := 0; j < n; j++ {
		best, bestDist := -1, 0
		for ci, c := range contentIdx {
			d := util.Abs(c - j)
			above := c <= j
			if best < 0 || d < bestDist || (d == bestDist && above) {
				best, bestDist = ci, d
			}
		}
		owner[j] = best
	}
	return owner
}

func looseText(l rawLine) *model.TextLine {
	return &model.TextLine{Value: l.body, Position: l.pos(), Newline: l.newline}
}

func buildPreLine(l rawLine, system model.NotationSystem) model.StaveLine {
	switch l.kind {
	case lines.KindLyrics:
		return buildLyricsLine(l)
	case lines.KindText:
		return &model.TextLine{Value: l.body, Position: l.pos(), Newline: l.newline}
	default:
		up := lines.ParseUpper(l.body, system, l.number, l.docIndex)
		up.Newline = l.newline
		return up
	}
}

func buildPostLine(l rawLine) model.StaveLine {
	switch l.kind {
	case lines.KindLyrics:
		return buildLyricsLine(l)
	case lines.KindText:
		return &model.TextLine{Value: l.body, Position: l.pos(), Newline: l.newline}
	default:
		low := &model.LowerLine{
			Elements: lines.ParseLowerElements(l.body, l.number, l.docIndex),
			Position: l.pos(),
			Newline:  l.newline,
		}
		return low
	}
}

func buildLyricsLine(l rawLine) *model.LyricsLine {
	return &model.LyricsLine{
		Elements: lines.ParseLowerElements(l.body, l.number, l.docIndex),
		Position: l.pos(),
		Newline:  l.newline,
	}
}

// buildContentLine tokenizes the musical line and groups runs of beat
// elements into beats. A breath mark closes the current beat and
// stands in a single-element beat of its own.
func buildContentLine(l rawLine) *model.ContentLine {
	tokens := lexer.TokenizeLine(l.body, l.system, l.number, l.docIndex)
	cl := &model.ContentLine{Position: l.pos(), Newline: l.newline}

	var beat *model.Beat
	flush := func() {
		if beat != nil {
			cl.Elements = append(cl.Elements, beat)
			beat = nil
		}
	}
	push := func(e model.BeatElement) {
		if beat == nil {
			beat = &model.Beat{Position: e.Pos()}
		}
		beat.Elements = append(beat.Elements, e)
	}

	for _, t := range tokens {
		switch t.Kind {
		case lexer.TokenNote:
			push(&model.Note{Value: t.Value, Degree: t.Degree, System: l.system, Position: t.Pos})
		case lexer.TokenDash:
			push(&model.Dash{Value: t.Value, Position: t.Pos})
		case lexer.TokenRest:
			push(&model.Rest{Value: t.Value, Position: t.Pos})
		case lexer.TokenBreath:
			flush()
			cl.Elements = append(cl.Elements, &model.Beat{
				Position: t.Pos,
				Elements: []model.BeatElement{&model.BreathMark{Value: t.Value, Position: t.Pos}},
			})
		case lexer.TokenBarline:
			flush()
			cl.Elements = append(cl.Elements, &model.Barline{Style: t.Bar, Value: t.Value, Position: t.Pos})
		case lexer.TokenWhitespace:
			flush()
			cl.Elements = append(cl.Elements, &model.Whitespace{Value: t.Value, Position: t.Pos})
		case lexer.TokenUnknown:
			flush()
			cl.Elements = append(cl.Elements, &model.UnknownToken{Value: t.Value, Position: t.Pos})
		case lexer.TokenNewline:
			// The terminator is stored on the line itself.
		}
	}
	flush()
	return cl
}

// CheckRoundtrip compares the document's reconstructed text against
// the normalized input and reports the first differing rune offset.
func CheckRoundtrip(doc *model.Document) model.Roundtrip {
	got := doc.Text()
	if got == doc.Source {
		return model.Roundtrip{Works: true, ReconstructedText: got}
	}
	want := []rune(doc.Source)
	have := []rune(got)
	at := len(want)
	for i := 0; i < len(want) && i < len(have); i++ {
		if want[i] != have[i] {
			at = i
			break
		}
	}
	if len(have) < len(want) && at > len(have) {
		at = len(have)
	}
	return model.Roundtrip{Works: false, ReconstructedText: got, WhereItFailed: &at}
}
