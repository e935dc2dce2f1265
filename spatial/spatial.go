// Package spatial attaches upper and lower annotation tokens to the
// content events below or above them by column alignment. Annotation
// tokens stay in their lines after binding, flagged as consumed, so
// the text still reconstructs byte for byte.
package spatial

import (
	"strings"
	"unicode/utf8"

	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/util"
)

// Octave marks never push past four octaves in either direction.
const octaveLimit = 4

// Marks within two columns of a note are considered aligned with it.
const columnTolerance = 2

// BindDocument runs Bind over every stave.
func BindDocument(doc *model.Document) {
	for _, s := range doc.Staves() {
		Bind(s)
	}
}

// Bind attaches the stave's annotation tokens to its content events.
func Bind(stave *model.Stave) {
	content := stave.Content()
	if content == nil {
		return
	}
	b := &binder{content: content}
	b.collect()

	for _, l := range stave.Lines {
		switch line := l.(type) {
		case *model.UpperLine:
			b.bindUpper(line)
		case *model.LowerLine:
			b.bindLower(line)
		case *model.LyricsLine:
			b.takeSyllables(line.Elements)
		}
	}
	b.assignSyllables()
}

type noteRef struct {
	note *model.Note
	col  int
}

type beatRef struct {
	beat       *model.Beat
	start, end int
}

type binder struct {
	content   *model.ContentLine
	notes     []noteRef
	beats     []beatRef
	barlines  []*model.Barline
	syllables []*model.LowerElement
}

func (b *binder) collect() {
	for _, e := range b.content.Elements {
		switch el := e.(type) {
		case *model.Beat:
			ref := beatRef{beat: el}
			for i, be := range el.Elements {
				col := be.Pos().Column
				if i == 0 {
					ref.start = col
				}
				ref.end = col + utf8.RuneCountInString(be.Text()) - 1
				if n, ok := be.(*model.Note); ok {
					b.notes = append(b.notes, noteRef{note: n, col: col})
				}
			}
			b.beats = append(b.beats, ref)
		case *model.Barline:
			b.barlines = append(b.barlines, el)
		}
	}
}

// nearestNote returns the note minimizing distance from col, within
// the column tolerance. The scan keeps the first of two equidistant
// notes, so the left one wins.
func (b *binder) nearestNote(col int) *model.Note {
	var best *model.Note
	bestDist := columnTolerance + 1
	for _, ref := range b.notes {
		d := util.Abs(ref.col - col)
		if d < bestDist {
			best, bestDist = ref.note, d
		}
	}
	return best
}

func (b *binder) noteAt(col int) *model.Note {
	for _, ref := range b.notes {
		if ref.col == col {
			return ref.note
		}
	}
	return nil
}

func (b *binder) bindUpper(line *model.UpperLine) {
	for i := range line.Elements {
		e := &line.Elements[i]
		switch e.Kind {
		case model.UpperOctaveMarker:
			if n := b.nearestNote(e.Position.Column); n != nil {
				n.Octave = clampOctave(n.Octave + upperOctaveDelta(e.Value))
				n.Consumed = append(n.Consumed, consumed(model.ConsumedUpperOctaveMarker, e.Value, e.Position))
				e.Consumed = true
			}
		case model.UpperSlur:
			b.bindSlur(e)
		case model.UpperOrnament:
			if n := b.nearestNote(e.Position.Column); n != nil {
				n.Ornament = e.Pitches
				e.Consumed = true
			}
		case model.UpperMordent:
			if n := b.noteAt(e.Position.Column); n != nil {
				n.Mordent = true
				e.Consumed = true
			}
		case model.UpperChord:
			if n := b.nearestNote(e.Position.Column); n != nil {
				n.Chord = strings.Trim(e.Value, "[]")
				e.Consumed = true
			}
		case model.UpperTala:
			b.bindTala(e)
		}
	}
}

// bindSlur attaches a run of underscores to every note whose column
// falls inside the run. The run is recorded once, on the first note.
func (b *binder) bindSlur(e *model.UpperElement) {
	start := e.Position.Column
	end := start + utf8.RuneCountInString(e.Value) - 1

	var span []*model.Note
	for _, ref := range b.notes {
		if ref.col >= start && ref.col <= end {
			span = append(span, ref.note)
		}
	}
	if len(span) == 0 {
		return
	}
	for i, n := range span {
		pos := model.SlurMiddle
		switch {
		case len(span) == 1:
			pos = model.SlurStartEnd
		case i == 0:
			pos = model.SlurStart
		case i == len(span)-1:
			pos = model.SlurEnd
		}
		p := pos
		n.Slur = &p
	}
	span[0].Consumed = append(span[0].Consumed, consumed(model.ConsumedSlurIndicator, e.Value, e.Position))
	e.Consumed = true
}

// bindTala attaches a tala marker to the nearest barline at or to the
// right of its column.
func (b *binder) bindTala(e *model.UpperElement) {
	var best *model.Barline
	bestCol := 0
	for _, bar := range b.barlines {
		col := bar.Position.Column
		if col < e.Position.Column {
			continue
		}
		if best == nil || col < bestCol {
			best, bestCol = bar, col
		}
	}
	if best == nil {
		return
	}
	v := talaValue(e.Value)
	best.Tala = &v
	e.Consumed = true
}

func (b *binder) bindLower(line *model.LowerLine) {
	for i := range line.Elements {
		e := &line.Elements[i]
		switch e.Kind {
		case model.LowerOctaveMarker:
			if n := b.nearestNote(e.Position.Column); n != nil {
				n.Octave = clampOctave(n.Octave + lowerOctaveDelta(e.Value))
				n.Consumed = append(n.Consumed, consumed(model.ConsumedLowerOctaveMarker, e.Value, e.Position))
				e.Consumed = true
			}
		case model.LowerBeatGroup:
			b.bindBeatGroup(e)
		case model.LowerKommal:
			if n := b.noteAt(e.Position.Column); n != nil && n.Degree.Offset() > -2 {
				n.Degree = model.DegreeFrom(n.Degree.Step(), n.Degree.Offset()-1)
				e.Consumed = true
			}
		case model.LowerSyllable:
			b.syllables = append(b.syllables, e)
		}
	}
}

// bindBeatGroup marks every beat the underscore run touches so the
// rhythm pass can merge them into one larger beat.
func (b *binder) bindBeatGroup(e *model.LowerElement) {
	start := e.Position.Column
	end := start + utf8.RuneCountInString(e.Value) - 1

	var covered []*model.Beat
	for _, ref := range b.beats {
		if ref.start <= end && ref.end >= start {
			covered = append(covered, ref.beat)
		}
	}
	if len(covered) == 0 {
		return
	}
	for _, beat := range covered[:len(covered)-1] {
		beat.GroupWithNext = true
	}
	covered[0].Consumed = append(covered[0].Consumed, consumed(model.ConsumedBeatGroupIndicator, e.Value, e.Position))
	e.Consumed = true
}

func (b *binder) takeSyllables(elements []model.LowerElement) {
	for i := range elements {
		if elements[i].Kind == model.LowerSyllable {
			b.syllables = append(b.syllables, &elements[i])
		}
	}
}

// assignSyllables splits hyphenated words into syllable tokens and
// hands them to successive sung notes. A note continuing a previous
// pitch over a dash boundary is not sung and is skipped.
func (b *binder) assignSyllables() {
	if len(b.syllables) == 0 {
		return
	}
	var parts []string
	partSource := make(map[int]*model.LowerElement)
	for _, s := range b.syllables {
		for _, p := range splitSyllables(s.Value) {
			partSource[len(parts)] = s
			parts = append(parts, p)
		}
	}

	sung := b.sungNotes()
	n := len(parts)
	if len(sung) < n {
		n = len(sung)
	}
	for i := 0; i < n; i++ {
		sung[i].Syllable = parts[i]
		partSource[i].Consumed = true
	}
}

// sungNotes walks the beats the way the rhythm pass will, tracking
// the pending tie a trailing dash leaves behind, and returns the
// notes that start a new sound.
func (b *binder) sungNotes() []*model.Note {
	var res []*model.Note
	var pending *model.Degree
	var lastDegree *model.Degree

	for _, ref := range b.beats {
		for i, e := range ref.beat.Elements {
			switch el := e.(type) {
			case *model.BreathMark:
				pending = nil
			case *model.Note:
				if i == 0 && pending != nil && *pending == el.Degree {
					// Tied continuation, already sounding.
					pending = nil
				} else {
					res = append(res, el)
				}
				d := el.Degree
				lastDegree = &d
			}
		}
		if len(ref.beat.Elements) == 0 {
			continue
		}
		if _, endsOnDash := ref.beat.Elements[len(ref.beat.Elements)-1].(*model.Dash); endsOnDash {
			pending = lastDegree
		} else if _, isBreath := ref.beat.Elements[len(ref.beat.Elements)-1].(*model.BreathMark); !isBreath {
			pending = nil
		}
	}
	return res
}

// splitSyllables breaks a hyphenated word into per-note syllables,
// keeping each continuing syllable's trailing hyphen.
func splitSyllables(word string) []string {
	var res []string
	for {
		i := strings.IndexByte(word, '-')
		if i < 0 || i == len(word)-1 {
			res = append(res, word)
			return res
		}
		res = append(res, word[:i+1])
		word = word[i+1:]
	}
}

func consumed(kind model.ConsumedKind, value string, pos model.Position) model.ConsumedElement {
	return model.ConsumedElement{Kind: kind, Value: value, CharIndex: pos.IndexInDoc}
}

func upperOctaveDelta(value string) int8 {
	switch value {
	case ":":
		return 2
	default:
		return 1
	}
}

func lowerOctaveDelta(value string) int8 {
	switch value {
	case ":":
		return -2
	default:
		return -1
	}
}

func clampOctave(o int8) int8 {
	if o > octaveLimit {
		return octaveLimit
	}
	if o < -octaveLimit {
		return -octaveLimit
	}
	return o
}

func talaValue(value string) uint8 {
	if value == "+" {
		return 0
	}
	return uint8(value[0] - '0')
}
