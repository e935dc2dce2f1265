package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/parse"
)

func bound(t *testing.T, input string) *model.Stave {
	t.Helper()
	doc, err := parse.ParseDocument(input)
	assert.NoError(t, err)
	BindDocument(doc)
	staves := doc.Staves()
	assert.NotEmpty(t, staves)
	return staves[0]
}

func notesOf(s *model.Stave) []*model.Note {
	var res []*model.Note
	for _, e := range s.Content().Elements {
		if b, ok := e.(*model.Beat); ok {
			for _, be := range b.Elements {
				if n, ok := be.(*model.Note); ok {
					res = append(res, n)
				}
			}
		}
	}
	return res
}

func TestBindUpperOctaveDot(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "   .\n|1 2 3")

	notes := notesOf(stave)
	assert.Len(notes, 3)
	assert.Equal(int8(0), notes[0].Octave)
	assert.Equal(int8(1), notes[1].Octave)
	assert.Equal(int8(0), notes[2].Octave)

	if assert.Len(notes[1].Consumed, 1) {
		assert.Equal(model.ConsumedUpperOctaveMarker, notes[1].Consumed[0].Kind)
		assert.Equal(".", notes[1].Consumed[0].Value)
	}

	upper := stave.Lines[0].(*model.UpperLine)
	for _, e := range upper.Elements {
		if e.Kind == model.UpperOctaveMarker {
			assert.True(e.Consumed)
		}
	}
}

func TestBindColumnTieBreakPrefersLeft(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, " .\n1 2")

	notes := notesOf(stave)
	assert.Equal(int8(1), notes[0].Octave)
	assert.Equal(int8(0), notes[1].Octave)
}

func TestBindLowerOctaveColon(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "|1 2\n :")

	notes := notesOf(stave)
	assert.Equal(int8(-2), notes[0].Octave)
	assert.Equal(int8(0), notes[1].Octave)
}

func TestBindOctaveSaturates(t *testing.T) {
	stave := bound(t, ":::\n1--")
	assert.Equal(t, int8(4), notesOf(stave)[0].Octave)
}

func TestBindUnalignedMarkStaysUnconsumed(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "      .\n|1")

	assert.Equal(int8(0), notesOf(stave)[0].Octave)
	upper := stave.Lines[0].(*model.UpperLine)
	for _, e := range upper.Elements {
		if e.Kind == model.UpperOctaveMarker {
			assert.False(e.Consumed)
		}
	}
}

func TestBindSlurSpan(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "___\n123")

	notes := notesOf(stave)
	assert.Len(notes, 3)
	assert.Equal(model.SlurStart, *notes[0].Slur)
	assert.Equal(model.SlurMiddle, *notes[1].Slur)
	assert.Equal(model.SlurEnd, *notes[2].Slur)

	if assert.Len(notes[0].Consumed, 1) {
		assert.Equal(model.ConsumedSlurIndicator, notes[0].Consumed[0].Kind)
		assert.Equal("___", notes[0].Consumed[0].Value)
	}
	assert.Empty(notes[1].Consumed)
}

func TestBindSlurSingleNote(t *testing.T) {
	stave := bound(t, "__\n1 2")
	notes := notesOf(stave)
	assert.Equal(t, model.SlurStartEnd, *notes[0].Slur)
	assert.Nil(t, notes[1].Slur)
}

func TestBindBeatGroup(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "1 2\n___")

	var beats []*model.Beat
	for _, e := range stave.Content().Elements {
		if b, ok := e.(*model.Beat); ok {
			beats = append(beats, b)
		}
	}
	assert.Len(beats, 2)
	assert.True(beats[0].GroupWithNext)
	assert.False(beats[1].GroupWithNext)
	if assert.Len(beats[0].Consumed, 1) {
		assert.Equal(model.ConsumedBeatGroupIndicator, beats[0].Consumed[0].Kind)
	}
}

func TestBindTalaToRightBarline(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "+   3\n|1 2 | 3")

	var bars []*model.Barline
	for _, e := range stave.Content().Elements {
		if b, ok := e.(*model.Barline); ok {
			bars = append(bars, b)
		}
	}
	assert.Len(bars, 2)
	if assert.NotNil(bars[0].Tala) {
		assert.Equal(uint8(0), *bars[0].Tala)
	}
	if assert.NotNil(bars[1].Tala) {
		assert.Equal(uint8(3), *bars[1].Tala)
	}
}

func TestBindMordentAndChord(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "~ [Am]\n1 2")

	notes := notesOf(stave)
	assert.True(notes[0].Mordent)
	assert.Equal("Am", notes[1].Chord)
}

func TestBindOrnament(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, " . 232\n|1 2")

	notes := notesOf(stave)
	assert.Equal(int8(1), notes[0].Octave)
	assert.Equal([]model.Degree{model.N2, model.N3, model.N2}, notes[1].Ornament)
}

func TestBindSyllables(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "|1 2 3\nhe-llo world")

	notes := notesOf(stave)
	assert.Equal("he-", notes[0].Syllable)
	assert.Equal("llo", notes[1].Syllable)
	assert.Equal("world", notes[2].Syllable)
}

func TestBindSyllablesSkipTiedNote(t *testing.T) {
	assert := assert.New(t)
	stave := bound(t, "|1- 1 2\nla-la")

	notes := notesOf(stave)
	assert.Equal("la-", notes[0].Syllable)
	assert.Equal("", notes[1].Syllable)
	assert.Equal("la", notes[2].Syllable)
}

func TestBindKommalLowersDegree(t *testing.T) {
	stave := bound(t, "S R\n  _")
	notes := notesOf(stave)
	assert.Equal(t, model.N1, notes[0].Degree)
	assert.Equal(t, model.N2b, notes[1].Degree)
}
