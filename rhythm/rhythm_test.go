package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/parse"
	"github.com/swaralipi/swaralipi/spatial"
)

func analyzed(t *testing.T, input string) *model.Document {
	t.Helper()
	Strict = true
	defer func() { Strict = false }()

	doc, err := parse.ParseDocument(input)
	assert.NoError(t, err)
	spatial.BindDocument(doc)
	AnalyzeDocument(doc)
	return doc
}

func beatsOf(doc *model.Document) []*model.Beat {
	var res []*model.Beat
	for _, s := range doc.Staves() {
		for _, e := range s.Content().Elements {
			if b, ok := e.(*model.Beat); ok {
				res = append(res, b)
			}
		}
	}
	return res
}

func TestSingleNoteBeats(t *testing.T) {
	assert := assert.New(t)
	beats := beatsOf(analyzed(t, "|1 2 3"))

	assert.Len(beats, 3)
	for _, b := range beats {
		assert.Equal(1, b.Divisions)
		assert.False(b.IsTuplet)
		assert.False(b.TiedToPrevious)
		n := b.Elements[0].(*model.Note)
		assert.Equal(1, n.Numerator)
		assert.Equal(4, n.Denominator)
	}
}

func TestQuintupletBeat(t *testing.T) {
	assert := assert.New(t)
	beats := beatsOf(analyzed(t, "|1-2-3"))

	assert.Len(beats, 1)
	b := beats[0]
	assert.Equal(5, b.Divisions)
	assert.True(b.IsTuplet)
	assert.Equal(5, b.TupletNum)
	assert.Equal(4, b.TupletDen)

	n1 := b.Elements[0].(*model.Note)
	n2 := b.Elements[2].(*model.Note)
	n3 := b.Elements[4].(*model.Note)
	assert.Equal(2, n1.Subdivisions)
	assert.Equal(2, n2.Subdivisions)
	assert.Equal(1, n3.Subdivisions)
	assert.Equal([2]int{1, 10}, [2]int{n1.Numerator, n1.Denominator})
	assert.Equal([2]int{1, 10}, [2]int{n2.Numerator, n2.Denominator})
	assert.Equal([2]int{1, 20}, [2]int{n3.Numerator, n3.Denominator})
}

func TestDuplePowerOfTwoIsNotTuplet(t *testing.T) {
	assert := assert.New(t)
	beats := beatsOf(analyzed(t, "|1-2-"))

	b := beats[0]
	assert.Equal(4, b.Divisions)
	assert.False(b.IsTuplet)
	n1 := b.Elements[0].(*model.Note)
	assert.Equal([2]int{1, 8}, [2]int{n1.Numerator, n1.Denominator})
}

func TestSingleExtendedNoteIsNotTuplet(t *testing.T) {
	// One element with three subdivisions: k == 1 rules the tuplet out
	// even though 3 is not a power of two.
	beats := beatsOf(analyzed(t, "|1--"))
	assert.False(t, beats[0].IsTuplet)
	assert.Equal(t, 3, beats[0].Divisions)
}

func TestTupletRatioTable(t *testing.T) {
	assert := assert.New(t)
	cases := map[int]int{3: 2, 5: 4, 6: 4, 7: 4, 9: 8}
	for d, p := range cases {
		assert.Equal(p, nextLowerPowerOfTwo(d), "divisions %d", d)
	}
}

func TestBeatDurationClosure(t *testing.T) {
	assert := assert.New(t)
	inputs := []string{"|1-2-3", "|1--2", "|12345", "|1-2 3--4 |5"}
	for _, in := range inputs {
		for _, b := range beatsOf(analyzed(t, in)) {
			if b.Merged {
				continue
			}
			num, den := 0, 1
			for _, e := range b.Elements {
				var n, d int
				switch el := e.(type) {
				case *model.Note:
					n, d = el.Numerator, el.Denominator
				case *model.Dash:
					n, d = el.Numerator, el.Denominator
				case *model.Rest:
					n, d = el.Numerator, el.Denominator
				}
				if d == 0 {
					continue
				}
				num, den = num*d+n*den, den*d
				num, den = reduce(num, den)
			}
			assert.Equal([2]int{1, 4}, [2]int{num, den}, "input %q", in)
		}
	}
}

func TestSeparateBeatsDoNotTie(t *testing.T) {
	assert := assert.New(t)
	beats := beatsOf(analyzed(t, "|1 1"))

	assert.Len(beats, 2)
	assert.False(beats[0].TiedToPrevious)
	assert.False(beats[1].TiedToPrevious)
}

func TestPendingTieAcrossStaves(t *testing.T) {
	assert := assert.New(t)
	beats := beatsOf(analyzed(t, "|1-\n|1"))

	assert.Len(beats, 2)
	assert.False(beats[0].TiedToPrevious)
	assert.True(beats[1].TiedToPrevious)
}

func TestPendingTieRequiresMatchingPitch(t *testing.T) {
	beats := beatsOf(analyzed(t, "|1- 2"))
	assert.False(t, beats[1].TiedToPrevious)
}

func TestBreathClearsPendingTie(t *testing.T) {
	beats := beatsOf(analyzed(t, "|1-' 1"))
	// Beats: [1-], ['], [1]; the breath broke the tie.
	assert.Len(t, beats, 3)
	assert.False(t, beats[2].TiedToPrevious)
}

func TestLeadingDashContinuesPreviousNote(t *testing.T) {
	assert := assert.New(t)
	beats := beatsOf(analyzed(t, "|1 -2"))

	assert.Len(beats, 2)
	assert.True(beats[1].TiedToPrevious)
	dash := beats[1].Elements[0].(*model.Dash)
	if assert.NotNil(dash.Degree) {
		assert.Equal(model.N1, *dash.Degree)
	}
	assert.Equal([2]int{1, 8}, [2]int{dash.Numerator, dash.Denominator})
}

func TestLeadingDashWithoutPreviousNoteIsRest(t *testing.T) {
	assert := assert.New(t)
	beats := beatsOf(analyzed(t, "|- 1"))

	dash := beats[0].Elements[0].(*model.Dash)
	assert.Nil(dash.Degree)
	assert.False(beats[0].TiedToPrevious)
	assert.Equal([2]int{1, 4}, [2]int{dash.Numerator, dash.Denominator})
}

func TestBeatGroupMergesAnalysis(t *testing.T) {
	assert := assert.New(t)
	doc := analyzed(t, "1- 2\n____")

	beats := beatsOf(doc)
	assert.Len(beats, 2)
	head := beats[0]
	assert.Equal(3, head.Divisions)
	assert.True(head.IsTuplet)
	assert.Equal([2]int{3, 2}, [2]int{head.TupletNum, head.TupletDen})
	assert.True(beats[1].Merged)

	n1 := head.Elements[0].(*model.Note)
	n2 := beats[1].Elements[0].(*model.Note)
	assert.Equal([2]int{1, 6}, [2]int{n1.Numerator, n1.Denominator})
	assert.Equal([2]int{1, 12}, [2]int{n2.Numerator, n2.Denominator})
}
