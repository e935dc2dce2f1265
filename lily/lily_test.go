package lily

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/parse"
	"github.com/swaralipi/swaralipi/rhythm"
	"github.com/swaralipi/swaralipi/spatial"
)

func render(t *testing.T, input string, meta *model.TuneMetadata) string {
	t.Helper()
	doc, err := parse.ParseDocument(input)
	assert.NoError(t, err)
	spatial.BindDocument(doc)
	rhythm.AnalyzeDocument(doc)

	var buf bytes.Buffer
	Render(&buf, doc, meta)
	return buf.String()
}

func TestRenderHeader(t *testing.T) {
	assert := assert.New(t)
	out := render(t, "title: Morning Song\nauthor: Traditional\n\n|1 2 3", nil)

	assert.Contains(out, `\version "2.24.0"`)
	assert.Contains(out, `title = "Morning Song"`)
	assert.Contains(out, `composer = "Traditional"`)
	assert.Contains(out, `\fixed c'`)
}

func TestRenderMetadataHeader(t *testing.T) {
	meta := &model.TuneMetadata{Artist: "Someone", Raga: "Bhairav", Year: 1999}
	out := render(t, "|1", meta)

	assert.Contains(t, out, `arranger = "Someone"`)
	assert.Contains(t, out, `piece = "Bhairav"`)
	assert.Contains(t, out, `copyright = "1999"`)
}

func TestRenderNotesAndBarlines(t *testing.T) {
	assert := assert.New(t)
	out := render(t, "|1 2 3|", nil)

	assert.Contains(out, "| c4 d4 e4 |")
}

func TestRenderTuplet(t *testing.T) {
	out := render(t, "|1-2-3", nil)
	assert.Contains(t, out, `\tuplet 5/4 { c8 d8 e16 }`)
}

func TestRenderTie(t *testing.T) {
	out := render(t, "|1- 1", nil)
	assert.Contains(t, out, "c4~ c4")
}

func TestRenderLeadingDashRest(t *testing.T) {
	out := render(t, "|- 1", nil)
	assert.Contains(t, out, "r4 c4")
}

func TestRenderOctaveMarks(t *testing.T) {
	assert := assert.New(t)
	out := render(t, " .\n|1 2\n :", nil)

	// The dot raises the first note, the colon drops it two octaves.
	assert.Contains(out, "c,")
	assert.Contains(out, "d4")
}

func TestRenderSargamAccidentals(t *testing.T) {
	out := render(t, "S r M", nil)
	// Komal re is d flat, tivra Ma is f sharp.
	assert.Contains(t, out, "c4 des4 fis4")
}

func TestPitchNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("c", pitchName(model.N1, 0))
	assert.Equal("cis'", pitchName(model.N1s, 1))
	assert.Equal("bes,,", pitchName(model.N7b, -2))
}

func TestFractionToLily(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("4", fractionToLily(1, 4))
	assert.Equal("8", fractionToLily(1, 8))
	assert.Equal("4.", fractionToLily(3, 8))
	assert.Equal("2..", fractionToLily(7, 8))
}
