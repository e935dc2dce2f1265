package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaralipi/swaralipi/parse"
	"github.com/swaralipi/swaralipi/rhythm"
	"github.com/swaralipi/swaralipi/spatial"
	"gitlab.com/gomidi/midi/v2/smf"
)

func encode(t *testing.T, input string) *smf.SMF {
	t.Helper()
	doc, err := parse.ParseDocument(input)
	assert.NoError(t, err)
	spatial.BindDocument(doc)
	rhythm.AnalyzeDocument(doc)
	return Encode(doc)
}

func noteOns(s *smf.SMF) []uint8 {
	var keys []uint8
	for _, ev := range s.Tracks[0] {
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
			keys = append(keys, key)
		}
	}
	return keys
}

func TestEncodeSimpleScale(t *testing.T) {
	assert := assert.New(t)
	s := encode(t, "|1 2 3")

	assert.Len(s.Tracks, 1)
	assert.Equal([]uint8{60, 62, 64}, noteOns(s))
}

func TestEncodeOctaveShift(t *testing.T) {
	s := encode(t, " .\n|1")
	assert.Equal(t, []uint8{72}, noteOns(s))
}

func TestEncodeTieDoesNotRestrike(t *testing.T) {
	s := encode(t, "|1- 1")
	assert.Equal(t, []uint8{60}, noteOns(s))
}

func TestEncodeRestAdvancesClock(t *testing.T) {
	assert := assert.New(t)
	s := encode(t, "|1 , 2")

	assert.Equal([]uint8{60, 62}, noteOns(s))

	// The second note starts a quarter late because of the rest.
	var clock uint32
	sawSecondOn := false
	for _, ev := range s.Tracks[0] {
		clock += ev.Delta
		var ch, key, vel uint8
		if ev.Message.GetNoteOn(&ch, &key, &vel) && key == 62 {
			sawSecondOn = true
			assert.Equal(uint32(2*960), clock)
		}
	}
	assert.True(sawSecondOn)
}

func TestEncodeWritesBytes(t *testing.T) {
	assert := assert.New(t)
	doc, err := parse.ParseDocument("tempo: 90\n\n|S R G")
	assert.NoError(err)
	spatial.BindDocument(doc)
	rhythm.AnalyzeDocument(doc)

	var buf bytes.Buffer
	assert.NoError(WriteTo(doc, &buf))
	assert.True(bytes.HasPrefix(buf.Bytes(), []byte("MThd")))
}
