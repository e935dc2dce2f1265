package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaralipi/swaralipi/model"
)

func TestPureInputsScoreOne(t *testing.T) {
	cases := map[string]model.NotationSystem{
		"|1 2 3 4|":       model.SystemNumber,
		"|C D E F# Bb|":   model.SystemWestern,
		"|S r R g G m M|": model.SystemSargam,
		"|dha dhin ta ka": model.SystemTabla,
		"स रे ग म":        model.SystemBhatkhande,
	}
	for input, want := range cases {
		got := Detect(input)
		assert.Equal(t, want, got.System, input)
		assert.InDelta(t, 1.0, got.Score, 1e-9, input)
	}
}

func TestEmptyInputIsNumberZero(t *testing.T) {
	assert := assert.New(t)
	got := Detect("")
	assert.Equal(model.SystemNumber, got.System)
	assert.Equal(0.0, got.Score)

	got = Detect("   \n  | | ")
	assert.Equal(model.SystemNumber, got.System)
	assert.Equal(0.0, got.Score)
}

func TestTieBreakOrder(t *testing.T) {
	// "D" is a full match for Sargam, Western and Bhatkhande alike;
	// Sargam comes first in the documented order.
	got := Detect("D")
	assert.Equal(t, model.SystemSargam, got.System)
}

func TestScoresCoverAllSystems(t *testing.T) {
	assert := assert.New(t)
	scores := Scores("|1 2 3|")
	assert.Len(scores, 5)
	assert.Equal(model.SystemTabla, scores[0].System)
	assert.Equal(model.SystemBhatkhande, scores[4].System)
}
