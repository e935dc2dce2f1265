package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swaralipi/swaralipi/model"
)

// The response crosses the wire as JSON and clients decode it back
// into the same structs, so the string-marshaled enums have to
// unmarshal too.
func TestParseResponseJSONRoundTrip(t *testing.T) {
	assert := assert.New(t)

	raw, err := json.Marshal(buildParseResponse("|1 2 3"))
	assert.NoError(err)

	var res model.ParseResponse
	assert.NoError(json.Unmarshal(raw, &res))

	assert.True(res.Success)
	if assert.NotEmpty(res.DetectedSystems) {
		assert.Equal(model.SystemNumber, res.DetectedSystems[0].System)
		assert.Equal(1.0, res.DetectedSystems[0].Score)
	}
}

func TestParseResponseScoresBestFirst(t *testing.T) {
	res := buildParseResponse("|S-R-G")

	assert := assert.New(t)
	if assert.NotEmpty(res.DetectedSystems) {
		assert.Equal(model.SystemSargam, res.DetectedSystems[0].System)
	}
	for i := 1; i < len(res.DetectedSystems); i++ {
		assert.LessOrEqual(res.DetectedSystems[i].Score, res.DetectedSystems[i-1].Score)
	}
}
