package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumJSONDecoding(t *testing.T) {
	assert := assert.New(t)

	var d Degree
	assert.NoError(json.Unmarshal([]byte(`"N4s"`), &d))
	assert.Equal(N4s, d)

	var s NotationSystem
	assert.NoError(json.Unmarshal([]byte(`"sargam"`), &s))
	assert.Equal(SystemSargam, s)

	var b BarlineType
	assert.NoError(json.Unmarshal([]byte(`"repeat_both"`), &b))
	assert.Equal(BarlineRepeatBoth, b)

	assert.Error(json.Unmarshal([]byte(`"no_such_system"`), &s))
}
