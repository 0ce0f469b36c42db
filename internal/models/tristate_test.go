package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriState_Label(t *testing.T) {
	assert.Equal(t, "Yes", TriStateYes.Label())
	assert.Equal(t, "No", TriStateNo.Label())
	assert.Equal(t, "Unknown", TriStateUnknown.Label())
	assert.Equal(t, "Unknown", TriState("").Label())
}

func TestTriState_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected TriState
	}{
		{name: "null stays unknown", payload: `null`, expected: TriStateUnknown},
		{name: "true maps to yes", payload: `true`, expected: TriStateYes},
		{name: "false maps to no", payload: `false`, expected: TriStateNo},
		{name: "yes string", payload: `"yes"`, expected: TriStateYes},
		{name: "no string", payload: `"no"`, expected: TriStateNo},
		{name: "unknown string", payload: `"unknown"`, expected: TriStateUnknown},
		{name: "empty string stays unknown", payload: `""`, expected: TriStateUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value TriState
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &value))
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestTriState_UnmarshalJSON_Invalid(t *testing.T) {
	var value TriState
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &value))
	assert.Error(t, json.Unmarshal([]byte(`42`), &value))
}

func TestTriState_MarshalJSON_EmptyIsUnknown(t *testing.T) {
	data, err := json.Marshal(TriState(""))
	require.NoError(t, err)
	assert.Equal(t, `"unknown"`, string(data))
}
