package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected Severity
	}{
		{name: "plain critical", answer: "critical", expected: SeverityCritical},
		{name: "uppercase with punctuation", answer: "CRITICAL.", expected: SeverityCritical},
		{name: "plain major", answer: "Major", expected: SeverityMajor},
		{name: "plain minor", answer: "minor", expected: SeverityMinor},
		{name: "critical wins over major", answer: "this is critical, worse than major", expected: SeverityCritical},
		{name: "verbose answer", answer: "The severity is: MAJOR", expected: SeverityMajor},
		{name: "unrecognized defaults to minor", answer: "I cannot tell", expected: SeverityMinor},
		{name: "empty defaults to minor", answer: "", expected: SeverityMinor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSeverity(tt.answer))
		})
	}
}

func TestSeverity_Valid(t *testing.T) {
	assert.True(t, SeverityMinor.Valid())
	assert.True(t, SeverityMajor.Valid())
	assert.True(t, SeverityCritical.Valid())
	assert.False(t, Severity("catastrophic").Valid())
	assert.False(t, Severity("").Valid())
}
