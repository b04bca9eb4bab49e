package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_Thresholds(t *testing.T) {
	tests := []struct {
		aqi        int
		wantNumber int
		wantLabel  string
	}{
		{0, 0, "Good"},
		{50, 0, "Good"},
		{51, 1, "Moderate"},
		{100, 1, "Moderate"},
		{101, 2, "Unhealthy for Sensitive Groups"},
		{150, 2, "Unhealthy for Sensitive Groups"},
		{151, 3, "Unhealthy"},
		{200, 3, "Unhealthy"},
		{201, 4, "Very Unhealthy"},
		{300, 4, "Very Unhealthy"},
		{301, 5, "Hazardous"},
		{500, 5, "Hazardous"},
	}

	for _, tt := range tests {
		got := Categorize(tt.aqi)
		assert.Equal(t, tt.wantNumber, got.Number, "aqi=%d", tt.aqi)
		assert.Equal(t, tt.wantLabel, got.Label, "aqi=%d", tt.aqi)
		assert.NotEmpty(t, got.Recommendation, "aqi=%d", tt.aqi)
	}
}

func TestCategory_InvalidAssessment(t *testing.T) {
	a := Combine(Missing(), Missing(), Missing())

	cat := a.Category()
	assert.Equal(t, UnknownCategory, cat)
	assert.Equal(t, "Unknown", cat.Label)
	assert.Equal(t, "No data available", cat.Recommendation)
}
