package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubIndex_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		table BreakpointTable
		ppb   float64
		want  int
	}{
		{"NO2 zero", NO2Breakpoints, 0, 0},
		{"NO2 top of Good", NO2Breakpoints, 53, 50},
		{"NO2 bottom of Moderate", NO2Breakpoints, 54, 51},
		{"NO2 top of Moderate", NO2Breakpoints, 100, 100},
		{"NO2 top of table", NO2Breakpoints, 2049, 500},
		{"O3 top of Good", O3Breakpoints, 54, 50},
		{"O3 bottom of Moderate", O3Breakpoints, 55, 51},
		{"O3 top of Moderate", O3Breakpoints, 70, 100},
		{"HCHO top of Good", HCHOBreakpoints, 10, 50},
		{"HCHO bottom of Moderate", HCHOBreakpoints, 11, 51},
		{"HCHO top of Moderate", HCHOBreakpoints, 30, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.table.SubIndex(Measured(tt.ppb))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubIndex_Interpolation(t *testing.T) {
	t.Run("midpoint of range", func(t *testing.T) {
		// NO2 [54,100] -> [51,100]: at 77 the index is 51 + 23/46*49 = 75.5,
		// rounded half away from zero to 76.
		got, ok := NO2Breakpoints.SubIndex(Measured(77))
		require.True(t, ok)
		assert.Equal(t, 76, got)
	})

	t.Run("monotonically increasing", func(t *testing.T) {
		prev := -1
		for ppb := 0.0; ppb <= 2100; ppb += 0.5 {
			got, ok := NO2Breakpoints.SubIndex(Measured(ppb))
			require.True(t, ok)
			assert.GreaterOrEqual(t, got, prev, "ppb=%g", ppb)
			prev = got
		}
	})

	t.Run("gap between ranges clamps to next lower bound", func(t *testing.T) {
		// 53.5 ppb falls between the Good and Moderate NO2 ranges; it must
		// land at the bottom of Moderate, not at the table ceiling.
		got, ok := NO2Breakpoints.SubIndex(Measured(53.5))
		require.True(t, ok)
		assert.Equal(t, 51, got)
	})
}

func TestSubIndex_Saturation(t *testing.T) {
	tests := []struct {
		name  string
		table BreakpointTable
		ppb   float64
		want  int
	}{
		{"NO2 far beyond table", NO2Breakpoints, 5000, 500},
		{"NO2 just beyond table", NO2Breakpoints, 2050, 500},
		{"O3 beyond table", O3Breakpoints, 1000, 300},
		{"HCHO beyond table", HCHOBreakpoints, 500, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.table.SubIndex(Measured(tt.ppb))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubIndex_Invalid(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, ok := NO2Breakpoints.SubIndex(Missing())
		assert.False(t, ok)
	})

	t.Run("negative", func(t *testing.T) {
		_, ok := NO2Breakpoints.SubIndex(Measured(-1))
		assert.False(t, ok)
	})
}

func TestValidateTables(t *testing.T) {
	assert.NoError(t, ValidateTables())
}

func TestValidate_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		table   BreakpointTable
		wantErr string
	}{
		{
			"empty",
			BreakpointTable{Pollutant: NO2},
			"empty table",
		},
		{
			"does not start at zero",
			BreakpointTable{Pollutant: NO2, Ranges: []BreakpointRange{{1, 53, 0, 50}}},
			"want 0",
		},
		{
			"inverted concentration range",
			BreakpointTable{Pollutant: O3, Ranges: []BreakpointRange{{0, 54, 0, 50}, {55, 40, 51, 100}}},
			"inverted",
		},
		{
			"inverted index range",
			BreakpointTable{Pollutant: O3, Ranges: []BreakpointRange{{0, 54, 50, 0}}},
			"inverted",
		},
		{
			"non-contiguous",
			BreakpointTable{Pollutant: HCHO, Ranges: []BreakpointRange{{0, 10, 0, 50}, {20, 30, 51, 100}}},
			"contiguous",
		},
		{
			"overlapping indices",
			BreakpointTable{Pollutant: HCHO, Ranges: []BreakpointRange{{0, 10, 0, 50}, {11, 30, 50, 100}}},
			"overlaps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
