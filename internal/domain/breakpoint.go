package domain

import (
	"fmt"
	"math"
)

// BreakpointRange maps a concentration interval (inclusive at both ends) to
// an AQI sub-index interval per the EPA piecewise-linear convention.
type BreakpointRange struct {
	ConcLow   float64
	ConcHigh  float64
	IndexLow  int
	IndexHigh int
}

// BreakpointTable is an immutable ordered sequence of disjoint ranges for one
// pollutant, ascending in concentration, starting at zero. The last range's
// IndexHigh is the saturation ceiling for concentrations beyond the table.
type BreakpointTable struct {
	Pollutant Pollutant
	Ranges    []BreakpointRange
}

// EPA AQI breakpoints for NO2 (ppb, 1-hour average).
var NO2Breakpoints = BreakpointTable{
	Pollutant: NO2,
	Ranges: []BreakpointRange{
		{0, 53, 0, 50},         // Good
		{54, 100, 51, 100},     // Moderate
		{101, 360, 101, 150},   // Unhealthy for Sensitive Groups
		{361, 649, 151, 200},   // Unhealthy
		{650, 1249, 201, 300},  // Very Unhealthy
		{1250, 2049, 301, 500}, // Hazardous
	},
}

// EPA AQI breakpoints for O3 (ppb, 8-hour average).
var O3Breakpoints = BreakpointTable{
	Pollutant: O3,
	Ranges: []BreakpointRange{
		{0, 54, 0, 50},
		{55, 70, 51, 100},
		{71, 85, 101, 150},
		{86, 105, 151, 200},
		{106, 200, 201, 300},
	},
}

// Approximate health-based thresholds for HCHO (ppb). Formaldehyde has no
// official AQI breakpoints; these mirror the O3 index structure.
var HCHOBreakpoints = BreakpointTable{
	Pollutant: HCHO,
	Ranges: []BreakpointRange{
		{0, 10, 0, 50},
		{11, 30, 51, 100},
		{31, 50, 101, 150},
		{51, 80, 151, 200},
		{81, 120, 201, 300},
	},
}

// TableFor returns the breakpoint table for a pollutant.
func TableFor(p Pollutant) (BreakpointTable, bool) {
	switch p {
	case NO2:
		return NO2Breakpoints, true
	case O3:
		return O3Breakpoints, true
	case HCHO:
		return HCHOBreakpoints, true
	default:
		return BreakpointTable{}, false
	}
}

// SubIndex maps a ppb concentration through the table by linear
// interpolation:
//
//	index = (IndexHigh-IndexLow)/(ConcHigh-ConcLow) * (c-ConcLow) + IndexLow
//
// rounded half away from zero (math.Round). Missing or negative
// concentrations yield no index. Fractional concentrations that fall in the
// unit gap between two integer-edged ranges are clamped up to the next
// range's lower bound. Concentrations beyond the last range saturate at the
// table ceiling rather than extrapolating.
func (t BreakpointTable) SubIndex(c Concentration) (int, bool) {
	if !c.Valid || c.Value < 0 {
		return 0, false
	}

	for _, r := range t.Ranges {
		if c.Value > r.ConcHigh {
			continue
		}
		v := math.Max(c.Value, r.ConcLow)
		span := float64(r.IndexHigh-r.IndexLow) / (r.ConcHigh - r.ConcLow)
		return int(math.Round(span*(v-r.ConcLow) + float64(r.IndexLow))), true
	}

	return t.Ranges[len(t.Ranges)-1].IndexHigh, true
}

// Validate checks the structural invariants the interpolation relies on:
// the table is non-empty, starts at zero, each range is well-formed, ranges
// are contiguous with unit gaps in ascending order, and sub-index intervals
// never decrease.
func (t BreakpointTable) Validate() error {
	if len(t.Ranges) == 0 {
		return fmt.Errorf("%s breakpoints: empty table", t.Pollutant)
	}
	if t.Ranges[0].ConcLow != 0 {
		return fmt.Errorf("%s breakpoints: first range starts at %g, want 0", t.Pollutant, t.Ranges[0].ConcLow)
	}

	for i, r := range t.Ranges {
		if r.ConcLow > r.ConcHigh {
			return fmt.Errorf("%s breakpoints[%d]: concentration range [%g, %g] inverted", t.Pollutant, i, r.ConcLow, r.ConcHigh)
		}
		if r.IndexLow > r.IndexHigh {
			return fmt.Errorf("%s breakpoints[%d]: index range [%d, %d] inverted", t.Pollutant, i, r.IndexLow, r.IndexHigh)
		}
		if i == 0 {
			continue
		}
		prev := t.Ranges[i-1]
		if r.ConcLow != prev.ConcHigh+1 {
			return fmt.Errorf("%s breakpoints[%d]: range starts at %g, want %g (contiguous with previous)", t.Pollutant, i, r.ConcLow, prev.ConcHigh+1)
		}
		if r.IndexLow <= prev.IndexHigh {
			return fmt.Errorf("%s breakpoints[%d]: index %d overlaps previous high %d", t.Pollutant, i, r.IndexLow, prev.IndexHigh)
		}
	}

	return nil
}

// ValidateTables checks every pollutant table. Wired into readiness so a
// malformed table is caught before the service takes traffic.
func ValidateTables() error {
	for _, p := range Pollutants {
		table, _ := TableFor(p)
		if err := table.Validate(); err != nil {
			return err
		}
	}
	return nil
}
