package domain

import (
	"context"
	"math"
	"strings"
)

// Pollutant identifies one of the satellite-observed trace gases.
type Pollutant string

const (
	NO2  Pollutant = "NO2"
	O3   Pollutant = "O3"
	HCHO Pollutant = "HCHO"

	// PollutantUnknown is reported as the dominant pollutant when no
	// pollutant produced a valid sub-index.
	PollutantUnknown Pollutant = "Unknown"
)

// Pollutants lists the supported pollutants in priority order. The order is
// also the tie-break rule for dominant-pollutant selection: when two
// pollutants produce the same maximum sub-index, the one listed first wins.
var Pollutants = []Pollutant{NO2, O3, HCHO}

// ParsePollutant converts a case-insensitive pollutant name to a Pollutant.
func ParsePollutant(s string) (Pollutant, bool) {
	switch Pollutant(strings.ToUpper(strings.TrimSpace(s))) {
	case NO2:
		return NO2, true
	case O3:
		return O3, true
	case HCHO:
		return HCHO, true
	default:
		return "", false
	}
}

// Unit returns the unit of the raw upstream measurement: column density for
// NO2 and HCHO, mixing ratio for O3.
func (p Pollutant) Unit() string {
	if p == O3 {
		return "ppb"
	}
	return "molecules/cm²"
}

// Concentration is an optional scalar measurement. Upstream retrieval can
// fail or return no matching variable, so "missing" is a first-class state
// rather than a NaN sentinel; arithmetic on a missing value is a programming
// error the Valid flag makes visible.
type Concentration struct {
	Value float64
	Valid bool
}

// Measured wraps a raw scalar. NaN collapses to missing at the boundary so
// the sentinel convention of upstream datasets never leaks further in.
func Measured(v float64) Concentration {
	if math.IsNaN(v) {
		return Concentration{}
	}
	return Concentration{Value: v, Valid: true}
}

// Missing returns the absent measurement.
func Missing() Concentration {
	return Concentration{}
}

// Provider abstracts a source of pollutant measurements for a location
// (e.g. the NASA Harmony client, or the deterministic mock source).
// Implementations return a missing Concentration, not an error, when data
// was retrieved but contained no usable value for the pollutant.
type Provider interface {
	Fetch(ctx context.Context, lat, lon float64, p Pollutant) (Concentration, error)
}
