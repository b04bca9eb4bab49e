package domain

// Column-to-surface conversion factors (molecules/cm² per ppb). These are
// rough approximations of the retrieval inversion, not physically exact:
// the satellite reports a vertically integrated column, and a single fixed
// divisor stands in for the full boundary-layer profile.
const (
	no2ColumnPerPpb  = 2e15
	hchoColumnPerPpb = 1e16
)

// ColumnToPpb converts a satellite column density to an approximate surface
// mixing ratio for the given pollutant. O3 is already reported in ppb and
// passes through unchanged. Missing propagates; negative values also pass
// through and are rejected later by the breakpoint lookup.
func ColumnToPpb(c Concentration, p Pollutant) Concentration {
	if !c.Valid {
		return Missing()
	}
	switch p {
	case NO2:
		return Measured(c.Value / no2ColumnPerPpb)
	case HCHO:
		return Measured(c.Value / hchoColumnPerPpb)
	default:
		return c
	}
}
