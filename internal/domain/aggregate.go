package domain

// Reading is the per-pollutant breakdown of one assessment: the raw column
// density (absent for O3, which is measured directly in ppb), the converted
// surface concentration, and the resulting sub-index when one exists.
type Reading struct {
	Column      Concentration
	PPB         Concentration
	SubIndex    int
	HasSubIndex bool
}

// Assessment is the combined result of one AQI computation. AQI and Dominant
// are meaningful only when Valid is true; an invalid assessment means no
// pollutant produced a usable sub-index.
type Assessment struct {
	AQI      int
	Valid    bool
	Dominant Pollutant
	Readings map[Pollutant]Reading
}

// Combine computes the overall AQI from raw measurements: NO2 and HCHO as
// satellite column densities, O3 directly in ppb. Each pollutant is converted
// and mapped through its breakpoint table; missing or negative inputs are
// silently excluded. The overall AQI is the maximum sub-index across the
// remaining pollutants and the dominant pollutant is the one achieving it,
// ties broken by the fixed priority NO2 > O3 > HCHO.
func Combine(no2Column, hchoColumn, o3Ppb Concentration) Assessment {
	a := Assessment{
		Dominant: PollutantUnknown,
		Readings: map[Pollutant]Reading{
			NO2:  newReading(no2Column, ColumnToPpb(no2Column, NO2), NO2Breakpoints),
			O3:   newReading(Missing(), o3Ppb, O3Breakpoints),
			HCHO: newReading(hchoColumn, ColumnToPpb(hchoColumn, HCHO), HCHOBreakpoints),
		},
	}

	for _, p := range Pollutants {
		r := a.Readings[p]
		if !r.HasSubIndex {
			continue
		}
		// Strict > keeps the earlier pollutant in priority order on ties.
		if !a.Valid || r.SubIndex > a.AQI {
			a.AQI = r.SubIndex
			a.Dominant = p
			a.Valid = true
		}
	}

	return a
}

func newReading(column, ppb Concentration, table BreakpointTable) Reading {
	idx, ok := table.SubIndex(ppb)
	return Reading{
		Column:      column,
		PPB:         ppb,
		SubIndex:    idx,
		HasSubIndex: ok,
	}
}
