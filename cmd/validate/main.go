// Command validate performs integrity checks on the AQI computation: the
// structural invariants of every breakpoint table, known boundary values of
// the interpolation, the unit-conversion factors, and the category
// thresholds. Run it after editing any table to catch transcription errors
// before they ship.
//
// Usage:
//
//	go run ./cmd/validate
package main

import (
	"fmt"
	"os"

	"github.com/data-wizards/aqi-service/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	os.Exit(run())
}

func run() int {
	phases := []*phase{
		validateTables(),
		validateBoundaries(),
		validateSaturation(),
		validateConversions(),
		validateCategories(),
		validateCombined(),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      %s\n", e)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d phases failed\n", failed, len(phases))
		return 1
	}
	fmt.Printf("\nall %d phases passed\n", len(phases))
	return 0
}

func validateTables() *phase {
	p := &phase{name: "breakpoint table structure"}
	if err := domain.ValidateTables(); err != nil {
		p.errorf("%v", err)
	}
	return p
}

func validateBoundaries() *phase {
	p := &phase{name: "interpolation boundaries"}

	checks := []struct {
		table domain.BreakpointTable
		ppb   float64
		want  int
	}{
		{domain.NO2Breakpoints, 0, 0},
		{domain.NO2Breakpoints, 53, 50},
		{domain.NO2Breakpoints, 54, 51},
		{domain.NO2Breakpoints, 100, 100},
		{domain.O3Breakpoints, 54, 50},
		{domain.O3Breakpoints, 55, 51},
		{domain.O3Breakpoints, 70, 100},
		{domain.HCHOBreakpoints, 10, 50},
		{domain.HCHOBreakpoints, 30, 100},
	}

	for _, c := range checks {
		got, ok := c.table.SubIndex(domain.Measured(c.ppb))
		if !ok {
			p.errorf("%s at %g ppb: no sub-index", c.table.Pollutant, c.ppb)
			continue
		}
		if got != c.want {
			p.errorf("%s at %g ppb: got %d, want %d", c.table.Pollutant, c.ppb, got, c.want)
		}
	}
	return p
}

func validateSaturation() *phase {
	p := &phase{name: "ceiling saturation"}

	checks := []struct {
		table domain.BreakpointTable
		ppb   float64
		want  int
	}{
		{domain.NO2Breakpoints, 5000, 500},
		{domain.O3Breakpoints, 1000, 300},
		{domain.HCHOBreakpoints, 500, 300},
	}

	for _, c := range checks {
		got, ok := c.table.SubIndex(domain.Measured(c.ppb))
		if !ok || got != c.want {
			p.errorf("%s at %g ppb: got %d (ok=%v), want %d", c.table.Pollutant, c.ppb, got, ok, c.want)
		}
	}
	return p
}

func validateConversions() *phase {
	p := &phase{name: "column-to-ppb conversion"}

	no2 := domain.ColumnToPpb(domain.Measured(1.06e17), domain.NO2)
	if !no2.Valid || no2.Value != 53 {
		p.errorf("NO2 1.06e17: got %+v, want 53 ppb", no2)
	}
	hcho := domain.ColumnToPpb(domain.Measured(3e17), domain.HCHO)
	if !hcho.Valid || hcho.Value != 30 {
		p.errorf("HCHO 3e17: got %+v, want 30 ppb", hcho)
	}
	o3 := domain.ColumnToPpb(domain.Measured(70), domain.O3)
	if !o3.Valid || o3.Value != 70 {
		p.errorf("O3 must pass through unchanged, got %+v", o3)
	}
	return p
}

func validateCategories() *phase {
	p := &phase{name: "category thresholds"}

	checks := []struct {
		aqi  int
		want int
	}{
		{50, 0}, {51, 1}, {100, 1}, {101, 2}, {150, 2},
		{151, 3}, {200, 3}, {201, 4}, {300, 4}, {301, 5},
	}
	for _, c := range checks {
		if got := domain.Categorize(c.aqi).Number; got != c.want {
			p.errorf("AQI %d: got category %d, want %d", c.aqi, got, c.want)
		}
	}
	return p
}

func validateCombined() *phase {
	p := &phase{name: "combined assessment"}

	a := domain.Combine(
		domain.Measured(1.06e17),
		domain.Measured(3e17),
		domain.Measured(70),
	)
	if !a.Valid {
		p.errorf("known-good inputs produced invalid assessment")
		return p
	}
	if a.AQI != 100 {
		p.errorf("overall AQI: got %d, want 100", a.AQI)
	}
	if a.Dominant != domain.O3 {
		p.errorf("dominant: got %s, want O3 (tie-break priority)", a.Dominant)
	}

	empty := domain.Combine(domain.Missing(), domain.Missing(), domain.Missing())
	if empty.Valid || empty.Dominant != domain.PollutantUnknown {
		p.errorf("all-missing inputs must yield invalid assessment with Unknown dominant")
	}
	return p
}
