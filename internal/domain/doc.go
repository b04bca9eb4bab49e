// Package domain implements the AQI computation over satellite-observed
// pollutant measurements (NO2, O3, HCHO).
//
// # Data Source
//
// Measurements come from NASA TEMPO retrievals served through the Harmony
// API. NO2 and HCHO arrive as tropospheric column densities in molecules/cm²;
// O3 arrives as a below-cloud mixing ratio in ppb. A retrieval can fail or
// return no matching variable, so every value entering this package is an
// optional [Concentration] rather than a bare float.
//
// # Unit Conversion
//
// Column densities are reduced to approximate surface mixing ratios by fixed
// divisors:
//
//	NO2:  ppb = column / 2e15
//	HCHO: ppb = column / 1e16
//
// These are crude stand-ins for the full boundary-layer inversion and are
// documented as approximations wherever the numbers surface.
//
// # Breakpoint Interpolation
//
// Each pollutant has an ordered table of concentration ranges mapped to AQI
// sub-index ranges (EPA tables for NO2 and O3; an O3-shaped approximation
// for HCHO, which has no official AQI). A concentration interpolates linearly
// within its range:
//
//	index = (I_high - I_low) / (C_high - C_low) * (C - C_low) + I_low
//
// rounded half away from zero. Values beyond the last range saturate at the
// table ceiling (e.g. NO2 at 5000 ppb reports 500, not an extrapolation).
// Negative and missing concentrations produce no sub-index.
//
// # Aggregation and Categories
//
// The overall AQI is the maximum sub-index across pollutants that produced
// one, following EPA guidance that the worst pollutant determines the index.
// The pollutant achieving the maximum is reported as dominant; ties break by
// the fixed priority NO2 > O3 > HCHO. When no pollutant qualifies the
// assessment is invalid and callers must surface that as an explicit failure,
// never as AQI zero.
//
// Final AQI values map to six severity levels:
//
//	  0- 50  Good
//	 51-100  Moderate
//	101-150  Unhealthy for Sensitive Groups
//	151-200  Unhealthy
//	201-300  Very Unhealthy
//	   >300  Hazardous
//
// Everything in this package is a pure function over its inputs: no I/O, no
// shared mutable state, safe to call from any number of request handlers.
package domain
