package service

import "github.com/data-wizards/aqi-service/internal/domain"

// Location echoes the requested coordinates back to the caller.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
}

// PollutantBreakdown is the per-pollutant detail of a report. Field names
// and units match the existing API clients: columns in molecules/cm²,
// concentrations in ppb. Nil means the value was unavailable.
type PollutantBreakdown struct {
	NO2Column  *float64 `json:"NO2_column"`
	NO2Ppb     *float64 `json:"NO2_ppb"`
	NO2AQI     *int     `json:"NO2_aqi"`
	O3Ppb      *float64 `json:"O3_ppb"`
	O3AQI      *int     `json:"O3_aqi"`
	HCHOColumn *float64 `json:"HCHO_column"`
	HCHOPpb    *float64 `json:"HCHO_ppb"`
	HCHOAQI    *int     `json:"HCHO_aqi"`
}

// Report is the full AQI response for a location.
type Report struct {
	AQI                  int                `json:"aqi"`
	Category             string             `json:"category"`
	CategoryNumber       int                `json:"category_number"`
	Pollutants           PollutantBreakdown `json:"pollutants"`
	Timestamp            string             `json:"timestamp"`
	Location             Location           `json:"location"`
	HealthRecommendation string             `json:"health_recommendation"`
	DominantPollutant    string             `json:"dominant_pollutant"`
}

// PollutantDetail is the response for a single-pollutant query.
type PollutantDetail struct {
	Pollutant     string   `json:"pollutant"`
	ColumnDensity *float64 `json:"column_density,omitempty"`
	Ppb           *float64 `json:"ppb"`
	AQI           *int     `json:"aqi"`
	Unit          string   `json:"unit"`
}

// GridBounds is the bounding box of a grid request, echoed in the response.
type GridBounds struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LonMin float64 `json:"lon_min"`
	LonMax float64 `json:"lon_max"`
}

// GridPoint is one sampled cell of a grid response.
type GridPoint struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	AQI      int     `json:"aqi"`
	Category string  `json:"category"`
}

// GridResponse holds placeholder AQI samples over a bounding box, for
// heatmap rendering.
type GridResponse struct {
	Bounds     GridBounds  `json:"bounds"`
	Resolution float64     `json:"resolution"`
	Data       []GridPoint `json:"data"`
}

func newBreakdown(a domain.Assessment) PollutantBreakdown {
	no2 := a.Readings[domain.NO2]
	o3 := a.Readings[domain.O3]
	hcho := a.Readings[domain.HCHO]

	return PollutantBreakdown{
		NO2Column:  floatPtr(no2.Column),
		NO2Ppb:     floatPtr(no2.PPB),
		NO2AQI:     indexPtr(no2),
		O3Ppb:      floatPtr(o3.PPB),
		O3AQI:      indexPtr(o3),
		HCHOColumn: floatPtr(hcho.Column),
		HCHOPpb:    floatPtr(hcho.PPB),
		HCHOAQI:    indexPtr(hcho),
	}
}

func floatPtr(c domain.Concentration) *float64 {
	if !c.Valid {
		return nil
	}
	v := c.Value
	return &v
}

func indexPtr(r domain.Reading) *int {
	if !r.HasSubIndex {
		return nil
	}
	v := r.SubIndex
	return &v
}
