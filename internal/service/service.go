// Package service orchestrates AQI requests: fetching measurements from the
// satellite provider (falling back to mock data when a fetch fails),
// running the domain computation, and assembling API responses.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/data-wizards/aqi-service/internal/adapter/mockdata"
	"github.com/data-wizards/aqi-service/internal/domain"
	"github.com/data-wizards/aqi-service/internal/observability"
)

// ErrNoValidPollutants signals that every pollutant was missing or invalid,
// so no AQI could be computed. Callers must surface this as an explicit
// failure, never as a default AQI of zero.
var ErrNoValidPollutants = errors.New("no valid pollutant data")

// maxGridSamples caps grid responses to keep them cheap to render and serve.
const maxGridSamples = 100

// AQIService computes AQI reports for locations.
type AQIService struct {
	primary domain.Provider // nil when the satellite provider is disabled
	mock    *mockdata.Provider
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates an AQIService. Pass a nil primary provider to serve mock data
// exclusively (demo mode).
func New(primary domain.Provider, mock *mockdata.Provider, logger *slog.Logger, metrics *observability.Metrics) *AQIService {
	return &AQIService{
		primary: primary,
		mock:    mock,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness verifies the breakpoint tables the whole computation rests
// on, so a malformed table keeps the service out of rotation instead of
// producing wrong indices.
func (s *AQIService) CheckReadiness(_ context.Context) error {
	return domain.ValidateTables()
}

// Current computes the full AQI report for a location. Returns
// ErrNoValidPollutants when no pollutant produced a valid sub-index.
func (s *AQIService) Current(ctx context.Context, lat, lon float64, name string) (Report, error) {
	no2 := s.fetch(ctx, lat, lon, domain.NO2)
	o3 := s.fetch(ctx, lat, lon, domain.O3)
	hcho := s.fetch(ctx, lat, lon, domain.HCHO)

	a := domain.Combine(no2, hcho, o3)
	if !a.Valid {
		s.metrics.AQIComputations.WithLabelValues("no_valid_pollutants").Inc()
		return Report{}, ErrNoValidPollutants
	}
	s.metrics.AQIComputations.WithLabelValues("ok").Inc()

	cat := a.Category()
	s.logger.Info("aqi computed",
		"lat", lat,
		"lon", lon,
		"aqi", a.AQI,
		"dominant", a.Dominant,
		"category", cat.Label,
	)

	return Report{
		AQI:                  a.AQI,
		Category:             cat.Label,
		CategoryNumber:       cat.Number,
		Pollutants:           newBreakdown(a),
		Timestamp:            clock.Now().UTC().Format(time.RFC3339),
		Location:             Location{Latitude: lat, Longitude: lon, Name: name},
		HealthRecommendation: cat.Recommendation,
		DominantPollutant:    string(a.Dominant),
	}, nil
}

// SinglePollutant reports one pollutant's measurement, converted
// concentration, and sub-index for a location. The pollutant must be one of
// the supported three (the HTTP layer validates the path parameter).
func (s *AQIService) SinglePollutant(ctx context.Context, lat, lon float64, p domain.Pollutant) PollutantDetail {
	raw := s.fetch(ctx, lat, lon, p)
	ppb := domain.ColumnToPpb(raw, p)

	d := PollutantDetail{
		Pollutant: string(p),
		Ppb:       floatPtr(ppb),
		Unit:      p.Unit(),
	}
	if p != domain.O3 {
		d.ColumnDensity = floatPtr(raw)
	}

	if table, ok := domain.TableFor(p); ok {
		if idx, valid := table.SubIndex(ppb); valid {
			d.AQI = &idx
		}
	}
	return d
}

// Grid returns placeholder AQI samples over a bounding box. Real gridded
// retrieval is out of scope; values are randomly generated for heatmap
// demos, capped at maxGridSamples points.
func (s *AQIService) Grid(req GridRequest) GridResponse {
	samples := gridSampleCount(req)
	data := make([]GridPoint, 0, samples)

	for i := 0; i < samples; i++ {
		aqi := s.mock.IntN(20, 150)
		data = append(data, GridPoint{
			Lat:      s.mock.Float64InRange(req.LatMin, req.LatMax),
			Lon:      s.mock.Float64InRange(req.LonMin, req.LonMax),
			AQI:      aqi,
			Category: domain.Categorize(aqi).Label,
		})
	}

	return GridResponse{
		Bounds: GridBounds{
			LatMin: req.LatMin,
			LatMax: req.LatMax,
			LonMin: req.LonMin,
			LonMax: req.LonMax,
		},
		Resolution: req.Resolution,
		Data:       data,
	}
}

// GridRequest is a validated grid query.
type GridRequest struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
	Resolution     float64
}

func gridSampleCount(req GridRequest) int {
	nLat := int((req.LatMax - req.LatMin) / req.Resolution)
	nLon := int((req.LonMax - req.LonMin) / req.Resolution)
	samples := nLat * nLon
	if samples > maxGridSamples {
		return maxGridSamples
	}
	if samples < 0 {
		return 0
	}
	return samples
}

// fetch retrieves one pollutant's measurement. A primary-provider error
// falls back to mock data (the demo policy of the upstream system); a clean
// fetch that simply contains no value stays missing so aggregation can
// exclude the pollutant honestly.
func (s *AQIService) fetch(ctx context.Context, lat, lon float64, p domain.Pollutant) domain.Concentration {
	if s.primary == nil {
		c, _ := s.mock.Fetch(ctx, lat, lon, p)
		return c
	}

	start := time.Now()
	c, err := s.primary.Fetch(ctx, lat, lon, p)
	s.metrics.FetchDuration.WithLabelValues(string(p)).Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.SatelliteFetches.WithLabelValues(string(p), "error").Inc()
		s.metrics.MockFallbacks.WithLabelValues(string(p)).Inc()
		s.logger.Warn("satellite fetch failed, serving mock data",
			"pollutant", p,
			"lat", lat,
			"lon", lon,
			"error", err,
		)
		c, _ = s.mock.Fetch(ctx, lat, lon, p)
		return c
	}

	if !c.Valid {
		s.metrics.SatelliteFetches.WithLabelValues(string(p), "empty").Inc()
		return c
	}

	s.metrics.SatelliteFetches.WithLabelValues(string(p), "success").Inc()
	return c
}
