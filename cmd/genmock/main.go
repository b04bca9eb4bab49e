// Command genmock generates a deterministic fixture of AQI reports for a set
// of sample cities, computed through the real domain code over seeded mock
// measurements. Frontend and integration test suites consume the fixture to
// get realistic responses without calling the live API.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/aqi_reports.json -seed 42
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/data-wizards/aqi-service/internal/adapter/mockdata"
	"github.com/data-wizards/aqi-service/internal/observability"
	"github.com/data-wizards/aqi-service/internal/service"
)

// sampleCities are spread across TEMPO's North American coverage.
var sampleCities = []struct {
	name     string
	lat, lon float64
}{
	{"New York", 40.7128, -74.0060},
	{"Los Angeles", 34.0522, -118.2437},
	{"Chicago", 41.8781, -87.6298},
	{"Houston", 29.7604, -95.3698},
	{"Phoenix", 33.4484, -112.0740},
	{"Denver", 39.7392, -104.9903},
	{"Seattle", 47.6062, -122.3321},
	{"Mexico City", 19.4326, -99.1332},
	{"Toronto", 43.6532, -79.3832},
	{"Austin", 30.2672, -97.7431},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the AQI report fixture")
	seed := flag.Int64("seed", 42, "mock data seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	// Fix the clock for reproducible timestamps.
	service.SetClock(clockwork.NewFakeClockAt(
		time.Date(2025, time.October, 4, 6, 0, 0, 0, time.UTC),
	))
	defer service.SetClock(nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(nil, mockdata.New(*seed), logger, observability.NewMetricsForTesting())

	reports := make([]service.Report, 0, len(sampleCities))
	for _, city := range sampleCities {
		report, err := svc.Current(context.Background(), city.lat, city.lon, city.name)
		if err != nil {
			return fmt.Errorf("computing %s: %w", city.name, err)
		}
		reports = append(reports, report)
		log.Printf("%s: AQI %d (%s, dominant %s)", city.name, report.AQI, report.Category, report.DominantPollutant)
	}

	if err := writeJSON(*out, reports); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s (%d reports)", *out, len(reports))
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
