// Package mockdata provides demo pollutant measurements for when the
// satellite provider is disabled or a fetch fails. Values fall in plausible
// urban ranges so the downstream AQI lands in believable categories.
package mockdata

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/data-wizards/aqi-service/internal/domain"
)

// Sampling ranges per pollutant, in the pollutant's raw unit.
var ranges = map[domain.Pollutant]struct{ low, high float64 }{
	domain.NO2:  {1e15, 5e15}, // column density, molecules/cm²
	domain.O3:   {30, 70},     // ppb
	domain.HCHO: {1e15, 3e16}, // column density, molecules/cm²
}

// Provider generates mock measurements from a seeded source. Safe for
// concurrent use.
type Provider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a mock provider. Seed 0 seeds from the current time; any other
// value gives a reproducible sequence (used by genmock and tests).
func New(seed int64) *Provider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Provider{rng: rand.New(rand.NewSource(seed))}
}

// Fetch returns a uniformly sampled concentration in the pollutant's demo
// range. It never fails and never returns a missing value.
func (p *Provider) Fetch(_ context.Context, _, _ float64, pollutant domain.Pollutant) (domain.Concentration, error) {
	r, ok := ranges[pollutant]
	if !ok {
		return domain.Missing(), nil
	}

	p.mu.Lock()
	v := r.low + p.rng.Float64()*(r.high-r.low)
	p.mu.Unlock()

	return domain.Measured(v), nil
}

// IntN returns a random int in [low, high), shared with the grid endpoint's
// placeholder AQI values.
func (p *Provider) IntN(low, high int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return low + p.rng.Intn(high-low)
}

// Float64InRange returns a uniform sample in [low, high).
func (p *Provider) Float64InRange(low, high float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return low + p.rng.Float64()*(high-low)
}
