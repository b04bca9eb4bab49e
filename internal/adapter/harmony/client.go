// Package harmony retrieves pollutant measurements from the NASA Harmony
// API. A fetch submits a spatial-subset job for the pollutant's collection,
// polls the job until it completes, downloads the gridded result, and
// extracts the variable at the grid point nearest the requested location.
package harmony

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/data-wizards/aqi-service/internal/domain"
)

// TEMPO collection IDs served through Harmony, and the variable in each
// product that holds the pollutant quantity.
var (
	collections = map[domain.Pollutant]string{
		domain.NO2:  "C3685668972-LARC_CLOUD",
		domain.O3:   "C2930764281-LARC_CLOUD",
		domain.HCHO: "C2930730944-LARC_CLOUD",
	}

	variables = map[domain.Pollutant]string{
		domain.NO2:  "vertical_column_troposphere",
		domain.O3:   "o3_below_cloud",
		domain.HCHO: "vertical_column",
	}
)

const (
	defaultBaseURL = "https://harmony.earthdata.nasa.gov"

	// bboxBuffer is the half-width in degrees of the bounding box requested
	// around the point of interest.
	bboxBuffer = 0.5

	// maxPollAttempts bounds job polling; with the default 1s interval a job
	// gets 30 seconds to complete before the fetch gives up.
	maxPollAttempts = 30
)

// Client implements domain.Provider against the Harmony API.
type Client struct {
	token        string
	httpClient   *http.Client
	baseURL      string
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewClient creates a Harmony client authenticating with an Earthdata Login
// bearer token. The timeout covers a whole fetch including job polling.
func NewClient(token string, timeout, pollInterval time.Duration, logger *slog.Logger) *Client {
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:      defaultBaseURL,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Fetch retrieves the pollutant concentration nearest (lat, lon). A transport
// or job failure returns an error; a successfully retrieved dataset that has
// no usable value for the variable returns a missing concentration with no
// error, matching the distinction the caller's fallback policy relies on.
func (c *Client) Fetch(ctx context.Context, lat, lon float64, p domain.Pollutant) (domain.Concentration, error) {
	collection, ok := collections[p]
	if !ok {
		return domain.Missing(), fmt.Errorf("no harmony collection for pollutant %q", p)
	}

	ds, err := c.fetchDataset(ctx, collection, lat, lon)
	if err != nil {
		return domain.Missing(), fmt.Errorf("fetch %s: %w", p, err)
	}

	value, found := ds.valueAt(lat, lon, variables[p])
	if !found {
		c.logger.Warn("variable not present in harmony result",
			"pollutant", p,
			"variable", variables[p],
			"lat", lat,
			"lon", lon,
		)
		return domain.Missing(), nil
	}

	// Measured collapses NaN fill values to missing.
	return domain.Measured(value), nil
}

// fetchDataset runs the submit → poll → download cycle for one collection.
func (c *Client) fetchDataset(ctx context.Context, collection string, lat, lon float64) (*dataset, error) {
	job, err := c.submitJob(ctx, collection, lat, lon)
	if err != nil {
		return nil, err
	}

	job, err = c.awaitJob(ctx, job)
	if err != nil {
		return nil, err
	}

	dataURL := job.dataLink()
	if dataURL == "" {
		return nil, fmt.Errorf("job %s completed without a data link", job.JobID)
	}

	return c.downloadDataset(ctx, dataURL)
}

// submitJob requests a spatial subset of the collection around the point.
func (c *Client) submitJob(ctx context.Context, collection string, lat, lon float64) (*jobResponse, error) {
	u := fmt.Sprintf("%s/%s/ogc-api-coverages/1.0.0/collections/all/coverage/rangeset", c.baseURL, collection)
	params := url.Values{
		"subset": {
			fmt.Sprintf("lat(%.4f:%.4f)", lat-bboxBuffer, lat+bboxBuffer),
			fmt.Sprintf("lon(%.4f:%.4f)", lon-bboxBuffer, lon+bboxBuffer),
		},
		"format": {"application/json"},
	}

	var job jobResponse
	if err := c.getJSON(ctx, u+"?"+params.Encode(), &job); err != nil {
		return nil, fmt.Errorf("submit job: %w", err)
	}
	if job.JobID == "" {
		return nil, fmt.Errorf("submit job: response missing jobID")
	}
	return &job, nil
}

// awaitJob polls the job status endpoint until the job reaches a terminal
// state or the attempt budget runs out.
func (c *Client) awaitJob(ctx context.Context, job *jobResponse) (*jobResponse, error) {
	statusURL := fmt.Sprintf("%s/jobs/%s", c.baseURL, url.PathEscape(job.JobID))

	for attempt := 0; attempt < maxPollAttempts; attempt++ {
		switch job.Status {
		case "successful":
			return job, nil
		case "failed", "canceled":
			return nil, fmt.Errorf("job %s %s: %s", job.JobID, job.Status, job.Message)
		}

		if !sleepWithContext(ctx, c.pollInterval) {
			return nil, ctx.Err()
		}

		var latest jobResponse
		if err := c.getJSON(ctx, statusURL, &latest); err != nil {
			return nil, fmt.Errorf("poll job %s: %w", job.JobID, err)
		}
		job = &latest
	}

	return nil, fmt.Errorf("job %s did not complete after %d polls", job.JobID, maxPollAttempts)
}

func (c *Client) downloadDataset(ctx context.Context, dataURL string) (*dataset, error) {
	var ds dataset
	if err := c.getJSON(ctx, dataURL, &ds); err != nil {
		return nil, fmt.Errorf("download result: %w", err)
	}
	return &ds, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("harmony API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// sleepWithContext waits for d, returning false if the context is cancelled first.
func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Harmony API response types.

type jobResponse struct {
	JobID   string    `json:"jobID"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Links   []jobLink `json:"links"`
}

type jobLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

func (j *jobResponse) dataLink() string {
	for _, l := range j.Links {
		if l.Rel == "data" {
			return l.Href
		}
	}
	return ""
}

// dataset is the gridded JSON rendition of a subset result: coordinate axes
// plus per-variable value grids indexed [lat][lon].
type dataset struct {
	Lat       []float64              `json:"lat"`
	Lon       []float64              `json:"lon"`
	Variables map[string][][]float64 `json:"variables"`
}

// valueAt returns the variable value at the grid point nearest (lat, lon).
// found is false when the variable is absent or the grid is empty or ragged.
func (d *dataset) valueAt(lat, lon float64, variable string) (value float64, found bool) {
	grid, ok := d.Variables[variable]
	if !ok || len(d.Lat) == 0 || len(d.Lon) == 0 {
		return 0, false
	}

	i := nearestIndex(d.Lat, lat)
	j := nearestIndex(d.Lon, lon)
	if i >= len(grid) || j >= len(grid[i]) {
		return 0, false
	}
	return grid[i][j], true
}

func nearestIndex(axis []float64, target float64) int {
	best := 0
	bestDist := distance(axis[0], target)
	for i, v := range axis[1:] {
		if d := distance(v, target); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best
}

func distance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
