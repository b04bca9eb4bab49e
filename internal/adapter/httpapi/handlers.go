package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/data-wizards/aqi-service/internal/domain"
	"github.com/data-wizards/aqi-service/internal/service"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "AQI prediction API",
		"version":    apiVersion,
		"pollutants": domain.Pollutants,
		"endpoints": map[string]string{
			"current_aqi": "/aqi/current?lat={latitude}&lon={longitude}",
			"grid":        "/aqi/grid?lat_min={}&lat_max={}&lon_min={}&lon_max={}",
			"pollutant":   "/pollutants/{pollutant}?lat={latitude}&lon={longitude}",
			"health":      "/health",
		},
	})
}

func (s *Server) handleCurrentAQI(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseCoordinates(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	name := r.URL.Query().Get("location_name")

	report, err := s.svc.Current(r.Context(), lat, lon, name)
	if err != nil {
		if errors.Is(err, service.ErrNoValidPollutants) {
			writeError(w, http.StatusInternalServerError, "Unable to calculate AQI - no valid data")
			return
		}
		s.logger.Error("aqi request failed", "lat", lat, "lon", lon, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePollutant(w http.ResponseWriter, r *http.Request) {
	p, ok := domain.ParsePollutant(chi.URLParam(r, "pollutant"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Pollutant must be NO2, O3, or HCHO")
		return
	}

	lat, lon, err := parseCoordinates(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.svc.SinglePollutant(r.Context(), lat, lon, p))
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	req, err := parseGridRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.svc.Grid(req))
}

// parseCoordinates reads and validates lat/lon query parameters.
func parseCoordinates(r *http.Request) (lat, lon float64, err error) {
	lat, err = parseFloatParam(r, "lat")
	if err != nil {
		return 0, 0, err
	}
	lon, err = parseFloatParam(r, "lon")
	if err != nil {
		return 0, 0, err
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf(
			"invalid coordinates: lat must be between -90 and 90, lon between -180 and 180, got lat=%g, lon=%g",
			lat, lon,
		)
	}
	return lat, lon, nil
}

func parseGridRequest(r *http.Request) (service.GridRequest, error) {
	var req service.GridRequest
	var err error

	bounds := []struct {
		name     string
		dest     *float64
		min, max float64
	}{
		{"lat_min", &req.LatMin, -90, 90},
		{"lat_max", &req.LatMax, -90, 90},
		{"lon_min", &req.LonMin, -180, 180},
		{"lon_max", &req.LonMax, -180, 180},
	}
	for _, b := range bounds {
		*b.dest, err = parseFloatParam(r, b.name)
		if err != nil {
			return service.GridRequest{}, err
		}
		if *b.dest < b.min || *b.dest > b.max {
			return service.GridRequest{}, fmt.Errorf("%s out of range [%g, %g]", b.name, b.min, b.max)
		}
	}

	req.Resolution = 0.1
	if raw := r.URL.Query().Get("resolution"); raw != "" {
		req.Resolution, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return service.GridRequest{}, fmt.Errorf("invalid resolution %q", raw)
		}
	}
	if req.Resolution <= 0 || req.Resolution > 1 {
		return service.GridRequest{}, fmt.Errorf("resolution must be in (0, 1], got %g", req.Resolution)
	}

	return req, nil
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}
