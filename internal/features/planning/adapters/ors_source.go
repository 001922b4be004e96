package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/core/httpclient"
	"github.com/libemurg1/ELDTripPlanner/internal/core/logger"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"

	"go.uber.org/zap"
)

const metersPerMile = 1609.34

// ErrLocationNotFound is returned when the geocoder has no match for a
// location name.
var ErrLocationNotFound = errors.New("location not found")

// ORSSource fetches route segments from an OpenRouteService-compatible
// API: one geocoding call per location, one directions call per leg. The
// adapter only maps the collaborator's response; it computes no geometry
// itself.
type ORSSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewORSSource creates a source against the given OpenRouteService base
// URL.
func NewORSSource(baseURL, apiKey string, timeout time.Duration) *ORSSource {
	return &ORSSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  httpclient.NewClient(timeout),
		logger:  logger.Named("ors"),
	}
}

// geocodeResponse is the subset of the ORS geocoding payload we read.
type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			// Coordinates is [longitude, latitude].
			Coordinates [2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// directionsResponse is the subset of the ORS directions payload we read.
type directionsResponse struct {
	Features []struct {
		Properties struct {
			Segments []struct {
				// Distance is in meters.
				Distance float64 `json:"distance"`
				// Duration is in seconds.
				Duration float64 `json:"duration"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// FetchSegments geocodes the three locations and fetches driving
// directions for both legs, returning cumulative route segments.
func (o *ORSSource) FetchSegments(ctx context.Context, query domain.TripQuery) ([]domain.RouteSegment, error) {
	current, err := o.geocode(ctx, query.CurrentLocation)
	if err != nil {
		return nil, err
	}
	pickup, err := o.geocode(ctx, query.PickupLocation)
	if err != nil {
		return nil, err
	}
	dropoff, err := o.geocode(ctx, query.DropoffLocation)
	if err != nil {
		return nil, err
	}

	leg1, err := o.directions(ctx, current, pickup)
	if err != nil {
		return nil, fmt.Errorf("directions %s to %s: %w", query.CurrentLocation, query.PickupLocation, err)
	}
	leg2, err := o.directions(ctx, pickup, dropoff)
	if err != nil {
		return nil, fmt.Errorf("directions %s to %s: %w", query.PickupLocation, query.DropoffLocation, err)
	}

	return buildSegments(query, leg1, leg2), nil
}

// geocode resolves a location name to [longitude, latitude].
func (o *ORSSource) geocode(ctx context.Context, location string) ([2]float64, error) {
	params := url.Values{}
	params.Set("api_key", o.apiKey)
	params.Set("text", location)
	params.Set("size", "1")

	var resp geocodeResponse
	if err := o.getJSON(ctx, "/geocode/search", params, &resp); err != nil {
		return [2]float64{}, fmt.Errorf("geocode %q: %w", location, err)
	}
	if len(resp.Features) == 0 {
		return [2]float64{}, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
	}
	return resp.Features[0].Geometry.Coordinates, nil
}

// directions fetches one driving leg between two [lon, lat] points.
func (o *ORSSource) directions(ctx context.Context, from, to [2]float64) (leg, error) {
	params := url.Values{}
	params.Set("api_key", o.apiKey)
	params.Set("start", fmt.Sprintf("%f,%f", from[0], from[1]))
	params.Set("end", fmt.Sprintf("%f,%f", to[0], to[1]))

	var resp directionsResponse
	if err := o.getJSON(ctx, "/v2/directions/driving-car", params, &resp); err != nil {
		return leg{}, err
	}
	return mapDirectionsToLeg(resp)
}

// mapDirectionsToLeg converts the ORS meters/seconds payload into the
// miles/hours the route model uses.
func mapDirectionsToLeg(resp directionsResponse) (leg, error) {
	if len(resp.Features) == 0 || len(resp.Features[0].Properties.Segments) == 0 {
		return leg{}, errors.New("directions response has no route")
	}
	seg := resp.Features[0].Properties.Segments[0]
	return leg{
		miles: seg.Distance / metersPerMile,
		hours: seg.Duration / 3600,
	}, nil
}

// getJSON performs a GET against the ORS API and decodes the response.
func (o *ORSSource) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		o.logger.Warn("Routing API returned non-OK status",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("routing API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
