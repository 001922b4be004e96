package adapter

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/libemurg1/ELDTripPlanner/internal/core/logger"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"

	"go.uber.org/zap"
)

// ErrUnknownLocation is returned when a location is not in the built-in
// coordinate table.
var ErrUnknownLocation = errors.New("unknown location")

// earthRadiusMiles is the mean Earth radius used by the haversine formula.
const earthRadiusMiles = 3959.0

// cityCoordinates maps supported location names to (latitude, longitude).
var cityCoordinates = map[string][2]float64{
	"New York":     {40.7128, -74.0060},
	"Los Angeles":  {34.0522, -118.2437},
	"Chicago":      {41.8781, -87.6298},
	"Houston":      {29.7604, -95.3698},
	"Phoenix":      {33.4484, -112.0740},
	"Philadelphia": {39.9526, -75.1652},
	"San Antonio":  {29.4241, -98.4936},
	"San Diego":    {32.7157, -117.1611},
	"Dallas":       {32.7767, -96.7970},
	"San Jose":     {37.3382, -121.8863},
}

// HaversineSource produces route segments offline from great-circle
// distances between known cities at a fixed average speed. It needs no
// network access, which makes it the default segment source.
type HaversineSource struct {
	averageSpeedMPH float64
	logger          *zap.Logger
}

// NewHaversineSource creates a source that assumes the given average speed
// in miles per hour.
func NewHaversineSource(averageSpeedMPH float64) *HaversineSource {
	return &HaversineSource{
		averageSpeedMPH: averageSpeedMPH,
		logger:          logger.Named("haversine"),
	}
}

// FetchSegments builds the route from current location through pickup to
// dropoff, with cumulative distance and free-flow drive time, split at
// every 1000-mile mark.
func (h *HaversineSource) FetchSegments(ctx context.Context, query domain.TripQuery) ([]domain.RouteSegment, error) {
	current, err := lookupCity(query.CurrentLocation)
	if err != nil {
		return nil, err
	}
	pickup, err := lookupCity(query.PickupLocation)
	if err != nil {
		return nil, err
	}
	dropoff, err := lookupCity(query.DropoffLocation)
	if err != nil {
		return nil, err
	}

	pickupMiles := haversineMiles(current, pickup)
	dropoffMiles := haversineMiles(pickup, dropoff)

	h.logger.Debug("Computed offline route",
		zap.String("current", query.CurrentLocation),
		zap.String("pickup", query.PickupLocation),
		zap.String("dropoff", query.DropoffLocation),
		zap.Float64("pickup_leg_miles", pickupMiles),
		zap.Float64("dropoff_leg_miles", dropoffMiles),
	)

	return buildSegments(query,
		leg{miles: pickupMiles, hours: pickupMiles / h.averageSpeedMPH},
		leg{miles: dropoffMiles, hours: dropoffMiles / h.averageSpeedMPH},
	), nil
}

func lookupCity(name string) ([2]float64, error) {
	coords, ok := cityCoordinates[name]
	if !ok {
		return [2]float64{}, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	return coords, nil
}

// haversineMiles returns the great-circle distance between two
// (latitude, longitude) points.
func haversineMiles(from, to [2]float64) float64 {
	lat1 := from[0] * math.Pi / 180
	lon1 := from[1] * math.Pi / 180
	lat2 := to[0] * math.Pi / 180
	lon2 := to[1] * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(a))
}
