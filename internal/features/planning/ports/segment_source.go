package ports

import (
	"context"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
)

// SegmentSource supplies the ordered route segments for a trip. It is the
// planner's only external collaborator: implementations may compute
// segments offline, call a routing API, or decorate another source with a
// cache. The returned list must satisfy domain.ValidateSegments.
type SegmentSource interface {
	// FetchSegments returns the route for the given trip, cumulative from
	// the current location through pickup to dropoff.
	FetchSegments(ctx context.Context, query domain.TripQuery) ([]domain.RouteSegment, error)
}
