package adapter

import (
	"fmt"
	"math"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
)

// leg is one route leg in the units the route model uses.
type leg struct {
	miles float64
	hours float64
}

// buildSegments turns the two legs into the cumulative segment list the
// scheduler consumes. Legs are split at every 1000-mile mark of cumulative
// distance, so the scheduler sees a segment boundary wherever a fuel stop
// may be due.
func buildSegments(query domain.TripQuery, toPickup, toDropoff leg) []domain.RouteSegment {
	segments := appendLeg(nil, query.CurrentLocation, query.PickupLocation,
		0, 0, toPickup.miles, toPickup.hours, domain.SegmentPickup)
	return appendLeg(segments, query.PickupLocation, query.DropoffLocation,
		toPickup.miles, toPickup.hours,
		toPickup.miles+toDropoff.miles, toPickup.hours+toDropoff.hours,
		domain.SegmentDropoff)
}

// appendLeg appends one segment per stretch between fuel-interval marks,
// interpolating drive time linearly along the leg. The final stretch
// carries the leg's kind; intermediate waypoints are labeled by milepost.
func appendLeg(segments []domain.RouteSegment, from, to string, startMiles, startHours, endMiles, endHours float64, kind domain.SegmentKind) []domain.RouteSegment {
	curMiles, curHours, curFrom := startMiles, startHours, from

	firstMark := (math.Floor(startMiles/domain.FuelIntervalMiles) + 1) * domain.FuelIntervalMiles
	for mark := firstMark; mark < endMiles; mark += domain.FuelIntervalMiles {
		frac := (mark - startMiles) / (endMiles - startMiles)
		markHours := startHours + frac*(endHours-startHours)
		waypoint := fmt.Sprintf("Mile %.0f", mark)
		segments = append(segments, domain.RouteSegment{
			FromWaypoint: curFrom,
			ToWaypoint:   waypoint,
			StartMiles:   curMiles,
			EndMiles:     mark,
			StartHours:   curHours,
			EndHours:     markHours,
			Kind:         domain.SegmentTransit,
		})
		curMiles, curHours, curFrom = mark, markHours, waypoint
	}

	return append(segments, domain.RouteSegment{
		FromWaypoint: curFrom,
		ToWaypoint:   to,
		StartMiles:   curMiles,
		EndMiles:     endMiles,
		StartHours:   curHours,
		EndHours:     endHours,
		Kind:         kind,
	})
}
