package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptyRoute is returned when the segment source supplies no segments.
	ErrEmptyRoute = errors.New("route has no segments")
	// ErrNonZeroOrigin is returned when the first segment does not start at
	// zero cumulative distance and time.
	ErrNonZeroOrigin = errors.New("route does not start at zero distance and time")
	// ErrNonMonotonicRoute is returned when cumulative distance or time
	// decreases along the route.
	ErrNonMonotonicRoute = errors.New("route distance or time is not monotonically non-decreasing")
	// ErrMissingPickup is returned when the route does not contain exactly
	// one pickup segment.
	ErrMissingPickup = errors.New("route must contain exactly one pickup segment")
	// ErrMissingDropoff is returned when the route does not contain exactly
	// one dropoff segment.
	ErrMissingDropoff = errors.New("route must contain exactly one dropoff segment")
	// ErrPickupAfterDropoff is returned when the pickup segment comes after
	// the dropoff segment.
	ErrPickupAfterDropoff = errors.New("pickup must precede dropoff")
)

// SegmentKind marks whether a route segment terminates at a required stop.
type SegmentKind string

const (
	// SegmentTransit is an ordinary driving leg with no stop at its end.
	SegmentTransit SegmentKind = "transit"
	// SegmentPickup is a leg ending at the cargo pickup location.
	SegmentPickup SegmentKind = "pickup"
	// SegmentDropoff is a leg ending at the cargo dropoff location.
	SegmentDropoff SegmentKind = "dropoff"
)

// RouteSegment is one leg of a route as supplied by the segment source.
// Distances and times are cumulative from the trip origin, so segment
// lengths are always differences of the cumulative values.
type RouteSegment struct {
	// FromWaypoint labels the location where the segment begins.
	FromWaypoint string `json:"from_waypoint"`
	// ToWaypoint labels the location where the segment ends.
	ToWaypoint string `json:"to_waypoint"`
	// StartMiles is the cumulative distance at the segment start.
	StartMiles float64 `json:"start_miles"`
	// EndMiles is the cumulative distance at the segment end.
	EndMiles float64 `json:"end_miles"`
	// StartHours is the cumulative free-flow drive time at the segment start.
	StartHours float64 `json:"start_hours"`
	// EndHours is the cumulative free-flow drive time at the segment end.
	EndHours float64 `json:"end_hours"`
	// Kind marks a required stop at the segment end.
	Kind SegmentKind `json:"kind"`
}

// Miles returns the segment length in miles.
func (s RouteSegment) Miles() float64 {
	return s.EndMiles - s.StartMiles
}

// DriveTime returns the free-flow driving time for the segment.
func (s RouteSegment) DriveTime() time.Duration {
	return time.Duration((s.EndHours - s.StartHours) * float64(time.Hour))
}

// TripQuery identifies the three locations a trip is planned between.
type TripQuery struct {
	// CurrentLocation is where the driver starts.
	CurrentLocation string `json:"current_location"`
	// PickupLocation is where the cargo is collected.
	PickupLocation string `json:"pickup_location"`
	// DropoffLocation is where the cargo is delivered.
	DropoffLocation string `json:"dropoff_location"`
}

// ValidateSegments checks the structural contract of a route supplied by an
// external segment source. A failure here is fatal for the planning call:
// no partial plan is produced from a malformed route.
func ValidateSegments(segments []RouteSegment) error {
	if len(segments) == 0 {
		return ErrEmptyRoute
	}
	if segments[0].StartMiles != 0 || segments[0].StartHours != 0 {
		return ErrNonZeroOrigin
	}

	pickupIdx, dropoffIdx := -1, -1
	prevMiles, prevHours := 0.0, 0.0
	for i, seg := range segments {
		if seg.StartMiles < prevMiles || seg.StartHours < prevHours ||
			seg.EndMiles < seg.StartMiles || seg.EndHours < seg.StartHours {
			return fmt.Errorf("segment %d (%s to %s): %w", i, seg.FromWaypoint, seg.ToWaypoint, ErrNonMonotonicRoute)
		}
		prevMiles, prevHours = seg.EndMiles, seg.EndHours

		switch seg.Kind {
		case SegmentPickup:
			if pickupIdx >= 0 {
				return ErrMissingPickup
			}
			pickupIdx = i
		case SegmentDropoff:
			if dropoffIdx >= 0 {
				return ErrMissingDropoff
			}
			dropoffIdx = i
		}
	}

	if pickupIdx < 0 {
		return ErrMissingPickup
	}
	if dropoffIdx < 0 {
		return ErrMissingDropoff
	}
	if pickupIdx > dropoffIdx {
		return ErrPickupAfterDropoff
	}
	return nil
}
