package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/ports"
)

// ErrInvalidCycleHours is returned when the starting cycle balance is
// outside the 0-70 hour range.
var ErrInvalidCycleHours = errors.New("cycle hours must be between 0 and 70")

// TripRequest carries everything needed to plan one trip.
type TripRequest struct {
	// Query identifies the trip's locations.
	Query domain.TripQuery
	// CycleHoursUsed is the driver's cycle balance at trip start (0-70).
	CycleHoursUsed float64
	// Start is the trip start instant, used for calendar-day partitioning.
	// Zero means the current time.
	Start time.Time
}

// PlanningService turns a route into a compliant duty schedule. Each call
// builds fresh scheduler and accountant state, so concurrent plans never
// interfere.
type PlanningService struct {
	source ports.SegmentSource
	loc    *time.Location
}

// NewPlanningService creates a planning service over the given segment
// source. Calendar days are partitioned in loc.
func NewPlanningService(source ports.SegmentSource, loc *time.Location) *PlanningService {
	return &PlanningService{
		source: source,
		loc:    loc,
	}
}

// PlanTrip fetches the route, synthesizes the duty-status timeline, and
// partitions it into per-day log sheets. A malformed route fails the call;
// regulatory infeasibility does not, and is reported through the result's
// violations instead.
func (s *PlanningService) PlanTrip(ctx context.Context, req TripRequest) (*domain.TripPlanResult, error) {
	if req.CycleHoursUsed < 0 || req.CycleHoursUsed > domain.MaxCycleOnDuty.Hours() {
		return nil, ErrInvalidCycleHours
	}

	start := req.Start
	if start.IsZero() {
		start = time.Now()
	}
	start = start.In(s.loc)

	segments, err := s.source.FetchSegments(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch route segments: %w", err)
	}
	if err := domain.ValidateSegments(segments); err != nil {
		return nil, fmt.Errorf("malformed route: %w", err)
	}

	acct := NewAccountant(req.CycleHoursUsed)
	intervals, violations := runSchedule(segments, acct, start)

	// The trip ends at the dropoff boundary, so the plan's distance does too.
	var totalMiles float64
	for _, seg := range segments {
		if seg.Kind == domain.SegmentDropoff {
			totalMiles = seg.EndMiles
			break
		}
	}

	result := &domain.TripPlanResult{
		Stops:      deriveStops(intervals),
		LogSheets:  buildLogSheets(intervals, s.loc, time.Duration(req.CycleHoursUsed*float64(time.Hour))),
		Violations: violations,
		Feasible:   len(violations) == 0,
		TotalMiles: totalMiles,
	}
	if violations == nil {
		result.Violations = []domain.Violation{}
	}
	if len(intervals) > 0 {
		result.TotalDuration = domain.ClockHours(intervals[len(intervals)-1].End.Sub(intervals[0].Start))
	}
	return result, nil
}
