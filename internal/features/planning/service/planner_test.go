package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSegmentSource is a mock implementation of SegmentSource for testing.
type mockSegmentSource struct {
	segments  []domain.RouteSegment
	err       error
	callCount int
}

// FetchSegments implements SegmentSource.
func (m *mockSegmentSource) FetchSegments(ctx context.Context, query domain.TripQuery) ([]domain.RouteSegment, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return m.segments, nil
}

var testQuery = domain.TripQuery{
	CurrentLocation: "Chicago",
	PickupLocation:  "Chicago",
	DropoffLocation: "Dallas",
}

// TestPlanningService_PlanTrip_Success verifies the full pipeline on the
// 900-mile scenario.
func TestPlanningService_PlanTrip_Success(t *testing.T) {
	source := &mockSegmentSource{segments: simpleRoute(900, 60)}
	svc := NewPlanningService(source, time.UTC)

	result, err := svc.PlanTrip(context.Background(), TripRequest{
		Query: testQuery,
		Start: tripStart,
	})

	require.NoError(t, err)
	assert.True(t, result.Feasible)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 900.0, result.TotalMiles)
	require.Len(t, result.LogSheets, 2)
	require.Len(t, result.Stops, 4)
	assert.Equal(t, domain.StopPickup, result.Stops[0].Kind)
	assert.Equal(t, domain.StopDropoff, result.Stops[3].Kind)
	// 1h pickup + 15h driving + 0.5h break + 10h reset + 1h dropoff.
	assert.Equal(t, domain.ClockHours(27*time.Hour+30*time.Minute), result.TotalDuration)
}

// TestPlanningService_PlanTrip_Infeasible verifies a trip exceeding the
// cycle budget is returned with a violation, not an error.
func TestPlanningService_PlanTrip_Infeasible(t *testing.T) {
	source := &mockSegmentSource{segments: simpleRoute(120, 60)}
	svc := NewPlanningService(source, time.UTC)

	result, err := svc.PlanTrip(context.Background(), TripRequest{
		Query:          testQuery,
		CycleHoursUsed: 69,
		Start:          tripStart,
	})

	require.NoError(t, err)
	assert.False(t, result.Feasible)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, domain.ViolationCycleExhausted, result.Violations[0].Kind)
}

// TestPlanningService_PlanTrip_InvalidCycleHours verifies range checks.
func TestPlanningService_PlanTrip_InvalidCycleHours(t *testing.T) {
	svc := NewPlanningService(&mockSegmentSource{}, time.UTC)

	for _, hours := range []float64{-1, 70.5} {
		_, err := svc.PlanTrip(context.Background(), TripRequest{
			Query:          testQuery,
			CycleHoursUsed: hours,
			Start:          tripStart,
		})
		assert.ErrorIs(t, err, ErrInvalidCycleHours)
	}
}

// TestPlanningService_PlanTrip_SourceError verifies fetch failures are
// wrapped and fatal.
func TestPlanningService_PlanTrip_SourceError(t *testing.T) {
	sourceErr := errors.New("routing API down")
	svc := NewPlanningService(&mockSegmentSource{err: sourceErr}, time.UTC)

	result, err := svc.PlanTrip(context.Background(), TripRequest{Query: testQuery, Start: tripStart})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, sourceErr)
	assert.Contains(t, err.Error(), "failed to fetch route segments")
}

// TestPlanningService_PlanTrip_MalformedRoute verifies a structurally
// invalid route fails the whole call with no partial result.
func TestPlanningService_PlanTrip_MalformedRoute(t *testing.T) {
	segments := simpleRoute(900, 60)
	segments[1].EndMiles = -5
	svc := NewPlanningService(&mockSegmentSource{segments: segments}, time.UTC)

	result, err := svc.PlanTrip(context.Background(), TripRequest{Query: testQuery, Start: tripStart})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNonMonotonicRoute)
}

// TestPlanningService_PlanTrip_Idempotent verifies two runs over identical
// inputs serialize byte-identically.
func TestPlanningService_PlanTrip_Idempotent(t *testing.T) {
	source := &mockSegmentSource{segments: simpleRoute(2800, 60)}
	svc := NewPlanningService(source, time.UTC)
	req := TripRequest{Query: testQuery, CycleHoursUsed: 12, Start: tripStart}

	first, err := svc.PlanTrip(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.PlanTrip(context.Background(), req)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

// TestPlanningService_PlanTrip_PartitionPreservesTotals verifies the
// round-trip property: concatenated per-day totals match the unpartitioned
// timeline.
func TestPlanningService_PlanTrip_PartitionPreservesTotals(t *testing.T) {
	source := &mockSegmentSource{segments: simpleRoute(2800, 60)}
	svc := NewPlanningService(source, time.UTC)

	result, err := svc.PlanTrip(context.Background(), TripRequest{Query: testQuery, Start: tripStart})
	require.NoError(t, err)

	var fromSheets domain.DutyTotals
	var span time.Duration
	for _, day := range result.LogSheets {
		fromSheets.Driving += day.Totals.Driving
		fromSheets.OnDuty += day.Totals.OnDuty
		fromSheets.OffDuty += day.Totals.OffDuty
		fromSheets.SleeperBerth += day.Totals.SleeperBerth
		for _, iv := range day.Intervals {
			span += iv.Duration()
		}
	}

	total := time.Duration(fromSheets.Driving + fromSheets.OnDuty + fromSheets.OffDuty + fromSheets.SleeperBerth)
	assert.Equal(t, time.Duration(result.TotalDuration), total)
	assert.Equal(t, time.Duration(result.TotalDuration), span)
}

var _ ports.SegmentSource = (*mockSegmentSource)(nil)
