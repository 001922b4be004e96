package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRoute() []RouteSegment {
	return []RouteSegment{
		{FromWaypoint: "Chicago", ToWaypoint: "Chicago", Kind: SegmentPickup},
		{FromWaypoint: "Chicago", ToWaypoint: "Dallas", EndMiles: 900, EndHours: 15, Kind: SegmentDropoff},
	}
}

// TestValidateSegments_Valid verifies a well-formed route passes.
func TestValidateSegments_Valid(t *testing.T) {
	assert.NoError(t, ValidateSegments(validRoute()))
}

// TestValidateSegments_Empty verifies an empty route is rejected.
func TestValidateSegments_Empty(t *testing.T) {
	assert.ErrorIs(t, ValidateSegments(nil), ErrEmptyRoute)
}

// TestValidateSegments_NonZeroOrigin verifies the first segment must start
// at zero cumulative distance and time.
func TestValidateSegments_NonZeroOrigin(t *testing.T) {
	route := validRoute()
	route[0].StartMiles = 10

	assert.ErrorIs(t, ValidateSegments(route), ErrNonZeroOrigin)
}

// TestValidateSegments_NonMonotonic verifies decreasing cumulative values
// are rejected.
func TestValidateSegments_NonMonotonic(t *testing.T) {
	byDistance := validRoute()
	byDistance[1].EndMiles = -5
	assert.ErrorIs(t, ValidateSegments(byDistance), ErrNonMonotonicRoute)

	byTime := validRoute()
	byTime[1].StartHours = 1
	byTime[1].EndHours = 0.5
	assert.ErrorIs(t, ValidateSegments(byTime), ErrNonMonotonicRoute)

	acrossBoundary := validRoute()
	acrossBoundary[0].EndMiles = 100
	acrossBoundary[0].EndHours = 2
	acrossBoundary[1].StartMiles = 50
	acrossBoundary[1].StartHours = 2
	assert.ErrorIs(t, ValidateSegments(acrossBoundary), ErrNonMonotonicRoute)
}

// TestValidateSegments_PickupDropoffCardinality verifies exactly one of
// each is required.
func TestValidateSegments_PickupDropoffCardinality(t *testing.T) {
	noPickup := validRoute()
	noPickup[0].Kind = SegmentTransit
	assert.ErrorIs(t, ValidateSegments(noPickup), ErrMissingPickup)

	noDropoff := validRoute()
	noDropoff[1].Kind = SegmentTransit
	assert.ErrorIs(t, ValidateSegments(noDropoff), ErrMissingDropoff)

	twoPickups := validRoute()
	twoPickups[1].Kind = SegmentPickup
	assert.ErrorIs(t, ValidateSegments(twoPickups), ErrMissingPickup)
}

// TestValidateSegments_PickupAfterDropoff verifies ordering is enforced.
func TestValidateSegments_PickupAfterDropoff(t *testing.T) {
	route := validRoute()
	route[0].Kind = SegmentDropoff
	route[1].Kind = SegmentPickup

	assert.ErrorIs(t, ValidateSegments(route), ErrPickupAfterDropoff)
}

// TestRouteSegment_DriveTime verifies the cumulative-hours difference
// converts to an exact duration.
func TestRouteSegment_DriveTime(t *testing.T) {
	seg := RouteSegment{StartHours: 2, EndHours: 4.5, StartMiles: 120, EndMiles: 270}

	require.Equal(t, 150.0, seg.Miles())
	assert.Equal(t, 2*time.Hour+30*time.Minute, seg.DriveTime())
}
