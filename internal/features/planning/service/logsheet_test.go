package service

import (
	"testing"
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildLogSheets_SingleDay verifies totals for a trip contained in
// one calendar day.
func TestBuildLogSheets_SingleDay(t *testing.T) {
	intervals, _ := runSchedule(simpleRoute(120, 60), NewAccountant(0), tripStart)

	sheets := buildLogSheets(intervals, time.UTC, 0)

	require.Len(t, sheets, 1)
	day := sheets[0]
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), day.Date)
	assert.Equal(t, domain.ClockHours(2*time.Hour), day.Totals.Driving)
	assert.Equal(t, domain.ClockHours(2*time.Hour), day.Totals.OnDuty)
	assert.Equal(t, domain.ClockHours(0), day.Totals.OffDuty)
	// 2h driving + 1h pickup + 1h dropoff against the cycle.
	assert.Equal(t, domain.ClockHours(4*time.Hour), day.CycleUsedAtEnd)
}

// TestBuildLogSheets_CycleCarriesAcrossDays verifies the day-end cycle
// balance accumulates driving and on-duty time from a non-zero start.
func TestBuildLogSheets_CycleCarriesAcrossDays(t *testing.T) {
	intervals, _ := runSchedule(simpleRoute(900, 60), NewAccountant(10), tripStart)

	sheets := buildLogSheets(intervals, time.UTC, 10*time.Hour)

	require.Len(t, sheets, 2)
	// Day one: 1h pickup + 11h driving on top of the starting 10h.
	assert.Equal(t, domain.ClockHours(22*time.Hour), sheets[0].CycleUsedAtEnd)
	// Day two adds 4h driving + 1h dropoff.
	assert.Equal(t, domain.ClockHours(27*time.Hour), sheets[1].CycleUsedAtEnd)

	var driving domain.ClockHours
	for _, day := range sheets {
		driving += day.Totals.Driving
	}
	assert.Equal(t, domain.ClockHours(15*time.Hour), driving)
}

// TestBuildLogSheets_RestartZeroesCycle verifies an implicit 34-hour
// restart resets the day-end balance.
func TestBuildLogSheets_RestartZeroesCycle(t *testing.T) {
	intervals, violations := runSchedule(simpleRoute(120, 60), NewAccountant(69), tripStart)
	require.NotEmpty(t, violations)

	sheets := buildLogSheets(intervals, time.UTC, 69*time.Hour)

	require.NotEmpty(t, sheets)
	// After the restart only the remaining driving and the dropoff count.
	last := sheets[len(sheets)-1]
	assert.Equal(t, domain.ClockHours(3*time.Hour), last.CycleUsedAtEnd)
}

// TestBuildLogSheets_DaysAreContiguous verifies each day's intervals abut
// and day boundaries land on local midnight.
func TestBuildLogSheets_DaysAreContiguous(t *testing.T) {
	intervals, _ := runSchedule(simpleRoute(2800, 60), NewAccountant(0), tripStart)

	sheets := buildLogSheets(intervals, time.UTC, 0)

	require.Greater(t, len(sheets), 1)
	for d, day := range sheets {
		require.NotEmpty(t, day.Intervals)
		for i := 1; i < len(day.Intervals); i++ {
			assert.Equal(t, day.Intervals[i-1].End, day.Intervals[i].Start)
		}
		if d > 0 {
			assert.Equal(t, sheets[d-1].Date.AddDate(0, 0, 1), day.Date)
			// Interior days start exactly at midnight.
			assert.Equal(t, day.Date, day.Intervals[0].Start)
		}
	}
}

// TestBuildComplianceReport verifies whole-trip aggregation.
func TestBuildComplianceReport(t *testing.T) {
	intervals, _ := runSchedule(simpleRoute(900, 60), NewAccountant(0), tripStart)
	result := &domain.TripPlanResult{
		Stops:      deriveStops(intervals),
		LogSheets:  buildLogSheets(intervals, time.UTC, 0),
		Violations: []domain.Violation{},
		Feasible:   true,
		TotalMiles: 900,
	}

	report := BuildComplianceReport(result)

	assert.True(t, report.Compliant)
	assert.Equal(t, 900.0, report.TotalMiles)
	require.Len(t, report.Days, 2)
	assert.Equal(t, result.LogSheets[0].Date, report.Days[0].Date)
	assert.Equal(t, result.LogSheets[1].CycleUsedAtEnd, report.Days[1].CycleUsedAtEnd)
	assert.Equal(t, domain.ClockHours(15*time.Hour), report.Totals.Driving)
	assert.Equal(t, domain.ClockHours(2*time.Hour), report.Totals.OnDuty)
	assert.Equal(t, domain.ClockHours(17*time.Hour), report.CycleHoursUsed)
	assert.Equal(t, domain.ClockHours(53*time.Hour), report.CycleHoursRemaining)
}
