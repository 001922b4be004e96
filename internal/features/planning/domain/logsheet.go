package domain

import (
	"encoding/json"
	"math"
	"time"
)

// ClockHours is a duration that serializes as decimal hours rounded to
// hundredths. Rounding happens only here, at the serialization boundary;
// all internal arithmetic stays in exact time.Duration units so drift can
// never compound across a multi-day trip.
type ClockHours time.Duration

// Hours returns the exact, unrounded value in hours.
func (h ClockHours) Hours() float64 {
	return time.Duration(h).Hours()
}

// MarshalJSON renders the duration as hours with two decimal places.
func (h ClockHours) MarshalJSON() ([]byte, error) {
	return json.Marshal(math.Round(h.Hours()*100) / 100)
}

// UnmarshalJSON parses decimal hours back into a duration.
func (h *ClockHours) UnmarshalJSON(data []byte) error {
	var hours float64
	if err := json.Unmarshal(data, &hours); err != nil {
		return err
	}
	*h = ClockHours(time.Duration(hours * float64(time.Hour)))
	return nil
}

// DutyTotals accumulates time per duty status.
type DutyTotals struct {
	// Driving is total time in the driving status.
	Driving ClockHours `json:"driving_hours"`
	// OnDuty is total time on duty but not driving.
	OnDuty ClockHours `json:"on_duty_hours"`
	// OffDuty is total off-duty time.
	OffDuty ClockHours `json:"off_duty_hours"`
	// SleeperBerth is total time in the sleeper berth.
	SleeperBerth ClockHours `json:"sleeper_berth_hours"`
}

// Add accumulates d into the bucket for the given status.
func (t *DutyTotals) Add(status DutyStatus, d time.Duration) {
	switch status {
	case StatusDriving:
		t.Driving += ClockHours(d)
	case StatusOnDuty:
		t.OnDuty += ClockHours(d)
	case StatusOffDuty:
		t.OffDuty += ClockHours(d)
	case StatusSleeperBerth:
		t.SleeperBerth += ClockHours(d)
	}
}

// LogSheetDay is the per-calendar-day log record required for inspection.
// It is derived from the scheduler's interval list and never mutated after
// construction.
type LogSheetDay struct {
	// Date is local midnight of the calendar day the sheet covers.
	Date time.Time `json:"date"`
	// Intervals are the day's duty intervals in chronological order,
	// clipped to the day's boundaries.
	Intervals []DutyInterval `json:"intervals"`
	// Totals are the per-status hour totals for the day.
	Totals DutyTotals `json:"totals"`
	// CycleUsedAtEnd is the cycle-hour balance as of the end of the day.
	CycleUsedAtEnd ClockHours `json:"cycle_hours_used"`
}

// ViolationKind classifies a regulatory constraint the plan could not meet.
type ViolationKind string

const (
	// ViolationCycleExhausted indicates the 70-hour cycle budget ran out
	// mid-trip with no restart available; the plan continues past an
	// implicit restart but is not compliant as scheduled.
	ViolationCycleExhausted ViolationKind = "cycle_exhausted"
)

// Violation records a constraint the scheduler could not satisfy.
// Violations are data attached to the plan, not errors: the pipeline still
// returns a complete result so callers can show what is achievable.
type Violation struct {
	// Kind classifies the violated constraint.
	Kind ViolationKind `json:"kind"`
	// Message describes the violation for display.
	Message string `json:"message"`
	// At is the simulated instant the violation occurred.
	At time.Time `json:"at"`
}

// TripPlanResult is the sole object handed to external callers: the
// inserted stops, the per-day log sheets, and any recorded violations.
type TripPlanResult struct {
	// Stops lists every inserted stop in trip order.
	Stops []TripStop `json:"stops"`
	// LogSheets holds one record per calendar day touched by the trip.
	LogSheets []LogSheetDay `json:"log_sheets"`
	// Violations lists constraints that could not be satisfied.
	Violations []Violation `json:"violations"`
	// Feasible is false when any violation was recorded.
	Feasible bool `json:"feasible"`
	// TotalMiles is the route length.
	TotalMiles float64 `json:"total_miles"`
	// TotalDuration spans the first interval start to the last interval end.
	TotalDuration ClockHours `json:"total_duration_hours"`
}
