package domain

import "time"

// DayRecap is one line of the compliance report: a log-sheet day without
// its interval detail.
type DayRecap struct {
	// Date is local midnight of the recapped day.
	Date time.Time `json:"date"`
	// Totals are the day's per-status hour totals.
	Totals DutyTotals `json:"totals"`
	// CycleUsedAtEnd is the cycle balance as of the end of the day.
	CycleUsedAtEnd ClockHours `json:"cycle_hours_used"`
}

// ComplianceReport summarizes a planned trip against the hours-of-service
// limits. It is derived from a TripPlanResult and carries no state of its
// own.
type ComplianceReport struct {
	// TotalMiles is the route length.
	TotalMiles float64 `json:"total_miles"`
	// Totals aggregates duty time per status across the whole trip.
	Totals DutyTotals `json:"totals"`
	// CycleHoursUsed is the cycle balance at the end of the trip.
	CycleHoursUsed ClockHours `json:"cycle_hours_used"`
	// CycleHoursRemaining is what is left of the 70-hour budget.
	CycleHoursRemaining ClockHours `json:"cycle_hours_remaining"`
	// Days recaps each calendar day the trip touches, in order.
	Days []DayRecap `json:"days"`
	// Compliant is true when the plan carries no violations.
	Compliant bool `json:"compliant"`
	// Violations echoes the plan's violations for display.
	Violations []Violation `json:"violations"`
}
