package service

import (
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
)

// buildLogSheets partitions the trip's intervals at local midnights and
// aggregates one log sheet per calendar day touched by the trip, carrying
// per-status totals and the cycle-hour balance as of day end.
func buildLogSheets(intervals []domain.DutyInterval, loc *time.Location, startingCycle time.Duration) []domain.LogSheetDay {
	split := splitAtMidnights(intervals, loc)

	sheets := []domain.LogSheetDay{}
	cycle := startingCycle
	for _, iv := range split {
		date := localDate(iv.Start, loc)
		if len(sheets) == 0 || !sheets[len(sheets)-1].Date.Equal(date) {
			sheets = append(sheets, domain.LogSheetDay{Date: date})
		}
		day := &sheets[len(sheets)-1]

		day.Intervals = append(day.Intervals, iv)
		day.Totals.Add(iv.Status, iv.Duration())

		switch iv.Status {
		case domain.StatusDriving, domain.StatusOnDuty:
			cycle += iv.Duration()
		}
		if iv.Stop == domain.StopCycleRestart {
			cycle = 0
		}
		day.CycleUsedAtEnd = domain.ClockHours(cycle)
	}
	return sheets
}

// BuildComplianceReport summarizes a plan against the hours-of-service
// limits: whole-trip totals per status, cycle balance and remaining
// budget, and the plan's violations.
func BuildComplianceReport(result *domain.TripPlanResult) domain.ComplianceReport {
	report := domain.ComplianceReport{
		TotalMiles: result.TotalMiles,
		Days:       make([]domain.DayRecap, 0, len(result.LogSheets)),
		Compliant:  result.Feasible,
		Violations: result.Violations,
	}
	for _, day := range result.LogSheets {
		report.Totals.Driving += day.Totals.Driving
		report.Totals.OnDuty += day.Totals.OnDuty
		report.Totals.OffDuty += day.Totals.OffDuty
		report.Totals.SleeperBerth += day.Totals.SleeperBerth
		report.Days = append(report.Days, domain.DayRecap{
			Date:           day.Date,
			Totals:         day.Totals,
			CycleUsedAtEnd: day.CycleUsedAtEnd,
		})
	}
	if len(result.LogSheets) > 0 {
		report.CycleHoursUsed = result.LogSheets[len(result.LogSheets)-1].CycleUsedAtEnd
	}
	remaining := domain.ClockHours(domain.MaxCycleOnDuty) - report.CycleHoursUsed
	if remaining < 0 {
		remaining = 0
	}
	report.CycleHoursRemaining = remaining
	return report
}
