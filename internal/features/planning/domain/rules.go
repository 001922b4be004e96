package domain

import "time"

// FMCSA hours-of-service limits for property-carrying drivers.
// All regulatory durations and distances live here so a jurisdictional
// rule change is a one-line edit.
const (
	// MaxDailyDriving is the maximum driving time per duty day.
	MaxDailyDriving = 11 * time.Hour
	// MaxDailyOnDuty is the maximum combined on-duty time per duty day.
	MaxDailyOnDuty = 14 * time.Hour
	// DrivingBeforeBreak is the cumulative driving time allowed since the
	// last qualifying break before a 30-minute break becomes mandatory.
	DrivingBeforeBreak = 8 * time.Hour
	// BreakDuration is the length of the mandatory rest break.
	BreakDuration = 30 * time.Minute
	// MaxCycleOnDuty is the rolling 8-day on-duty budget.
	MaxCycleOnDuty = 70 * time.Hour
	// DailyResetDuration is the off-duty period that starts a fresh duty day.
	DailyResetDuration = 10 * time.Hour
	// CycleRestartDuration is the consecutive off-duty period that fully
	// restores the cycle budget.
	CycleRestartDuration = 34 * time.Hour
	// PickupDuration is the fixed on-duty time spent loading at pickup.
	PickupDuration = 1 * time.Hour
	// DropoffDuration is the fixed on-duty time spent unloading at dropoff.
	DropoffDuration = 1 * time.Hour
	// FuelStopDuration is the fixed on-duty time spent at a fuel stop.
	FuelStopDuration = 30 * time.Minute
)

// FuelIntervalMiles is the cumulative distance after which a fuel stop is
// inserted at the next segment boundary.
const FuelIntervalMiles = 1000.0
