package domain

import "time"

// DutyStatus is the regulatory classification of a time interval on the
// driver's log.
type DutyStatus string

const (
	// StatusDriving indicates time spent at the wheel.
	StatusDriving DutyStatus = "driving"
	// StatusOnDuty indicates working time that is not driving
	// (loading, unloading, fueling).
	StatusOnDuty DutyStatus = "on_duty_not_driving"
	// StatusOffDuty indicates time released from all work duties.
	StatusOffDuty DutyStatus = "off_duty"
	// StatusSleeperBerth indicates rest taken in the truck's sleeper berth.
	StatusSleeperBerth DutyStatus = "sleeper_berth"
)

// StopKind tags an interval that represents an inserted stop. Intervals
// with an empty StopKind are plain driving or rest time.
type StopKind string

const (
	// StopPickup is the fixed loading stop at the pickup location.
	StopPickup StopKind = "pickup"
	// StopDropoff is the fixed unloading stop at the dropoff location.
	StopDropoff StopKind = "dropoff"
	// StopFuel is a fuel stop inserted on cumulative distance.
	StopFuel StopKind = "fuel"
	// StopRestBreak is the mandatory 30-minute break after 8 driving hours.
	StopRestBreak StopKind = "rest_break"
	// StopDailyReset is the 10-hour off-duty period starting a new duty day.
	StopDailyReset StopKind = "daily_reset"
	// StopCycleRestart is the 34-hour off-duty period restoring the
	// 70-hour cycle budget.
	StopCycleRestart StopKind = "cycle_restart"
)

// DutyInterval is one half-open [Start, End) span of a single duty status.
// Intervals for one trip are contiguous and non-overlapping: every second
// of the plan carries exactly one status.
type DutyInterval struct {
	// Start is the inclusive beginning of the interval.
	Start time.Time `json:"start"`
	// End is the exclusive end of the interval. Always after Start.
	End time.Time `json:"end"`
	// Status is the duty status held for the whole interval.
	Status DutyStatus `json:"status"`
	// Location labels where the interval takes place.
	Location string `json:"location"`
	// Remark is the free-text log annotation for the interval.
	Remark string `json:"remark,omitempty"`
	// Stop tags intervals that represent an inserted stop.
	Stop StopKind `json:"stop,omitempty"`
}

// Duration returns the length of the interval.
func (i DutyInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// TripStop is an externally visible stop derived from a tagged interval.
type TripStop struct {
	// Location labels where the stop takes place.
	Location string `json:"location"`
	// Kind identifies why the stop was inserted.
	Kind StopKind `json:"kind"`
	// ArriveAt is when the stop begins.
	ArriveAt time.Time `json:"arrive_at"`
	// Duration is how long the stop lasts.
	Duration ClockHours `json:"duration_hours"`
}
