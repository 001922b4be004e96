package service

import (
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
)

// Accountant tracks the rolling 70-hour cycle budget and the current duty
// day's driving and on-duty counters. It is mutated only by the scheduler
// within a single planning call; concurrent plans each get their own
// instance.
type Accountant struct {
	cycleUsed        time.Duration
	drivenToday      time.Duration
	onDutyToday      time.Duration
	drivenSinceBreak time.Duration
}

// NewAccountant creates an accountant with the given number of cycle hours
// already consumed and fresh daily counters.
func NewAccountant(cycleHoursUsed float64) *Accountant {
	return &Accountant{
		cycleUsed: time.Duration(cycleHoursUsed * float64(time.Hour)),
	}
}

// ConsumeDriving records d of driving time against every counter.
func (a *Accountant) ConsumeDriving(d time.Duration) {
	a.drivenToday += d
	a.drivenSinceBreak += d
	a.onDutyToday += d
	a.cycleUsed += d
}

// ConsumeOnDuty records d of non-driving work time. It counts against the
// daily on-duty window and the cycle budget but not the driving counters.
func (a *Accountant) ConsumeOnDuty(d time.Duration) {
	a.onDutyToday += d
	a.cycleUsed += d
}

// NeedsBreak reports whether the mandatory 30-minute break is due.
func (a *Accountant) NeedsBreak() bool {
	return a.drivenSinceBreak >= domain.DrivingBeforeBreak
}

// NeedsDailyReset reports whether either daily limit is exhausted.
func (a *Accountant) NeedsDailyReset() bool {
	return a.drivenToday >= domain.MaxDailyDriving || a.onDutyToday >= domain.MaxDailyOnDuty
}

// NeedsCycleReset reports whether the 70-hour cycle budget is exhausted.
func (a *Accountant) NeedsCycleReset() bool {
	return a.cycleUsed >= domain.MaxCycleOnDuty
}

// ApplyBreak credits a qualifying rest break.
func (a *Accountant) ApplyBreak() {
	a.drivenSinceBreak = 0
}

// ApplyDailyReset starts a fresh duty day. The cycle budget is untouched:
// only a restart gives those hours back.
func (a *Accountant) ApplyDailyReset() {
	a.drivenToday = 0
	a.onDutyToday = 0
	a.drivenSinceBreak = 0
}

// ApplyCycleRestart credits a 34-hour restart, restoring the full cycle
// budget and starting a fresh duty day.
func (a *Accountant) ApplyCycleRestart() {
	a.cycleUsed = 0
	a.ApplyDailyReset()
}

// UntilBreak returns the driving time left before a break is due.
func (a *Accountant) UntilBreak() time.Duration {
	return maxDuration(0, domain.DrivingBeforeBreak-a.drivenSinceBreak)
}

// UntilDailyLimit returns the driving time left before a daily reset is
// due and whether the binding limit is the 11-hour driving cap. When both
// daily limits run out at the same instant, the driving cap is reported as
// binding: driving is the scarcer resource.
func (a *Accountant) UntilDailyLimit() (time.Duration, bool) {
	untilDriving := maxDuration(0, domain.MaxDailyDriving-a.drivenToday)
	untilWindow := maxDuration(0, domain.MaxDailyOnDuty-a.onDutyToday)
	if untilDriving <= untilWindow {
		return untilDriving, true
	}
	return untilWindow, false
}

// UntilCycleLimit returns the on-duty time left in the cycle budget.
func (a *Accountant) UntilCycleLimit() time.Duration {
	return maxDuration(0, domain.MaxCycleOnDuty-a.cycleUsed)
}

// UntilNextLimit returns the longest stretch of driving permitted before
// any regulatory trigger fires.
func (a *Accountant) UntilNextLimit() time.Duration {
	next := a.UntilBreak()
	if daily, _ := a.UntilDailyLimit(); daily < next {
		next = daily
	}
	if cycle := a.UntilCycleLimit(); cycle < next {
		next = cycle
	}
	return next
}

// WindowRemaining returns the on-duty time left in the 14-hour window.
func (a *Accountant) WindowRemaining() time.Duration {
	return maxDuration(0, domain.MaxDailyOnDuty-a.onDutyToday)
}

// CycleUsed returns the cycle hours consumed so far.
func (a *Accountant) CycleUsed() time.Duration {
	return a.cycleUsed
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
