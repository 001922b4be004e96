package service

import (
	"fmt"
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
)

// scheduler walks the route segment by segment, advancing a simulated
// clock and emitting duty-status intervals. Regulatory triggers are
// checked whenever a driving interval is about to be extended; stop
// triggers fire at segment boundaries.
type scheduler struct {
	acct           *Accountant
	clock          time.Time
	location       string
	milesSinceFuel float64
	intervals      []domain.DutyInterval
	violations     []domain.Violation
}

// runSchedule produces the contiguous interval timeline for the route.
// The trip ends at the dropoff boundary: segments past the dropoff, if
// any, are not driven.
func runSchedule(segments []domain.RouteSegment, acct *Accountant, start time.Time) ([]domain.DutyInterval, []domain.Violation) {
	s := &scheduler{acct: acct, clock: start}
	if len(segments) > 0 {
		s.location = segments[0].FromWaypoint
	}

	for _, seg := range segments {
		s.driveSegment(seg)
		s.location = seg.ToWaypoint
		// Tally distance from the cumulative segment values, not from
		// speed, so a boundary landing exactly on a 1000-mile mark
		// triggers the fuel check.
		s.milesSinceFuel += seg.Miles()

		switch seg.Kind {
		case domain.SegmentPickup:
			s.insertOnDutyStop(seg.ToWaypoint, domain.StopPickup, domain.PickupDuration, "Pickup: loading cargo")
		case domain.SegmentDropoff:
			s.insertOnDutyStop(seg.ToWaypoint, domain.StopDropoff, domain.DropoffDuration, "Dropoff: unloading cargo")
			return s.intervals, s.violations
		}

		if s.milesSinceFuel >= domain.FuelIntervalMiles {
			s.insertOnDutyStop(seg.ToWaypoint, domain.StopFuel, domain.FuelStopDuration, "Fuel stop")
			s.milesSinceFuel = 0
		}
	}

	return s.intervals, s.violations
}

// driveSegment consumes the segment's drive time, splitting it wherever a
// regulatory trigger fires. Zero-length segments (co-located waypoints)
// emit nothing.
func (s *scheduler) driveSegment(seg domain.RouteSegment) {
	remaining := seg.DriveTime()
	for remaining > 0 {
		slice := s.acct.UntilNextLimit()
		if slice > remaining {
			slice = remaining
		}

		if slice > 0 {
			s.emit(domain.DutyInterval{
				Start:    s.clock,
				End:      s.clock.Add(slice),
				Status:   domain.StatusDriving,
				Location: "En route",
				Remark:   fmt.Sprintf("Driving toward %s", seg.ToWaypoint),
			})
			s.acct.ConsumeDriving(slice)
			remaining -= slice
		}

		if remaining > 0 {
			s.fireRegulatory()
		}
	}
}

// fireRegulatory inserts the rest demanded by the tightest exhausted
// limit. Priority is break, then daily reset, then cycle restart: a break
// is evaluated first because it can make the daily rollover unnecessary.
func (s *scheduler) fireRegulatory() {
	switch {
	case s.acct.NeedsBreak():
		s.insertRest(domain.StatusOffDuty, domain.BreakDuration, domain.StopRestBreak,
			"Rest stop", "30-minute break after 8 hours driving")
		s.acct.ApplyBreak()
	case s.acct.NeedsDailyReset():
		_, drivingLimited := s.acct.UntilDailyLimit()
		remark := "10-hour reset: 14-hour on-duty window exhausted"
		if drivingLimited {
			remark = "10-hour reset: 11-hour driving limit reached"
		}
		s.insertRest(domain.StatusSleeperBerth, domain.DailyResetDuration, domain.StopDailyReset,
			"Rest stop", remark)
		s.acct.ApplyDailyReset()
	case s.acct.NeedsCycleReset():
		s.insertCycleRestart()
	}
}

// insertCycleRestart records the cycle violation and schedules the
// implicit 34-hour restart that lets the rest of the plan stay
// inspectable.
func (s *scheduler) insertCycleRestart() {
	s.violations = append(s.violations, domain.Violation{
		Kind:    domain.ViolationCycleExhausted,
		Message: "70-hour/8-day cycle budget exhausted mid-trip; schedule continues past an implicit 34-hour restart",
		At:      s.clock,
	})
	s.insertRest(domain.StatusOffDuty, domain.CycleRestartDuration, domain.StopCycleRestart,
		"Rest stop", "34-hour restart: cycle budget exhausted")
	s.acct.ApplyCycleRestart()
}

// insertOnDutyStop emits a fixed-duration on-duty stop. Stop time consumes
// the same counters as any other work, so the limits are pre-checked: a
// stop that cannot fit in the remaining cycle budget schedules the restart
// (and its violation) first, and one that cannot fit in the 14-hour window
// gets a daily reset in front of it.
func (s *scheduler) insertOnDutyStop(location string, kind domain.StopKind, dur time.Duration, remark string) {
	if s.acct.UntilCycleLimit() < dur {
		s.insertCycleRestart()
	}
	if s.acct.WindowRemaining() < dur {
		s.insertRest(domain.StatusSleeperBerth, domain.DailyResetDuration, domain.StopDailyReset,
			location, "10-hour reset: 14-hour on-duty window exhausted")
		s.acct.ApplyDailyReset()
	}
	s.emit(domain.DutyInterval{
		Start:    s.clock,
		End:      s.clock.Add(dur),
		Status:   domain.StatusOnDuty,
		Location: location,
		Remark:   remark,
		Stop:     kind,
	})
	s.acct.ConsumeOnDuty(dur)
}

// insertRest emits a rest interval. Rest time consumes no counters.
func (s *scheduler) insertRest(status domain.DutyStatus, dur time.Duration, kind domain.StopKind, location, remark string) {
	s.emit(domain.DutyInterval{
		Start:    s.clock,
		End:      s.clock.Add(dur),
		Status:   status,
		Location: location,
		Remark:   remark,
		Stop:     kind,
	})
}

// emit appends the interval and advances the simulated clock to its end.
func (s *scheduler) emit(iv domain.DutyInterval) {
	if !iv.End.After(iv.Start) {
		return
	}
	s.intervals = append(s.intervals, iv)
	s.clock = iv.End
}

// deriveStops lists every interval tagged as an inserted stop, in trip
// order.
func deriveStops(intervals []domain.DutyInterval) []domain.TripStop {
	stops := []domain.TripStop{}
	for _, iv := range intervals {
		if iv.Stop == "" {
			continue
		}
		stops = append(stops, domain.TripStop{
			Location: iv.Location,
			Kind:     iv.Stop,
			ArriveAt: iv.Start,
			Duration: domain.ClockHours(iv.Duration()),
		})
	}
	return stops
}
