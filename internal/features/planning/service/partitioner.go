package service

import (
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
)

// splitAtMidnights cuts every interval that crosses a local calendar-day
// boundary into abutting fragments, each retaining the original status,
// remark, and stop tag. Splitting preserves total duration per status
// exactly: the fragments cover the original half-open span with no gap
// and no overlap.
func splitAtMidnights(intervals []domain.DutyInterval, loc *time.Location) []domain.DutyInterval {
	out := make([]domain.DutyInterval, 0, len(intervals))
	for _, iv := range intervals {
		cur := iv
		for {
			midnight := nextMidnight(cur.Start, loc)
			if !cur.End.After(midnight) {
				out = append(out, cur)
				break
			}
			head := cur
			head.End = midnight
			out = append(out, head)
			cur.Start = midnight
		}
	}
	return out
}

// nextMidnight returns the first local midnight strictly after t.
func nextMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc).AddDate(0, 0, 1)
}

// localDate returns local midnight of the calendar day containing t.
func localDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
