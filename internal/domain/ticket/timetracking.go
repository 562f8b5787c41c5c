package ticket

import (
	vo "bureau/internal/domain/ticket/valueobjects"
)

// TimerPlan is the set of timer effects entering a column has on a ticket:
// at most one segment to open, zero or more open segments to close. It is
// computed purely from the current segments and the target column role; the
// caller executes it inside the same transaction as the column change.
type TimerPlan struct {
	Start    bool
	CloseIDs []uint
}

// IsNoop reports whether the plan changes nothing.
func (p TimerPlan) IsNoop() bool {
	return !p.Start && len(p.CloseIDs) == 0
}

// PlanTimer decides the timer effects of a ticket entering a column.
//
// Entering an in-progress column opens a segment unless one is already open.
// Entering a done column closes every open segment. Any other column leaves
// the timers alone. Finding more than one open segment means the open-segment
// invariant was already broken by a concurrency bug; the plan still closes
// them all on done, and starts nothing on in-progress.
func PlanTimer(segments []*TimeSegment, role vo.ColumnRole) TimerPlan {
	switch {
	case role.IsInProgress():
		for _, segment := range segments {
			if segment.IsOpen() {
				return TimerPlan{}
			}
		}
		return TimerPlan{Start: true}

	case role.IsDone():
		var closeIDs []uint
		for _, segment := range segments {
			if segment.IsOpen() {
				closeIDs = append(closeIDs, segment.ID())
			}
		}
		return TimerPlan{CloseIDs: closeIDs}

	default:
		return TimerPlan{}
	}
}

// OpenSegments returns the open segments of the given set.
func OpenSegments(segments []*TimeSegment) []*TimeSegment {
	var open []*TimeSegment
	for _, segment := range segments {
		if segment.IsOpen() {
			open = append(open, segment)
		}
	}
	return open
}
