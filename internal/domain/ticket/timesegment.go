package ticket

import (
	"fmt"
	"time"
)

// TimeSegment is one span of accrued work time on a ticket. A segment with
// no end timestamp is open; a ticket has at most one open segment at any
// committed state. Closed segments are immutable.
type TimeSegment struct {
	id        uint
	ticketID  uint
	startedAt time.Time
	endedAt   *time.Time
}

func NewTimeSegment(ticketID uint, startedAt time.Time) (*TimeSegment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if startedAt.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}

	return &TimeSegment{
		ticketID:  ticketID,
		startedAt: startedAt.UTC(),
	}, nil
}

func ReconstructTimeSegment(id, ticketID uint, startedAt time.Time, endedAt *time.Time) (*TimeSegment, error) {
	if id == 0 {
		return nil, fmt.Errorf("time segment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if endedAt != nil && endedAt.Before(startedAt) {
		return nil, fmt.Errorf("segment end %s precedes start %s", endedAt, startedAt)
	}

	return &TimeSegment{
		id:        id,
		ticketID:  ticketID,
		startedAt: startedAt,
		endedAt:   endedAt,
	}, nil
}

func (s *TimeSegment) ID() uint {
	return s.id
}

func (s *TimeSegment) TicketID() uint {
	return s.ticketID
}

func (s *TimeSegment) StartedAt() time.Time {
	return s.startedAt
}

func (s *TimeSegment) EndedAt() *time.Time {
	return s.endedAt
}

// IsOpen reports whether the segment is still accruing time.
func (s *TimeSegment) IsOpen() bool {
	return s.endedAt == nil
}

// Duration returns the accrued time, up to now for an open segment.
func (s *TimeSegment) Duration(now time.Time) time.Duration {
	if s.endedAt != nil {
		return s.endedAt.Sub(s.startedAt)
	}
	return now.Sub(s.startedAt)
}

func (s *TimeSegment) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("time segment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("time segment ID cannot be zero")
	}
	s.id = id
	return nil
}

// Close stamps the end of the segment. Closing an already closed segment is
// an error; closed segments never change.
func (s *TimeSegment) Close(at time.Time) error {
	if s.endedAt != nil {
		return fmt.Errorf("time segment %d is already closed", s.id)
	}
	at = at.UTC()
	if at.Before(s.startedAt) {
		return fmt.Errorf("cannot close segment before its start")
	}
	s.endedAt = &at
	return nil
}
