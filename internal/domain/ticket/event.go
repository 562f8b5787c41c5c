package ticket

import (
	"fmt"
	"time"
)

// Event is one append-only audit record of a state-changing action against a
// ticket. Events are never updated or deleted; they only disappear when
// their ticket is cascade-deleted.
type Event struct {
	id        uint
	ticketID  *uint
	action    string
	actorID   *uint
	details   string
	createdAt time.Time
}

func NewEvent(ticketID *uint, action string, actorID *uint, details string) (*Event, error) {
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}
	if len(action) > 255 {
		return nil, fmt.Errorf("action exceeds maximum length of 255 characters")
	}

	return &Event{
		ticketID:  ticketID,
		action:    action,
		actorID:   actorID,
		details:   details,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructEvent(id uint, ticketID *uint, action string, actorID *uint, details string, createdAt time.Time) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}

	return &Event{
		id:        id,
		ticketID:  ticketID,
		action:    action,
		actorID:   actorID,
		details:   details,
		createdAt: createdAt,
	}, nil
}

func (e *Event) ID() uint {
	return e.id
}

func (e *Event) TicketID() *uint {
	return e.ticketID
}

func (e *Event) Action() string {
	return e.action
}

func (e *Event) ActorID() *uint {
	return e.actorID
}

func (e *Event) Details() string {
	return e.details
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}
