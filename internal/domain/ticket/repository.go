package ticket

import "context"

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetByIDForUpdate loads the ticket under a row lock. The move
	// transaction holds this lock while it checks and mutates the ticket's
	// time segments, which is what keeps "at most one open segment" true
	// under concurrent moves.
	GetByIDForUpdate(ctx context.Context, ticketID uint) (*Ticket, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Ticket, error)
	Delete(ctx context.Context, ticketID uint) error
}

type ColumnRepository interface {
	Save(ctx context.Context, column *KanbanColumn) error
	GetByID(ctx context.Context, columnID uint) (*KanbanColumn, error)
	ListByProject(ctx context.Context, projectID uint) ([]*KanbanColumn, error)
}

type TimeSegmentRepository interface {
	Save(ctx context.Context, segment *TimeSegment) error
	Update(ctx context.Context, segment *TimeSegment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*TimeSegment, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
}

// EventRepository appends audit records. There is no update or delete;
// events for one ticket are totally ordered by creation time with identity
// order breaking ties.
type EventRepository interface {
	Append(ctx context.Context, event *Event) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Event, error)
}
