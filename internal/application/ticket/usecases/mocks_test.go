package usecases

import (
	"context"

	"bureau/internal/domain/ticket"
	"bureau/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListByProjectFunc    func(ctx context.Context, projectID uint) ([]*ticket.Ticket, error)
	DeleteFunc           func(ctx context.Context, ticketID uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByProject(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

type mockColumnRepository struct {
	SaveFunc          func(ctx context.Context, column *ticket.KanbanColumn) error
	GetByIDFunc       func(ctx context.Context, columnID uint) (*ticket.KanbanColumn, error)
	ListByProjectFunc func(ctx context.Context, projectID uint) ([]*ticket.KanbanColumn, error)
}

func (m *mockColumnRepository) Save(ctx context.Context, column *ticket.KanbanColumn) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, column)
	}
	return nil
}

func (m *mockColumnRepository) GetByID(ctx context.Context, columnID uint) (*ticket.KanbanColumn, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, columnID)
	}
	return nil, nil
}

func (m *mockColumnRepository) ListByProject(ctx context.Context, projectID uint) ([]*ticket.KanbanColumn, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

type mockTimeSegmentRepository struct {
	SaveFunc         func(ctx context.Context, segment *ticket.TimeSegment) error
	UpdateFunc       func(ctx context.Context, segment *ticket.TimeSegment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.TimeSegment, error)
}

func (m *mockTimeSegmentRepository) Save(ctx context.Context, segment *ticket.TimeSegment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, segment)
	}
	return nil
}

func (m *mockTimeSegmentRepository) Update(ctx context.Context, segment *ticket.TimeSegment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, segment)
	}
	return nil
}

func (m *mockTimeSegmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.TimeSegment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, comment *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockEventRepository struct {
	AppendFunc       func(ctx context.Context, event *ticket.Event) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Event, error)

	appended []*ticket.Event
}

func (m *mockEventRepository) Append(ctx context.Context, event *ticket.Event) error {
	m.appended = append(m.appended, event)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Event, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

// mockTxManager runs the function directly; a returned error stands in for
// the rollback the real manager would perform.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
