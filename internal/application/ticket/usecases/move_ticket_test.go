package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bureau/internal/domain/ticket"
	vo "bureau/internal/domain/ticket/valueobjects"
	"bureau/internal/shared/constants"
	"bureau/internal/shared/errors"
)

func boardColumn(t *testing.T, id, projectID uint, name string, role vo.ColumnRole) *ticket.KanbanColumn {
	t.Helper()
	column, err := ticket.ReconstructKanbanColumn(id, projectID, name, role, 0, false)
	require.NoError(t, err)
	return column
}

func boardTicket(t *testing.T, id, projectID, columnID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, projectID, columnID, "fix login redirect", "", vo.PriorityMedium, nil, 1, time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)
	return tk
}

func storedOpenSegment(t *testing.T, id, ticketID uint, startedAt time.Time) *ticket.TimeSegment {
	t.Helper()
	segment, err := ticket.ReconstructTimeSegment(id, ticketID, startedAt, nil)
	require.NoError(t, err)
	return segment
}

func TestMoveTicketUseCase_MoveToInProgressStartsTimer(t *testing.T) {
	tk := boardTicket(t, 1, 10, 100)
	target := boardColumn(t, 101, 10, "In Progress", vo.RoleInProgress)

	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	columnRepo := &mockColumnRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.KanbanColumn, error) {
			return target, nil
		},
	}
	var savedSegment *ticket.TimeSegment
	segmentRepo := &mockTimeSegmentRepository{
		ListByTicketFunc: func(ctx context.Context, id uint) ([]*ticket.TimeSegment, error) {
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, segment *ticket.TimeSegment) error {
			savedSegment = segment
			return nil
		},
	}
	eventRepo := &mockEventRepository{}

	uc := NewMoveTicketUseCase(ticketRepo, columnRepo, segmentRepo, eventRepo, &mockTxManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), MoveTicketCommand{TicketID: 1, ColumnID: 101, ActorID: 7})
	require.NoError(t, err)

	assert.Equal(t, uint(100), result.FromColumnID)
	assert.Equal(t, uint(101), result.ToColumnID)
	assert.True(t, result.TimerStarted)
	assert.Equal(t, 0, result.SegmentsClosed)

	assert.Equal(t, uint(101), tk.ColumnID())
	require.NotNil(t, savedSegment)
	assert.True(t, savedSegment.IsOpen())

	require.Len(t, eventRepo.appended, 1)
	assert.Equal(t, constants.ActionTicketMoved, eventRepo.appended[0].Action())
}

func TestMoveTicketUseCase_MoveToDoneClosesOpenSegment(t *testing.T) {
	tk := boardTicket(t, 1, 10, 101)
	target := boardColumn(t, 102, 10, "Done", vo.RoleDone)
	open := storedOpenSegment(t, 31, 1, time.Now().UTC().Add(-time.Hour))

	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	columnRepo := &mockColumnRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.KanbanColumn, error) {
			return target, nil
		},
	}
	var updated []*ticket.TimeSegment
	segmentRepo := &mockTimeSegmentRepository{
		ListByTicketFunc: func(ctx context.Context, id uint) ([]*ticket.TimeSegment, error) {
			return []*ticket.TimeSegment{open}, nil
		},
		UpdateFunc: func(ctx context.Context, segment *ticket.TimeSegment) error {
			updated = append(updated, segment)
			return nil
		},
	}
	eventRepo := &mockEventRepository{}

	uc := NewMoveTicketUseCase(ticketRepo, columnRepo, segmentRepo, eventRepo, &mockTxManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), MoveTicketCommand{TicketID: 1, ColumnID: 102, ActorID: 7})
	require.NoError(t, err)

	assert.False(t, result.TimerStarted)
	assert.Equal(t, 1, result.SegmentsClosed)
	require.Len(t, updated, 1)
	assert.False(t, updated[0].IsOpen())
}

func TestMoveTicketUseCase_ReenterInProgressDoesNotStartSecondTimer(t *testing.T) {
	tk := boardTicket(t, 1, 10, 100)
	target := boardColumn(t, 101, 10, "In Progress", vo.RoleInProgress)
	open := storedOpenSegment(t, 31, 1, time.Now().UTC().Add(-time.Hour))

	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	columnRepo := &mockColumnRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.KanbanColumn, error) {
			return target, nil
		},
	}
	segmentRepo := &mockTimeSegmentRepository{
		ListByTicketFunc: func(ctx context.Context, id uint) ([]*ticket.TimeSegment, error) {
			return []*ticket.TimeSegment{open}, nil
		},
		SaveFunc: func(ctx context.Context, segment *ticket.TimeSegment) error {
			t.Fatal("no new segment should be started while one is open")
			return nil
		},
	}
	eventRepo := &mockEventRepository{}

	uc := NewMoveTicketUseCase(ticketRepo, columnRepo, segmentRepo, eventRepo, &mockTxManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), MoveTicketCommand{TicketID: 1, ColumnID: 101, ActorID: 7})
	require.NoError(t, err)
	assert.False(t, result.TimerStarted)
	assert.Equal(t, 0, result.SegmentsClosed)
}

func TestMoveTicketUseCase_CrossProjectColumnRejected(t *testing.T) {
	tk := boardTicket(t, 1, 10, 100)
	foreign := boardColumn(t, 900, 99, "In Progress", vo.RoleInProgress)

	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			t.Fatal("ticket must not be updated on an invalid move")
			return nil
		},
	}
	columnRepo := &mockColumnRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.KanbanColumn, error) {
			return foreign, nil
		},
	}
	eventRepo := &mockEventRepository{}

	uc := NewMoveTicketUseCase(ticketRepo, columnRepo, &mockTimeSegmentRepository{}, eventRepo, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), MoveTicketCommand{TicketID: 1, ColumnID: 900, ActorID: 7})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Equal(t, uint(100), tk.ColumnID())
	assert.Empty(t, eventRepo.appended)
}

func TestMoveTicketUseCase_TicketNotFound(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, assert.AnError
		},
	}

	uc := NewMoveTicketUseCase(ticketRepo, &mockColumnRepository{}, &mockTimeSegmentRepository{}, &mockEventRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), MoveTicketCommand{TicketID: 42, ColumnID: 101, ActorID: 7})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMoveTicketUseCase_DuplicateOpenSegmentMapsToConflict(t *testing.T) {
	tk := boardTicket(t, 1, 10, 100)
	target := boardColumn(t, 101, 10, "In Progress", vo.RoleInProgress)

	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	columnRepo := &mockColumnRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.KanbanColumn, error) {
			return target, nil
		},
	}
	segmentRepo := &mockTimeSegmentRepository{
		SaveFunc: func(ctx context.Context, segment *ticket.TimeSegment) error {
			return fmt.Errorf("Error 1062 (23000): Duplicate entry '1' for key 'uq_open_segment'")
		},
	}

	uc := NewMoveTicketUseCase(ticketRepo, columnRepo, segmentRepo, &mockEventRepository{}, &mockTxManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), MoveTicketCommand{TicketID: 1, ColumnID: 101, ActorID: 7})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestMoveTicketUseCase_ValidatesCommand(t *testing.T) {
	uc := NewMoveTicketUseCase(&mockTicketRepository{}, &mockColumnRepository{}, &mockTimeSegmentRepository{}, &mockEventRepository{}, &mockTxManager{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  MoveTicketCommand
	}{
		{"missing ticket ID", MoveTicketCommand{ColumnID: 1, ActorID: 1}},
		{"missing column ID", MoveTicketCommand{TicketID: 1, ActorID: 1}},
		{"missing actor ID", MoveTicketCommand{TicketID: 1, ColumnID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
