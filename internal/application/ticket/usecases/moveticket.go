package usecases

import (
	"context"
	"fmt"

	"bureau/internal/domain/ticket"
	"bureau/internal/shared/biztime"
	"bureau/internal/shared/constants"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type MoveTicketCommand struct {
	TicketID uint
	ColumnID uint
	ActorID  uint
}

type MoveTicketResult struct {
	TicketID       uint
	FromColumnID   uint
	ToColumnID     uint
	TimerStarted   bool
	SegmentsClosed int
}

// MoveTicketUseCase coordinates a column move: target column validation, the
// column change itself, timer effects, and the audit event, all inside one
// transaction. The ticket row is locked for the duration so two concurrent
// moves cannot both observe "no open segment" and both start one.
type MoveTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	columnRepo  ticket.ColumnRepository
	segmentRepo ticket.TimeSegmentRepository
	eventRepo   ticket.EventRepository
	txMgr       TxManager
	logger      logger.Interface
}

func NewMoveTicketUseCase(
	ticketRepo ticket.TicketRepository,
	columnRepo ticket.ColumnRepository,
	segmentRepo ticket.TimeSegmentRepository,
	eventRepo ticket.EventRepository,
	txMgr TxManager,
	logger logger.Interface,
) *MoveTicketUseCase {
	return &MoveTicketUseCase{
		ticketRepo:  ticketRepo,
		columnRepo:  columnRepo,
		segmentRepo: segmentRepo,
		eventRepo:   eventRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *MoveTicketUseCase) Execute(ctx context.Context, cmd MoveTicketCommand) (*MoveTicketResult, error) {
	uc.logger.Infow("executing move ticket use case", "ticket_id", cmd.TicketID, "column_id", cmd.ColumnID)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	var result *MoveTicketResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Warnw("ticket not found for move", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		column, err := uc.columnRepo.GetByID(txCtx, cmd.ColumnID)
		if err != nil {
			uc.logger.Warnw("target column not found", "column_id", cmd.ColumnID, "error", err)
			return errors.NewNotFoundError(fmt.Sprintf("column %d not found", cmd.ColumnID))
		}

		fromColumnID := t.ColumnID()

		if err := t.MoveToColumn(column); err != nil {
			uc.logger.Warnw("invalid ticket move", "ticket_id", cmd.TicketID, "column_id", cmd.ColumnID, "error", err)
			return errors.NewInvalidTransitionError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return errors.NewPersistenceError("failed to update ticket", err.Error())
		}

		timerStarted, segmentsClosed, err := uc.applyTimerEffects(txCtx, t.ID(), column)
		if err != nil {
			return err
		}

		event, err := ticket.NewEvent(ptrUint(t.ID()), constants.ActionTicketMoved, ptrUint(cmd.ActorID), fmt.Sprintf("%d", column.ID()))
		if err != nil {
			return errors.NewPersistenceError("failed to build audit event", err.Error())
		}
		if err := uc.eventRepo.Append(txCtx, event); err != nil {
			return errors.NewPersistenceError("failed to append audit event", err.Error())
		}

		result = &MoveTicketResult{
			TicketID:       t.ID(),
			FromColumnID:   fromColumnID,
			ToColumnID:     column.ID(),
			TimerStarted:   timerStarted,
			SegmentsClosed: segmentsClosed,
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket moved",
		"ticket_id", result.TicketID,
		"from_column", result.FromColumnID,
		"to_column", result.ToColumnID,
		"timer_started", result.TimerStarted,
		"segments_closed", result.SegmentsClosed,
	)
	return result, nil
}

// applyTimerEffects executes the pure timer plan for the entered column.
// It runs on the same transaction context as the column change.
func (uc *MoveTicketUseCase) applyTimerEffects(ctx context.Context, ticketID uint, column *ticket.KanbanColumn) (bool, int, error) {
	segments, err := uc.segmentRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		return false, 0, errors.NewPersistenceError("failed to load time segments", err.Error())
	}

	plan := ticket.PlanTimer(segments, column.Role())
	if plan.IsNoop() {
		return false, 0, nil
	}

	now := biztime.NowUTC()

	if plan.Start {
		segment, err := ticket.NewTimeSegment(ticketID, now)
		if err != nil {
			return false, 0, errors.NewPersistenceError("failed to build time segment", err.Error())
		}
		if err := uc.segmentRepo.Save(ctx, segment); err != nil {
			if errors.IsDuplicateError(err) {
				return false, 0, errors.NewConflictError("open time segment already exists", err.Error())
			}
			return false, 0, errors.NewPersistenceError("failed to save time segment", err.Error())
		}
		return true, 0, nil
	}

	closed := 0
	for _, segment := range segments {
		if !contains(plan.CloseIDs, segment.ID()) {
			continue
		}
		if err := segment.Close(now); err != nil {
			return false, 0, errors.NewPersistenceError("failed to close time segment", err.Error())
		}
		if err := uc.segmentRepo.Update(ctx, segment); err != nil {
			return false, 0, errors.NewPersistenceError("failed to persist closed segment", err.Error())
		}
		closed++
	}
	return false, closed, nil
}

func (uc *MoveTicketUseCase) validateCommand(cmd MoveTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ColumnID == 0 {
		return errors.NewValidationError("column ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	return nil
}

func contains(ids []uint, id uint) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func ptrUint(v uint) *uint {
	return &v
}
