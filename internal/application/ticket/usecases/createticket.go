package usecases

import (
	"context"
	"fmt"

	"bureau/internal/domain/ticket"
	vo "bureau/internal/domain/ticket/valueobjects"
	"bureau/internal/shared/constants"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type CreateTicketCommand struct {
	ProjectID         uint
	ColumnID          uint
	Title             string
	Description       string
	Priority          string
	EstimationMinutes *int
	ActorID           uint
}

type CreateTicketResult struct {
	TicketID uint
	ColumnID uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	columnRepo ticket.ColumnRepository
	eventRepo  ticket.EventRepository
	txMgr      TxManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	columnRepo ticket.ColumnRepository,
	eventRepo ticket.EventRepository,
	txMgr TxManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		columnRepo: columnRepo,
		eventRepo:  eventRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "project_id", cmd.ProjectID, "column_id", cmd.ColumnID)

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		var err error
		priority, err = vo.ParsePriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	var result *CreateTicketResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		column, err := uc.columnRepo.GetByID(txCtx, cmd.ColumnID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("column %d not found", cmd.ColumnID))
		}
		if !column.BelongsToProject(cmd.ProjectID) {
			return errors.NewInvalidTransitionError(
				fmt.Sprintf("column %d does not belong to project %d", cmd.ColumnID, cmd.ProjectID))
		}

		t, err := ticket.NewTicket(cmd.ProjectID, cmd.ColumnID, cmd.Title, cmd.Description, priority, cmd.EstimationMinutes)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return errors.NewPersistenceError("failed to save ticket", err.Error())
		}

		event, err := ticket.NewEvent(ptrUint(t.ID()), constants.ActionTicketCreated, ptrUint(cmd.ActorID), "")
		if err != nil {
			return errors.NewPersistenceError("failed to build audit event", err.Error())
		}
		if err := uc.eventRepo.Append(txCtx, event); err != nil {
			return errors.NewPersistenceError("failed to append audit event", err.Error())
		}

		result = &CreateTicketResult{TicketID: t.ID(), ColumnID: t.ColumnID()}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket created", "ticket_id", result.TicketID)
	return result, nil
}
