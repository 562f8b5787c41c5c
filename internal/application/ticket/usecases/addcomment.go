package usecases

import (
	"context"
	"fmt"
	"time"

	"bureau/internal/domain/ticket"
	"bureau/internal/shared/constants"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	AuthorID uint
	Body     string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	eventRepo   ticket.EventRepository
	txMgr       TxManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	eventRepo ticket.EventRepository,
	txMgr TxManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	var result *AddCommentResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID); err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
		}

		comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Body)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return errors.NewPersistenceError("failed to save comment", err.Error())
		}

		event, err := ticket.NewEvent(ptrUint(cmd.TicketID), constants.ActionTicketCommented, ptrUint(cmd.AuthorID), "")
		if err != nil {
			return errors.NewPersistenceError("failed to build audit event", err.Error())
		}
		if err := uc.eventRepo.Append(txCtx, event); err != nil {
			return errors.NewPersistenceError("failed to append audit event", err.Error())
		}

		result = &AddCommentResult{CommentID: comment.ID(), CreatedAt: comment.CreatedAt()}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("comment added", "comment_id", result.CommentID, "ticket_id", cmd.TicketID)
	return result, nil
}
