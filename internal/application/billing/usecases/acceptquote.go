package usecases

import (
	"context"
	"fmt"
	"time"

	"bureau/internal/domain/billing"
	"bureau/internal/shared/biztime"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type AcceptQuoteCommand struct {
	QuoteID  uint
	ActorID  uint
	ClientIP string
}

type AcceptQuoteResult struct {
	QuoteID    uint
	AcceptedAt time.Time
}

// AcceptQuoteUseCase moves a quote from draft to accepted and stamps the
// acceptance metadata. The quote row is locked so a concurrent acceptance of
// the same quote sees the committed status and is rejected instead of
// overwriting the first stamp.
type AcceptQuoteUseCase struct {
	quoteRepo billing.QuoteRepository
	txMgr     TxManager
	logger    logger.Interface
}

func NewAcceptQuoteUseCase(
	quoteRepo billing.QuoteRepository,
	txMgr TxManager,
	logger logger.Interface,
) *AcceptQuoteUseCase {
	return &AcceptQuoteUseCase{
		quoteRepo: quoteRepo,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *AcceptQuoteUseCase) Execute(ctx context.Context, cmd AcceptQuoteCommand) (*AcceptQuoteResult, error) {
	uc.logger.Infow("executing accept quote use case", "quote_id", cmd.QuoteID, "actor_id", cmd.ActorID)

	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	var result *AcceptQuoteResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		quote, err := uc.quoteRepo.GetByIDForUpdate(txCtx, cmd.QuoteID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("quote %d not found", cmd.QuoteID))
		}

		if err := quote.Accept(biztime.NowUTC(), cmd.ClientIP, cmd.ActorID); err != nil {
			uc.logger.Warnw("quote acceptance rejected", "quote_id", cmd.QuoteID, "status", quote.Status(), "error", err)
			return errors.NewInvalidTransitionError(err.Error())
		}

		if err := uc.quoteRepo.Update(txCtx, quote); err != nil {
			return errors.NewPersistenceError("failed to update quote", err.Error())
		}

		result = &AcceptQuoteResult{QuoteID: quote.ID(), AcceptedAt: *quote.AcceptedAt()}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("quote accepted", "quote_id", result.QuoteID, "accepted_at", result.AcceptedAt)
	return result, nil
}
