package usecases

import (
	"context"
	"time"

	"bureau/internal/domain/billing"
	vo "bureau/internal/domain/billing/valueobjects"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type CreateQuoteCommand struct {
	OrganizationID uint
	Title          string
	Terms          string
	ValidUntil     *time.Time
	Lines          []LineInput
}

type CreateQuoteResult struct {
	QuoteID uint
	Number  string
	Total   string
}

// CreateQuoteUseCase creates a draft quote and assigns its document number at
// creation time, inside the same transaction that persists the row.
type CreateQuoteUseCase struct {
	quoteRepo billing.QuoteRepository
	allocator billing.NumberAllocator
	txMgr     TxManager
	logger    logger.Interface
}

func NewCreateQuoteUseCase(
	quoteRepo billing.QuoteRepository,
	allocator billing.NumberAllocator,
	txMgr TxManager,
	logger logger.Interface,
) *CreateQuoteUseCase {
	return &CreateQuoteUseCase{
		quoteRepo: quoteRepo,
		allocator: allocator,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *CreateQuoteUseCase) Execute(ctx context.Context, cmd CreateQuoteCommand) (*CreateQuoteResult, error) {
	uc.logger.Infow("executing create quote use case", "organization_id", cmd.OrganizationID)

	lines, err := buildLines(cmd.Lines)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	quote, err := billing.NewQuote(cmd.OrganizationID, cmd.Title, cmd.Terms, cmd.ValidUntil, lines)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *CreateQuoteResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.allocator.Allocate(txCtx, cmd.OrganizationID, vo.KindQuote)
		if err != nil {
			return err
		}
		if err := quote.SetNumber(number); err != nil {
			return errors.NewPersistenceError("failed to assign quote number", err.Error())
		}

		if err := uc.quoteRepo.Save(txCtx, quote); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("quote number already taken", err.Error())
			}
			return errors.NewPersistenceError("failed to save quote", err.Error())
		}

		total, err := quote.Total()
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		result = &CreateQuoteResult{
			QuoteID: quote.ID(),
			Number:  number.String(),
			Total:   total.Decimal(),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("quote created", "quote_id", result.QuoteID, "number", result.Number)
	return result, nil
}
