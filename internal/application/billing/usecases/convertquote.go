package usecases

import (
	"context"
	"fmt"

	"bureau/internal/domain/billing"
	"bureau/internal/shared/biztime"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type ConvertQuoteCommand struct {
	QuoteID uint
}

type ConvertQuoteResult struct {
	QuoteID   uint
	InvoiceID uint
}

// ConvertQuoteUseCase turns an accepted quote into a draft invoice carrying a
// copy of the quote's lines. The quote ends up converted and the invoice
// exists, or neither; the quote row lock keeps a concurrent convert from
// producing two invoices.
type ConvertQuoteUseCase struct {
	quoteRepo   billing.QuoteRepository
	invoiceRepo billing.InvoiceRepository
	txMgr       TxManager
	logger      logger.Interface
}

func NewConvertQuoteUseCase(
	quoteRepo billing.QuoteRepository,
	invoiceRepo billing.InvoiceRepository,
	txMgr TxManager,
	logger logger.Interface,
) *ConvertQuoteUseCase {
	return &ConvertQuoteUseCase{
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *ConvertQuoteUseCase) Execute(ctx context.Context, cmd ConvertQuoteCommand) (*ConvertQuoteResult, error) {
	uc.logger.Infow("executing convert quote use case", "quote_id", cmd.QuoteID)

	var result *ConvertQuoteResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		quote, err := uc.quoteRepo.GetByIDForUpdate(txCtx, cmd.QuoteID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("quote %d not found", cmd.QuoteID))
		}

		if err := quote.MarkConverted(biztime.NowUTC()); err != nil {
			uc.logger.Warnw("quote conversion rejected", "quote_id", cmd.QuoteID, "status", quote.Status(), "error", err)
			return errors.NewInvalidTransitionError(err.Error())
		}

		invoice, err := uc.buildInvoiceFromQuote(quote)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.invoiceRepo.Save(txCtx, invoice); err != nil {
			return errors.NewPersistenceError("failed to save invoice", err.Error())
		}
		if err := uc.quoteRepo.Update(txCtx, quote); err != nil {
			return errors.NewPersistenceError("failed to update quote", err.Error())
		}

		result = &ConvertQuoteResult{QuoteID: quote.ID(), InvoiceID: invoice.ID()}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("quote converted", "quote_id", result.QuoteID, "invoice_id", result.InvoiceID)
	return result, nil
}

func (uc *ConvertQuoteUseCase) buildInvoiceFromQuote(quote *billing.Quote) (*billing.Invoice, error) {
	lines := make([]*billing.Line, 0, len(quote.Lines()))
	for _, line := range quote.Lines() {
		copied, err := billing.NewLine(line.Description(), line.Quantity(), line.UnitPrice())
		if err != nil {
			return nil, err
		}
		lines = append(lines, copied)
	}
	return billing.NewInvoice(quote.OrganizationID(), quote.Title(), quote.Terms(), lines)
}
