package usecases

import (
	"context"

	"bureau/internal/domain/billing"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type CreateInvoiceCommand struct {
	OrganizationID uint
	Title          string
	LegalMentions  string
	Lines          []LineInput
}

type CreateInvoiceResult struct {
	InvoiceID uint
	Total     string
}

// CreateInvoiceUseCase creates a draft invoice. The document number is not
// assigned here; issuance allocates it so drafts never consume sequence slots.
type CreateInvoiceUseCase struct {
	invoiceRepo billing.InvoiceRepository
	txMgr       TxManager
	logger      logger.Interface
}

func NewCreateInvoiceUseCase(
	invoiceRepo billing.InvoiceRepository,
	txMgr TxManager,
	logger logger.Interface,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, cmd CreateInvoiceCommand) (*CreateInvoiceResult, error) {
	uc.logger.Infow("executing create invoice use case", "organization_id", cmd.OrganizationID)

	lines, err := buildLines(cmd.Lines)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	invoice, err := billing.NewInvoice(cmd.OrganizationID, cmd.Title, cmd.LegalMentions, lines)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *CreateInvoiceResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.invoiceRepo.Save(txCtx, invoice); err != nil {
			return errors.NewPersistenceError("failed to save invoice", err.Error())
		}

		total, err := invoice.Total()
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		result = &CreateInvoiceResult{InvoiceID: invoice.ID(), Total: total.Decimal()}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("invoice created", "invoice_id", result.InvoiceID)
	return result, nil
}
