package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"bureau/internal/domain/billing"
	vo "bureau/internal/domain/billing/valueobjects"
	"bureau/internal/shared/biztime"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type IssueInvoiceCommand struct {
	InvoiceID uint
}

type IssueInvoiceResult struct {
	InvoiceID     uint
	Number        string
	Checksum      string
	ContentType   string
	IssueDate     time.Time
	AlreadyIssued bool
}

// IssueInvoiceUseCase finalizes an invoice: number allocation, document
// rendering, checksum, issue date and the locked flag, all in one
// transaction. The invoice row is read under a lock so the locked check and
// the write cannot interleave with a concurrent issue; a locked invoice
// short-circuits to the stored document, unchanged.
type IssueInvoiceUseCase struct {
	invoiceRepo billing.InvoiceRepository
	allocator   billing.NumberAllocator
	renderer    billing.DocumentRenderer
	txMgr       TxManager
	logger      logger.Interface
}

func NewIssueInvoiceUseCase(
	invoiceRepo billing.InvoiceRepository,
	allocator billing.NumberAllocator,
	renderer billing.DocumentRenderer,
	txMgr TxManager,
	logger logger.Interface,
) *IssueInvoiceUseCase {
	return &IssueInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		allocator:   allocator,
		renderer:    renderer,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *IssueInvoiceUseCase) Execute(ctx context.Context, cmd IssueInvoiceCommand) (*IssueInvoiceResult, error) {
	uc.logger.Infow("executing issue invoice use case", "invoice_id", cmd.InvoiceID)

	var result *IssueInvoiceResult

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		invoice, err := uc.invoiceRepo.GetByIDForUpdate(txCtx, cmd.InvoiceID)
		if err != nil {
			return errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", cmd.InvoiceID))
		}

		if invoice.Locked() {
			result = issuedResult(invoice, true)
			return nil
		}

		number, err := uc.documentNumber(txCtx, invoice)
		if err != nil {
			return err
		}

		rendered, err := uc.renderer.RenderInvoice(txCtx, invoice)
		if err != nil {
			uc.logger.Errorw("invoice rendering failed", "invoice_id", cmd.InvoiceID, "error", err)
			return errors.NewPersistenceError("failed to render invoice document", err.Error())
		}

		sum := sha256.Sum256(rendered.Content)
		checksum := hex.EncodeToString(sum[:])

		if err := invoice.Issue(number, rendered.Content, rendered.ContentType, checksum, biztime.NowUTC()); err != nil {
			return errors.NewInvalidTransitionError(err.Error())
		}

		if err := uc.invoiceRepo.Update(txCtx, invoice); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("invoice number already taken", err.Error())
			}
			return errors.NewPersistenceError("failed to update invoice", err.Error())
		}

		result = issuedResult(invoice, false)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("invoice issued",
		"invoice_id", result.InvoiceID,
		"number", result.Number,
		"already_issued", result.AlreadyIssued,
	)
	return result, nil
}

func (uc *IssueInvoiceUseCase) documentNumber(ctx context.Context, invoice *billing.Invoice) (vo.DocumentNumber, error) {
	if invoice.Number() != nil {
		return *invoice.Number(), nil
	}
	return uc.allocator.Allocate(ctx, invoice.OrganizationID(), vo.KindInvoice)
}

func issuedResult(invoice *billing.Invoice, alreadyIssued bool) *IssueInvoiceResult {
	result := &IssueInvoiceResult{
		InvoiceID:     invoice.ID(),
		AlreadyIssued: alreadyIssued,
	}
	if invoice.Number() != nil {
		result.Number = invoice.Number().String()
	}
	if invoice.PDFChecksum() != nil {
		result.Checksum = *invoice.PDFChecksum()
	}
	if invoice.PDFContentType() != nil {
		result.ContentType = *invoice.PDFContentType()
	}
	if invoice.IssueDate() != nil {
		result.IssueDate = *invoice.IssueDate()
	}
	return result
}
