package usecases

import (
	"context"
	"fmt"

	"bureau/internal/domain/billing"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type GetInvoiceDocumentQuery struct {
	InvoiceID uint
}

type InvoiceDocumentResult struct {
	InvoiceID   uint
	Number      string
	Content     []byte
	ContentType string
	Checksum    string
}

// GetInvoiceDocumentUseCase returns the stored rendered document of an issued
// invoice. An invoice that was never issued has no document.
type GetInvoiceDocumentUseCase struct {
	invoiceRepo billing.InvoiceRepository
	logger      logger.Interface
}

func NewGetInvoiceDocumentUseCase(invoiceRepo billing.InvoiceRepository, logger logger.Interface) *GetInvoiceDocumentUseCase {
	return &GetInvoiceDocumentUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *GetInvoiceDocumentUseCase) Execute(ctx context.Context, query GetInvoiceDocumentQuery) (*InvoiceDocumentResult, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, query.InvoiceID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d not found", query.InvoiceID))
	}

	if !invoice.Locked() || len(invoice.PDFBlob()) == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("invoice %d has no issued document", query.InvoiceID))
	}

	result := &InvoiceDocumentResult{
		InvoiceID: invoice.ID(),
		Content:   invoice.PDFBlob(),
	}
	if invoice.Number() != nil {
		result.Number = invoice.Number().String()
	}
	if invoice.PDFContentType() != nil {
		result.ContentType = *invoice.PDFContentType()
	}
	if invoice.PDFChecksum() != nil {
		result.Checksum = *invoice.PDFChecksum()
	}
	return result, nil
}
