package usecases

import (
	"context"

	"bureau/internal/shared/db"
)

// TxManager abstracts transaction scoping so use cases can be tested
// without a database.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = (*db.TransactionManager)(nil)

// TermsRenderer turns quote terms written in markdown into HTML safe to
// serve to an anonymous reader.
type TermsRenderer interface {
	RenderTerms(markdown string) (string, error)
}

type CreateQuoteExecutor interface {
	Execute(ctx context.Context, cmd CreateQuoteCommand) (*CreateQuoteResult, error)
}

type AcceptQuoteExecutor interface {
	Execute(ctx context.Context, cmd AcceptQuoteCommand) (*AcceptQuoteResult, error)
}

type ConvertQuoteExecutor interface {
	Execute(ctx context.Context, cmd ConvertQuoteCommand) (*ConvertQuoteResult, error)
}

type ViewQuoteExecutor interface {
	Execute(ctx context.Context, query ViewQuoteQuery) (*QuoteView, error)
}

type CreateInvoiceExecutor interface {
	Execute(ctx context.Context, cmd CreateInvoiceCommand) (*CreateInvoiceResult, error)
}

type IssueInvoiceExecutor interface {
	Execute(ctx context.Context, cmd IssueInvoiceCommand) (*IssueInvoiceResult, error)
}

type GetInvoiceDocumentExecutor interface {
	Execute(ctx context.Context, query GetInvoiceDocumentQuery) (*InvoiceDocumentResult, error)
}
