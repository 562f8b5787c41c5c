package billing

import (
	"context"

	vo "bureau/internal/domain/billing/valueobjects"
)

type QuoteRepository interface {
	Save(ctx context.Context, quote *Quote) error
	Update(ctx context.Context, quote *Quote) error
	GetByID(ctx context.Context, quoteID uint) (*Quote, error)
	// GetByIDForUpdate loads the quote under a row lock held until the
	// surrounding transaction commits.
	GetByIDForUpdate(ctx context.Context, quoteID uint) (*Quote, error)
	ListByOrganization(ctx context.Context, organizationID uint) ([]*Quote, error)
}

type InvoiceRepository interface {
	Save(ctx context.Context, invoice *Invoice) error
	Update(ctx context.Context, invoice *Invoice) error
	GetByID(ctx context.Context, invoiceID uint) (*Invoice, error)
	// GetByIDForUpdate loads the invoice under a row lock so two concurrent
	// issue calls cannot both pass the locked check.
	GetByIDForUpdate(ctx context.Context, invoiceID uint) (*Invoice, error)
	ListByOrganization(ctx context.Context, organizationID uint) ([]*Invoice, error)
}

// NumberAllocator produces the next document number for one
// (organization, kind) scope. Implementations must serialize allocation per
// scope so concurrent callers never receive the same number, and must be
// called inside the transaction that persists the numbered document.
type NumberAllocator interface {
	Allocate(ctx context.Context, organizationID uint, kind vo.DocumentKind) (vo.DocumentNumber, error)
}
