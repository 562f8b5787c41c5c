package usecases

import (
	"context"

	"bureau/internal/domain/billing"
	vo "bureau/internal/domain/billing/valueobjects"
	"bureau/internal/shared/logger"
)

type mockQuoteRepository struct {
	SaveFunc               func(ctx context.Context, quote *billing.Quote) error
	UpdateFunc             func(ctx context.Context, quote *billing.Quote) error
	GetByIDFunc            func(ctx context.Context, quoteID uint) (*billing.Quote, error)
	GetByIDForUpdateFunc   func(ctx context.Context, quoteID uint) (*billing.Quote, error)
	ListByOrganizationFunc func(ctx context.Context, organizationID uint) ([]*billing.Quote, error)
}

func (m *mockQuoteRepository) Save(ctx context.Context, quote *billing.Quote) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, quote)
	}
	return nil
}

func (m *mockQuoteRepository) Update(ctx context.Context, quote *billing.Quote) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, quote)
	}
	return nil
}

func (m *mockQuoteRepository) GetByID(ctx context.Context, quoteID uint) (*billing.Quote, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, quoteID)
	}
	return nil, nil
}

func (m *mockQuoteRepository) GetByIDForUpdate(ctx context.Context, quoteID uint) (*billing.Quote, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, quoteID)
	}
	return nil, nil
}

func (m *mockQuoteRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*billing.Quote, error) {
	if m.ListByOrganizationFunc != nil {
		return m.ListByOrganizationFunc(ctx, organizationID)
	}
	return nil, nil
}

type mockInvoiceRepository struct {
	SaveFunc               func(ctx context.Context, invoice *billing.Invoice) error
	UpdateFunc             func(ctx context.Context, invoice *billing.Invoice) error
	GetByIDFunc            func(ctx context.Context, invoiceID uint) (*billing.Invoice, error)
	GetByIDForUpdateFunc   func(ctx context.Context, invoiceID uint) (*billing.Invoice, error)
	ListByOrganizationFunc func(ctx context.Context, organizationID uint) ([]*billing.Invoice, error)
}

func (m *mockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, invoice)
	}
	return nil
}

func (m *mockInvoiceRepository) Update(ctx context.Context, invoice *billing.Invoice) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, invoice)
	}
	return nil
}

func (m *mockInvoiceRepository) GetByID(ctx context.Context, invoiceID uint) (*billing.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, invoiceID)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) GetByIDForUpdate(ctx context.Context, invoiceID uint) (*billing.Invoice, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, invoiceID)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*billing.Invoice, error) {
	if m.ListByOrganizationFunc != nil {
		return m.ListByOrganizationFunc(ctx, organizationID)
	}
	return nil, nil
}

type mockNumberAllocator struct {
	AllocateFunc func(ctx context.Context, organizationID uint, kind vo.DocumentKind) (vo.DocumentNumber, error)

	calls int
}

func (m *mockNumberAllocator) Allocate(ctx context.Context, organizationID uint, kind vo.DocumentKind) (vo.DocumentNumber, error) {
	m.calls++
	if m.AllocateFunc != nil {
		return m.AllocateFunc(ctx, organizationID, kind)
	}
	return vo.NewDocumentNumber(2026, m.calls)
}

type mockDocumentRenderer struct {
	RenderInvoiceFunc func(ctx context.Context, invoice *billing.Invoice) (*billing.RenderedDocument, error)
	RenderQuoteFunc   func(ctx context.Context, quote *billing.Quote) (*billing.RenderedDocument, error)
}

func (m *mockDocumentRenderer) RenderInvoice(ctx context.Context, invoice *billing.Invoice) (*billing.RenderedDocument, error) {
	if m.RenderInvoiceFunc != nil {
		return m.RenderInvoiceFunc(ctx, invoice)
	}
	return &billing.RenderedDocument{Content: []byte("%PDF-1.4 stub"), ContentType: "application/pdf"}, nil
}

func (m *mockDocumentRenderer) RenderQuote(ctx context.Context, quote *billing.Quote) (*billing.RenderedDocument, error) {
	if m.RenderQuoteFunc != nil {
		return m.RenderQuoteFunc(ctx, quote)
	}
	return &billing.RenderedDocument{Content: []byte("%PDF-1.4 stub"), ContentType: "application/pdf"}, nil
}

type mockTermsRenderer struct {
	RenderTermsFunc func(markdown string) (string, error)
}

func (m *mockTermsRenderer) RenderTerms(markdown string) (string, error) {
	if m.RenderTermsFunc != nil {
		return m.RenderTermsFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)      {}
func (m *mockLogger) Info(msg string, args ...any)       {}
func (m *mockLogger) Warn(msg string, args ...any)       {}
func (m *mockLogger) Error(msg string, args ...any)      {}
func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
