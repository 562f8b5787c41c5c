package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bureau/internal/domain/billing"
	vo "bureau/internal/domain/billing/valueobjects"
	"bureau/internal/shared/errors"
)

func buildQuote(t *testing.T) *billing.Quote {
	t.Helper()

	design, err := billing.NewLine("Design", 2, vo.NewMoney(120000, "EUR"))
	require.NoError(t, err)
	hosting, err := billing.NewLine("Hosting setup", 1, vo.NewMoney(15050, "EUR"))
	require.NoError(t, err)

	quote, err := billing.NewQuote(1, "Website redesign", "Payable in 30 days.", nil, []*billing.Line{design, hosting})
	require.NoError(t, err)
	return quote
}

func TestQuoteRepository_SaveAndGetByID(t *testing.T) {
	database := setupTestDB(t)
	repo := NewQuoteRepository(database)
	ctx := context.Background()

	quote := buildQuote(t)
	require.NoError(t, repo.Save(ctx, quote))
	require.NotZero(t, quote.ID())

	loaded, err := repo.GetByID(ctx, quote.ID())
	require.NoError(t, err)

	assert.Equal(t, quote.ID(), loaded.ID())
	assert.Equal(t, "Website redesign", loaded.Title())
	require.Len(t, loaded.Lines(), 2)
	assert.Equal(t, "Design", loaded.Lines()[0].Description())
	assert.Equal(t, int64(120000), loaded.Lines()[0].UnitPrice().AmountInCents())

	total, err := loaded.Total()
	require.NoError(t, err)
	assert.Equal(t, "2550.50", total.Decimal())
}

func TestQuoteRepository_GetByID_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewQuoteRepository(database)

	_, err := repo.GetByID(context.Background(), 404)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quote not found")
}

func TestQuoteRepository_UpdatePersistsNumberAndAcceptance(t *testing.T) {
	database := setupTestDB(t)
	repo := NewQuoteRepository(database)
	ctx := context.Background()

	quote := buildQuote(t)
	require.NoError(t, repo.Save(ctx, quote))

	number, err := vo.NewDocumentNumber(2026, 1)
	require.NoError(t, err)
	require.NoError(t, quote.SetNumber(number))
	acceptedAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, quote.Accept(acceptedAt, "203.0.113.9", 7))

	require.NoError(t, repo.Update(ctx, quote))

	loaded, err := repo.GetByID(ctx, quote.ID())
	require.NoError(t, err)
	require.NotNil(t, loaded.Number())
	assert.Equal(t, "2026-0001", loaded.Number().String())
	assert.Equal(t, vo.QuoteStatusAccepted, loaded.Status())
	require.NotNil(t, loaded.AcceptedAt())
	assert.Equal(t, acceptedAt, loaded.AcceptedAt().UTC())
	require.NotNil(t, loaded.AcceptedByIP())
	assert.Equal(t, "203.0.113.9", *loaded.AcceptedByIP())
}

func TestQuoteRepository_DuplicateNumberRejected(t *testing.T) {
	database := setupTestDB(t)
	repo := NewQuoteRepository(database)
	ctx := context.Background()

	number, err := vo.NewDocumentNumber(2026, 1)
	require.NoError(t, err)

	first := buildQuote(t)
	require.NoError(t, first.SetNumber(number))
	require.NoError(t, repo.Save(ctx, first))

	second := buildQuote(t)
	require.NoError(t, second.SetNumber(number))
	err = repo.Save(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateError(err))
}

func TestInvoiceRepository_IssueRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	repo := NewInvoiceRepository(database)
	ctx := context.Background()

	line, err := billing.NewLine("Design", 2, vo.NewMoney(120000, "EUR"))
	require.NoError(t, err)
	invoice, err := billing.NewInvoice(1, "Website redesign", "Late fees apply.", []*billing.Line{line})
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, invoice))
	require.NotZero(t, invoice.ID())

	number, err := vo.NewDocumentNumber(2026, 2)
	require.NoError(t, err)
	content := []byte("%PDF-1.4 test document")
	issuedAt := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, invoice.Issue(number, content, "application/pdf", "deadbeef", issuedAt))

	require.NoError(t, repo.Update(ctx, invoice))

	loaded, err := repo.GetByID(ctx, invoice.ID())
	require.NoError(t, err)
	assert.True(t, loaded.Locked())
	assert.Equal(t, vo.InvoiceStatusIssued, loaded.Status())
	require.NotNil(t, loaded.Number())
	assert.Equal(t, "2026-0002", loaded.Number().String())
	assert.Equal(t, content, loaded.PDFBlob())
	require.NotNil(t, loaded.PDFChecksum())
	assert.Equal(t, "deadbeef", *loaded.PDFChecksum())
	require.NotNil(t, loaded.IssueDate())
	assert.Equal(t, issuedAt, loaded.IssueDate().UTC())
	require.Len(t, loaded.Lines(), 1)
}

func TestInvoiceRepository_ListByOrganization(t *testing.T) {
	database := setupTestDB(t)
	repo := NewInvoiceRepository(database)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		line, err := billing.NewLine("Work", 1, vo.NewMoney(5000, "EUR"))
		require.NoError(t, err)
		invoice, err := billing.NewInvoice(1, "Job", "", []*billing.Line{line})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, invoice))
	}

	line, err := billing.NewLine("Other", 1, vo.NewMoney(5000, "EUR"))
	require.NoError(t, err)
	other, err := billing.NewInvoice(2, "Other org", "", []*billing.Line{line})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	invoices, err := repo.ListByOrganization(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, invoices, 2)
}
