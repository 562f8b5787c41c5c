package usecases

import (
	"context"
	"fmt"
	"time"

	"bureau/internal/domain/billing"
	"bureau/internal/shared/errors"
	"bureau/internal/shared/logger"
)

type ViewQuoteQuery struct {
	QuoteID uint
}

type QuoteLineView struct {
	Description string
	Quantity    int
	UnitPrice   string
	Total       string
}

type QuoteView struct {
	QuoteID    uint
	Number     string
	Title      string
	Status     string
	TermsHTML  string
	ValidUntil *time.Time
	AcceptedAt *time.Time
	Lines      []QuoteLineView
	Total      string
}

// ViewQuoteUseCase builds the public representation of a quote: markdown
// terms rendered and sanitized to HTML, lines and totals as decimal strings.
type ViewQuoteUseCase struct {
	quoteRepo billing.QuoteRepository
	terms     TermsRenderer
	logger    logger.Interface
}

func NewViewQuoteUseCase(quoteRepo billing.QuoteRepository, terms TermsRenderer, logger logger.Interface) *ViewQuoteUseCase {
	return &ViewQuoteUseCase{quoteRepo: quoteRepo, terms: terms, logger: logger}
}

func (uc *ViewQuoteUseCase) Execute(ctx context.Context, query ViewQuoteQuery) (*QuoteView, error) {
	quote, err := uc.quoteRepo.GetByID(ctx, query.QuoteID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("quote %d not found", query.QuoteID))
	}

	termsHTML, err := uc.terms.RenderTerms(quote.Terms())
	if err != nil {
		uc.logger.Errorw("terms rendering failed", "quote_id", query.QuoteID, "error", err)
		return nil, errors.NewPersistenceError("failed to render quote terms", err.Error())
	}

	total, err := quote.Total()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	lines := make([]QuoteLineView, 0, len(quote.Lines()))
	for _, line := range quote.Lines() {
		lines = append(lines, QuoteLineView{
			Description: line.Description(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().Decimal(),
			Total:       line.Total().Decimal(),
		})
	}

	view := &QuoteView{
		QuoteID:    quote.ID(),
		Title:      quote.Title(),
		Status:     quote.Status().String(),
		TermsHTML:  termsHTML,
		ValidUntil: quote.ValidUntil(),
		AcceptedAt: quote.AcceptedAt(),
		Lines:      lines,
		Total:      total.Decimal(),
	}
	if quote.Number() != nil {
		view.Number = quote.Number().String()
	}
	return view, nil
}
