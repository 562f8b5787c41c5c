package billing

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bureau/internal/application/billing/usecases"
	"bureau/internal/shared/errors"
)

type LineRequest struct {
	Description string `json:"description" binding:"required,max=500"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
	UnitPrice   string `json:"unit_price" binding:"required"`
	Currency    string `json:"currency,omitempty"`
}

type CreateQuoteRequest struct {
	OrganizationID uint          `json:"organization_id" binding:"required"`
	Title          string        `json:"title" binding:"required,max=200"`
	Terms          string        `json:"terms,omitempty"`
	ValidUntil     *time.Time    `json:"valid_until,omitempty"`
	Lines          []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r *CreateQuoteRequest) ToCommand() usecases.CreateQuoteCommand {
	return usecases.CreateQuoteCommand{
		OrganizationID: r.OrganizationID,
		Title:          r.Title,
		Terms:          r.Terms,
		ValidUntil:     r.ValidUntil,
		Lines:          toLineInputs(r.Lines),
	}
}

type CreateInvoiceRequest struct {
	OrganizationID uint          `json:"organization_id" binding:"required"`
	Title          string        `json:"title" binding:"required,max=200"`
	LegalMentions  string        `json:"legal_mentions,omitempty"`
	Lines          []LineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r *CreateInvoiceRequest) ToCommand() usecases.CreateInvoiceCommand {
	return usecases.CreateInvoiceCommand{
		OrganizationID: r.OrganizationID,
		Title:          r.Title,
		LegalMentions:  r.LegalMentions,
		Lines:          toLineInputs(r.Lines),
	}
}

func toLineInputs(lines []LineRequest) []usecases.LineInput {
	inputs := make([]usecases.LineInput, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, usecases.LineInput{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Currency:    line.Currency,
		})
	}
	return inputs
}

type CreateQuoteResponse struct {
	QuoteID uint   `json:"quote_id"`
	Number  string `json:"number"`
	Total   string `json:"total"`
}

type CreateInvoiceResponse struct {
	InvoiceID uint   `json:"invoice_id"`
	Total     string `json:"total"`
}

type AcceptQuoteResponse struct {
	QuoteID    uint      `json:"quote_id"`
	AcceptedAt time.Time `json:"accepted_at"`
}

type ConvertQuoteResponse struct {
	QuoteID   uint `json:"quote_id"`
	InvoiceID uint `json:"invoice_id"`
}

type IssueInvoiceResponse struct {
	InvoiceID     uint      `json:"invoice_id"`
	Number        string    `json:"number"`
	Checksum      string    `json:"checksum"`
	ContentType   string    `json:"content_type"`
	IssueDate     time.Time `json:"issue_date"`
	AlreadyIssued bool      `json:"already_issued"`
}

type QuoteLineResponse struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

type QuoteViewResponse struct {
	QuoteID    uint                `json:"quote_id"`
	Number     string              `json:"number"`
	Title      string              `json:"title"`
	Status     string              `json:"status"`
	TermsHTML  string              `json:"terms_html"`
	ValidUntil *time.Time          `json:"valid_until,omitempty"`
	AcceptedAt *time.Time          `json:"accepted_at,omitempty"`
	Lines      []QuoteLineResponse `json:"lines"`
	Total      string              `json:"total"`
}

func parseDocumentID(c *gin.Context, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + label + " ID")
	}
	return uint(id), nil
}
