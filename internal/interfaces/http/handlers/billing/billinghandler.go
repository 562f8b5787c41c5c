package billing

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bureau/internal/application/billing/usecases"
	"bureau/internal/interfaces/http/middleware"
	"bureau/internal/shared/logger"
	"bureau/internal/shared/utils"
)

type BillingHandler struct {
	createQuoteUC        usecases.CreateQuoteExecutor
	acceptQuoteUC        usecases.AcceptQuoteExecutor
	convertQuoteUC       usecases.ConvertQuoteExecutor
	viewQuoteUC          usecases.ViewQuoteExecutor
	createInvoiceUC      usecases.CreateInvoiceExecutor
	issueInvoiceUC       usecases.IssueInvoiceExecutor
	getInvoiceDocumentUC usecases.GetInvoiceDocumentExecutor
	logger               logger.Interface
}

func NewBillingHandler(
	createQuoteUC usecases.CreateQuoteExecutor,
	acceptQuoteUC usecases.AcceptQuoteExecutor,
	convertQuoteUC usecases.ConvertQuoteExecutor,
	viewQuoteUC usecases.ViewQuoteExecutor,
	createInvoiceUC usecases.CreateInvoiceExecutor,
	issueInvoiceUC usecases.IssueInvoiceExecutor,
	getInvoiceDocumentUC usecases.GetInvoiceDocumentExecutor,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		createQuoteUC:        createQuoteUC,
		acceptQuoteUC:        acceptQuoteUC,
		convertQuoteUC:       convertQuoteUC,
		viewQuoteUC:          viewQuoteUC,
		createInvoiceUC:      createInvoiceUC,
		issueInvoiceUC:       issueInvoiceUC,
		getInvoiceDocumentUC: getInvoiceDocumentUC,
		logger:               logger,
	}
}

// CreateQuote handles POST /quotes
func (h *BillingHandler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create quote", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createQuoteUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateQuoteResponse{
		QuoteID: result.QuoteID,
		Number:  result.Number,
		Total:   result.Total,
	}, "Quote created successfully")
}

// ViewQuote handles GET /public/quotes/:id
func (h *BillingHandler) ViewQuote(c *gin.Context) {
	quoteID, err := parseDocumentID(c, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.viewQuoteUC.Execute(c.Request.Context(), usecases.ViewQuoteQuery{QuoteID: quoteID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	lines := make([]QuoteLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, QuoteLineResponse{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", QuoteViewResponse{
		QuoteID:    view.QuoteID,
		Number:     view.Number,
		Title:      view.Title,
		Status:     view.Status,
		TermsHTML:  view.TermsHTML,
		ValidUntil: view.ValidUntil,
		AcceptedAt: view.AcceptedAt,
		Lines:      lines,
		Total:      view.Total,
	})
}

// AcceptQuote handles POST /public/quotes/:id/accept
//
// The acceptance stamp records the principal forwarded by the gateway and
// the caller's IP as seen by the server, not anything from the payload.
func (h *BillingHandler) AcceptQuote(c *gin.Context) {
	quoteID, err := parseDocumentID(c, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AcceptQuoteCommand{
		QuoteID:  quoteID,
		ActorID:  middleware.ActorID(c),
		ClientIP: c.ClientIP(),
	}

	result, err := h.acceptQuoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Quote accepted", AcceptQuoteResponse{
		QuoteID:    result.QuoteID,
		AcceptedAt: result.AcceptedAt,
	})
}

// ConvertQuote handles POST /quotes/:id/convert
func (h *BillingHandler) ConvertQuote(c *gin.Context) {
	quoteID, err := parseDocumentID(c, "quote")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.convertQuoteUC.Execute(c.Request.Context(), usecases.ConvertQuoteCommand{QuoteID: quoteID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ConvertQuoteResponse{
		QuoteID:   result.QuoteID,
		InvoiceID: result.InvoiceID,
	}, "Quote converted successfully")
}

// CreateInvoice handles POST /invoices
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create invoice", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createInvoiceUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateInvoiceResponse{
		InvoiceID: result.InvoiceID,
		Total:     result.Total,
	}, "Invoice created successfully")
}

// IssueInvoice handles POST /invoices/:id/issue
func (h *BillingHandler) IssueInvoice(c *gin.Context) {
	invoiceID, err := parseDocumentID(c, "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.issueInvoiceUC.Execute(c.Request.Context(), usecases.IssueInvoiceCommand{InvoiceID: invoiceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Invoice issued successfully"
	if result.AlreadyIssued {
		message = "Invoice already issued"
	}

	utils.SuccessResponse(c, http.StatusOK, message, IssueInvoiceResponse{
		InvoiceID:     result.InvoiceID,
		Number:        result.Number,
		Checksum:      result.Checksum,
		ContentType:   result.ContentType,
		IssueDate:     result.IssueDate,
		AlreadyIssued: result.AlreadyIssued,
	})
}

// GetInvoiceDocument handles GET /invoices/:id/document
//
// Serves the stored document bytes verbatim with the content type and
// checksum captured at issuance.
func (h *BillingHandler) GetInvoiceDocument(c *gin.Context) {
	invoiceID, err := parseDocumentID(c, "invoice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getInvoiceDocumentUC.Execute(c.Request.Context(), usecases.GetInvoiceDocumentQuery{InvoiceID: invoiceID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("X-Document-Checksum", result.Checksum)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Number+".pdf"))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
