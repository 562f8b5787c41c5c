package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bureau/internal/application/billing/usecases"
	"bureau/internal/interfaces/http/handlers/testutil"
	"bureau/internal/shared/constants"
	"bureau/internal/shared/errors"
)

type mockCreateQuoteUC struct {
	result *usecases.CreateQuoteResult
	err    error
}

func (m *mockCreateQuoteUC) Execute(_ context.Context, _ usecases.CreateQuoteCommand) (*usecases.CreateQuoteResult, error) {
	return m.result, m.err
}

type mockAcceptQuoteUC struct {
	result *usecases.AcceptQuoteResult
	err    error
	gotCmd usecases.AcceptQuoteCommand
}

func (m *mockAcceptQuoteUC) Execute(_ context.Context, cmd usecases.AcceptQuoteCommand) (*usecases.AcceptQuoteResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockConvertQuoteUC struct {
	result *usecases.ConvertQuoteResult
	err    error
}

func (m *mockConvertQuoteUC) Execute(_ context.Context, _ usecases.ConvertQuoteCommand) (*usecases.ConvertQuoteResult, error) {
	return m.result, m.err
}

type mockViewQuoteUC struct {
	result *usecases.QuoteView
	err    error
}

func (m *mockViewQuoteUC) Execute(_ context.Context, _ usecases.ViewQuoteQuery) (*usecases.QuoteView, error) {
	return m.result, m.err
}

type mockCreateInvoiceUC struct {
	result *usecases.CreateInvoiceResult
	err    error
}

func (m *mockCreateInvoiceUC) Execute(_ context.Context, _ usecases.CreateInvoiceCommand) (*usecases.CreateInvoiceResult, error) {
	return m.result, m.err
}

type mockIssueInvoiceUC struct {
	result *usecases.IssueInvoiceResult
	err    error
}

func (m *mockIssueInvoiceUC) Execute(_ context.Context, _ usecases.IssueInvoiceCommand) (*usecases.IssueInvoiceResult, error) {
	return m.result, m.err
}

type mockGetInvoiceDocumentUC struct {
	result *usecases.InvoiceDocumentResult
	err    error
}

func (m *mockGetInvoiceDocumentUC) Execute(_ context.Context, _ usecases.GetInvoiceDocumentQuery) (*usecases.InvoiceDocumentResult, error) {
	return m.result, m.err
}

type testDeps struct {
	createQuoteUC        usecases.CreateQuoteExecutor
	acceptQuoteUC        usecases.AcceptQuoteExecutor
	convertQuoteUC       usecases.ConvertQuoteExecutor
	viewQuoteUC          usecases.ViewQuoteExecutor
	createInvoiceUC      usecases.CreateInvoiceExecutor
	issueInvoiceUC       usecases.IssueInvoiceExecutor
	getInvoiceDocumentUC usecases.GetInvoiceDocumentExecutor
}

func newTestBillingHandler(deps testDeps) *BillingHandler {
	return NewBillingHandler(
		deps.createQuoteUC,
		deps.acceptQuoteUC,
		deps.convertQuoteUC,
		deps.viewQuoteUC,
		deps.createInvoiceUC,
		deps.issueInvoiceUC,
		deps.getInvoiceDocumentUC,
		testutil.NewMockLogger(),
	)
}

func quoteRequestBody() CreateQuoteRequest {
	return CreateQuoteRequest{
		OrganizationID: 1,
		Title:          "Website redesign",
		Terms:          "Payable in **30 days**.",
		Lines: []LineRequest{
			{Description: "Design", Quantity: 2, UnitPrice: "1200.00"},
			{Description: "Hosting setup", Quantity: 1, UnitPrice: "150.50"},
		},
	}
}

func TestBillingHandler_CreateQuote_Success(t *testing.T) {
	mockUC := &mockCreateQuoteUC{
		result: &usecases.CreateQuoteResult{QuoteID: 1, Number: "2026-0001", Total: "2550.50"},
	}
	handler := newTestBillingHandler(testDeps{createQuoteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/quotes", quoteRequestBody())
	testutil.SetPrincipalContext(c, 7)

	handler.CreateQuote(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestBillingHandler_CreateQuote_NoLines(t *testing.T) {
	handler := newTestBillingHandler(testDeps{})

	body := quoteRequestBody()
	body.Lines = nil
	c, w := testutil.NewTestContext(http.MethodPost, "/quotes", body)
	testutil.SetPrincipalContext(c, 7)

	handler.CreateQuote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingHandler_CreateQuote_BadPrice(t *testing.T) {
	mockUC := &mockCreateQuoteUC{
		err: errors.NewValidationError("unit price must be a decimal with at most two fraction digits"),
	}
	handler := newTestBillingHandler(testDeps{createQuoteUC: mockUC})

	body := quoteRequestBody()
	body.Lines[0].UnitPrice = "10.999"
	c, w := testutil.NewTestContext(http.MethodPost, "/quotes", body)
	testutil.SetPrincipalContext(c, 7)

	handler.CreateQuote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingHandler_AcceptQuote_StampsClientIP(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	mockUC := &mockAcceptQuoteUC{
		result: &usecases.AcceptQuoteResult{QuoteID: 3, AcceptedAt: now},
	}
	handler := newTestBillingHandler(testDeps{acceptQuoteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/public/quotes/3/accept", nil)
	testutil.SetPrincipalContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.AcceptQuote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), mockUC.gotCmd.QuoteID)
	assert.Equal(t, uint(7), mockUC.gotCmd.ActorID)
	// The IP comes from the connection, not the payload.
	assert.NotEmpty(t, mockUC.gotCmd.ClientIP)
}

func TestBillingHandler_AcceptQuote_AlreadyAccepted(t *testing.T) {
	mockUC := &mockAcceptQuoteUC{
		err: errors.NewInvalidTransitionError("quote is not in draft status"),
	}
	handler := newTestBillingHandler(testDeps{acceptQuoteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/public/quotes/3/accept", nil)
	testutil.SetPrincipalContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.AcceptQuote(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBillingHandler_ConvertQuote_Success(t *testing.T) {
	mockUC := &mockConvertQuoteUC{
		result: &usecases.ConvertQuoteResult{QuoteID: 3, InvoiceID: 9},
	}
	handler := newTestBillingHandler(testDeps{convertQuoteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/quotes/3/convert", nil)
	testutil.SetPrincipalContext(c, 7)
	testutil.SetURLParam(c, "id", "3")

	handler.ConvertQuote(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBillingHandler_ViewQuote_Success(t *testing.T) {
	mockUC := &mockViewQuoteUC{
		result: &usecases.QuoteView{
			QuoteID:   3,
			Number:    "2026-0001",
			Title:     "Website redesign",
			Status:    "draft",
			TermsHTML: "<p>Payable in <strong>30 days</strong>.</p>",
			Lines: []usecases.QuoteLineView{
				{Description: "Design", Quantity: 2, UnitPrice: "1200.00", Total: "2400.00"},
			},
			Total: "2400.00",
		},
	}
	handler := newTestBillingHandler(testDeps{viewQuoteUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/public/quotes/3", nil)
	testutil.SetURLParam(c, "id", "3")

	handler.ViewQuote(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)

	var view QuoteViewResponse
	require.NoError(t, json.Unmarshal(resp.Data, &view))
	assert.Equal(t, "2026-0001", view.Number)
	assert.Contains(t, view.TermsHTML, "<strong>30 days</strong>")
}

func TestBillingHandler_IssueInvoice_Success(t *testing.T) {
	mockUC := &mockIssueInvoiceUC{
		result: &usecases.IssueInvoiceResult{
			InvoiceID:   4,
			Number:      "2026-0002",
			Checksum:    "deadbeef",
			ContentType: constants.ContentTypePDF,
			IssueDate:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	handler := newTestBillingHandler(testDeps{issueInvoiceUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/invoices/4/issue", nil)
	testutil.SetPrincipalContext(c, 7)
	testutil.SetURLParam(c, "id", "4")

	handler.IssueInvoice(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Invoice issued successfully", resp.Message)
}

func TestBillingHandler_IssueInvoice_AlreadyIssued(t *testing.T) {
	mockUC := &mockIssueInvoiceUC{
		result: &usecases.IssueInvoiceResult{
			InvoiceID:     4,
			Number:        "2026-0002",
			Checksum:      "deadbeef",
			ContentType:   constants.ContentTypePDF,
			IssueDate:     time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			AlreadyIssued: true,
		},
	}
	handler := newTestBillingHandler(testDeps{issueInvoiceUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/invoices/4/issue", nil)
	testutil.SetPrincipalContext(c, 7)
	testutil.SetURLParam(c, "id", "4")

	handler.IssueInvoice(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.Equal(t, "Invoice already issued", resp.Message)
}

func TestBillingHandler_GetInvoiceDocument_Success(t *testing.T) {
	content := []byte("%PDF-1.4 test document")
	mockUC := &mockGetInvoiceDocumentUC{
		result: &usecases.InvoiceDocumentResult{
			InvoiceID:   4,
			Number:      "2026-0002",
			Content:     content,
			ContentType: constants.ContentTypePDF,
			Checksum:    "deadbeef",
		},
	}
	handler := newTestBillingHandler(testDeps{getInvoiceDocumentUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/invoices/4/document", nil)
	testutil.SetPrincipalContext(c, 7)
	testutil.SetURLParam(c, "id", "4")

	handler.GetInvoiceDocument(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.ContentTypePDF, w.Header().Get("Content-Type"))
	assert.Equal(t, "deadbeef", w.Header().Get("X-Document-Checksum"))
	assert.Equal(t, content, w.Body.Bytes())
}

func TestBillingHandler_GetInvoiceDocument_NeverIssued(t *testing.T) {
	mockUC := &mockGetInvoiceDocumentUC{
		err: errors.NewNotFoundError("invoice has no issued document"),
	}
	handler := newTestBillingHandler(testDeps{getInvoiceDocumentUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/invoices/5/document", nil)
	testutil.SetPrincipalContext(c, 7)
	testutil.SetURLParam(c, "id", "5")

	handler.GetInvoiceDocument(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
