package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXPrincipalID  = "X-Principal-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypePDF  = "application/pdf"
	ContentTypeHTML = "text/html; charset=utf-8"

	// Context keys
	ContextKeyActorID   = "actor_id"
	ContextKeyRequestID = "request_id"

	// Audit actions recorded against tickets
	ActionTicketCreated   = "created"
	ActionTicketMoved     = "moved"
	ActionTicketCommented = "commented"

	// Database table names
	TableTickets          = "tickets"
	TableKanbanColumns    = "kanban_columns"
	TableTicketComments   = "ticket_comments"
	TableTimeSegments     = "ticket_time_segments"
	TableEvents           = "events"
	TableQuotes           = "quotes"
	TableQuoteLines       = "quote_lines"
	TableInvoices         = "invoices"
	TableInvoiceLines     = "invoice_lines"
	TableDocumentSequence = "document_sequences"
	TableLeads            = "leads"
)
