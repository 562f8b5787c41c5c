package billing

import "context"

// RenderedDocument is the opaque output of a document renderer: content
// bytes plus their content type. The engine computes the checksum itself and
// never looks inside the bytes.
type RenderedDocument struct {
	Content     []byte
	ContentType string
}

// DocumentRenderer turns a billing document into persistable bytes. It is an
// external collaborator; any failure aborts the issuing transaction.
type DocumentRenderer interface {
	RenderInvoice(ctx context.Context, invoice *Invoice) (*RenderedDocument, error)
	RenderQuote(ctx context.Context, quote *Quote) (*RenderedDocument, error)
}
