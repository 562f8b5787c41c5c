package valueobjects

import "fmt"

// DocumentKind scopes sequence allocation: quotes and invoices of one
// organization each draw from their own numbering sequence.
type DocumentKind string

const (
	KindQuote   DocumentKind = "quote"
	KindInvoice DocumentKind = "invoice"
)

func (k DocumentKind) IsValid() bool {
	return k == KindQuote || k == KindInvoice
}

func (k DocumentKind) String() string {
	return string(k)
}

func ParseDocumentKind(s string) (DocumentKind, error) {
	kind := DocumentKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid document kind: %s", s)
	}
	return kind, nil
}
