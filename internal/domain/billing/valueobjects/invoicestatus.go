package valueobjects

import "fmt"

// InvoiceStatus has exactly one transition: draft -> issued. Issued invoices
// are locked; nothing moves them back.
type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
)

func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusIssued
}

func (s InvoiceStatus) IsDraft() bool {
	return s == InvoiceStatusDraft
}

func (s InvoiceStatus) IsIssued() bool {
	return s == InvoiceStatusIssued
}

func (s InvoiceStatus) String() string {
	return string(s)
}

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	status := InvoiceStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid invoice status: %s", s)
	}
	return status, nil
}
