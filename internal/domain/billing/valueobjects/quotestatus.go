package valueobjects

import "fmt"

// QuoteStatus follows a linear lifecycle with no regression:
// draft -> accepted -> converted.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusConverted QuoteStatus = "converted"
)

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusAccepted, QuoteStatusConverted:
		return true
	}
	return false
}

func (s QuoteStatus) IsDraft() bool {
	return s == QuoteStatusDraft
}

func (s QuoteStatus) IsAccepted() bool {
	return s == QuoteStatusAccepted
}

func (s QuoteStatus) IsConverted() bool {
	return s == QuoteStatusConverted
}

func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft:
		return target == QuoteStatusAccepted
	case QuoteStatusAccepted:
		return target == QuoteStatusConverted
	default:
		return false
	}
}

func (s QuoteStatus) String() string {
	return string(s)
}

func ParseQuoteStatus(s string) (QuoteStatus, error) {
	status := QuoteStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid quote status: %s", s)
	}
	return status, nil
}
