package billing

import (
	"fmt"
	"time"

	vo "bureau/internal/domain/billing/valueobjects"
)

// Quote is a billing document an organization sends out for acceptance.
// Acceptance stamps who accepted it and from where, exactly once; a second
// acceptance attempt is rejected rather than overwriting the first.
type Quote struct {
	id             uint
	organizationID uint
	number         *vo.DocumentNumber
	title          string
	terms          string
	status         vo.QuoteStatus
	validUntil     *time.Time
	acceptedAt     *time.Time
	acceptedByIP   *string
	acceptedByUser *uint
	lines          []*Line
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewQuote(organizationID uint, title, terms string, validUntil *time.Time, lines []*Line) (*Quote, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("at least one line is required")
	}

	now := time.Now().UTC()
	return &Quote{
		organizationID: organizationID,
		title:          title,
		terms:          terms,
		status:         vo.QuoteStatusDraft,
		validUntil:     validUntil,
		lines:          lines,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructQuote(
	id uint,
	organizationID uint,
	number *vo.DocumentNumber,
	title string,
	terms string,
	status vo.QuoteStatus,
	validUntil *time.Time,
	acceptedAt *time.Time,
	acceptedByIP *string,
	acceptedByUser *uint,
	lines []*Line,
	version int,
	createdAt, updatedAt time.Time,
) (*Quote, error) {
	if id == 0 {
		return nil, fmt.Errorf("quote ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid quote status: %s", status)
	}

	if lines == nil {
		lines = []*Line{}
	}

	return &Quote{
		id:             id,
		organizationID: organizationID,
		number:         number,
		title:          title,
		terms:          terms,
		status:         status,
		validUntil:     validUntil,
		acceptedAt:     acceptedAt,
		acceptedByIP:   acceptedByIP,
		acceptedByUser: acceptedByUser,
		lines:          lines,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (q *Quote) ID() uint {
	return q.id
}

func (q *Quote) OrganizationID() uint {
	return q.organizationID
}

func (q *Quote) Number() *vo.DocumentNumber {
	return q.number
}

func (q *Quote) Title() string {
	return q.title
}

func (q *Quote) Terms() string {
	return q.terms
}

func (q *Quote) Status() vo.QuoteStatus {
	return q.status
}

func (q *Quote) ValidUntil() *time.Time {
	return q.validUntil
}

func (q *Quote) AcceptedAt() *time.Time {
	return q.acceptedAt
}

func (q *Quote) AcceptedByIP() *string {
	return q.acceptedByIP
}

func (q *Quote) AcceptedByUser() *uint {
	return q.acceptedByUser
}

func (q *Quote) Lines() []*Line {
	linesCopy := make([]*Line, len(q.lines))
	copy(linesCopy, q.lines)
	return linesCopy
}

func (q *Quote) Version() int {
	return q.version
}

func (q *Quote) CreatedAt() time.Time {
	return q.createdAt
}

func (q *Quote) UpdatedAt() time.Time {
	return q.updatedAt
}

// Total returns the sum of all line totals.
func (q *Quote) Total() (vo.Money, error) {
	return sumLines(q.lines)
}

func (q *Quote) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("quote ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("quote ID cannot be zero")
	}
	q.id = id
	return nil
}

func (q *Quote) SetNumber(number vo.DocumentNumber) error {
	if q.number != nil {
		return fmt.Errorf("quote number is already set")
	}
	q.number = &number
	return nil
}

// Accept moves the quote from draft to accepted and stamps the acceptance
// metadata. Only draft quotes can be accepted; re-accepting is an invalid
// transition, never a silent overwrite of the original stamps.
func (q *Quote) Accept(at time.Time, ip string, userID uint) error {
	if !q.status.CanTransitionTo(vo.QuoteStatusAccepted) {
		return fmt.Errorf("cannot accept quote with status %s", q.status)
	}
	if userID == 0 {
		return fmt.Errorf("accepting user ID is required")
	}

	at = at.UTC()
	q.status = vo.QuoteStatusAccepted
	q.acceptedAt = &at
	q.acceptedByIP = &ip
	q.acceptedByUser = &userID
	q.updatedAt = at
	q.version++

	return nil
}

// MarkConverted records that an invoice was produced from this quote.
// Only accepted quotes can be converted.
func (q *Quote) MarkConverted(at time.Time) error {
	if !q.status.CanTransitionTo(vo.QuoteStatusConverted) {
		return fmt.Errorf("cannot convert quote with status %s", q.status)
	}

	q.status = vo.QuoteStatusConverted
	q.updatedAt = at.UTC()
	q.version++

	return nil
}
