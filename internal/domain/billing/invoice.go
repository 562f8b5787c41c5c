package billing

import (
	"fmt"
	"time"

	vo "bureau/internal/domain/billing/valueobjects"
)

// Invoice is the locked-once billing document. Issuance assigns the number,
// the rendered content, its checksum and content type, and the locked flag in
// a single step; after that nothing on the invoice changes again.
type Invoice struct {
	id             uint
	organizationID uint
	number         *vo.DocumentNumber
	title          string
	legalMentions  string
	status         vo.InvoiceStatus
	issueDate      *time.Time
	locked         bool
	pdfChecksum    *string
	pdfContentType *string
	pdfBlob        []byte
	lines          []*Line
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewInvoice(organizationID uint, title, legalMentions string, lines []*Line) (*Invoice, error) {
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
	return &Invoice{
		organizationID: organizationID,
		title:          title,
		legalMentions:  legalMentions,
		status:         vo.InvoiceStatusDraft,
		lines:          lines,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructInvoice(
	id uint,
	organizationID uint,
	number *vo.DocumentNumber,
	title string,
	legalMentions string,
	status vo.InvoiceStatus,
	issueDate *time.Time,
	locked bool,
	pdfChecksum *string,
	pdfContentType *string,
	pdfBlob []byte,
	lines []*Line,
	version int,
	createdAt, updatedAt time.Time,
) (*Invoice, error) {
	if id == 0 {
		return nil, fmt.Errorf("invoice ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invoice status: %s", status)
	}
	if locked && status.IsDraft() {
		return nil, fmt.Errorf("locked invoice cannot be in draft status")
	}

	if lines == nil {
		lines = []*Line{}
	}

	return &Invoice{
		id:             id,
		organizationID: organizationID,
		number:         number,
		title:          title,
		legalMentions:  legalMentions,
		status:         status,
		issueDate:      issueDate,
		locked:         locked,
		pdfChecksum:    pdfChecksum,
		pdfContentType: pdfContentType,
		pdfBlob:        pdfBlob,
		lines:          lines,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (i *Invoice) ID() uint {
	return i.id
}

func (i *Invoice) OrganizationID() uint {
	return i.organizationID
}

func (i *Invoice) Number() *vo.DocumentNumber {
	return i.number
}

func (i *Invoice) Title() string {
	return i.title
}

func (i *Invoice) LegalMentions() string {
	return i.legalMentions
}

func (i *Invoice) Status() vo.InvoiceStatus {
	return i.status
}

func (i *Invoice) IssueDate() *time.Time {
	return i.issueDate
}

func (i *Invoice) Locked() bool {
	return i.locked
}

func (i *Invoice) PDFChecksum() *string {
	return i.pdfChecksum
}

func (i *Invoice) PDFContentType() *string {
	return i.pdfContentType
}

func (i *Invoice) PDFBlob() []byte {
	blobCopy := make([]byte, len(i.pdfBlob))
	copy(blobCopy, i.pdfBlob)
	return blobCopy
}

func (i *Invoice) Lines() []*Line {
	linesCopy := make([]*Line, len(i.lines))
	copy(linesCopy, i.lines)
	return linesCopy
}

func (i *Invoice) Version() int {
	return i.version
}

func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Invoice) UpdatedAt() time.Time {
	return i.updatedAt
}

// Total returns the sum of all line totals.
func (i *Invoice) Total() (vo.Money, error) {
	return sumLines(i.lines)
}

func (i *Invoice) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invoice ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invoice ID cannot be zero")
	}
	i.id = id
	return nil
}

// Issue finalizes the invoice: number, rendered content, checksum, content
// type, issue date and the locked flag are all set together. A locked
// invoice rejects a second issue; idempotent re-issue is handled by the
// caller returning the stored document untouched.
func (i *Invoice) Issue(number vo.DocumentNumber, content []byte, contentType, checksum string, at time.Time) error {
	if i.locked {
		return fmt.Errorf("invoice is locked")
	}
	if len(content) == 0 {
		return fmt.Errorf("rendered content is required")
	}
	if len(checksum) == 0 {
		return fmt.Errorf("content checksum is required")
	}
	if len(contentType) == 0 {
		return fmt.Errorf("content type is required")
	}
	if i.number != nil && *i.number != number {
		return fmt.Errorf("invoice number is already set to %s", i.number)
	}

	at = at.UTC()
	i.number = &number
	i.status = vo.InvoiceStatusIssued
	i.issueDate = &at
	i.pdfBlob = content
	i.pdfContentType = &contentType
	i.pdfChecksum = &checksum
	i.locked = true
	i.updatedAt = at
	i.version++

	return nil
}
