package models

import "bureau/internal/shared/constants"

type QuoteModel struct {
	ID             uint    `gorm:"primaryKey"`
	OrganizationID uint    `gorm:"not null;index"`
	Number         *string `gorm:"uniqueIndex:uq_quote_number;size:20"`
	Title          string  `gorm:"size:255;not null"`
	Terms          string  `gorm:"type:text"`
	Status         string  `gorm:"size:20;not null;index"`
	ValidUntil     *int64
	AcceptedAt     *int64
	AcceptedByIP   *string `gorm:"size:45"`
	AcceptedByUser *uint
	Version        int   `gorm:"not null;default:1"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (QuoteModel) TableName() string {
	return constants.TableQuotes
}

type QuoteLineModel struct {
	ID          uint   `gorm:"primaryKey"`
	QuoteID     uint   `gorm:"not null;index"`
	Description string `gorm:"size:500;not null"`
	Quantity    int    `gorm:"not null"`
	UnitPrice   int64  `gorm:"not null"`
	Currency    string `gorm:"size:3;not null;default:'EUR'"`
}

func (QuoteLineModel) TableName() string {
	return constants.TableQuoteLines
}

type InvoiceModel struct {
	ID             uint    `gorm:"primaryKey"`
	OrganizationID uint    `gorm:"not null;index"`
	Number         *string `gorm:"uniqueIndex:uq_invoice_number;size:20"`
	Title          string  `gorm:"size:255;not null"`
	LegalMentions  string  `gorm:"type:text"`
	Status         string  `gorm:"size:20;not null;index"`
	IssueDate      *int64
	Locked         bool    `gorm:"not null;default:false"`
	PDFChecksum    *string `gorm:"size:64"`
	PDFContentType *string `gorm:"size:100"`
	PDFBlob        []byte  `gorm:"type:mediumblob"`
	Version        int     `gorm:"not null;default:1"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (InvoiceModel) TableName() string {
	return constants.TableInvoices
}

type InvoiceLineModel struct {
	ID          uint   `gorm:"primaryKey"`
	InvoiceID   uint   `gorm:"not null;index"`
	Description string `gorm:"size:500;not null"`
	Quantity    int    `gorm:"not null"`
	UnitPrice   int64  `gorm:"not null"`
	Currency    string `gorm:"size:3;not null;default:'EUR'"`
}

func (InvoiceLineModel) TableName() string {
	return constants.TableInvoiceLines
}

// DocumentSequenceModel is the per-scope issuance counter. One row per
// (organization, kind, year); the row is read FOR UPDATE while allocating.
type DocumentSequenceModel struct {
	OrganizationID uint   `gorm:"primaryKey;autoIncrement:false"`
	Kind           string `gorm:"primaryKey;size:10"`
	Year           int    `gorm:"primaryKey;autoIncrement:false"`
	LastSeq        int    `gorm:"not null;default:0"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (DocumentSequenceModel) TableName() string {
	return constants.TableDocumentSequence
}
