package mappers

import (
	"time"

	"bureau/internal/domain/billing"
	vo "bureau/internal/domain/billing/valueobjects"
	"bureau/internal/infrastructure/persistence/models"
)

// BillingMapper handles the conversion between billing document entities and
// persistence models. Document numbers are stored in their canonical string
// form and parsed back into typed values on read.
type BillingMapper interface {
	QuoteToModel(q *billing.Quote) (*models.QuoteModel, []*models.QuoteLineModel)
	QuoteToDomain(model *models.QuoteModel, lines []*models.QuoteLineModel) (*billing.Quote, error)

	InvoiceToModel(i *billing.Invoice) (*models.InvoiceModel, []*models.InvoiceLineModel)
	InvoiceToDomain(model *models.InvoiceModel, lines []*models.InvoiceLineModel) (*billing.Invoice, error)
}

type BillingMapperImpl struct{}

func NewBillingMapper() BillingMapper {
	return &BillingMapperImpl{}
}

func (m *BillingMapperImpl) QuoteToModel(q *billing.Quote) (*models.QuoteModel, []*models.QuoteLineModel) {
	model := &models.QuoteModel{
		ID:             q.ID(),
		OrganizationID: q.OrganizationID(),
		Title:          q.Title(),
		Terms:          q.Terms(),
		Status:         q.Status().String(),
		AcceptedByUser: q.AcceptedByUser(),
		Version:        q.Version(),
		CreatedAt:      q.CreatedAt().UnixMilli(),
		UpdatedAt:      q.UpdatedAt().UnixMilli(),
	}

	if q.Number() != nil {
		number := q.Number().String()
		model.Number = &number
	}
	if q.ValidUntil() != nil {
		validUntil := q.ValidUntil().UnixMilli()
		model.ValidUntil = &validUntil
	}
	if q.AcceptedAt() != nil {
		acceptedAt := q.AcceptedAt().UnixMilli()
		model.AcceptedAt = &acceptedAt
	}
	if q.AcceptedByIP() != nil {
		ip := *q.AcceptedByIP()
		model.AcceptedByIP = &ip
	}

	lines := make([]*models.QuoteLineModel, 0, len(q.Lines()))
	for _, line := range q.Lines() {
		lines = append(lines, &models.QuoteLineModel{
			ID:          line.ID(),
			QuoteID:     q.ID(),
			Description: line.Description(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().AmountInCents(),
			Currency:    line.UnitPrice().Currency(),
		})
	}

	return model, lines
}

func (m *BillingMapperImpl) QuoteToDomain(model *models.QuoteModel, lineModels []*models.QuoteLineModel) (*billing.Quote, error) {
	status, err := vo.ParseQuoteStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var number *vo.DocumentNumber
	if model.Number != nil {
		parsed, err := vo.ParseDocumentNumber(*model.Number)
		if err != nil {
			return nil, err
		}
		number = &parsed
	}

	lines := make([]*billing.Line, 0, len(lineModels))
	for _, lineModel := range lineModels {
		line, err := billing.ReconstructLine(
			lineModel.ID,
			lineModel.Description,
			lineModel.Quantity,
			vo.NewMoney(lineModel.UnitPrice, lineModel.Currency),
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return billing.ReconstructQuote(
		model.ID,
		model.OrganizationID,
		number,
		model.Title,
		model.Terms,
		status,
		milliToTime(model.ValidUntil),
		milliToTime(model.AcceptedAt),
		model.AcceptedByIP,
		model.AcceptedByUser,
		lines,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *BillingMapperImpl) InvoiceToModel(i *billing.Invoice) (*models.InvoiceModel, []*models.InvoiceLineModel) {
	model := &models.InvoiceModel{
		ID:             i.ID(),
		OrganizationID: i.OrganizationID(),
		Title:          i.Title(),
		LegalMentions:  i.LegalMentions(),
		Status:         i.Status().String(),
		Locked:         i.Locked(),
		PDFChecksum:    i.PDFChecksum(),
		PDFContentType: i.PDFContentType(),
		PDFBlob:        i.PDFBlob(),
		Version:        i.Version(),
		CreatedAt:      i.CreatedAt().UnixMilli(),
		UpdatedAt:      i.UpdatedAt().UnixMilli(),
	}

	if i.Number() != nil {
		number := i.Number().String()
		model.Number = &number
	}
	if i.IssueDate() != nil {
		issueDate := i.IssueDate().UnixMilli()
		model.IssueDate = &issueDate
	}

	lines := make([]*models.InvoiceLineModel, 0, len(i.Lines()))
	for _, line := range i.Lines() {
		lines = append(lines, &models.InvoiceLineModel{
			ID:          line.ID(),
			InvoiceID:   i.ID(),
			Description: line.Description(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice().AmountInCents(),
			Currency:    line.UnitPrice().Currency(),
		})
	}

	return model, lines
}

func (m *BillingMapperImpl) InvoiceToDomain(model *models.InvoiceModel, lineModels []*models.InvoiceLineModel) (*billing.Invoice, error) {
	status, err := vo.ParseInvoiceStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var number *vo.DocumentNumber
	if model.Number != nil {
		parsed, err := vo.ParseDocumentNumber(*model.Number)
		if err != nil {
			return nil, err
		}
		number = &parsed
	}

	lines := make([]*billing.Line, 0, len(lineModels))
	for _, lineModel := range lineModels {
		line, err := billing.ReconstructLine(
			lineModel.ID,
			lineModel.Description,
			lineModel.Quantity,
			vo.NewMoney(lineModel.UnitPrice, lineModel.Currency),
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return billing.ReconstructInvoice(
		model.ID,
		model.OrganizationID,
		number,
		model.Title,
		model.LegalMentions,
		status,
		milliToTime(model.IssueDate),
		model.Locked,
		model.PDFChecksum,
		model.PDFContentType,
		model.PDFBlob,
		lines,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func milliToTime(milli *int64) *time.Time {
	if milli == nil {
		return nil
	}
	t := time.UnixMilli(*milli).UTC()
	return &t
}
