package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bureau/internal/domain/billing"
	"bureau/internal/infrastructure/persistence/mappers"
	"bureau/internal/infrastructure/persistence/models"
	"bureau/internal/shared/db"
)

type InvoiceRepository struct {
	db     *gorm.DB
	mapper mappers.BillingMapper
}

func NewInvoiceRepository(database *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db:     database,
		mapper: mappers.NewBillingMapper(),
	}
}

func (r *InvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	model, lineModels := r.mapper.InvoiceToModel(invoice)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	if err := invoice.SetID(model.ID); err != nil {
		return err
	}

	for i, lineModel := range lineModels {
		lineModel.InvoiceID = model.ID
		if err := tx.Create(lineModel).Error; err != nil {
			return fmt.Errorf("failed to save invoice line: %w", err)
		}
		if err := invoice.Lines()[i].SetID(lineModel.ID); err != nil {
			return err
		}
	}

	return nil
}

// Update writes the invoice row only. Lines are immutable once the invoice
// is created; issuance changes the row, never the lines.
func (r *InvoiceRepository) Update(ctx context.Context, invoice *billing.Invoice) error {
	model, _ := r.mapper.InvoiceToModel(invoice)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InvoiceModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}

	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, invoiceID uint) (*billing.Invoice, error) {
	return r.getByID(ctx, invoiceID, false)
}

// GetByIDForUpdate loads the invoice under a row lock so the locked check
// and the issuing write happen against the same committed state.
func (r *InvoiceRepository) GetByIDForUpdate(ctx context.Context, invoiceID uint) (*billing.Invoice, error) {
	return r.getByID(ctx, invoiceID, true)
}

func (r *InvoiceRepository) getByID(ctx context.Context, invoiceID uint, forUpdate bool) (*billing.Invoice, error) {
	var model models.InvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx
	if forUpdate {
		query = query.Scopes(db.ForUpdate())
	}

	if err := query.First(&model, invoiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("invoice not found")
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	lineModels, err := r.loadLines(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.InvoiceToDomain(&model, lineModels)
}

func (r *InvoiceRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("organization_id = ?", organizationID).
		Order("id ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	invoices := make([]*billing.Invoice, 0, len(invoiceModels))
	for i := range invoiceModels {
		lineModels, err := r.loadLines(tx, invoiceModels[i].ID)
		if err != nil {
			return nil, err
		}
		invoice, err := r.mapper.InvoiceToDomain(&invoiceModels[i], lineModels)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, nil
}

func (r *InvoiceRepository) loadLines(tx *gorm.DB, invoiceID uint) ([]*models.InvoiceLineModel, error) {
	var lineModels []*models.InvoiceLineModel
	if err := tx.
		Where("invoice_id = ?", invoiceID).
		Order("id ASC").
		Find(&lineModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load invoice lines: %w", err)
	}
	return lineModels, nil
}
