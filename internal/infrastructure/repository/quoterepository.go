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

type QuoteRepository struct {
	db     *gorm.DB
	mapper mappers.BillingMapper
}

func NewQuoteRepository(database *gorm.DB) *QuoteRepository {
	return &QuoteRepository{
		db:     database,
		mapper: mappers.NewBillingMapper(),
	}
}

func (r *QuoteRepository) Save(ctx context.Context, quote *billing.Quote) error {
	model, lineModels := r.mapper.QuoteToModel(quote)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	if err := quote.SetID(model.ID); err != nil {
		return err
	}

	for i, lineModel := range lineModels {
		lineModel.QuoteID = model.ID
		if err := tx.Create(lineModel).Error; err != nil {
			return fmt.Errorf("failed to save quote line: %w", err)
		}
		if err := quote.Lines()[i].SetID(lineModel.ID); err != nil {
			return err
		}
	}

	return nil
}

// Update writes the quote row only. Lines are immutable once the quote is
// created.
func (r *QuoteRepository) Update(ctx context.Context, quote *billing.Quote) error {
	model, _ := r.mapper.QuoteToModel(quote)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.QuoteModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update quote: %w", result.Error)
	}

	return nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, quoteID uint) (*billing.Quote, error) {
	return r.getByID(ctx, quoteID, false)
}

func (r *QuoteRepository) GetByIDForUpdate(ctx context.Context, quoteID uint) (*billing.Quote, error) {
	return r.getByID(ctx, quoteID, true)
}

func (r *QuoteRepository) getByID(ctx context.Context, quoteID uint, forUpdate bool) (*billing.Quote, error) {
	var model models.QuoteModel
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx
	if forUpdate {
		query = query.Scopes(db.ForUpdate())
	}

	if err := query.First(&model, quoteID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("quote not found")
		}
		return nil, fmt.Errorf("failed to find quote: %w", err)
	}

	lineModels, err := r.loadLines(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.QuoteToDomain(&model, lineModels)
}

func (r *QuoteRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*billing.Quote, error) {
	var quoteModels []models.QuoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("organization_id = ?", organizationID).
		Order("id ASC").
		Find(&quoteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	quotes := make([]*billing.Quote, 0, len(quoteModels))
	for i := range quoteModels {
		lineModels, err := r.loadLines(tx, quoteModels[i].ID)
		if err != nil {
			return nil, err
		}
		quote, err := r.mapper.QuoteToDomain(&quoteModels[i], lineModels)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

func (r *QuoteRepository) loadLines(tx *gorm.DB, quoteID uint) ([]*models.QuoteLineModel, error) {
	var lineModels []*models.QuoteLineModel
	if err := tx.
		Where("quote_id = ?", quoteID).
		Order("id ASC").
		Find(&lineModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load quote lines: %w", err)
	}
	return lineModels, nil
}
