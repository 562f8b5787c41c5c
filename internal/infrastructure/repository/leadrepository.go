package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bureau/internal/domain/lead"
	"bureau/internal/infrastructure/persistence/mappers"
	"bureau/internal/infrastructure/persistence/models"
	"bureau/internal/shared/db"
)

type LeadRepository struct {
	db     *gorm.DB
	mapper mappers.LeadMapper
}

func NewLeadRepository(database *gorm.DB) *LeadRepository {
	return &LeadRepository{
		db:     database,
		mapper: mappers.NewLeadMapper(),
	}
}

func (r *LeadRepository) Save(ctx context.Context, l *lead.Lead) error {
	model, err := r.mapper.ToModel(l)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *LeadRepository) GetByID(ctx context.Context, leadID uint) (*lead.Lead, error) {
	var model models.LeadModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, leadID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("lead not found")
		}
		return nil, fmt.Errorf("failed to find lead: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LeadRepository) List(ctx context.Context, limit, offset int) ([]*lead.Lead, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.LeadModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	var leadModels []models.LeadModel
	if err := tx.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&leadModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := make([]*lead.Lead, 0, len(leadModels))
	for i := range leadModels {
		l, err := r.mapper.ToDomain(&leadModels[i])
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, l)
	}

	return leads, total, nil
}
