package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bureau/internal/domain/ticket"
	"bureau/internal/infrastructure/persistence/mappers"
	"bureau/internal/infrastructure/persistence/models"
	"bureau/internal/shared/db"
)

type ColumnRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewColumnRepository(database *gorm.DB) *ColumnRepository {
	return &ColumnRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ColumnRepository) Save(ctx context.Context, column *ticket.KanbanColumn) error {
	model := r.mapper.ColumnToModel(column)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save column: %w", err)
	}

	return column.SetID(model.ID)
}

func (r *ColumnRepository) GetByID(ctx context.Context, columnID uint) (*ticket.KanbanColumn, error) {
	var model models.KanbanColumnModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, columnID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("column not found")
		}
		return nil, fmt.Errorf("failed to find column: %w", err)
	}

	return r.mapper.ColumnToDomain(&model)
}

func (r *ColumnRepository) ListByProject(ctx context.Context, projectID uint) ([]*ticket.KanbanColumn, error) {
	var columnModels []models.KanbanColumnModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&columnModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	columns := make([]*ticket.KanbanColumn, 0, len(columnModels))
	for i := range columnModels {
		column, err := r.mapper.ColumnToDomain(&columnModels[i])
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}

	return columns, nil
}
