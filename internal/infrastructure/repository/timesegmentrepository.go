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

type TimeSegmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTimeSegmentRepository(database *gorm.DB) *TimeSegmentRepository {
	return &TimeSegmentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TimeSegmentRepository) Save(ctx context.Context, segment *ticket.TimeSegment) error {
	model := r.mapper.SegmentToModel(segment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save time segment: %w", err)
	}

	return segment.SetID(model.ID)
}

func (r *TimeSegmentRepository) Update(ctx context.Context, segment *ticket.TimeSegment) error {
	model := r.mapper.SegmentToModel(segment)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TimeSegmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"started_at": model.StartedAt,
			"ended_at":   model.EndedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update time segment: %w", result.Error)
	}

	return nil
}

func (r *TimeSegmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.TimeSegment, error) {
	var segmentModels []models.TimeSegmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.ByTicket(ticketID)).
		Order("started_at ASC").
		Find(&segmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list time segments: %w", err)
	}

	segments := make([]*ticket.TimeSegment, 0, len(segmentModels))
	for i := range segmentModels {
		segment, err := r.mapper.SegmentToDomain(&segmentModels[i])
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}

	return segments, nil
}
