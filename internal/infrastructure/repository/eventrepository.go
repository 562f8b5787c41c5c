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

// EventRepository persists the append-only audit trail. Rows are never
// updated or deleted.
type EventRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *EventRepository) Append(ctx context.Context, event *ticket.Event) error {
	model := r.mapper.EventToModel(event)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	return event.SetID(model.ID)
}

func (r *EventRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Event, error) {
	var eventModels []models.EventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.ByTicket(ticketID)).
		Order("created_at ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]*ticket.Event, 0, len(eventModels))
	for i := range eventModels {
		event, err := r.mapper.EventToDomain(&eventModels[i])
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
