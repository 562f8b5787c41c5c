package migration

import (
	"bureau/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.KanbanColumnModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.TimeSegmentModel{},
		&models.EventModel{},
		&models.QuoteModel{},
		&models.QuoteLineModel{},
		&models.InvoiceModel{},
		&models.InvoiceLineModel{},
		&models.DocumentSequenceModel{},
		&models.LeadModel{},
	}
}
