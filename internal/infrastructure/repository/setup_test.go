package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bureau/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.KanbanColumnModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.TimeSegmentModel{},
		&models.EventModel{},
		&models.QuoteModel{},
		&models.QuoteLineModel{},
		&models.InvoiceModel{},
		&models.InvoiceLineModel{},
		&models.LeadModel{},
	)
	require.NoError(t, err)

	return database
}
