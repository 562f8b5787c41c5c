package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate is a GORM scope that takes an exclusive row lock held until the
// surrounding transaction commits. The lock-once disciplines (invoice
// issuance, open-segment check, sequence allocation) all read through it.
//
// Example usage:
//
//	tx.Scopes(db.ForUpdate()).First(&model, id)
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}

// ByTicket scopes a query to rows owned by one ticket.
func ByTicket(ticketID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ticket_id = ?", ticketID)
	}
}
