package models

import "bureau/internal/shared/constants"

type TicketModel struct {
	ID                uint   `gorm:"primaryKey"`
	ProjectID         uint   `gorm:"not null;index"`
	ColumnID          uint   `gorm:"not null;index"`
	Title             string `gorm:"size:255;not null"`
	Description       string `gorm:"type:text"`
	Priority          string `gorm:"size:20;not null;index"`
	EstimationMinutes *int
	Version           int   `gorm:"not null;default:1"`
	CreatedAt         int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type KanbanColumnModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID uint   `gorm:"not null;index:idx_column_project"`
	Name      string `gorm:"size:100;not null"`
	Role      string `gorm:"size:20;not null"`
	Position  int    `gorm:"not null;default:0"`
	IsDefault bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (KanbanColumnModel) TableName() string {
	return constants.TableKanbanColumns
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}

type TimeSegmentModel struct {
	ID        uint  `gorm:"primaryKey"`
	TicketID  uint  `gorm:"not null;index"`
	StartedAt int64 `gorm:"not null"`
	EndedAt   *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TimeSegmentModel) TableName() string {
	return constants.TableTimeSegments
}

type EventModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  *uint  `gorm:"index"`
	Action    string `gorm:"size:50;not null;index"`
	ActorID   *uint  `gorm:"index"`
	Details   string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (EventModel) TableName() string {
	return constants.TableEvents
}
