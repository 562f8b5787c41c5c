package models

import (
	"gorm.io/datatypes"

	"bureau/internal/shared/constants"
)

type LeadModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"size:255;not null;index"`
	Name      string         `gorm:"size:255;not null"`
	Message   string         `gorm:"type:text"`
	SourceIP  string         `gorm:"size:45;index"`
	Metadata  datatypes.JSON `gorm:"type:json"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (LeadModel) TableName() string {
	return constants.TableLeads
}
