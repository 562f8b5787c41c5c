package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"bureau/internal/domain/lead"
	"bureau/internal/infrastructure/persistence/models"
)

type LeadMapper interface {
	ToModel(l *lead.Lead) (*models.LeadModel, error)
	ToDomain(model *models.LeadModel) (*lead.Lead, error)
}

type LeadMapperImpl struct{}

func NewLeadMapper() LeadMapper {
	return &LeadMapperImpl{}
}

func (m *LeadMapperImpl) ToModel(l *lead.Lead) (*models.LeadModel, error) {
	metadata, err := json.Marshal(l.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lead metadata: %w", err)
	}

	return &models.LeadModel{
		ID:        l.ID(),
		Email:     l.Email(),
		Name:      l.Name(),
		Message:   l.Message(),
		SourceIP:  l.SourceIP(),
		Metadata:  datatypes.JSON(metadata),
		CreatedAt: l.CreatedAt().UnixMilli(),
	}, nil
}

func (m *LeadMapperImpl) ToDomain(model *models.LeadModel) (*lead.Lead, error) {
	metadata := make(map[string]interface{})
	if len(model.Metadata) > 0 {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal lead metadata: %w", err)
		}
	}

	return lead.ReconstructLead(
		model.ID,
		model.Email,
		model.Name,
		model.Message,
		model.SourceIP,
		metadata,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
