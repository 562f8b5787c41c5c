package mappers

import (
	"time"

	"bureau/internal/domain/ticket"
	vo "bureau/internal/domain/ticket/valueobjects"
	"bureau/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket-board domain entities
// and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	ColumnToModel(c *ticket.KanbanColumn) *models.KanbanColumnModel
	ColumnToDomain(model *models.KanbanColumnModel) (*ticket.KanbanColumn, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	SegmentToModel(s *ticket.TimeSegment) *models.TimeSegmentModel
	SegmentToDomain(model *models.TimeSegmentModel) (*ticket.TimeSegment, error)

	EventToModel(e *ticket.Event) *models.EventModel
	EventToDomain(model *models.EventModel) (*ticket.Event, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                t.ID(),
		ProjectID:         t.ProjectID(),
		ColumnID:          t.ColumnID(),
		Title:             t.Title(),
		Description:       t.Description(),
		Priority:          t.Priority().String(),
		EstimationMinutes: t.EstimationMinutes(),
		Version:           t.Version(),
		CreatedAt:         t.CreatedAt().UnixMilli(),
		UpdatedAt:         t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.ParsePriority(model.Priority)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.ProjectID,
		model.ColumnID,
		model.Title,
		model.Description,
		priority,
		model.EstimationMinutes,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) ColumnToModel(c *ticket.KanbanColumn) *models.KanbanColumnModel {
	return &models.KanbanColumnModel{
		ID:        c.ID(),
		ProjectID: c.ProjectID(),
		Name:      c.Name(),
		Role:      c.Role().String(),
		Position:  c.Position(),
		IsDefault: c.IsDefault(),
	}
}

func (m *TicketMapperImpl) ColumnToDomain(model *models.KanbanColumnModel) (*ticket.KanbanColumn, error) {
	role, err := vo.ParseColumnRole(model.Role)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructKanbanColumn(
		model.ID,
		model.ProjectID,
		model.Name,
		role,
		model.Position,
		model.IsDefault,
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) SegmentToModel(s *ticket.TimeSegment) *models.TimeSegmentModel {
	model := &models.TimeSegmentModel{
		ID:        s.ID(),
		TicketID:  s.TicketID(),
		StartedAt: s.StartedAt().UnixMilli(),
	}
	if s.EndedAt() != nil {
		ended := s.EndedAt().UnixMilli()
		model.EndedAt = &ended
	}
	return model
}

func (m *TicketMapperImpl) SegmentToDomain(model *models.TimeSegmentModel) (*ticket.TimeSegment, error) {
	var endedAt *time.Time
	if model.EndedAt != nil {
		ended := time.UnixMilli(*model.EndedAt).UTC()
		endedAt = &ended
	}

	return ticket.ReconstructTimeSegment(
		model.ID,
		model.TicketID,
		time.UnixMilli(model.StartedAt).UTC(),
		endedAt,
	)
}

func (m *TicketMapperImpl) EventToModel(e *ticket.Event) *models.EventModel {
	return &models.EventModel{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		Action:    e.Action(),
		ActorID:   e.ActorID(),
		Details:   e.Details(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) EventToDomain(model *models.EventModel) (*ticket.Event, error) {
	return ticket.ReconstructEvent(
		model.ID,
		model.TicketID,
		model.Action,
		model.ActorID,
		model.Details,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
