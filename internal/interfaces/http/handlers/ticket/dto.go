package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bureau/internal/application/ticket/usecases"
	"bureau/internal/shared/errors"
)

type CreateTicketRequest struct {
	ProjectID         uint   `json:"project_id" binding:"required"`
	ColumnID          uint   `json:"column_id" binding:"required"`
	Title             string `json:"title" binding:"required,max=200"`
	Description       string `json:"description" binding:"max=5000"`
	Priority          string `json:"priority,omitempty"`
	EstimationMinutes *int   `json:"estimation_minutes,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(actorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		ProjectID:         r.ProjectID,
		ColumnID:          r.ColumnID,
		Title:             r.Title,
		Description:       r.Description,
		Priority:          r.Priority,
		EstimationMinutes: r.EstimationMinutes,
		ActorID:           actorID,
	}
}

type MoveTicketRequest struct {
	ColumnID uint `json:"column_id" binding:"required"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required,max=10000"`
}

type CreateTicketResponse struct {
	TicketID uint `json:"ticket_id"`
	ColumnID uint `json:"column_id"`
}

type MoveTicketResponse struct {
	TicketID       uint `json:"ticket_id"`
	FromColumnID   uint `json:"from_column_id"`
	ToColumnID     uint `json:"to_column_id"`
	TimerStarted   bool `json:"timer_started"`
	SegmentsClosed int  `json:"segments_closed"`
}

type AddCommentResponse struct {
	CommentID uint      `json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

type TimeSegmentResponse struct {
	ID        uint       `json:"id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Open      bool       `json:"open"`
}

type ListTimeSegmentsResponse struct {
	TicketID uint                  `json:"ticket_id"`
	Segments []TimeSegmentResponse `json:"segments"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
