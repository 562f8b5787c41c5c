package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bureau/internal/application/ticket/usecases"
	"bureau/internal/interfaces/http/middleware"
	"bureau/internal/shared/logger"
	"bureau/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	moveTicketUC       usecases.MoveTicketExecutor
	addCommentUC       usecases.AddCommentExecutor
	listTimeSegmentsUC usecases.ListTimeSegmentsExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	moveTicketUC usecases.MoveTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listTimeSegmentsUC usecases.ListTimeSegmentsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     createTicketUC,
		moveTicketUC:       moveTicketUC,
		addCommentUC:       addCommentUC,
		listTimeSegmentsUC: listTimeSegmentsUC,
		logger:             logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := req.ToCommand(middleware.ActorID(c))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateTicketResponse{
		TicketID: result.TicketID,
		ColumnID: result.ColumnID,
	}, "Ticket created successfully")
}

// MoveTicket handles POST /tickets/:id/move
func (h *TicketHandler) MoveTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MoveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.MoveTicketCommand{
		TicketID: ticketID,
		ColumnID: req.ColumnID,
		ActorID:  middleware.ActorID(c),
	}

	result, err := h.moveTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket moved successfully", MoveTicketResponse{
		TicketID:       result.TicketID,
		FromColumnID:   result.FromColumnID,
		ToColumnID:     result.ToColumnID,
		TimerStarted:   result.TimerStarted,
		SegmentsClosed: result.SegmentsClosed,
	})
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID: ticketID,
		AuthorID: middleware.ActorID(c),
		Body:     req.Body,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, AddCommentResponse{
		CommentID: result.CommentID,
		CreatedAt: result.CreatedAt,
	}, "Comment added successfully")
}

// ListTimeSegments handles GET /tickets/:id/time-segments
func (h *TicketHandler) ListTimeSegments(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTimeSegmentsUC.Execute(c.Request.Context(), usecases.ListTimeSegmentsQuery{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	segments := make([]TimeSegmentResponse, 0, len(result.Segments))
	for _, seg := range result.Segments {
		segments = append(segments, TimeSegmentResponse{
			ID:        seg.ID,
			StartedAt: seg.StartedAt,
			EndedAt:   seg.EndedAt,
			Open:      seg.Open,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", ListTimeSegmentsResponse{
		TicketID: result.TicketID,
		Segments: segments,
	})
}
