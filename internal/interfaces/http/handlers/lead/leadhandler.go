package lead

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bureau/internal/application/lead/usecases"
	"bureau/internal/shared/logger"
	"bureau/internal/shared/utils"
)

type SubmitLeadRequest struct {
	Email    string                 `json:"email" binding:"required,email"`
	Name     string                 `json:"name" binding:"required,max=200"`
	Message  string                 `json:"message" binding:"max=5000"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type SubmitLeadResponse struct {
	LeadID uint `json:"lead_id"`
}

type LeadHandler struct {
	submitLeadUC usecases.SubmitLeadExecutor
	logger       logger.Interface
}

func NewLeadHandler(submitLeadUC usecases.SubmitLeadExecutor, logger logger.Interface) *LeadHandler {
	return &LeadHandler{submitLeadUC: submitLeadUC, logger: logger}
}

// SubmitLead handles POST /public/leads
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for lead submission", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SubmitLeadCommand{
		Email:    req.Email,
		Name:     req.Name,
		Message:  req.Message,
		SourceIP: c.ClientIP(),
		Metadata: req.Metadata,
	}

	result, err := h.submitLeadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, SubmitLeadResponse{LeadID: result.LeadID}, "Lead recorded")
}
