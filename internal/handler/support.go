package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alast0rRL/testtaxi/internal/service"
)

// SupportHandler forwards rider support requests.
type SupportHandler struct {
	supportService *service.SupportService
}

// NewSupportHandler creates a new SupportHandler.
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

// SupportRequest is the HTTP request body for a support message.
type SupportRequest struct {
	RiderID int64  `json:"rider_id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Forward handles POST /v1/support
func (h *SupportHandler) Forward(c *gin.Context) {
	var req SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.supportService.Forward(c.Request.Context(), req.RiderID, req.Name, req.Message); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"forwarded": true})
}
