package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/service"
)

// DriverHandler handles HTTP requests on the driver-side process.
type DriverHandler struct {
	driverService   *service.DriverService
	orderService    *service.OrderService
	dispatchService *service.DispatchService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(
	driverService *service.DriverService,
	orderService *service.OrderService,
	dispatchService *service.DispatchService,
) *DriverHandler {
	return &DriverHandler{
		driverService:   driverService,
		orderService:    orderService,
		dispatchService: dispatchService,
	}
}

// RegisterDriverRequest is the HTTP request body for driver registration.
type RegisterDriverRequest struct {
	ChatID   int64  `json:"chat_id"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Vehicle  string `json:"vehicle"`
}

// RebindRequest is the HTTP request body for rebinding a returning driver's
// session.
type RebindRequest struct {
	Phone  string `json:"phone"`
	ChatID int64  `json:"chat_id"`
}

// DriverResponse is the HTTP representation of a driver profile.
type DriverResponse struct {
	ChatID   int64  `json:"chat_id"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Vehicle  string `json:"vehicle"`
}

// WaitingOrderResponse is one claimable item in the waiting-order feed. The
// claim token is the opaque value the collaborator echoes back in a claim.
type WaitingOrderResponse struct {
	OrderResponse
	ClaimToken string `json:"claim_token"`
}

// ClaimOrderRequest is the HTTP request body for a claim attempt.
type ClaimOrderRequest struct {
	DriverChatID int64 `json:"driver_chat_id"`
}

// ClaimOrderResponse is the HTTP response for a winning claim.
type ClaimOrderResponse struct {
	Order      OrderResponse `json:"order"`
	DriverName string        `json:"driver_name"`
	Vehicle    string        `json:"vehicle"`
	NotifySent bool          `json:"notify_sent"`
}

// Session handles GET /v1/drivers/session?chat_id=
func (h *DriverHandler) Session(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Query("chat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "chat_id query parameter is required"})
		return
	}

	driver, err := h.driverService.Identify(c.Request.Context(), chatID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// Register handles POST /v1/drivers/register
func (h *DriverHandler) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.driverService.Register(c.Request.Context(), service.RegisterRequest{
		ChatID:   req.ChatID,
		Phone:    req.Phone,
		FullName: req.FullName,
		Vehicle:  req.Vehicle,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// Rebind handles POST /v1/drivers/rebind
func (h *DriverHandler) Rebind(c *gin.Context) {
	var req RebindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.driverService.RebindSession(c.Request.Context(), req.Phone, req.ChatID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// ListWaiting handles GET /v1/orders/waiting
func (h *DriverHandler) ListWaiting(c *gin.Context) {
	orders, err := h.orderService.ListWaiting(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]WaitingOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, WaitingOrderResponse{
			OrderResponse: toOrderResponse(o),
			ClaimToken:    strconv.FormatInt(o.ID, 10),
		})
	}
	respondJSON(c, http.StatusOK, response)
}

// Claim handles POST /v1/orders/:id/claim
func (h *DriverHandler) Claim(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
		return
	}

	var req ClaimOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.dispatchService.Claim(c.Request.Context(), orderID, req.DriverChatID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ClaimOrderResponse{
		Order:      toOrderResponse(result.Order),
		DriverName: result.Driver.FullName,
		Vehicle:    result.Driver.Vehicle,
		NotifySent: result.NotifySent,
	})
}

func toDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ChatID:   d.ChatID,
		Phone:    d.Phone,
		FullName: d.FullName,
		Vehicle:  d.Vehicle,
	}
}
