package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/service"
)

// OrderHandler handles HTTP requests on the rider-side process.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrderRequest is the completed order request handed over by the rider
// chat collaborator once its wizard finishes.
type CreateOrderRequest struct {
	RiderID  int64  `json:"rider_id"`
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Tariff   string `json:"tariff"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Phone    string `json:"phone"`
}

// OrderResponse is the HTTP representation of an order.
type OrderResponse struct {
	ID       int64  `json:"id"`
	RiderID  int64  `json:"rider_id"`
	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`
	Tariff   string `json:"tariff"`
	Time     string `json:"time"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// CreateOrder handles POST /v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), service.CreateOrderRequest{
		RiderID:  req.RiderID,
		FromCity: req.FromCity,
		ToCity:   req.ToCity,
		Tariff:   req.Tariff,
		Hour:     req.Hour,
		Minute:   req.Minute,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toOrderResponse(order))
}

// GetOrder handles GET /v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toOrderResponse(order))
}

// ListRiderOrders handles GET /v1/orders?rider_id=
func (h *OrderHandler) ListRiderOrders(c *gin.Context) {
	riderID, err := strconv.ParseInt(c.Query("rider_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rider_id query parameter is required"})
		return
	}

	orders, err := h.orderService.ListRiderOrders(c.Request.Context(), riderID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	respondJSON(c, http.StatusOK, response)
}

func toOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:       o.ID,
		RiderID:  o.RiderID,
		FromCity: string(o.FromCity),
		ToCity:   string(o.ToCity),
		Tariff:   string(o.Tariff),
		Time:     o.Time.String(),
		Phone:    o.Phone,
		Status:   string(o.Status),
	}
}
