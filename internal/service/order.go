package service

import (
	"context"
	"time"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/repository"
)

// storeTimeout bounds every store call so a wedged database surfaces as
// ErrStoreUnavailable instead of a hung chat handler.
const storeTimeout = 3 * time.Second

// OrderService handles order intake and reads. The conversational wizard that
// collects the fields lives in the rider-side chat collaborator; by the time
// a request reaches this service it is a completed order request.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CreateOrderRequest is a completed order request from the rider collaborator.
type CreateOrderRequest struct {
	RiderID  int64
	FromCity string
	ToCity   string
	Tariff   string
	Hour     int
	Minute   int
	Phone    string
}

// CreateOrder validates the request and appends a Waiting order.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if req.RiderID <= 0 {
		return nil, ErrInvalidRiderID
	}
	if !domain.IsValidCity(req.FromCity) || !domain.IsValidCity(req.ToCity) {
		return nil, ErrInvalidCity
	}
	if !domain.IsValidTariff(req.Tariff) {
		return nil, ErrInvalidTariff
	}

	tripTime, err := domain.NewTripTime(req.Hour, req.Minute)
	if err != nil {
		return nil, ErrInvalidTripTime
	}

	phone := domain.NormalizePhone(req.Phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}

	order := &domain.Order{
		RiderID:  req.RiderID,
		FromCity: domain.City(req.FromCity),
		ToCity:   domain.City(req.ToCity),
		Tariff:   domain.Tariff(req.Tariff),
		Time:     tripTime,
		Phone:    phone,
		Status:   domain.StatusWaiting,
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if _, err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder retrieves an order by id.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.orderRepo.GetByID(ctx, orderID)
}

// ListWaiting returns the claimable-order feed for the driver collaborator.
func (s *OrderService) ListWaiting(ctx context.Context) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.orderRepo.ListWaiting(ctx)
}

// ListRiderOrders returns a rider's order history, newest first.
func (s *OrderService) ListRiderOrders(ctx context.Context, riderID int64) ([]*domain.Order, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	return s.orderRepo.ListByRider(ctx, riderID)
}
