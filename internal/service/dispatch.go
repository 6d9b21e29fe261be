package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/repository"
)

// defaultNotifyTimeout bounds the post-claim push so a slow rider-side
// process never blocks the driver's claim response.
const defaultNotifyTimeout = 5 * time.Second

// RiderNotifier delivers a claim outcome to the rider-side process. The two
// processes share no memory, so this is a network boundary with best-effort
// semantics.
type RiderNotifier interface {
	NotifyOrderAccepted(ctx context.Context, order *domain.Order, driver *domain.Driver) error
}

// DispatchService is the claim coordinator. It guarantees at most one driver
// is ever told "you won" for a given order, relying solely on the order
// store's conditional transition; it holds no lock or shared mutable state of
// its own, so one instance per connection is safe as long as all instances
// share the same store.
type DispatchService struct {
	orderRepo     repository.OrderRepository
	driverRepo    repository.DriverRepository
	notifier      RiderNotifier
	notifyTimeout time.Duration
}

// NewDispatchService creates a new DispatchService. notifier may be nil in
// tests that only exercise the race.
func NewDispatchService(
	orderRepo repository.OrderRepository,
	driverRepo repository.DriverRepository,
	notifier RiderNotifier,
) *DispatchService {
	return &DispatchService{
		orderRepo:     orderRepo,
		driverRepo:    driverRepo,
		notifier:      notifier,
		notifyTimeout: defaultNotifyTimeout,
	}
}

// SetNotifyTimeout overrides the per-notification deadline.
func (s *DispatchService) SetNotifyTimeout(d time.Duration) {
	if d > 0 {
		s.notifyTimeout = d
	}
}

// ClaimResult describes a winning claim.
type ClaimResult struct {
	Order      *domain.Order
	Driver     *domain.Driver
	NotifySent bool
}

// Claim runs one claim attempt by the driver behind chatID.
//
// The conditional transition is the single arbitration point: exactly one of
// any number of concurrent attempts observes true. A losing attempt gets
// ErrOrderUnavailable and must not retry. The winning transition is
// irrevocable; a later notification failure is logged, never compensated.
func (s *DispatchService) Claim(ctx context.Context, orderID, chatID int64) (*ClaimResult, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if chatID <= 0 {
		return nil, ErrInvalidChatID
	}

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	driver, err := s.driverRepo.GetByChatID(storeCtx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotRegistered
		}
		return nil, err
	}

	order, err := s.orderRepo.GetByID(storeCtx, orderID)
	if err != nil {
		return nil, err
	}

	won, err := s.orderRepo.TryTransitionToClaimed(storeCtx, orderID)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, ErrOrderUnavailable
	}
	order.Status = domain.StatusClaimed

	result := &ClaimResult{Order: order, Driver: driver}

	// The order is Claimed from here on no matter what the push does.
	if s.notifier != nil {
		notifyCtx, cancelNotify := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
		defer cancelNotify()

		if err := s.notifier.NotifyOrderAccepted(notifyCtx, order, driver); err != nil {
			log.Printf("order %d: %v", order.ID, err)
		} else {
			result.NotifySent = true
		}
	}

	return result, nil
}
