package repository

import (
	"context"

	"github.com/Alast0rRL/testtaxi/internal/domain"
)

// OrderRepository defines the persistence operations for orders.
type OrderRepository interface {
	// Create appends a new order in the Waiting state and returns the
	// store-assigned id. The insert is all-or-nothing.
	Create(ctx context.Context, order *domain.Order) (int64, error)

	// ListWaiting returns a snapshot of orders still in the Waiting state.
	// The snapshot may be stale the moment it returns; callers must not
	// assume a listed order is still claimable.
	ListWaiting(ctx context.Context) ([]*domain.Order, error)

	// GetByID retrieves an order by id.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// ListByRider retrieves a rider's orders, newest first.
	ListByRider(ctx context.Context, riderID int64) ([]*domain.Order, error)

	// TryTransitionToClaimed atomically moves the order from Waiting to
	// Claimed. It returns true on success and false if the order was
	// already claimed. This is the only write path for status after
	// creation.
	TryTransitionToClaimed(ctx context.Context, id int64) (bool, error)
}
