package repository

import (
	"context"

	"github.com/Alast0rRL/testtaxi/internal/domain"
)

// DriverRepository defines the persistence operations for the driver
// directory.
type DriverRepository interface {
	// Create adds a new driver record. The phone number is unique; a
	// conflicting insert fails with ErrDuplicatePhone.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByPhone retrieves a driver by phone number.
	GetByPhone(ctx context.Context, phone string) (*domain.Driver, error)

	// GetByChatID retrieves a driver by current session identity.
	GetByChatID(ctx context.Context, chatID int64) (*domain.Driver, error)

	// RebindChatID points an existing phone record at a new session
	// identity, leaving profile fields untouched.
	RebindChatID(ctx context.Context, phone string, chatID int64) error
}
