package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/redis"
	"github.com/Alast0rRL/testtaxi/internal/repository"
)

// DriverService handles the driver directory: session lookup, registration
// and identity rebinding.
type DriverService struct {
	driverRepo repository.DriverRepository
	cacheStore redis.CacheStoreInterface
}

// NewDriverService creates a new DriverService. cacheStore may be nil.
func NewDriverService(driverRepo repository.DriverRepository, cacheStore redis.CacheStoreInterface) *DriverService {
	return &DriverService{
		driverRepo: driverRepo,
		cacheStore: cacheStore,
	}
}

// Identify resolves a session identity to a driver profile. ErrNotFound
// means the collaborator should start the registration conversation.
func (s *DriverService) Identify(ctx context.Context, chatID int64) (*domain.Driver, error) {
	if chatID <= 0 {
		return nil, ErrInvalidChatID
	}

	if s.cacheStore != nil {
		if cached, err := s.cacheStore.GetDriver(ctx, chatID); err == nil && cached != nil {
			return &domain.Driver{
				ChatID:   cached.ChatID,
				Phone:    cached.Phone,
				FullName: cached.FullName,
				Vehicle:  cached.Vehicle,
			}, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	driver, err := s.driverRepo.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	s.cacheDriver(ctx, driver)
	return driver, nil
}

// RegisterRequest contains the parameters for registering a driver.
type RegisterRequest struct {
	ChatID   int64
	Phone    string
	FullName string
	Vehicle  string
}

// Register creates a driver record bound to the given session.
//
// Registering again with the same phone and session is a no-op. A phone
// already bound to a different driver record fails with ErrDuplicatePhone;
// the collaborator should steer that driver to re-authenticate through the
// existing binding (RebindSession) instead of creating a second profile.
func (s *DriverService) Register(ctx context.Context, req RegisterRequest) (*domain.Driver, error) {
	if req.ChatID <= 0 {
		return nil, ErrInvalidChatID
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Vehicle) == "" {
		return nil, ErrInvalidProfile
	}

	phone := domain.NormalizePhone(req.Phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	existing, err := s.driverRepo.GetByPhone(ctx, phone)
	if err == nil {
		if existing.ChatID == req.ChatID {
			return existing, nil
		}
		return nil, repository.ErrDuplicatePhone
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	driver := &domain.Driver{
		ChatID:   req.ChatID,
		Phone:    phone,
		FullName: strings.TrimSpace(req.FullName),
		Vehicle:  strings.TrimSpace(req.Vehicle),
	}

	// Two first-time registrations can race past the lookup; the unique
	// index settles it.
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.cacheDriver(ctx, driver)
	return driver, nil
}

// RebindSession points a known phone at a new session identity. Used when a
// returning driver connects from a fresh session.
func (s *DriverService) RebindSession(ctx context.Context, rawPhone string, chatID int64) (*domain.Driver, error) {
	if chatID <= 0 {
		return nil, ErrInvalidChatID
	}

	phone := domain.NormalizePhone(rawPhone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	existing, err := s.driverRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	if err := s.driverRepo.RebindChatID(ctx, phone, chatID); err != nil {
		return nil, err
	}

	if s.cacheStore != nil && existing.Bound() && existing.ChatID != chatID {
		_ = s.cacheStore.InvalidateDriver(ctx, existing.ChatID)
	}

	existing.ChatID = chatID
	s.cacheDriver(ctx, existing)
	return existing, nil
}

func (s *DriverService) cacheDriver(ctx context.Context, driver *domain.Driver) {
	if s.cacheStore == nil || !driver.Bound() {
		return
	}
	_ = s.cacheStore.SetDriver(ctx, &redis.CachedDriver{
		ChatID:   driver.ChatID,
		Phone:    driver.Phone,
		FullName: driver.FullName,
		Vehicle:  driver.Vehicle,
	})
}
