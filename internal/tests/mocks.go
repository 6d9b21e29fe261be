package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/redis"
	"github.com/Alast0rRL/testtaxi/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK ORDER REPOSITORY
// ──────────────────────────────────────────────

// MockOrderRepository is a mock implementation of OrderRepository. The
// claim transition is guarded by the same mutex as every other access, so
// concurrent TryTransitionToClaimed calls arbitrate exactly like the real
// store's conditional update.
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	nextID int64

	// Counters for verification
	CreateCallCount     int32
	TransitionCallCount int32

	// Error injection
	CreateError     error
	GetError        error
	TransitionError error
}

// NewMockOrderRepository creates a new mock order repository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[int64]*domain.Order),
	}
}

// AddOrder adds an order to the mock repository.
func (m *MockOrderRepository) AddOrder(order *domain.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == 0 {
		m.nextID++
		order.ID = m.nextID
	} else if order.ID > m.nextID {
		m.nextID = order.ID
	}
	m.orders[order.ID] = order
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) (int64, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return 0, m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	order.ID = m.nextID
	m.orders[order.ID] = order
	return order.ID, nil
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *order
	return &copy, nil
}

func (m *MockOrderRepository) ListWaiting(ctx context.Context) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Order, 0)
	for id := int64(1); id <= m.nextID; id++ {
		if o, ok := m.orders[id]; ok && o.Status == domain.StatusWaiting {
			copy := *o
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockOrderRepository) ListByRider(ctx context.Context, riderID int64) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Order, 0)
	for id := m.nextID; id >= 1; id-- {
		if o, ok := m.orders[id]; ok && o.RiderID == riderID {
			copy := *o
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockOrderRepository) TryTransitionToClaimed(ctx context.Context, id int64) (bool, error) {
	atomic.AddInt32(&m.TransitionCallCount, 1)
	if m.TransitionError != nil {
		return false, m.TransitionError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	if order.Status != domain.StatusWaiting {
		return false, nil
	}
	order.Status = domain.StatusClaimed
	return true, nil
}

// GetOrder returns the stored order for test assertions.
func (m *MockOrderRepository) GetOrder(id int64) *domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.orders[id]
}

// ──────────────────────────────────────────────
// MOCK DRIVER REPOSITORY
// ──────────────────────────────────────────────

// MockDriverRepository is a mock implementation of DriverRepository, keyed
// by phone the way the real table is.
type MockDriverRepository struct {
	mu      sync.RWMutex
	drivers map[string]*domain.Driver

	// Counters for verification
	CreateCallCount int32
	RebindCallCount int32

	// Error injection
	CreateError error
	RebindError error
}

// NewMockDriverRepository creates a new mock driver repository.
func NewMockDriverRepository() *MockDriverRepository {
	return &MockDriverRepository{
		drivers: make(map[string]*domain.Driver),
	}
}

// AddDriver adds a driver to the mock repository.
func (m *MockDriverRepository) AddDriver(driver *domain.Driver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[driver.Phone] = driver
}

func (m *MockDriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.drivers[driver.Phone]; exists {
		return repository.ErrDuplicatePhone
	}
	m.drivers[driver.Phone] = driver
	return nil
}

func (m *MockDriverRepository) GetByPhone(ctx context.Context, phone string) (*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	driver, ok := m.drivers[phone]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *driver
	return &copy, nil
}

func (m *MockDriverRepository) GetByChatID(ctx context.Context, chatID int64) (*domain.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.drivers {
		if d.ChatID == chatID {
			copy := *d
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockDriverRepository) RebindChatID(ctx context.Context, phone string, chatID int64) error {
	atomic.AddInt32(&m.RebindCallCount, 1)
	if m.RebindError != nil {
		return m.RebindError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	driver, ok := m.drivers[phone]
	if !ok {
		return repository.ErrNotFound
	}
	driver.ChatID = chatID
	return nil
}

// GetDriver returns the stored driver for test assertions.
func (m *MockDriverRepository) GetDriver(phone string) *domain.Driver {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.drivers[phone]
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is an in-memory implementation of CacheStoreInterface.
type MockCacheStore struct {
	mu      sync.RWMutex
	drivers map[int64]*redis.CachedDriver

	// Counters for verification
	SetCallCount        int32
	InvalidateCallCount int32
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{
		drivers: make(map[int64]*redis.CachedDriver),
	}
}

func (m *MockCacheStore) GetDriver(ctx context.Context, chatID int64) (*redis.CachedDriver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	driver, ok := m.drivers[chatID]
	if !ok {
		return nil, nil
	}
	copy := *driver
	return &copy, nil
}

func (m *MockCacheStore) SetDriver(ctx context.Context, driver *redis.CachedDriver) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *driver
	m.drivers[driver.ChatID] = &copy
	return nil
}

func (m *MockCacheStore) InvalidateDriver(ctx context.Context, chatID int64) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drivers, chatID)
	return nil
}

// Cached returns the cached profile for test assertions, nil on a miss.
func (m *MockCacheStore) Cached(chatID int64) *redis.CachedDriver {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.drivers[chatID]
}

// ──────────────────────────────────────────────
// MOCK MESSAGE SENDER
// ──────────────────────────────────────────────

// SentMessage records one delivered message.
type SentMessage struct {
	ChatID int64
	Text   string
}

// MockMessageSender is a mock implementation of MessageSender.
type MockMessageSender struct {
	mu       sync.Mutex
	messages []SentMessage

	// Error injection
	SendError error
}

// NewMockMessageSender creates a new mock message sender.
func NewMockMessageSender() *MockMessageSender {
	return &MockMessageSender{}
}

func (m *MockMessageSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	if m.SendError != nil {
		return m.SendError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, SentMessage{ChatID: chatID, Text: text})
	return nil
}

// Messages returns a copy of everything sent so far.
func (m *MockMessageSender) Messages() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.messages))
	copy(out, m.messages)
	return out
}
