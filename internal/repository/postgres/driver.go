package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/repository"
)

// DriverRepository is a PostgreSQL implementation of repository.DriverRepository.
type DriverRepository struct {
	q Querier
}

// NewDriverRepository creates a new PostgreSQL driver repository.
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{q: db}
}

// Create adds a new driver record.
func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	query := `INSERT INTO drivers (chat_id, phone, full_name, vehicle) VALUES ($1, $2, $3, $4)`

	var chatID sql.NullInt64
	if driver.ChatID != 0 {
		chatID = sql.NullInt64{Int64: driver.ChatID, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query, chatID, driver.Phone, driver.FullName, driver.Vehicle)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicatePhone
		}
		return storeErr("create driver", err)
	}
	return nil
}

// GetByPhone retrieves a driver by phone number.
func (r *DriverRepository) GetByPhone(ctx context.Context, phone string) (*domain.Driver, error) {
	query := `SELECT chat_id, phone, full_name, vehicle FROM drivers WHERE phone = $1`
	return r.getOne(ctx, query, phone)
}

// GetByChatID retrieves a driver by current session identity.
func (r *DriverRepository) GetByChatID(ctx context.Context, chatID int64) (*domain.Driver, error) {
	query := `SELECT chat_id, phone, full_name, vehicle FROM drivers WHERE chat_id = $1`
	return r.getOne(ctx, query, chatID)
}

// RebindChatID points an existing phone record at a new session identity.
func (r *DriverRepository) RebindChatID(ctx context.Context, phone string, chatID int64) error {
	query := `UPDATE drivers SET chat_id = $1 WHERE phone = $2`

	result, err := r.q.ExecContext(ctx, query, chatID, phone)
	if err != nil {
		return storeErr("rebind driver", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("rebind driver", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DriverRepository) getOne(ctx context.Context, query string, arg any) (*domain.Driver, error) {
	var driver domain.Driver
	var chatID sql.NullInt64

	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&chatID,
		&driver.Phone,
		&driver.FullName,
		&driver.Vehicle,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, storeErr("get driver", err)
	}

	if chatID.Valid {
		driver.ChatID = chatID.Int64
	}
	return &driver, nil
}
