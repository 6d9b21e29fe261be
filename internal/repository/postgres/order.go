package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Alast0rRL/testtaxi/internal/domain"
	"github.com/Alast0rRL/testtaxi/internal/repository"
)

// OrderRepository is a PostgreSQL implementation of repository.OrderRepository.
type OrderRepository struct {
	q Querier
}

// NewOrderRepository creates a new PostgreSQL order repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{q: db}
}

// NewOrderRepositoryWithTx creates an order repository using a transaction.
func NewOrderRepositoryWithTx(tx *sql.Tx) *OrderRepository {
	return &OrderRepository{q: tx}
}

// Create persists a new order in the Waiting state and returns its id.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (int64, error) {
	query := `
		INSERT INTO orders (rider_id, from_city, to_city, tariff, trip_time, phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.q.QueryRowContext(ctx, query,
		order.RiderID,
		order.FromCity,
		order.ToCity,
		order.Tariff,
		order.Time.String(),
		order.Phone,
		domain.StatusWaiting,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return 0, storeErr("create order", err)
	}

	order.Status = domain.StatusWaiting
	return order.ID, nil
}

// GetByID retrieves an order by id.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, rider_id, from_city, to_city, tariff, trip_time, phone, status, created_at
		FROM orders WHERE id = $1
	`

	order, err := scanOrder(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, storeErr("get order", err)
	}
	return order, nil
}

// ListWaiting retrieves a snapshot of claimable orders.
func (r *OrderRepository) ListWaiting(ctx context.Context) ([]*domain.Order, error) {
	query := `
		SELECT id, rider_id, from_city, to_city, tariff, trip_time, phone, status, created_at
		FROM orders WHERE status = $1 ORDER BY id
	`

	rows, err := r.q.QueryContext(ctx, query, domain.StatusWaiting)
	if err != nil {
		return nil, storeErr("list waiting orders", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// ListByRider retrieves a rider's orders, newest first.
func (r *OrderRepository) ListByRider(ctx context.Context, riderID int64) ([]*domain.Order, error) {
	query := `
		SELECT id, rider_id, from_city, to_city, tariff, trip_time, phone, status, created_at
		FROM orders WHERE rider_id = $1 ORDER BY id DESC
	`

	rows, err := r.q.QueryContext(ctx, query, riderID)
	if err != nil {
		return nil, storeErr("list rider orders", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// TryTransitionToClaimed performs the conditional Waiting -> Claimed update.
// The status guard in the WHERE clause is the single defense against the
// double-claim race: under concurrent attempts exactly one UPDATE reports an
// affected row.
func (r *OrderRepository) TryTransitionToClaimed(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.q.ExecContext(ctx, query, domain.StatusClaimed, id, domain.StatusWaiting)
	if err != nil {
		return false, storeErr("claim order", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, storeErr("claim order", err)
	}
	if affected > 0 {
		return true, nil
	}

	// Lost the race, or the order never existed. Distinguish the two for
	// the caller.
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var tripTime string

	if err := row.Scan(
		&order.ID,
		&order.RiderID,
		&order.FromCity,
		&order.ToCity,
		&order.Tariff,
		&tripTime,
		&order.Phone,
		&order.Status,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}

	t, err := domain.ParseTripTime(tripTime)
	if err != nil {
		return nil, err
	}
	order.Time = t

	return &order, nil
}

func collectOrders(rows *sql.Rows) ([]*domain.Order, error) {
	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, storeErr("scan order", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate orders", err)
	}
	return orders, nil
}
