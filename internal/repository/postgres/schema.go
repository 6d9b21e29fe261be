package postgres

import (
	"context"
	"database/sql"
)

// InitSchema creates the two tables the dispatch core owns. Both bot
// processes call this at startup; the statements are idempotent so whichever
// process starts first wins and the other is a no-op.
func InitSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`
CREATE TABLE IF NOT EXISTS orders (
  id BIGSERIAL PRIMARY KEY,
  rider_id BIGINT NOT NULL,
  from_city TEXT NOT NULL,
  to_city TEXT NOT NULL,
  tariff TEXT NOT NULL,
  trip_time TEXT NOT NULL,
  phone TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'WAITING',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_rider_id ON orders(rider_id, id DESC)`,
		`
CREATE TABLE IF NOT EXISTS drivers (
  id BIGSERIAL PRIMARY KEY,
  chat_id BIGINT NULL,
  phone TEXT UNIQUE NOT NULL,
  full_name TEXT NOT NULL,
  vehicle TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_drivers_chat_id ON drivers(chat_id) WHERE chat_id IS NOT NULL`,
	}

	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return storeErr("init schema", err)
		}
	}
	return nil
}
