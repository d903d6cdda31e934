package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// NewPool creates and pings a new pgx connection pool.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Schema creates the tables used by the service. Statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id                   BIGSERIAL PRIMARY KEY,
	email                TEXT NOT NULL UNIQUE,
	password_hash        TEXT NOT NULL DEFAULT '',
	first_name           TEXT NOT NULL,
	last_name            TEXT NOT NULL,
	phone                TEXT NOT NULL DEFAULT '',
	role                 TEXT NOT NULL DEFAULT 'BUYER',
	is_verified          BOOLEAN NOT NULL DEFAULT FALSE,
	location_lat         DOUBLE PRECISION,
	location_lng         DOUBLE PRECISION,
	address_type         TEXT NOT NULL DEFAULT 'house',
	address_number       TEXT NOT NULL DEFAULT '',
	shega_id             TEXT NOT NULL DEFAULT '',
	driver_status        TEXT NOT NULL DEFAULT '',
	driver_type          TEXT NOT NULL DEFAULT '',
	doc_selfie           TEXT NOT NULL DEFAULT '',
	doc_id_front         TEXT NOT NULL DEFAULT '',
	doc_id_back          TEXT NOT NULL DEFAULT '',
	deliveries_completed BIGINT NOT NULL DEFAULT 0 CHECK (deliveries_completed >= 0),
	earnings             BIGINT NOT NULL DEFAULT 0 CHECK (earnings >= 0),
	created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS accounts_driver_status_idx ON accounts (driver_status);

CREATE TABLE IF NOT EXISTS deliveries (
	id              BIGSERIAL PRIMARY KEY,
	order_id        TEXT NOT NULL UNIQUE,
	customer_id     BIGINT NOT NULL,
	customer_name   TEXT NOT NULL DEFAULT '',
	customer_phone  TEXT NOT NULL DEFAULT '',
	pickup_lat      DOUBLE PRECISION NOT NULL,
	pickup_lng      DOUBLE PRECISION NOT NULL,
	pickup_address  TEXT NOT NULL DEFAULT '',
	dropoff_lat     DOUBLE PRECISION NOT NULL,
	dropoff_lng     DOUBLE PRECISION NOT NULL,
	dropoff_address TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL DEFAULT 'OPEN',
	driver_id       BIGINT REFERENCES accounts(id),
	payout          BIGINT NOT NULL CHECK (payout >= 0),
	job_type        TEXT NOT NULL DEFAULT 'GIG',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS deliveries_status_type_idx ON deliveries (status, job_type);
CREATE INDEX IF NOT EXISTS deliveries_driver_status_idx ON deliveries (driver_id, status);

CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	seller_id   BIGINT NOT NULL REFERENCES accounts(id),
	title       TEXT NOT NULL,
	category    TEXT NOT NULL,
	price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	description TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS products_created_idx ON products (created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS payouts (
	delivery_id BIGINT PRIMARY KEY REFERENCES deliveries(id),
	driver_id   BIGINT NOT NULL REFERENCES accounts(id),
	amount      BIGINT NOT NULL CHECK (amount >= 0),
	credited_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema applies Schema.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
