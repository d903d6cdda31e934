package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shegamart/internal/apperr"
	"shegamart/internal/domain"
	"shegamart/internal/ports/deliverytx"
)

const deliveryColumns = `id, order_id, customer_id, customer_name, customer_phone,
	pickup_lat, pickup_lng, pickup_address,
	dropoff_lat, dropoff_lng, dropoff_address,
	status, driver_id, payout, job_type, created_at, updated_at`

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct {
	db *pgxpool.Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

func scanDelivery(row scanner) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(
		&d.ID, &d.OrderID, &d.CustomerID, &d.CustomerName, &d.CustomerPhone,
		&d.Pickup.Lat, &d.Pickup.Lng, &d.Pickup.Address,
		&d.Dropoff.Lat, &d.Dropoff.Lng, &d.Dropoff.Address,
		&d.Status, &d.DriverID, &d.Payout, &d.Type, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectDeliveries(rows pgx.Rows) ([]domain.Delivery, error) {
	defer rows.Close()
	out := make([]domain.Delivery, 0)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Insert - stores a new delivery and fills its generated fields.
func (r *DeliveryRepo) Insert(ctx context.Context, d *domain.Delivery) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO deliveries (
            order_id, customer_id, customer_name, customer_phone,
            pickup_lat, pickup_lng, pickup_address,
            dropoff_lat, dropoff_lng, dropoff_address,
            status, driver_id, payout, job_type
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, created_at, updated_at
    `,
		d.OrderID, d.CustomerID, d.CustomerName, d.CustomerPhone,
		d.Pickup.Lat, d.Pickup.Lng, d.Pickup.Address,
		d.Dropoff.Lat, d.Dropoff.Lng, d.Dropoff.Address,
		string(d.Status), d.DriverID, d.Payout, string(d.Type),
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("order %q: %w", d.OrderID, apperr.ErrConflict)
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID - returns delivery by its ID, nil if absent.
func (r *DeliveryRepo) GetByID(ctx context.Context, id int64) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %d: %w", id, err)
	}
	return d, nil
}

// GetByOrderID - returns delivery by its order ID, nil if absent.
func (r *DeliveryRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE order_id = $1`, orderID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery by order %q: %w", orderID, err)
	}
	return d, nil
}

// ListByStatus returns deliveries in the given status in insertion order.
// An empty jobType matches every type.
func (r *DeliveryRepo) ListByStatus(
	ctx context.Context,
	status domain.DeliveryStatus,
	jobType domain.JobType,
) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+deliveryColumns+`
        FROM deliveries
        WHERE status = $1 AND ($2 = '' OR job_type = $2)
        ORDER BY id
    `, string(status), string(jobType))
	if err != nil {
		return nil, fmt.Errorf("list deliveries by status %s: %w", status, err)
	}
	return collectDeliveries(rows)
}

// ListActiveByDriver returns ASSIGNED and IN_PROGRESS deliveries bound to driverID.
func (r *DeliveryRepo) ListActiveByDriver(ctx context.Context, driverID int64) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+deliveryColumns+`
        FROM deliveries
        WHERE driver_id = $1 AND status = ANY($2::text[])
        ORDER BY id
    `, driverID, []string{string(domain.StatusAssigned), string(domain.StatusInProgress)})
	if err != nil {
		return nil, fmt.Errorf("list active deliveries of driver %d: %w", driverID, err)
	}
	return collectDeliveries(rows)
}

// Transition applies a conditional status change; nil means nothing matched.
func (r *DeliveryRepo) Transition(ctx context.Context, t domain.Transition) (*domain.Delivery, error) {
	return transition(ctx, r.db, t)
}

// CountByStatus returns the number of deliveries per status.
func (r *DeliveryRepo) CountByStatus(ctx context.Context) (map[domain.DeliveryStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM deliveries GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count deliveries: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.DeliveryStatus]int64, len(domain.AllStatuses))
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[domain.DeliveryStatus(status)] = n
	}
	return out, rows.Err()
}

// WithTx opens a transaction and executes fn within it.
func (r *DeliveryRepo) WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ deliverytx.Repository = (*TxRepo)(nil)

// Transition - conditional status change inside the transaction.
func (r *TxRepo) Transition(ctx context.Context, t domain.Transition) (*domain.Delivery, error) {
	return transition(ctx, r.tx, t)
}

// RecordPayout - inserts a ledger row; false means the delivery was already credited.
func (r *TxRepo) RecordPayout(ctx context.Context, p domain.PayoutRecord) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        INSERT INTO payouts (delivery_id, driver_id, amount)
        VALUES ($1, $2, $3)
        ON CONFLICT (delivery_id) DO NOTHING
    `, p.DeliveryID, p.DriverID, p.Amount)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, fmt.Errorf("payout for driver %d: %w", p.DriverID, apperr.ErrNotFound)
		}
		return false, fmt.Errorf("record payout for delivery %d: %w", p.DeliveryID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// CreditDriver - atomically increments the driver's counters.
func (r *TxRepo) CreditDriver(ctx context.Context, driverID, amount int64) (domain.DriverStats, error) {
	var st domain.DriverStats
	err := r.tx.QueryRow(ctx, `
        UPDATE accounts
        SET deliveries_completed = deliveries_completed + 1,
            earnings             = earnings + $2,
            updated_at           = now()
        WHERE id = $1
        RETURNING deliveries_completed, earnings
    `, driverID, amount).Scan(&st.DeliveriesCompleted, &st.Earnings)
	if err != nil {
		if IsNotFound(err) {
			return domain.DriverStats{}, fmt.Errorf("driver account %d: %w", driverID, apperr.ErrNotFound)
		}
		return domain.DriverStats{}, fmt.Errorf("credit driver %d: %w", driverID, err)
	}
	return st, nil
}

// GetDriverStats - reads the driver's counters, nil if the account is absent.
func (r *TxRepo) GetDriverStats(ctx context.Context, driverID int64) (*domain.DriverStats, error) {
	var st domain.DriverStats
	err := r.tx.QueryRow(ctx,
		`SELECT deliveries_completed, earnings FROM accounts WHERE id = $1`, driverID,
	).Scan(&st.DeliveriesCompleted, &st.Earnings)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver stats %d: %w", driverID, err)
	}
	return &st, nil
}

func transition(ctx context.Context, q querier, t domain.Transition) (*domain.Delivery, error) {
	from := make([]string, 0, len(t.From))
	for _, s := range t.From {
		from = append(from, string(s))
	}

	d, err := scanDelivery(q.QueryRow(ctx, `
        UPDATE deliveries
        SET status     = $2,
            driver_id  = COALESCE($3, driver_id),
            updated_at = now()
        WHERE id = $1
          AND status = ANY($4::text[])
          AND ($5::bigint IS NULL OR driver_id = $5)
        RETURNING `+deliveryColumns,
		t.DeliveryID, string(t.To), t.AssignDriverID, from, t.OwnerID,
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		if IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("delivery %d driver: %w", t.DeliveryID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("transition delivery %d to %s: %w", t.DeliveryID, t.To, err)
	}
	return d, nil
}
