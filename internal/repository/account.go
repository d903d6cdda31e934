package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shegamart/internal/apperr"
	"shegamart/internal/domain"
)

const accountColumns = `id, email, password_hash, first_name, last_name, phone, role, is_verified,
	location_lat, location_lng, address_type, address_number, shega_id,
	driver_status, driver_type, doc_selfie, doc_id_front, doc_id_back,
	deliveries_completed, earnings, created_at, updated_at`

// AccountRepo represents account repository.
type AccountRepo struct {
	db *pgxpool.Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(db *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{db: db}
}

func scanAccount(row scanner) (*domain.Account, error) {
	var (
		a        domain.Account
		lat, lng *float64
	)
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &a.Phone, &a.Role, &a.IsVerified,
		&lat, &lng, &a.Address.Type, &a.Address.Number, &a.ShegaID,
		&a.DriverStatus, &a.DriverType, &a.DriverDocs.Selfie, &a.DriverDocs.IDFront, &a.DriverDocs.IDBack,
		&a.DriverStats.DeliveriesCompleted, &a.DriverStats.Earnings, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		a.Location = &domain.Location{Lat: *lat, Lng: *lng}
	}
	return &a, nil
}

func locationArgs(loc *domain.Location) (lat, lng *float64) {
	if loc == nil {
		return nil, nil
	}
	return &loc.Lat, &loc.Lng
}

// Create - stores a new account and fills its generated fields.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	lat, lng := locationArgs(a.Location)
	err := r.db.QueryRow(ctx, `
        INSERT INTO accounts (
            email, password_hash, first_name, last_name, phone, role, is_verified,
            location_lat, location_lng, address_type, address_number, shega_id
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at, updated_at
    `,
		a.Email, a.PasswordHash, a.FirstName, a.LastName, a.Phone, string(a.Role), a.IsVerified,
		lat, lng, a.Address.Type, a.Address.Number, a.ShegaID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("email %q: %w", a.Email, apperr.ErrConflict)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID - returns account by its ID, nil if absent.
func (r *AccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account %d: %w", id, err)
	}
	return a, nil
}

// GetByEmail - returns account by its email, nil if absent.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return a, nil
}

// UpdateLocation stores the last known position of the account.
func (r *AccountRepo) UpdateLocation(ctx context.Context, id int64, loc domain.Location) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, `
        UPDATE accounts
        SET location_lat = $2, location_lng = $3, updated_at = now()
        WHERE id = $1
        RETURNING `+accountColumns,
		id, loc.Lat, loc.Lng,
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update location of account %d: %w", id, err)
	}
	return a, nil
}

// ApplyDriver moves the account into PENDING driver review. An account that
// is already approved or pending is left untouched and nil is returned.
func (r *AccountRepo) ApplyDriver(ctx context.Context, app domain.DriverApplication) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, `
        UPDATE accounts
        SET driver_status = $2,
            driver_type   = $3,
            doc_selfie    = $4,
            doc_id_front  = $5,
            doc_id_back   = $6,
            updated_at    = now()
        WHERE id = $1 AND driver_status = ANY($7::text[])
        RETURNING `+accountColumns,
		app.AccountID, string(domain.DriverStatusPending), string(app.JobType),
		app.Docs.Selfie, app.Docs.IDFront, app.Docs.IDBack,
		[]string{string(domain.DriverStatusNone), string(domain.DriverStatusRejected)},
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("apply driver %d: %w", app.AccountID, err)
	}
	return a, nil
}

// ReviewDriver resolves a PENDING application. Approval grants the DRIVER role.
// Returns nil when the account has no pending application.
func (r *AccountRepo) ReviewDriver(ctx context.Context, id int64, approve bool) (*domain.Account, error) {
	status := domain.DriverStatusRejected
	if approve {
		status = domain.DriverStatusApproved
	}

	a, err := scanAccount(r.db.QueryRow(ctx, `
        UPDATE accounts
        SET driver_status = $2,
            role          = CASE WHEN $3 AND role <> 'ADMIN' THEN 'DRIVER' ELSE role END,
            is_verified   = is_verified OR $3,
            updated_at    = now()
        WHERE id = $1 AND driver_status = 'PENDING'
        RETURNING `+accountColumns,
		id, string(status), approve,
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("review driver %d: %w", id, err)
	}
	return a, nil
}

// PromoteAdmin grants the ADMIN role. Returns nil when the account is absent.
func (r *AccountRepo) PromoteAdmin(ctx context.Context, id int64) (*domain.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, `
        UPDATE accounts
        SET role = $2, is_verified = TRUE, updated_at = now()
        WHERE id = $1
        RETURNING `+accountColumns,
		id, string(domain.RoleAdmin),
	))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("promote account %d: %w", id, err)
	}
	return a, nil
}

// ListByDriverStatus returns accounts with the given onboarding state, oldest first.
func (r *AccountRepo) ListByDriverStatus(ctx context.Context, status domain.DriverStatus) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+accountColumns+`
        FROM accounts
        WHERE driver_status = $1
        ORDER BY created_at, id
    `, string(status))
	if err != nil {
		return nil, fmt.Errorf("list accounts by driver status %q: %w", status, err)
	}
	defer rows.Close()

	out := make([]domain.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}
