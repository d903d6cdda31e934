package deliverytx

import (
	"context"

	"shegamart/internal/domain"
)

// Repository is the set of delivery operations available inside a transaction.
type Repository interface {
	Transition(ctx context.Context, t domain.Transition) (*domain.Delivery, error)
	RecordPayout(ctx context.Context, p domain.PayoutRecord) (bool, error)
	CreditDriver(ctx context.Context, driverID, amount int64) (domain.DriverStats, error)
	GetDriverStats(ctx context.Context, driverID int64) (*domain.DriverStats, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
