//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery_test

package delivery

import (
	"context"

	"shegamart/internal/domain"
	"shegamart/internal/ports/deliverytx"
)

// TxRepository is the transaction-scoped repository passed to WithTx callbacks.
type TxRepository = deliverytx.Repository

type deliveryRepository interface {
	Insert(ctx context.Context, d *domain.Delivery) error
	GetByID(ctx context.Context, id int64) (*domain.Delivery, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error)
	ListByStatus(ctx context.Context, status domain.DeliveryStatus, jobType domain.JobType) ([]domain.Delivery, error)
	ListActiveByDriver(ctx context.Context, driverID int64) ([]domain.Delivery, error)
	Transition(ctx context.Context, t domain.Transition) (*domain.Delivery, error)
	CountByStatus(ctx context.Context) (map[domain.DeliveryStatus]int64, error)
	WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) error
}

// OrderIDGenerator produces externally visible order identifiers.
type OrderIDGenerator interface {
	NewOrderID() string
}
