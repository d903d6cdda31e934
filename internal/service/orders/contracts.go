//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"shegamart/internal/domain"
)

// DeliveryPort abstracts the subset of delivery service operations
// needed by orders Processor when handling order events
type DeliveryPort interface {
	Create(ctx context.Context, in domain.Checkout) (*domain.Delivery, error)
	CancelByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error)
}
