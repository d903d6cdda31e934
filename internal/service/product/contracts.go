//go:generate mockgen -source=contracts.go -destination=product_mocks_test.go -package=product_test

package product

import (
	"context"

	"shegamart/internal/domain"
)

type productRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
}
