//go:generate mockgen -source=contracts.go -destination=account_mocks_test.go -package=account_test

package account

import (
	"context"

	"shegamart/internal/domain"
)

type accountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateLocation(ctx context.Context, id int64, loc domain.Location) (*domain.Account, error)
	ApplyDriver(ctx context.Context, app domain.DriverApplication) (*domain.Account, error)
	ReviewDriver(ctx context.Context, id int64, approve bool) (*domain.Account, error)
	ListByDriverStatus(ctx context.Context, status domain.DriverStatus) ([]domain.Account, error)
	PromoteAdmin(ctx context.Context, id int64) (*domain.Account, error)
}

// TokenIssuer signs access tokens for accounts.
type TokenIssuer interface {
	Issue(accountID int64, role domain.Role) (string, error)
}
