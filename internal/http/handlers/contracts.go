package handlers

import (
	"context"
	"encoding/json"

	"shegamart/internal/domain"
	"shegamart/internal/service/account"
)

type accountUsecase interface {
	Register(ctx context.Context, in domain.Registration) (account.Session, error)
	Login(ctx context.Context, email, password string) (account.Session, error)
	AdminLogin(ctx context.Context, email, password string) (account.Session, error)
	CheckAccess(ctx context.Context, email string) (bool, error)
	Get(ctx context.Context, id int64) (*domain.Account, error)
	UpdateLocation(ctx context.Context, id int64, loc domain.Location) (*domain.Account, error)
	Apply(ctx context.Context, accountID int64, jobType string, docs domain.DriverDocs) (*domain.Account, error)
	ListPendingDrivers(ctx context.Context) ([]domain.Account, error)
	ReviewDriver(ctx context.Context, accountID int64, approve bool) (*domain.Account, error)
}

type deliveryUsecase interface {
	Create(ctx context.Context, in domain.Checkout) (*domain.Delivery, error)
	Get(ctx context.Context, id int64) (*domain.Delivery, error)
	ListAvailable(ctx context.Context, jobType string) ([]domain.Delivery, error)
	ListForDriver(ctx context.Context, driverID int64) ([]domain.Delivery, error)
	Accept(ctx context.Context, deliveryID, driverID int64) (*domain.Delivery, error)
	Start(ctx context.Context, deliveryID, driverID int64) (*domain.Delivery, error)
	Complete(ctx context.Context, deliveryID, driverID int64) (domain.Completion, error)
	Cancel(ctx context.Context, deliveryID int64) (*domain.Delivery, error)
}

type productUsecase interface {
	Create(ctx context.Context, in domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

type locationGateway interface {
	Reverse(ctx context.Context, lat, lng float64) (json.RawMessage, error)
	Search(ctx context.Context, q string) (json.RawMessage, error)
}
