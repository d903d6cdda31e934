package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"shegamart/internal/auth"
	"shegamart/internal/domain"
	"shegamart/internal/logx"
	"shegamart/internal/service/account"
)

type stubAccountUsecase struct {
	registerFn       func(ctx context.Context, in domain.Registration) (account.Session, error)
	loginFn          func(ctx context.Context, email, password string) (account.Session, error)
	adminLoginFn     func(ctx context.Context, email, password string) (account.Session, error)
	checkAccessFn    func(ctx context.Context, email string) (bool, error)
	getFn            func(ctx context.Context, id int64) (*domain.Account, error)
	updateLocationFn func(ctx context.Context, id int64, loc domain.Location) (*domain.Account, error)
	applyFn          func(ctx context.Context, accountID int64, jobType string, docs domain.DriverDocs) (*domain.Account, error)
	listPendingFn    func(ctx context.Context) ([]domain.Account, error)
	reviewFn         func(ctx context.Context, accountID int64, approve bool) (*domain.Account, error)
}

func (s *stubAccountUsecase) Register(ctx context.Context, in domain.Registration) (account.Session, error) {
	if s.registerFn == nil {
		panic("Register not expected in this test")
	}
	return s.registerFn(ctx, in)
}

func (s *stubAccountUsecase) Login(ctx context.Context, email, password string) (account.Session, error) {
	if s.loginFn == nil {
		panic("Login not expected in this test")
	}
	return s.loginFn(ctx, email, password)
}

func (s *stubAccountUsecase) AdminLogin(ctx context.Context, email, password string) (account.Session, error) {
	if s.adminLoginFn == nil {
		panic("AdminLogin not expected in this test")
	}
	return s.adminLoginFn(ctx, email, password)
}

func (s *stubAccountUsecase) CheckAccess(ctx context.Context, email string) (bool, error) {
	if s.checkAccessFn == nil {
		panic("CheckAccess not expected in this test")
	}
	return s.checkAccessFn(ctx, email)
}

func (s *stubAccountUsecase) Get(ctx context.Context, id int64) (*domain.Account, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, id)
}

func (s *stubAccountUsecase) UpdateLocation(ctx context.Context, id int64, loc domain.Location) (*domain.Account, error) {
	if s.updateLocationFn == nil {
		panic("UpdateLocation not expected in this test")
	}
	return s.updateLocationFn(ctx, id, loc)
}

func (s *stubAccountUsecase) Apply(ctx context.Context, accountID int64, jobType string, docs domain.DriverDocs) (*domain.Account, error) {
	if s.applyFn == nil {
		panic("Apply not expected in this test")
	}
	return s.applyFn(ctx, accountID, jobType, docs)
}

func (s *stubAccountUsecase) ListPendingDrivers(ctx context.Context) ([]domain.Account, error) {
	if s.listPendingFn == nil {
		panic("ListPendingDrivers not expected in this test")
	}
	return s.listPendingFn(ctx)
}

func (s *stubAccountUsecase) ReviewDriver(ctx context.Context, accountID int64, approve bool) (*domain.Account, error) {
	if s.reviewFn == nil {
		panic("ReviewDriver not expected in this test")
	}
	return s.reviewFn(ctx, accountID, approve)
}

type stubProductUsecase struct {
	createFn func(ctx context.Context, in domain.Product) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]domain.Product, error)
}

func (s *stubProductUsecase) Create(ctx context.Context, in domain.Product) (*domain.Product, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, in)
}

func (s *stubProductUsecase) List(ctx context.Context) ([]domain.Product, error) {
	if s.listFn == nil {
		panic("List not expected in this test")
	}
	return s.listFn(ctx)
}

type stubDeliveryUsecase struct {
	createFn        func(ctx context.Context, in domain.Checkout) (*domain.Delivery, error)
	getFn           func(ctx context.Context, id int64) (*domain.Delivery, error)
	listAvailableFn func(ctx context.Context, jobType string) ([]domain.Delivery, error)
	listForDriverFn func(ctx context.Context, driverID int64) ([]domain.Delivery, error)
	acceptFn        func(ctx context.Context, deliveryID, driverID int64) (*domain.Delivery, error)
	startFn         func(ctx context.Context, deliveryID, driverID int64) (*domain.Delivery, error)
	completeFn      func(ctx context.Context, deliveryID, driverID int64) (domain.Completion, error)
	cancelFn        func(ctx context.Context, deliveryID int64) (*domain.Delivery, error)
}

func (s *stubDeliveryUsecase) Create(ctx context.Context, in domain.Checkout) (*domain.Delivery, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, in)
}

func (s *stubDeliveryUsecase) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, id)
}

func (s *stubDeliveryUsecase) ListAvailable(ctx context.Context, jobType string) ([]domain.Delivery, error) {
	if s.listAvailableFn == nil {
		panic("ListAvailable not expected in this test")
	}
	return s.listAvailableFn(ctx, jobType)
}

func (s *stubDeliveryUsecase) ListForDriver(ctx context.Context, driverID int64) ([]domain.Delivery, error) {
	if s.listForDriverFn == nil {
		panic("ListForDriver not expected in this test")
	}
	return s.listForDriverFn(ctx, driverID)
}

func (s *stubDeliveryUsecase) Accept(ctx context.Context, deliveryID, driverID int64) (*domain.Delivery, error) {
	if s.acceptFn == nil {
		panic("Accept not expected in this test")
	}
	return s.acceptFn(ctx, deliveryID, driverID)
}

func (s *stubDeliveryUsecase) Start(ctx context.Context, deliveryID, driverID int64) (*domain.Delivery, error) {
	if s.startFn == nil {
		panic("Start not expected in this test")
	}
	return s.startFn(ctx, deliveryID, driverID)
}

func (s *stubDeliveryUsecase) Complete(ctx context.Context, deliveryID, driverID int64) (domain.Completion, error) {
	if s.completeFn == nil {
		panic("Complete not expected in this test")
	}
	return s.completeFn(ctx, deliveryID, driverID)
}

func (s *stubDeliveryUsecase) Cancel(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	if s.cancelFn == nil {
		panic("Cancel not expected in this test")
	}
	return s.cancelFn(ctx, deliveryID)
}

func testLogger() logx.Logger { return logx.Nop() }

func newRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func asPrincipal(req *http.Request, id int64, role domain.Role) *http.Request {
	return req.WithContext(auth.WithPrincipal(req.Context(), &auth.Principal{AccountID: id, Role: role}))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&out))
	return out
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[ErrorResponse](t, rr).Error
}
