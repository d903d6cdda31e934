package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shegamart/internal/apperr"
	"shegamart/internal/domain"
	"shegamart/internal/logx"
)

const minPasswordLen = 6

var allowedAddressTypes = map[string]struct{}{"house": {}, "apartment": {}}

// Session is an authenticated account with its access token.
type Session struct {
	Account *domain.Account
	Token   string
}

// Service manages accounts and driver onboarding.
type Service struct {
	repo             accountRepository
	tokens           TokenIssuer
	operationTimeout time.Duration
	bcryptCost       int
	admins           map[string]struct{}
	logger           logx.Logger
}

// NewService creates a new account Service.
func NewService(repo accountRepository, tokens TokenIssuer, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	logger = logx.OrNop(logger)
	return &Service{
		repo:             repo,
		tokens:           tokens,
		operationTimeout: timeout,
		bcryptCost:       bcrypt.DefaultCost,
		logger:           logger,
	}
}

// WithBcryptCost overrides the hashing cost.
func (s *Service) WithBcryptCost(cost int) *Service {
	s.bcryptCost = cost
	return s
}

// WithAdminEmails lists the emails whose accounts hold the ADMIN role.
// Matching accounts are created as ADMIN and promoted on their next login.
func (s *Service) WithAdminEmails(emails ...string) *Service {
	s.admins = make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if e = normalizeEmail(e); e != "" {
			s.admins[e] = struct{}{}
		}
	}
	return s
}

func (s *Service) isAdminEmail(email string) bool {
	_, ok := s.admins[email]
	return ok
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Register creates a BUYER account, or ADMIN for a configured admin email, and signs it in.
func (s *Service) Register(ctx context.Context, in domain.Registration) (Session, error) {
	a, err := s.newAccount(in)
	if err != nil {
		return Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}
	a.PasswordHash = string(hash)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, a); err != nil {
		return Session{}, err
	}

	token, err := s.tokens.Issue(a.ID, a.Role)
	if err != nil {
		return Session{}, err
	}

	s.logger.Info("account registered",
		logx.String("event", "account_registered"),
		logx.Int64("account_id", a.ID),
	)
	return Session{Account: a, Token: token}, nil
}

func (s *Service) newAccount(in domain.Registration) (*domain.Account, error) {
	a := &domain.Account{
		Email:     normalizeEmail(in.Email),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      domain.RoleBuyer,
		Location:  in.Location,
		Address: domain.AddressDetails{
			Type:   strings.ToLower(strings.TrimSpace(in.Address.Type)),
			Number: strings.TrimSpace(in.Address.Number),
		},
	}

	switch {
	case a.FirstName == "" || a.LastName == "":
		return nil, fmt.Errorf("first and last name are required: %w", apperr.ErrInvalid)
	case !validEmail(a.Email):
		return nil, fmt.Errorf("invalid email: %w", apperr.ErrInvalid)
	case len(in.Password) < minPasswordLen:
		return nil, fmt.Errorf("password must have at least %d characters: %w", minPasswordLen, apperr.ErrInvalid)
	case a.Phone != "" && !domain.ValidatePhone(a.Phone):
		return nil, fmt.Errorf("invalid phone: %w", apperr.ErrInvalid)
	}
	if a.Location != nil {
		if err := validateLocation(*a.Location); err != nil {
			return nil, err
		}
	}
	if a.Address.Type == "" {
		a.Address.Type = "house"
	}
	if _, ok := allowedAddressTypes[a.Address.Type]; !ok {
		return nil, fmt.Errorf("address type %q: %w", a.Address.Type, apperr.ErrInvalid)
	}

	a.ShegaID = ShegaID(in.FirstName, in.LastName, in.Address.Number)
	if s.isAdminEmail(a.Email) {
		a.Role = domain.RoleAdmin
		a.IsVerified = true
	}
	return a, nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validateLocation(loc domain.Location) error {
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return fmt.Errorf("coordinates out of range: %w", apperr.ErrInvalid)
	}
	return nil
}

// Login verifies credentials and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if a == nil {
		return Session{}, fmt.Errorf("account: %w", apperr.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return Session{}, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
		}
		return Session{}, fmt.Errorf("compare password: %w", err)
	}

	if s.isAdminEmail(a.Email) && a.Role != domain.RoleAdmin {
		promoted, err := s.repo.PromoteAdmin(ctx, a.ID)
		if err != nil {
			return Session{}, err
		}
		if promoted == nil {
			return Session{}, fmt.Errorf("account: %w", apperr.ErrNotFound)
		}
		s.logger.Info("account promoted to admin",
			logx.String("event", "account_promoted_admin"),
			logx.Int64("account_id", a.ID),
		)
		a = promoted
	}

	token, err := s.tokens.Issue(a.ID, a.Role)
	if err != nil {
		return Session{}, err
	}
	return Session{Account: a, Token: token}, nil
}

// AdminLogin signs in an ADMIN account; any other account gets the same
// answer as a wrong password.
func (s *Service) AdminLogin(ctx context.Context, email, password string) (Session, error) {
	sess, err := s.Login(ctx, email, password)
	if errors.Is(err, apperr.ErrNotFound) {
		return Session{}, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}
	if err != nil {
		return Session{}, err
	}
	if sess.Account.Role != domain.RoleAdmin {
		return Session{}, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	}
	return sess, nil
}

// CheckAccess reports whether email belongs to an administrator.
func (s *Service) CheckAccess(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}
	if s.isAdminEmail(email) {
		return true, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return a != nil && a.Role == domain.RoleAdmin, nil
}

// Get returns an account by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Account, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.ErrNotFound
	}
	return a, nil
}

// UpdateLocation stores the account's current position.
func (s *Service) UpdateLocation(ctx context.Context, id int64, loc domain.Location) (*domain.Account, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	if err := validateLocation(loc); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.UpdateLocation(ctx, id, loc)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.ErrNotFound
	}
	return a, nil
}

// Apply submits a driver application for review.
func (s *Service) Apply(ctx context.Context, accountID int64, jobType string, docs domain.DriverDocs) (*domain.Account, error) {
	if accountID <= 0 {
		return nil, apperr.ErrInvalid
	}
	t, ok := domain.ParseJobType(jobType, domain.JobTypeGig)
	if !ok {
		return nil, fmt.Errorf("job type %q: %w", jobType, apperr.ErrInvalid)
	}
	docs = domain.DriverDocs{
		Selfie:  strings.TrimSpace(docs.Selfie),
		IDFront: strings.TrimSpace(docs.IDFront),
		IDBack:  strings.TrimSpace(docs.IDBack),
	}
	if !docs.Complete() {
		return nil, fmt.Errorf("selfie and both sides of the id are required: %w", apperr.ErrInvalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.ApplyDriver(ctx, domain.DriverApplication{AccountID: accountID, JobType: t, Docs: docs})
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, s.missingOrConflict(ctx, accountID, "driver application already submitted")
	}

	s.logger.Info("driver applied",
		logx.String("event", "driver_applied"),
		logx.Int64("account_id", accountID),
		logx.String("job_type", string(t)),
	)
	return a, nil
}

// ListPendingDrivers returns accounts awaiting driver review.
func (s *Service) ListPendingDrivers(ctx context.Context) ([]domain.Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.ListByDriverStatus(ctx, domain.DriverStatusPending)
}

// ReviewDriver approves or rejects a pending application.
func (s *Service) ReviewDriver(ctx context.Context, accountID int64, approve bool) (*domain.Account, error) {
	if accountID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.ReviewDriver(ctx, accountID, approve)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, s.missingOrConflict(ctx, accountID, "no pending driver application")
	}

	s.logger.Info("driver reviewed",
		logx.String("event", "driver_reviewed"),
		logx.Int64("account_id", accountID),
		logx.String("driver_status", string(a.DriverStatus)),
	)
	return a, nil
}

func (s *Service) missingOrConflict(ctx context.Context, id int64, reason string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.ErrNotFound
	}
	return fmt.Errorf("%s: %w", reason, apperr.ErrConflict)
}
