package delivery

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"shegamart/internal/apperr"
	"shegamart/internal/domain"
	"shegamart/internal/logx"
	"shegamart/internal/ports/deliverytx"
)

const defaultDropoffAddress = "Customer Location"

// Metrics are the lifecycle counters updated by Service. Nil fields are skipped.
type Metrics struct {
	Created        prometheus.Counter
	PayoutCredited prometheus.Counter
}

// Service - delivery lifecycle manager.
type Service struct {
	repo             deliveryRepository
	ids              OrderIDGenerator
	cfg              Config
	operationTimeout time.Duration
	logger           logx.Logger
	metrics          Metrics
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithMetrics sets lifecycle counters.
func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// NewDeliveryService - creates a new delivery Service.
func NewDeliveryService(
	r deliveryRepository,
	ids OrderIDGenerator,
	cfg Config,
	timeout time.Duration,
	logger logx.Logger,
	opts ...Option,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	logger = logx.OrNop(logger)
	if ids == nil {
		ids = NewOrderIDGenerator()
	}
	s := &Service{
		repo:             r,
		ids:              ids,
		cfg:              cfg,
		operationTimeout: timeout,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens a new delivery for a checkout.
func (s *Service) Create(ctx context.Context, in domain.Checkout) (*domain.Delivery, error) {
	dropoff, err := validateCheckout(in)
	if err != nil {
		return nil, err
	}
	payout, err := s.cfg.Payout(in.TotalAmount)
	if err != nil {
		return nil, err
	}

	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		orderID = s.ids.NewOrderID()
	}

	d := &domain.Delivery{
		OrderID:       orderID,
		CustomerID:    in.CustomerID,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Pickup:        s.cfg.Warehouse,
		Dropoff:       dropoff,
		Status:        domain.StatusOpen,
		Payout:        payout,
		Type:          domain.JobTypeGig,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, err
	}

	if s.metrics.Created != nil {
		s.metrics.Created.Inc()
	}
	s.logger.Info("delivery created",
		logx.String("event", "delivery_created"),
		logx.Int64("delivery_id", d.ID),
		logx.String("order_id", d.OrderID),
		logx.Int64("customer_id", d.CustomerID),
		logx.Int64("payout", d.Payout),
	)
	return d, nil
}

func validateCheckout(in domain.Checkout) (domain.Location, error) {
	if in.CustomerID <= 0 {
		return domain.Location{}, fmt.Errorf("customer id is required: %w", apperr.ErrInvalid)
	}
	if in.Dropoff == nil {
		return domain.Location{}, fmt.Errorf("dropoff location is required: %w", apperr.ErrInvalid)
	}
	if math.IsNaN(in.TotalAmount) || in.TotalAmount < 0 || in.TotalAmount > MaxTotalAmount {
		return domain.Location{}, fmt.Errorf("total amount must be between 0 and %.0f: %w", float64(MaxTotalAmount), apperr.ErrInvalid)
	}
	loc := *in.Dropoff
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return domain.Location{}, fmt.Errorf("dropoff coordinates out of range: %w", apperr.ErrInvalid)
	}
	loc.Address = strings.TrimSpace(loc.Address)
	if loc.Address == "" {
		loc.Address = defaultDropoffAddress
	}
	return loc, nil
}

// Get returns a delivery by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Delivery, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// GetByOrderID returns a delivery by its order id.
func (s *Service) GetByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// ListAvailable returns OPEN deliveries of the given type. Empty means GIG.
func (s *Service) ListAvailable(ctx context.Context, jobType string) ([]domain.Delivery, error) {
	t, ok := domain.ParseJobType(jobType, domain.JobTypeGig)
	if !ok {
		return nil, fmt.Errorf("job type %q: %w", jobType, apperr.ErrInvalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.ListByStatus(ctx, domain.StatusOpen, t)
}

// ListForDriver returns the driver's active deliveries followed by every OPEN
// delivery. Job type does not restrict the feed.
func (s *Service) ListForDriver(ctx context.Context, driverID int64) ([]domain.Delivery, error) {
	if driverID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	own, err := s.repo.ListActiveByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	open, err := s.repo.ListByStatus(ctx, domain.StatusOpen, "")
	if err != nil {
		return nil, err
	}
	return append(own, open...), nil
}

// Accept binds an OPEN delivery to the driver. Only one concurrent caller wins.
func (s *Service) Accept(ctx context.Context, deliveryID, driverID int64) (*domain.Delivery, error) {
	if deliveryID <= 0 || driverID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Transition(ctx, domain.Transition{
		DeliveryID:     deliveryID,
		From:           []domain.DeliveryStatus{domain.StatusOpen},
		To:             domain.StatusAssigned,
		AssignDriverID: &driverID,
	})
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrUnavailable
	}

	s.logger.Info("delivery accepted",
		logx.String("event", "delivery_accepted"),
		logx.Int64("delivery_id", d.ID),
		logx.Int64("driver_id", driverID),
	)
	return d, nil
}

// Start moves an ASSIGNED delivery owned by the driver to IN_PROGRESS.
func (s *Service) Start(ctx context.Context, deliveryID, driverID int64) (*domain.Delivery, error) {
	if deliveryID <= 0 || driverID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Transition(ctx, domain.Transition{
		DeliveryID: deliveryID,
		From:       []domain.DeliveryStatus{domain.StatusAssigned},
		To:         domain.StatusInProgress,
		OwnerID:    &driverID,
	})
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrCannotStart
	}

	s.logger.Info("delivery started",
		logx.String("event", "delivery_started"),
		logx.Int64("delivery_id", d.ID),
		logx.Int64("driver_id", driverID),
	)
	return d, nil
}

// Complete marks the driver's active delivery DELIVERED and credits the payout.
// The transition, the ledger entry and the stats increment commit together.
func (s *Service) Complete(ctx context.Context, deliveryID, driverID int64) (domain.Completion, error) {
	if deliveryID <= 0 || driverID <= 0 {
		return domain.Completion{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		result   domain.Completion
		credited bool
	)
	err := s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		d, err := tx.Transition(ctx, domain.Transition{
			DeliveryID: deliveryID,
			From:       []domain.DeliveryStatus{domain.StatusAssigned, domain.StatusInProgress},
			To:         domain.StatusDelivered,
			OwnerID:    &driverID,
		})
		if err != nil {
			return err
		}
		if d == nil {
			return ErrCannotComplete
		}

		inserted, err := tx.RecordPayout(ctx, domain.PayoutRecord{
			DeliveryID: d.ID,
			DriverID:   driverID,
			Amount:     d.Payout,
		})
		if err != nil {
			return err
		}

		var stats domain.DriverStats
		if inserted {
			stats, err = tx.CreditDriver(ctx, driverID, d.Payout)
			if err != nil {
				return err
			}
		} else {
			cur, err := tx.GetDriverStats(ctx, driverID)
			if err != nil {
				return err
			}
			if cur == nil {
				return fmt.Errorf("driver account %d: %w", driverID, apperr.ErrNotFound)
			}
			stats = *cur
		}

		result = domain.Completion{Delivery: *d, Stats: stats}
		credited = inserted
		return nil
	})
	if err != nil {
		return domain.Completion{}, err
	}

	if credited && s.metrics.PayoutCredited != nil {
		s.metrics.PayoutCredited.Add(float64(result.Delivery.Payout))
	}
	s.logger.Info("delivery completed",
		logx.String("event", "delivery_completed"),
		logx.Int64("delivery_id", result.Delivery.ID),
		logx.Int64("driver_id", driverID),
		logx.Int64("payout", result.Delivery.Payout),
		logx.Int64("deliveries_completed", result.Stats.DeliveriesCompleted),
		logx.Int64("earnings", result.Stats.Earnings),
	)
	return result, nil
}

// Cancel moves an OPEN or ASSIGNED delivery to CANCELLED.
func (s *Service) Cancel(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	if deliveryID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.cancel(ctx, deliveryID)
}

// CancelByOrderID cancels the delivery created for orderID.
func (s *Service) CancelByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("order %q: %w", orderID, apperr.ErrNotFound)
	}
	return s.cancel(ctx, d.ID)
}

func (s *Service) cancel(ctx context.Context, deliveryID int64) (*domain.Delivery, error) {
	d, err := s.repo.Transition(ctx, domain.Transition{
		DeliveryID: deliveryID,
		From:       []domain.DeliveryStatus{domain.StatusOpen, domain.StatusAssigned},
		To:         domain.StatusCancelled,
	})
	if err != nil {
		return nil, err
	}
	if d == nil {
		existing, err := s.repo.GetByID(ctx, deliveryID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperr.ErrNotFound
		}
		return nil, ErrCannotCancel
	}

	s.logger.Info("delivery cancelled",
		logx.String("event", "delivery_cancelled"),
		logx.Int64("delivery_id", d.ID),
		logx.String("order_id", d.OrderID),
	)
	return d, nil
}

// CountByStatus returns the number of deliveries in every status.
// Statuses with no deliveries are reported as zero.
func (s *Service) CountByStatus(ctx context.Context) (map[domain.DeliveryStatus]int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.DeliveryStatus]int64, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		out[st] = counts[st]
	}
	return out, nil
}
