package orders

import (
	"context"
	"errors"

	"shegamart/internal/apperr"
	"shegamart/internal/logx"
)

// Processor turns storefront order events into delivery lifecycle calls
type Processor struct {
	delivery DeliveryPort
	logger   logx.Logger
	factory  *actionFactory
}

// NewProcessor creates a new orders.Processor
func NewProcessor(deliverySvc DeliveryPort, logger logx.Logger) *Processor {
	logger = logx.OrNop(logger)
	p := &Processor{
		delivery: deliverySvc,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onCreated, p.onCanceled)
	return p
}

// Handle processes a single orders.Event
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("order event ignored",
			logx.String("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	return fn(ctx, e)
}

// onCreated - a redelivered event hits the order id unique constraint.
func (p *Processor) onCreated(ctx context.Context, e Event) error {
	_, err := p.delivery.Create(ctx, e.Checkout())
	if errors.Is(err, apperr.ErrConflict) {
		p.logger.Info("order already has a delivery", logx.String("order_id", e.OrderID))
		return nil
	}
	return err
}

// onCanceled - unknown orders and deliveries past ASSIGNED are left alone.
func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	_, err := p.delivery.CancelByOrderID(ctx, e.OrderID)
	if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrConflict) {
		p.logger.Info("order cancel skipped",
			logx.String("order_id", e.OrderID),
			logx.Err(err),
		)
		return nil
	}
	return err
}
