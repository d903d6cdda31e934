package product

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"shegamart/internal/apperr"
	"shegamart/internal/domain"
	"shegamart/internal/logx"
)

// MaxPrice is the largest listing price accepted.
const MaxPrice = 1e12

// Service manages the product catalogue.
type Service struct {
	repo             productRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a new product Service.
func NewService(repo productRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	logger = logx.OrNop(logger)
	return &Service{repo: repo, operationTimeout: timeout, logger: logger}
}

// Create lists a new product for the seller. A missing image reference is
// replaced by the placeholder.
func (s *Service) Create(ctx context.Context, in domain.Product) (*domain.Product, error) {
	p := &domain.Product{
		SellerID:    in.SellerID,
		Title:       strings.TrimSpace(in.Title),
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	switch {
	case p.SellerID <= 0:
		return nil, fmt.Errorf("seller id is required: %w", apperr.ErrInvalid)
	case p.Title == "" || p.Category == "":
		return nil, fmt.Errorf("title and category are required: %w", apperr.ErrInvalid)
	case math.IsNaN(p.Price) || p.Price < 0 || p.Price > MaxPrice:
		return nil, fmt.Errorf("price must be between 0 and %.0f: %w", float64(MaxPrice), apperr.ErrInvalid)
	}
	if p.ImageURL == "" {
		p.ImageURL = domain.PlaceholderImage
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("product listed",
		logx.String("event", "product_created"),
		logx.Int64("product_id", p.ID),
		logx.Int64("seller_id", p.SellerID),
	)
	return p, nil
}

// List returns the catalogue, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	return s.repo.List(ctx)
}
