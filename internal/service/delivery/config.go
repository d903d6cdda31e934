package delivery

import (
	"fmt"
	"math"

	"shegamart/internal/apperr"
	"shegamart/internal/domain"
)

// MaxTotalAmount is the largest order total a delivery is opened for.
const MaxTotalAmount = 1e12

// Config holds the pricing and pickup settings of the lifecycle manager.
type Config struct {
	BaseFee        float64
	CommissionRate float64
	Warehouse      domain.Location
}

// Payout returns floor(BaseFee + CommissionRate*total). Results that are not
// finite or do not fit a non-negative int64 are rejected as invalid.
func (c Config) Payout(total float64) (int64, error) {
	v := math.Floor(c.BaseFee + c.CommissionRate*total)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("payout out of range for total %v: %w", total, apperr.ErrInvalid)
	}
	return int64(v), nil
}
