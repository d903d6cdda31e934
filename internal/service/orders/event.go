package orders

import (
	"time"

	"shegamart/internal/domain"
)

// Event is a single storefront order event
type Event struct {
	OrderID       string
	Status        string
	CustomerID    int64
	CustomerName  string
	CustomerPhone string
	Dropoff       *domain.Location
	TotalAmount   float64
	CreatedAt     time.Time
}

// Checkout converts a created event into lifecycle input.
func (e Event) Checkout() domain.Checkout {
	return domain.Checkout{
		OrderID:       e.OrderID,
		CustomerID:    e.CustomerID,
		CustomerName:  e.CustomerName,
		CustomerPhone: e.CustomerPhone,
		Dropoff:       e.Dropoff,
		TotalAmount:   e.TotalAmount,
	}
}
