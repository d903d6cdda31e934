package kafka

import (
	"strings"
	"time"

	"shegamart/internal/domain"
	"shegamart/internal/service/orders"
)

// LocationDTO is a geographic point in an order event.
type LocationDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// EventDTO is a data transfer object for orders.Event
type EventDTO struct {
	OrderID       string       `json:"order_id"`
	Status        string       `json:"status"`
	CustomerID    int64        `json:"customer_id"`
	CustomerName  string       `json:"customer_name"`
	CustomerPhone string       `json:"customer_phone"`
	Dropoff       *LocationDTO `json:"dropoff,omitempty"`
	TotalAmount   float64      `json:"total_amount"`
	CreatedAt     time.Time    `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	ev := orders.Event{
		OrderID:       strings.TrimSpace(dto.OrderID),
		Status:        strings.TrimSpace(dto.Status),
		CustomerID:    dto.CustomerID,
		CustomerName:  strings.TrimSpace(dto.CustomerName),
		CustomerPhone: strings.TrimSpace(dto.CustomerPhone),
		TotalAmount:   dto.TotalAmount,
		CreatedAt:     dto.CreatedAt,
	}
	if dto.Dropoff != nil {
		ev.Dropoff = &domain.Location{
			Lat:     dto.Dropoff.Lat,
			Lng:     dto.Dropoff.Lng,
			Address: strings.TrimSpace(dto.Dropoff.Address),
		}
	}
	return ev
}
