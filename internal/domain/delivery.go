package domain

import "time"

// Location is a geographic point with a human readable label.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

// Delivery - one fulfillment job moving goods from the warehouse to a customer.
type Delivery struct {
	ID            int64
	OrderID       string
	CustomerID    int64
	CustomerName  string
	CustomerPhone string
	Pickup        Location
	Dropoff       Location
	Status        DeliveryStatus
	DriverID      *int64
	Payout        int64
	Type          JobType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Checkout carries the customer data captured when an order is placed.
// OrderID is optional; an empty value makes the service generate one.
type Checkout struct {
	OrderID       string
	CustomerID    int64
	CustomerName  string
	CustomerPhone string
	Dropoff       *Location
	TotalAmount   float64
}

// Transition describes a conditional status change of a single delivery.
// The change applies only if the current status is one of From and, when
// OwnerID is set, the delivery is bound to that driver.
type Transition struct {
	DeliveryID     int64
	From           []DeliveryStatus
	To             DeliveryStatus
	OwnerID        *int64
	AssignDriverID *int64
}

// DriverStats - running totals of a driver's completed work.
type DriverStats struct {
	DeliveriesCompleted int64
	Earnings            int64
}

// PayoutRecord is a ledger entry crediting a delivery payout to a driver.
type PayoutRecord struct {
	DeliveryID int64
	DriverID   int64
	Amount     int64
	CreditedAt time.Time
}

// Completion - result of completing a delivery.
type Completion struct {
	Delivery Delivery
	Stats    DriverStats
}
