package handlers

import "time"

type locationRequest struct {
	Lat     *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng     *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Address string   `json:"address" validate:"max=255"`
}

type addressRequest struct {
	Type   string `json:"type" validate:"omitempty,oneof=house apartment"`
	Number string `json:"number" validate:"max=32"`
}

type registerRequest struct {
	FirstName string           `json:"first_name" validate:"required,max=100"`
	LastName  string           `json:"last_name" validate:"required,max=100"`
	Email     string           `json:"email" validate:"required,email"`
	Password  string           `json:"password" validate:"required,min=6,max=72"`
	Phone     string           `json:"phone" validate:"omitempty,max=16"`
	Location  *locationRequest `json:"location"`
	Address   *addressRequest  `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type checkAccessRequest struct {
	Email string `json:"email"`
}

type checkoutRequest struct {
	CustomerName  string           `json:"customer_name" validate:"max=200"`
	CustomerPhone string           `json:"customer_phone" validate:"max=16"`
	Dropoff       *locationRequest `json:"dropoff" validate:"required"`
	TotalAmount   float64          `json:"total_amount" validate:"gte=0,lte=1000000000000"`
}

type productRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Category    string   `json:"category" validate:"required,max=100"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=1000000000000"`
	Description string   `json:"description" validate:"max=2000"`
	ImageURL    string   `json:"image_url" validate:"max=1024"`
}

type applyRequest struct {
	JobType string `json:"job_type" validate:"omitempty,max=16"`
	Selfie  string `json:"selfie" validate:"required"`
	IDFront string `json:"id_front" validate:"required"`
	IDBack  string `json:"id_back" validate:"required"`
}

type deliveryActionRequest struct {
	DeliveryID int64 `json:"delivery_id" validate:"required,gt=0"`
}

type verifyDriverRequest struct {
	AccountID int64 `json:"account_id" validate:"required,gt=0"`
	Approved  *bool `json:"approved" validate:"required"`
}

type locationResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type driverStatsResponse struct {
	DeliveriesCompleted int64 `json:"deliveries_completed"`
	Earnings            int64 `json:"earnings"`
}

type driverDocsResponse struct {
	Selfie  string `json:"selfie"`
	IDFront string `json:"id_front"`
	IDBack  string `json:"id_back"`
}

type accountResponse struct {
	ID           int64               `json:"id"`
	Email        string              `json:"email"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Phone        string              `json:"phone,omitempty"`
	Role         string              `json:"role"`
	IsVerified   bool                `json:"is_verified"`
	ShegaID      string              `json:"shega_id"`
	Location     *locationResponse   `json:"location,omitempty"`
	AddressType  string              `json:"address_type"`
	AddressNo    string              `json:"address_number,omitempty"`
	DriverStatus string              `json:"driver_status,omitempty"`
	DriverType   string              `json:"driver_type,omitempty"`
	DriverDocs   *driverDocsResponse `json:"driver_docs,omitempty"`
	DriverStats  driverStatsResponse `json:"driver_stats"`
	CreatedAt    time.Time           `json:"created_at"`
}

type sessionResponse struct {
	Token   string          `json:"token"`
	Account accountResponse `json:"account"`
}

type checkAccessResponse struct {
	IsAdmin bool `json:"is_admin"`
}

type deliveryResponse struct {
	ID            int64            `json:"id"`
	OrderID       string           `json:"order_id"`
	CustomerID    int64            `json:"customer_id"`
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	Pickup        locationResponse `json:"pickup"`
	Dropoff       locationResponse `json:"dropoff"`
	Status        string           `json:"status"`
	DriverID      *int64           `json:"driver_id,omitempty"`
	Payout        int64            `json:"payout"`
	Type          string           `json:"type"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type productResponse struct {
	ID          int64     `json:"id"`
	SellerID    int64     `json:"seller_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type completionResponse struct {
	Delivery deliveryResponse    `json:"delivery"`
	Stats    driverStatsResponse `json:"stats"`
}
