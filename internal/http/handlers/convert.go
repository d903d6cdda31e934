package handlers

import (
	"strings"

	"shegamart/internal/domain"
)

func (r locationRequest) toModel() domain.Location {
	loc := domain.Location{Address: strings.TrimSpace(r.Address)}
	if r.Lat != nil {
		loc.Lat = *r.Lat
	}
	if r.Lng != nil {
		loc.Lng = *r.Lng
	}
	return loc
}

func (r registerRequest) toModel() domain.Registration {
	in := domain.Registration{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
	}
	if r.Location != nil {
		loc := r.Location.toModel()
		in.Location = &loc
	}
	if r.Address != nil {
		in.Address = domain.AddressDetails{Type: r.Address.Type, Number: r.Address.Number}
	}
	return in
}

func (r checkoutRequest) toModel(customerID int64) domain.Checkout {
	in := domain.Checkout{
		CustomerID:    customerID,
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		TotalAmount:   r.TotalAmount,
	}
	if r.Dropoff != nil {
		loc := r.Dropoff.toModel()
		in.Dropoff = &loc
	}
	return in
}

func (r applyRequest) toModel() domain.DriverDocs {
	return domain.DriverDocs{Selfie: r.Selfie, IDFront: r.IDFront, IDBack: r.IDBack}
}

func locationToResponse(l domain.Location) locationResponse {
	return locationResponse{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

func statsToResponse(s domain.DriverStats) driverStatsResponse {
	return driverStatsResponse{DeliveriesCompleted: s.DeliveriesCompleted, Earnings: s.Earnings}
}

func accountToResponse(a domain.Account) accountResponse {
	resp := accountResponse{
		ID:           a.ID,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Phone:        a.Phone,
		Role:         string(a.Role),
		IsVerified:   a.IsVerified,
		ShegaID:      a.ShegaID,
		AddressType:  a.Address.Type,
		AddressNo:    a.Address.Number,
		DriverStatus: string(a.DriverStatus),
		DriverType:   string(a.DriverType),
		DriverStats:  statsToResponse(a.DriverStats),
		CreatedAt:    a.CreatedAt,
	}
	if a.Location != nil {
		loc := locationToResponse(*a.Location)
		resp.Location = &loc
	}
	if a.DriverDocs != (domain.DriverDocs{}) {
		resp.DriverDocs = &driverDocsResponse{
			Selfie:  a.DriverDocs.Selfie,
			IDFront: a.DriverDocs.IDFront,
			IDBack:  a.DriverDocs.IDBack,
		}
	}
	return resp
}

func accountsToResponse(list []domain.Account) []accountResponse {
	out := make([]accountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, accountToResponse(a))
	}
	return out
}

func deliveryToResponse(d domain.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:            d.ID,
		OrderID:       d.OrderID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Pickup:        locationToResponse(d.Pickup),
		Dropoff:       locationToResponse(d.Dropoff),
		Status:        string(d.Status),
		DriverID:      d.DriverID,
		Payout:        d.Payout,
		Type:          string(d.Type),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func deliveriesToResponse(list []domain.Delivery) []deliveryResponse {
	out := make([]deliveryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToResponse(d))
	}
	return out
}

func (r productRequest) toModel(sellerID int64) domain.Product {
	p := domain.Product{
		SellerID:    sellerID,
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	return p
}

func productToResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Title:       p.Title,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

func productsToResponse(list []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(list))
	for _, p := range list {
		out = append(out, productToResponse(p))
	}
	return out
}
