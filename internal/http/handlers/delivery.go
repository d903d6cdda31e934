package handlers

import (
	"net/http"
	"strings"

	"shegamart/internal/auth"
	"shegamart/internal/domain"
	"shegamart/internal/logx"
)

// DeliveryHandler serves checkout and the driver-facing delivery lifecycle.
type DeliveryHandler struct {
	deliveries deliveryUsecase
	accounts   accountUsecase
	logger     logx.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, deliveries deliveryUsecase, accounts accountUsecase) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries, accounts: accounts, logger: logger}
}

// Checkout handles POST /api/orders/checkout. The caller is the customer;
// name and phone default to the caller's profile.
func (h *DeliveryHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	var req checkoutRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	in := req.toModel(p.AccountID)
	if in.CustomerName == "" || in.CustomerPhone == "" {
		a, err := h.accounts.Get(r.Context(), p.AccountID)
		if err != nil {
			writeServiceError(h.logger, w, r, err)
			return
		}
		if in.CustomerName == "" {
			in.CustomerName = strings.TrimSpace(a.FirstName + " " + a.LastName)
		}
		if in.CustomerPhone == "" {
			in.CustomerPhone = a.Phone
		}
	}

	d, err := h.deliveries.Create(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, deliveryToResponse(*d))
}

// Available handles GET /api/driver/deliveries?type=GIG|FULLTIME.
func (h *DeliveryHandler) Available(w http.ResponseWriter, r *http.Request) {
	list, err := h.deliveries.ListAvailable(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(list))
}

// MyList handles GET /api/driver/my-list: the caller's active jobs followed by the open pool.
func (h *DeliveryHandler) MyList(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	list, err := h.deliveries.ListForDriver(r.Context(), p.AccountID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(list))
}

// Accept handles POST /api/driver/accept.
func (h *DeliveryHandler) Accept(w http.ResponseWriter, r *http.Request) {
	p, req, ok := h.driverAction(w, r)
	if !ok {
		return
	}
	d, err := h.deliveries.Accept(r.Context(), req.DeliveryID, p.AccountID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

// Start handles POST /api/driver/start.
func (h *DeliveryHandler) Start(w http.ResponseWriter, r *http.Request) {
	p, req, ok := h.driverAction(w, r)
	if !ok {
		return
	}
	d, err := h.deliveries.Start(r.Context(), req.DeliveryID, p.AccountID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

// Complete handles POST /api/driver/complete.
func (h *DeliveryHandler) Complete(w http.ResponseWriter, r *http.Request) {
	p, req, ok := h.driverAction(w, r)
	if !ok {
		return
	}
	res, err := h.deliveries.Complete(r.Context(), req.DeliveryID, p.AccountID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, completionResponse{
		Delivery: deliveryToResponse(res.Delivery),
		Stats:    statsToResponse(res.Stats),
	})
}

func (h *DeliveryHandler) driverAction(w http.ResponseWriter, r *http.Request) (*auth.Principal, deliveryActionRequest, bool) {
	var req deliveryActionRequest
	p, ok := principal(h.logger, w, r)
	if !ok {
		return nil, req, false
	}
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return nil, req, false
	}
	return p, req, true
}

// Get handles GET /api/deliveries/{id}. Admins see everything, customers
// their own orders, drivers their own jobs and the open pool.
func (h *DeliveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.deliveries.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if !canView(p, d) {
		writeError(h.logger, w, r, http.StatusForbidden, "forbidden")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

func canView(p *auth.Principal, d *domain.Delivery) bool {
	switch {
	case p.HasRole(domain.RoleAdmin):
		return true
	case d.CustomerID == p.AccountID:
		return true
	case d.DriverID != nil && *d.DriverID == p.AccountID:
		return true
	case d.Status == domain.StatusOpen && p.HasRole(domain.RoleDriver):
		return true
	}
	return false
}

// Cancel handles POST /api/admin/deliveries/{id}/cancel.
func (h *DeliveryHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	d, err := h.deliveries.Cancel(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}
