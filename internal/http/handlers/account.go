package handlers

import (
	"net/http"

	"shegamart/internal/logx"
)

// AccountHandler serves the caller's profile, driver onboarding and its admin review.
type AccountHandler struct {
	accounts accountUsecase
	logger   logx.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(logger logx.Logger, accounts accountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// Me handles GET /api/accounts/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	a, err := h.accounts.Get(r.Context(), p.AccountID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, accountToResponse(*a))
}

// UpdateLocation handles PUT /api/location/me.
func (h *AccountHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	var req locationRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.accounts.UpdateLocation(r.Context(), p.AccountID, req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, accountToResponse(*a))
}

// Apply handles POST /api/driver/apply.
func (h *AccountHandler) Apply(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	var req applyRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.accounts.Apply(r.Context(), p.AccountID, req.JobType, req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusAccepted, accountToResponse(*a))
}

// PendingDrivers handles GET /api/admin/drivers/pending.
func (h *AccountHandler) PendingDrivers(w http.ResponseWriter, r *http.Request) {
	list, err := h.accounts.ListPendingDrivers(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, accountsToResponse(list))
}

// VerifyDriver handles POST /api/admin/drivers/verify.
func (h *AccountHandler) VerifyDriver(w http.ResponseWriter, r *http.Request) {
	var req verifyDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.accounts.ReviewDriver(r.Context(), req.AccountID, *req.Approved)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, accountToResponse(*a))
}
