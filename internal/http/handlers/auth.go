package handlers

import (
	"net/http"

	"shegamart/internal/logx"
)

// AuthHandler serves registration, login and the admin sign-in.
type AuthHandler struct {
	accounts accountUsecase
	logger   logx.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger logx.Logger, accounts accountUsecase) *AuthHandler {
	return &AuthHandler{accounts: accounts, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.accounts.Register(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, sessionResponse{
		Token:   s.Token,
		Account: accountToResponse(*s.Account),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionResponse{
		Token:   s.Token,
		Account: accountToResponse(*s.Account),
	})
}

// AdminLogin handles POST /api/admin/login.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	s, err := h.accounts.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionResponse{
		Token:   s.Token,
		Account: accountToResponse(*s.Account),
	})
}

// CheckAccess handles POST /api/admin/check-access.
func (h *AuthHandler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	var req checkAccessRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	ok, err := h.accounts.CheckAccess(r.Context(), req.Email)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, checkAccessResponse{IsAdmin: ok})
}
