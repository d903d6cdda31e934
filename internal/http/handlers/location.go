package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shegamart/internal/logx"
)

// LocationHandler proxies geocoding lookups.
type LocationHandler struct {
	geo    locationGateway
	logger logx.Logger
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(logger logx.Logger, geo locationGateway) *LocationHandler {
	return &LocationHandler{geo: geo, logger: logger}
}

// Reverse handles GET /api/location/reverse?lat=..&lng=..
func (h *LocationHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "missing coords")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		writeError(h.logger, w, r, http.StatusBadRequest, "coordinates out of range")
		return
	}

	raw, err := h.geo.Reverse(r.Context(), lat, lng)
	if err != nil {
		h.upstreamError(w, r, err, "failed to fetch address")
		return
	}
	writeRaw(h.logger, w, r, raw)
}

// Search handles GET /api/location/search?q=..
func (h *LocationHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "missing query")
		return
	}

	raw, err := h.geo.Search(r.Context(), query)
	if err != nil {
		h.upstreamError(w, r, err, "failed to search location")
		return
	}
	writeRaw(h.logger, w, r, raw)
}

func (h *LocationHandler) upstreamError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	h.logger.Error("geocoding failed",
		logx.String("request_id", reqID(r)),
		logx.String("path", r.URL.Path),
		logx.Err(err),
	)
	status := http.StatusBadGateway
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	writeError(h.logger, w, r, status, msg)
}

func writeRaw(logger logx.Logger, w http.ResponseWriter, r *http.Request, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		logger.Debug("response write failed",
			logx.String("request_id", reqID(r)),
			logx.Err(err),
		)
	}
}
