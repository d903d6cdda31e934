package handlers

import (
	"net/http"

	"shegamart/internal/logx"
)

// ProductHandler serves the product catalogue.
type ProductHandler struct {
	products productUsecase
	logger   logx.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(logger logx.Logger, products productUsecase) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.products.List(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, productsToResponse(list))
}

// Add handles POST /api/products/add. The caller is the seller.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	var req productRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	created, err := h.products.Create(r.Context(), req.toModel(p.AccountID))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, productToResponse(*created))
}
