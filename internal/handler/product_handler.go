package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"stock-api/internal/middleware"
	"stock-api/internal/model"
	"stock-api/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// productResponse wraps a single product.
type productResponse struct {
	Product *model.Product `json:"product"`
}

// productsResponse wraps a product listing.
type productsResponse struct {
	Products []model.Product `json:"products"`
}

// productMessageResponse is the body for mutations.
type productMessageResponse struct {
	Message string         `json:"message"`
	Product *model.Product `json:"product"`
}

// statsResponse wraps the inventory aggregates.
type statsResponse struct {
	Stats *model.ProductStats `json:"stats"`
}

// List handles GET /api/products requests with optional search, stock
// filter and sort query parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed", h.logger)
		return
	}

	filter := model.ProductFilter{
		Search: r.URL.Query().Get("search"),
		Stock:  r.URL.Query().Get("stock"),
		Sort:   r.URL.Query().Get("sort"),
	}

	products, err := h.service.List(r.Context(), user.ID, filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, productsResponse{Products: products})
}

// Get handles GET /api/products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed", h.logger)
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.Get(r.Context(), user.ID, productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, productResponse{Product: product})
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed", h.logger)
		return
	}

	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, productMessageResponse{
		Message: "Product created successfully",
		Product: product,
	})
}

// Update handles PUT /api/products/{id} requests. Only provided fields
// are changed.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed", h.logger)
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), user.ID, productID, req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, productMessageResponse{
		Message: "Product updated successfully",
		Product: product,
	})
}

// AdjustStock handles PATCH /api/products/{id}/stock requests.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed", h.logger)
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req model.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.AdjustStock(r.Context(), user.ID, productID, req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, productMessageResponse{
		Message: "Stock updated successfully",
		Product: product,
	})
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed", h.logger)
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, productID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// Stats handles GET /api/products/stats requests.
func (h *ProductHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed", h.logger)
		return
	}

	stats, err := h.service.Stats(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{Stats: stats})
}

// productID extracts and parses the product id path segment. Writes a 400
// and reports false when the id is not a valid UUID.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	idStr = strings.TrimSuffix(idStr, "/stock")
	idStr = strings.Trim(idStr, "/")

	productID, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return uuid.Nil, false
	}

	return productID, true
}
