// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	producterrors "github.com/nidhis234/electronicsstore/internal/errors"
	"github.com/nidhis234/electronicsstore/internal/service"
	"github.com/nidhis234/electronicsstore/pkg/web"
)

type Handler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of the store API with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the store service.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/addNewProduct", h.AddNewProduct)
		r.Put("/updateInventory/{pid}/{quantity}", h.UpdateInventory)
		r.Put("/updateProduct/{pid}", h.UpdateProduct)
		r.Get("/products", h.GetAllProducts)
		r.Get("/inventory/{pid}", h.GetInventory)

		r.Route("/product/{pid}", func(r chi.Router) {
			r.Get("/", h.GetProductByID)
			r.Delete("/", h.RemoveProduct)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// AddNewProduct handles the creation of a new product.
func (h *Handler) AddNewProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var productCreateDto service.ProductCreateDto
	if err := json.NewDecoder(r.Body).Decode(&productCreateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to add product", "product", productCreateDto)
	if !h.validateStruct(w, r, mLogger, productCreateDto) {
		return
	}

	newProduct, err := h.service.Add(r.Context(), productCreateDto)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductAlreadyExists) {
			mLogger.WarnContext(r.Context(), "Duplicate product id", "productId", productCreateDto.ProductID)
			web.RespondError(w, mLogger, http.StatusUnprocessableEntity,
				fmt.Sprintf("Product with id %s already exists", productCreateDto.ProductID))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error adding product", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product added successfully", "productId", newProduct.ProductID, "Name", newProduct.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, newProduct)
}

// UpdateInventory sets the inventory of a product to the absolute value
// carried in the path.
func (h *Handler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	pid, ok := web.ParsePathString(w, r, mLogger, "pid")
	if !ok {
		return
	}
	quantity, ok := web.ParsePathPositiveInt(w, r, mLogger, "quantity")
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update inventory", "productId", pid, "quantity", quantity)
	updated, err := h.service.UpdateInventory(r.Context(), pid, quantity)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for inventory update", "productId", pid)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with id %s not found", pid))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating inventory", "productId", pid, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update inventory for product %s", pid))
		return
	}
	mLogger.InfoContext(r.Context(), "Inventory updated successfully", "productId", updated.ProductID, "NewInventory", updated.Inventory)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// UpdateProduct replaces all fields of a product except its product id.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	pid, ok := web.ParsePathString(w, r, mLogger, "pid")
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "productId", pid)
	var productUpdateDto service.ProductUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&productUpdateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.validateStruct(w, r, mLogger, productUpdateDto) {
		return
	}

	updated, err := h.service.UpdateProduct(r.Context(), pid, productUpdateDto)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "productId", pid)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with id %s not found", pid))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating product", "productId", pid, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product %s", pid))
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "productId", updated.ProductID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// GetProductByID retrieves a product by its product id.
func (h *Handler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	pid, ok := web.ParsePathString(w, r, mLogger, "pid")
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find product", "productId", pid)
	found, err := h.service.FindByProductID(r.Context(), pid)
	if err != nil {
		if errors.Is(err, producterrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "productId", pid)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with id %s not found", pid))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "productId", pid, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product %s", pid))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "productId", found.ProductID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// GetAllProducts retrieves every product. An empty catalog is reported as 404.
func (h *Handler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	mLogger.DebugContext(r.Context(), "Received request to find all products")
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		if errors.Is(err, producterrors.ErrNoProductsFound) {
			mLogger.WarnContext(r.Context(), "No products present")
			web.RespondError(w, mLogger, http.StatusNotFound, "No products present")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// GetInventory returns the stored inventory of a product as a plain integer.
// A missing product yields 0.
func (h *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	pid, ok := web.ParsePathString(w, r, mLogger, "pid")
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to get inventory", "productId", pid)
	inventory, err := h.service.InventoryCount(r.Context(), pid)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving inventory", "productId", pid, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve inventory for product %s", pid))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved inventory", "productId", pid, "inventory", inventory)
	web.RespondJSON(w, mLogger, http.StatusOK, inventory)
}

// RemoveProduct deletes a product by its product id. Responds 204 regardless
// of prior existence.
func (h *Handler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	pid, ok := web.ParsePathString(w, r, mLogger, "pid")
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to remove product", "productId", pid)
	if err := h.service.Remove(r.Context(), pid); err != nil {
		mLogger.ErrorContext(r.Context(), "Error removing product", "productId", pid, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to remove product %s", pid))
		return
	}
	mLogger.InfoContext(r.Context(), "Product removed", "productId", pid)
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// validateStruct runs struct validation and writes a field-level error
// response on failure. Returns true when the payload is valid.
func (h *Handler) validateStruct(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, payload any) bool {
	if err := h.validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				// fieldErr.Tag() returns "required", "gte", etc.
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
