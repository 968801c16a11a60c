package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gojournal/internal/adapter/http/dto"
	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/usecase"
)

// productService is the slice of ProductUseCase the handler needs.
type productService interface {
	AddProduct(ctx context.Context, input usecase.AddProductInput) (domain.ProductAdded, error)
	UpdateProduct(ctx context.Context, input usecase.UpdateProductInput) (domain.ProductUpdated, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SuspendStocking(ctx context.Context, reason string) (domain.Stocking, error)
	ResumeStocking(ctx context.Context) (domain.Stocking, error)
	Stocking(ctx context.Context) (domain.Stocking, error)
}

// ProductHandler handles product catalog HTTP requests.
type ProductHandler struct {
	productUC productService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productUC productService) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// Add adds a product to the catalog.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	added, err := h.productUC.AddProduct(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to add product", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ProductFromDomain(added.Product))
}

// Update changes a product's metadata.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing product ID", "")
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated, err := h.productUC.UpdateProduct(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update product", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ProductFromDomain(updated.Product))
}

// SuspendStocking halts catalog intake.
func (h *ProductHandler) SuspendStocking(w http.ResponseWriter, r *http.Request) {
	var req dto.SuspendStockingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	stocking, err := h.productUC.SuspendStocking(r.Context(), req.Reason)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to suspend stocking", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.StockingFromDomain(stocking))
}

// ResumeStocking reopens catalog intake.
func (h *ProductHandler) ResumeStocking(w http.ResponseWriter, r *http.Request) {
	stocking, err := h.productUC.ResumeStocking(r.Context())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to resume stocking", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.StockingFromDomain(stocking))
}

// Stocking returns the catalog's intake state.
func (h *ProductHandler) Stocking(w http.ResponseWriter, r *http.Request) {
	stocking, err := h.productUC.Stocking(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load stocking state", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockingFromDomain(stocking))
}

// List lists the catalog in display order.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUC.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductsFromDomain(products))
}
