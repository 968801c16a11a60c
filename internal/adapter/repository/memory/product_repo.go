package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/gojournal/internal/domain"
)

// ProductRepository implements usecase.ProductRepository with mutex-guarded
// maps for the catalog and its display order.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[domain.ID[domain.Product]]domain.Product
	order    domain.DisplayOrder
	stocking domain.Stocking
}

// NewProductRepository creates an empty ProductRepository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[domain.ID[domain.Product]]domain.Product),
	}
}

// SaveProduct stores the product and replaces the display order.
func (r *ProductRepository) SaveProduct(ctx context.Context, product domain.Product, order domain.DisplayOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = product
	r.order = append(domain.DisplayOrder(nil), order...)
	return nil
}

// FindProduct returns a product by id.
func (r *ProductRepository) FindProduct(ctx context.Context, id domain.ID[domain.Product]) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return product, nil
}

// ProductNames returns the names currently in the catalog.
func (r *ProductRepository) ProductNames(ctx context.Context) (domain.ProductNames, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make(domain.ProductNames, 0, len(r.products))
	for _, product := range r.products {
		names = append(names, product.Name)
	}
	return names, nil
}

// DisplayOrder returns the current display order.
func (r *ProductRepository) DisplayOrder(ctx context.Context) (domain.DisplayOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(domain.DisplayOrder(nil), r.order...), nil
}

// Stocking returns the catalog's intake state.
func (r *ProductRepository) Stocking(ctx context.Context) (domain.Stocking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stocking, nil
}

// SaveStocking replaces the catalog's intake state.
func (r *ProductRepository) SaveStocking(ctx context.Context, stocking domain.Stocking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stocking = stocking
	return nil
}

// ListProducts returns the catalog in display order.
func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		if product, ok := r.products[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}
