package usecase

import (
	"context"

	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/infrastructure/metrics"
)

// ProductUseCase orchestrates the product catalog: read model resolution,
// aggregate commands, and persistence.
type ProductUseCase struct {
	products ProductRepository
	metrics  *metrics.Metrics
}

// NewProductUseCase creates a new ProductUseCase. metrics may be nil.
func NewProductUseCase(products ProductRepository, m *metrics.Metrics) *ProductUseCase {
	return &ProductUseCase{products: products, metrics: m}
}

// AddProductInput is the transport-shaped add request.
type AddProductInput struct {
	Name        string
	Description string
	Category    string
}

// AddProduct validates the request, runs the catalog command against the
// current read models, and persists the result.
func (uc *ProductUseCase) AddProduct(ctx context.Context, input AddProductInput) (domain.ProductAdded, error) {
	if err := uc.ensureStockingOpen(ctx); err != nil {
		return domain.ProductAdded{}, err
	}

	product, err := domain.NewProduct(input.Name, input.Description, input.Category)
	if err != nil {
		return domain.ProductAdded{}, &ValidationFailed{Reason: err.Error()}
	}

	names, err := uc.products.ProductNames(ctx)
	if err != nil {
		return domain.ProductAdded{}, newSaveFailed(err)
	}

	order, err := uc.products.DisplayOrder(ctx)
	if err != nil {
		return domain.ProductAdded{}, newSaveFailed(err)
	}

	added, err := domain.AddProduct(product, order, names)
	if err != nil {
		return domain.ProductAdded{}, &ValidationFailed{Reason: err.Error()}
	}

	if err := uc.products.SaveProduct(ctx, added.Product, added.DisplayOrder); err != nil {
		return domain.ProductAdded{}, newSaveFailed(err)
	}

	if uc.metrics != nil {
		uc.metrics.ProductsAdded.Inc()
	}

	return added, nil
}

// UpdateProductInput changes a product's metadata.
type UpdateProductInput struct {
	ProductID   string
	Name        string
	Description string
	Category    string
}

// UpdateProduct validates the request and updates the stored product. The
// duplicate-name check excludes the product's own current name.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, input UpdateProductInput) (domain.ProductUpdated, error) {
	if err := uc.ensureStockingOpen(ctx); err != nil {
		return domain.ProductUpdated{}, err
	}

	id, err := domain.ParseID[domain.Product](input.ProductID)
	if err != nil {
		return domain.ProductUpdated{}, &ValidationFailed{Reason: err.Error()}
	}

	existing, err := uc.products.FindProduct(ctx, id)
	if err != nil {
		return domain.ProductUpdated{}, err
	}

	product, err := domain.NewProduct(input.Name, input.Description, input.Category)
	if err != nil {
		return domain.ProductUpdated{}, &ValidationFailed{Reason: err.Error()}
	}
	product.ID = existing.ID

	names, err := uc.products.ProductNames(ctx)
	if err != nil {
		return domain.ProductUpdated{}, newSaveFailed(err)
	}

	otherNames := make(domain.ProductNames, 0, len(names))
	for _, name := range names {
		if name != existing.Name {
			otherNames = append(otherNames, name)
		}
	}

	updated, err := domain.UpdateProduct(product, otherNames)
	if err != nil {
		return domain.ProductUpdated{}, &ValidationFailed{Reason: err.Error()}
	}

	order, err := uc.products.DisplayOrder(ctx)
	if err != nil {
		return domain.ProductUpdated{}, newSaveFailed(err)
	}

	if err := uc.products.SaveProduct(ctx, updated.Product, order); err != nil {
		return domain.ProductUpdated{}, newSaveFailed(err)
	}

	return updated, nil
}

// ListProducts returns the catalog in display order.
func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return uc.products.ListProducts(ctx)
}

// SuspendStocking halts catalog intake. Add and update commands are rejected
// until stocking is resumed.
func (uc *ProductUseCase) SuspendStocking(ctx context.Context, reason string) (domain.Stocking, error) {
	stocking, err := domain.SuspendStocking(reason)
	if err != nil {
		return domain.Stocking{}, &ValidationFailed{Reason: err.Error()}
	}

	if err := uc.products.SaveStocking(ctx, stocking); err != nil {
		return domain.Stocking{}, newSaveFailed(err)
	}
	return stocking, nil
}

// ResumeStocking reopens catalog intake.
func (uc *ProductUseCase) ResumeStocking(ctx context.Context) (domain.Stocking, error) {
	current, err := uc.products.Stocking(ctx)
	if err != nil {
		return domain.Stocking{}, newSaveFailed(err)
	}

	resumed := current.Resume()
	if err := uc.products.SaveStocking(ctx, resumed); err != nil {
		return domain.Stocking{}, newSaveFailed(err)
	}
	return resumed, nil
}

// Stocking returns the catalog's current intake state.
func (uc *ProductUseCase) Stocking(ctx context.Context) (domain.Stocking, error) {
	return uc.products.Stocking(ctx)
}

func (uc *ProductUseCase) ensureStockingOpen(ctx context.Context) error {
	stocking, err := uc.products.Stocking(ctx)
	if err != nil {
		return newSaveFailed(err)
	}
	if err := stocking.EnsureOpen(); err != nil {
		return &ValidationFailed{Reason: err.Error()}
	}
	return nil
}
