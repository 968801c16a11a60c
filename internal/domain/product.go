package domain

import "fmt"

// MaxProductCount caps how many products can be on display at once.
const MaxProductCount = 10

// Product is a catalog item. All fields are guarded at construction.
type Product struct {
	ID          ID[Product]
	Name        NonEmptyString
	Description NonEmptyString
	Category    NonEmptyString
}

// NewProduct validates raw inputs and builds a Product with a fresh id.
func NewProduct(name, description, category string) (Product, error) {
	productName, err := NewNonEmptyString(name)
	if err != nil {
		return Product{}, fmt.Errorf("product name: %w", err)
	}

	productDescription, err := NewNonEmptyString(description)
	if err != nil {
		return Product{}, fmt.Errorf("product description: %w", err)
	}

	productCategory, err := NewNonEmptyString(category)
	if err != nil {
		return Product{}, fmt.Errorf("product category: %w", err)
	}

	return Product{
		ID:          NewID[Product](),
		Name:        productName,
		Description: productDescription,
		Category:    productCategory,
	}, nil
}

// DisplayOrder is the front-to-back ordering of products on display.
type DisplayOrder []ID[Product]

// AddToFront returns a new order with the product placed first.
func (d DisplayOrder) AddToFront(id ID[Product]) DisplayOrder {
	order := make(DisplayOrder, 0, len(d)+1)
	order = append(order, id)
	order = append(order, d...)
	return order
}

// ProductNames is the set of names currently in the catalog.
type ProductNames []NonEmptyString

// Contains reports whether the name is already taken.
func (n ProductNames) Contains(name NonEmptyString) bool {
	for _, existing := range n {
		if existing == name {
			return true
		}
	}
	return false
}

// ProductAdded is emitted when a product enters the catalog.
type ProductAdded struct {
	Product      Product
	DisplayOrder DisplayOrder
}

// ProductUpdated is emitted when a product's metadata changes.
type ProductUpdated struct {
	Product Product
}

// AddProduct admits a new product to the catalog: the name must be unused
// and the catalog must have room. The new product is displayed first.
func AddProduct(product Product, currentOrder DisplayOrder, allNames ProductNames) (ProductAdded, error) {
	if allNames.Contains(product.Name) {
		return ProductAdded{}, fmt.Errorf("%w: %s", ErrProductNameTaken, product.Name)
	}

	if len(allNames) >= MaxProductCount {
		return ProductAdded{}, fmt.Errorf("%w: limit is %d", ErrMaxProductsExceeded, MaxProductCount)
	}

	return ProductAdded{
		Product:      product,
		DisplayOrder: currentOrder.AddToFront(product.ID),
	}, nil
}

// UpdateProduct changes a product's metadata. The name must not collide with
// any other product; the product's own current name is excluded by the caller
// when building allNames.
func UpdateProduct(product Product, allNames ProductNames) (ProductUpdated, error) {
	if allNames.Contains(product.Name) {
		return ProductUpdated{}, fmt.Errorf("%w: %s", ErrProductNameTaken, product.Name)
	}

	return ProductUpdated{Product: product}, nil
}

// Stocking is the catalog's intake state. While stocking is suspended no
// products may be added or updated; the suspension carries its reason.
// The zero value is open.
type Stocking struct {
	Suspended bool
	Reason    NonEmptyString
}

// SuspendStocking halts catalog intake with the given reason.
func SuspendStocking(reason string) (Stocking, error) {
	suspensionReason, err := NewNonEmptyString(reason)
	if err != nil {
		return Stocking{}, fmt.Errorf("suspension reason: %w", err)
	}
	return Stocking{Suspended: true, Reason: suspensionReason}, nil
}

// Resume reopens catalog intake.
func (s Stocking) Resume() Stocking {
	return Stocking{}
}

// EnsureOpen fails while intake is suspended.
func (s Stocking) EnsureOpen() error {
	if s.Suspended {
		return fmt.Errorf("%w: %s", ErrStockingSuspended, s.Reason)
	}
	return nil
}
