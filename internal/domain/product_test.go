package domain

import (
	"errors"
	"testing"
)

func mustProduct(t *testing.T, name string) Product {
	t.Helper()
	product, err := NewProduct(name, "a product", "general")
	if err != nil {
		t.Fatalf("failed to build product: %v", err)
	}
	return product
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		description string
		category    string
		expectError bool
	}{
		{name: "valid", productName: "widget", description: "a widget", category: "tools", expectError: false},
		{name: "blank name", productName: " ", description: "a widget", category: "tools", expectError: true},
		{name: "blank description", productName: "widget", description: "", category: "tools", expectError: true},
		{name: "blank category", productName: "widget", description: "a widget", category: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.productName, tt.description, tt.category)

			if tt.expectError {
				if !errors.Is(err, ErrEmptyString) {
					t.Errorf("expected ErrEmptyString, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if product.ID.IsZero() {
				t.Error("expected a generated product id")
			}
		})
	}
}

func TestAddProduct(t *testing.T) {
	widget := mustProduct(t, "widget")

	added, err := AddProduct(widget, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added.DisplayOrder) != 1 || added.DisplayOrder[0] != widget.ID {
		t.Errorf("expected new product at the front, got %v", added.DisplayOrder)
	}
}

func TestAddProduct_NewProductGoesFirst(t *testing.T) {
	existing := mustProduct(t, "existing")
	widget := mustProduct(t, "widget")

	order := DisplayOrder{existing.ID}
	names := ProductNames{existing.Name}

	added, err := AddProduct(widget, order, names)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added.DisplayOrder) != 2 || added.DisplayOrder[0] != widget.ID || added.DisplayOrder[1] != existing.ID {
		t.Errorf("expected [widget existing], got %v", added.DisplayOrder)
	}
}

func TestAddProduct_DuplicateName(t *testing.T) {
	widget := mustProduct(t, "widget")
	names := ProductNames{widget.Name}

	_, err := AddProduct(widget, nil, names)
	if !errors.Is(err, ErrProductNameTaken) {
		t.Errorf("expected ErrProductNameTaken, got %v", err)
	}
}

func TestAddProduct_MaxCount(t *testing.T) {
	names := make(ProductNames, 0, MaxProductCount)
	for i := 0; i < MaxProductCount; i++ {
		names = append(names, mustProduct(t, "product-"+string(rune('a'+i))).Name)
	}

	_, err := AddProduct(mustProduct(t, "one too many"), nil, names)
	if !errors.Is(err, ErrMaxProductsExceeded) {
		t.Errorf("expected ErrMaxProductsExceeded, got %v", err)
	}
}

func TestUpdateProduct(t *testing.T) {
	widget := mustProduct(t, "widget")

	// Names exclude the product's own current name.
	updated, err := UpdateProduct(widget, ProductNames{mustProduct(t, "other").Name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Product.ID != widget.ID {
		t.Errorf("expected id preserved, got %s", updated.Product.ID)
	}

	_, err = UpdateProduct(widget, ProductNames{widget.Name})
	if !errors.Is(err, ErrProductNameTaken) {
		t.Errorf("expected ErrProductNameTaken, got %v", err)
	}
}

func TestSuspendStocking(t *testing.T) {
	stocking, err := SuspendStocking("warehouse flooded")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stocking.Suspended || stocking.Reason.String() != "warehouse flooded" {
		t.Errorf("expected suspension with reason, got %+v", stocking)
	}

	err = stocking.EnsureOpen()
	if !errors.Is(err, ErrStockingSuspended) {
		t.Errorf("expected ErrStockingSuspended, got %v", err)
	}

	_, err = SuspendStocking(" ")
	if !errors.Is(err, ErrEmptyString) {
		t.Errorf("expected ErrEmptyString for blank reason, got %v", err)
	}
}

func TestStockingResume(t *testing.T) {
	var open Stocking
	if err := open.EnsureOpen(); err != nil {
		t.Fatalf("zero-value stocking must be open, got %v", err)
	}

	suspended, err := SuspendStocking("inventory count")
	if err != nil {
		t.Fatal(err)
	}

	resumed := suspended.Resume()
	if resumed.Suspended || resumed.Reason.String() != "" {
		t.Errorf("expected resume to clear the suspension, got %+v", resumed)
	}
	if err := resumed.EnsureOpen(); err != nil {
		t.Errorf("expected resumed stocking to be open, got %v", err)
	}
}
