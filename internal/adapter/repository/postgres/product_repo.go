package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gojournal/internal/domain"
)

// ProductRepository implements usecase.ProductRepository on PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// SaveProduct stores the product and replaces the display order in one
// transaction.
func (r *ProductRepository) SaveProduct(ctx context.Context, product domain.Product, order domain.DisplayOrder) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO products (id, name, description, category)
			VALUES ($1::uuid, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, description = EXCLUDED.description, category = EXCLUDED.category`,
			product.ID.String(), product.Name.String(), product.Description.String(), product.Category.String(),
		)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM product_display_order`); err != nil {
			return err
		}

		for position, id := range order {
			_, err := tx.Exec(ctx, `
				INSERT INTO product_display_order (position, product_id)
				VALUES ($1, $2::uuid)`,
				position, id.String(),
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// FindProduct returns a product by id.
func (r *ProductRepository) FindProduct(ctx context.Context, id domain.ID[domain.Product]) (domain.Product, error) {
	var name, description, category string
	err := r.pool.QueryRow(ctx, `
		SELECT name, description, category
		FROM products
		WHERE id = $1::uuid`,
		id.String(),
	).Scan(&name, &description, &category)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	if err != nil {
		return domain.Product{}, err
	}

	return rowToProduct(id.String(), name, description, category)
}

// ProductNames returns the names currently in the catalog.
func (r *ProductRepository) ProductNames(ctx context.Context) (domain.ProductNames, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names domain.ProductNames
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}

		name, err := domain.NewNonEmptyString(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt product name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// DisplayOrder returns the current display order.
func (r *ProductRepository) DisplayOrder(ctx context.Context) (domain.DisplayOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT product_id::text
		FROM product_display_order
		ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var order domain.DisplayOrder
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}

		id, err := domain.ParseID[domain.Product](raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt product id %q: %w", raw, err)
		}
		order = append(order, id)
	}

	return order, rows.Err()
}

// ListProducts returns the catalog in display order.
func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id::text, p.name, p.description, p.category
		FROM products p
		JOIN product_display_order o ON o.product_id = p.id
		ORDER BY o.position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var rawID, name, description, category string
		if err := rows.Scan(&rawID, &name, &description, &category); err != nil {
			return nil, err
		}

		product, err := rowToProduct(rawID, name, description, category)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// Stocking returns the catalog's intake state. A missing row means intake
// has never been suspended.
func (r *ProductRepository) Stocking(ctx context.Context) (domain.Stocking, error) {
	var suspended bool
	var reason string
	err := r.pool.QueryRow(ctx, `SELECT suspended, reason FROM product_stocking WHERE singleton`).Scan(&suspended, &reason)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Stocking{}, nil
	}
	if err != nil {
		return domain.Stocking{}, err
	}

	if !suspended {
		return domain.Stocking{}, nil
	}

	suspensionReason, err := domain.NewNonEmptyString(reason)
	if err != nil {
		return domain.Stocking{}, fmt.Errorf("corrupt suspension reason: %w", err)
	}
	return domain.Stocking{Suspended: true, Reason: suspensionReason}, nil
}

// SaveStocking replaces the catalog's intake state.
func (r *ProductRepository) SaveStocking(ctx context.Context, stocking domain.Stocking) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO product_stocking (singleton, suspended, reason)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton) DO UPDATE
		SET suspended = EXCLUDED.suspended, reason = EXCLUDED.reason`,
		stocking.Suspended, stocking.Reason.String(),
	)
	return err
}

func rowToProduct(rawID, name, description, category string) (domain.Product, error) {
	id, err := domain.ParseID[domain.Product](rawID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("corrupt product id %q: %w", rawID, err)
	}

	productName, err := domain.NewNonEmptyString(name)
	if err != nil {
		return domain.Product{}, fmt.Errorf("corrupt product name: %w", err)
	}
	productDescription, err := domain.NewNonEmptyString(description)
	if err != nil {
		return domain.Product{}, fmt.Errorf("corrupt product description: %w", err)
	}
	productCategory, err := domain.NewNonEmptyString(category)
	if err != nil {
		return domain.Product{}, fmt.Errorf("corrupt product category: %w", err)
	}

	return domain.Product{
		ID:          id,
		Name:        productName,
		Description: productDescription,
		Category:    productCategory,
	}, nil
}
