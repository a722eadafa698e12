package domain

import "context"

// ProductRepository defines the interface for product data access. The
// engine consumes it; storage lives behind it. FindByID returns ErrNotFound
// when the product is absent; callers preferring a sentinel over an error
// can substitute NewNullProduct at their boundary.
type ProductRepository interface {
	// FindByID retrieves a product by id
	FindByID(ctx context.Context, id ProductID) (Product, error)

	// FindAll retrieves every product
	FindAll(ctx context.Context) ([]Product, error)

	// FindByCategory retrieves the products in a category
	FindByCategory(ctx context.Context, categoryID string) ([]Product, error)

	// FindFeatured retrieves the products flagged as featured
	FindFeatured(ctx context.Context) ([]Product, error)

	// Save stores a new product; an already-stored id fails with ErrAlreadyExists
	Save(ctx context.Context, product Product) error

	// Update replaces a stored product; missing ids fail with ErrNotFound
	Update(ctx context.Context, product Product) error

	// Delete removes a product; missing ids fail with ErrNotFound
	Delete(ctx context.Context, id ProductID) error
}
