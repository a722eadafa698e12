package memory

import (
	"context"
	"sync"

	"github.com/Pesokrava/product_catalog/internal/domain"
)

// featuredProduct is the capability the standard and natural variants expose
// for listing queries; variants without it are never featured.
type featuredProduct interface {
	Featured() bool
}

// ProductRepository is an in-memory implementation of
// domain.ProductRepository. It guards its map so it can back concurrent
// services and parallel tests, unlike the single-threaded domain engine.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	order    []string
}

// NewProductRepository creates an empty repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]domain.Product),
	}
}

// FindByID retrieves a product by id, or domain.ErrNotFound.
func (r *ProductRepository) FindByID(_ context.Context, id domain.ProductID) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id.String()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// FindAll retrieves every product in insertion order.
func (r *ProductRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Product, 0, len(r.order))
	for _, key := range r.order {
		all = append(all, r.products[key])
	}
	return all, nil
}

// FindByCategory retrieves the products whose category id matches.
func (r *ProductRepository) FindByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Product, 0)
	for _, key := range r.order {
		if p := r.products[key]; p.CategoryID() == categoryID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// FindFeatured retrieves the products whose variant carries a featured flag
// set to true.
func (r *ProductRepository) FindFeatured(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := make([]domain.Product, 0)
	for _, key := range r.order {
		p := r.products[key]
		if f, ok := p.(featuredProduct); ok && f.Featured() {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// Save stores a new product.
func (r *ProductRepository) Save(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := product.ID().String()
	if _, ok := r.products[key]; ok {
		return domain.ErrAlreadyExists
	}
	r.products[key] = product
	r.order = append(r.order, key)
	return nil
}

// Update replaces a stored product.
func (r *ProductRepository) Update(_ context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := product.ID().String()
	if _, ok := r.products[key]; !ok {
		return domain.ErrNotFound
	}
	r.products[key] = product
	return nil
}

// Delete removes a product.
func (r *ProductRepository) Delete(_ context.Context, id domain.ProductID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.products[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
