package cart

import (
	"context"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

// Service owns one cart per session key and runs cart operations against
// products loaded through the repository. Carts are created on demand and
// passed by reference; there is no process-wide cart.
type Service struct {
	repo     domain.ProductRepository
	carts    map[string]*domain.Cart
	maxLines int
	logger   *logger.Logger
}

// NewService creates a new cart service. maxLines <= 0 selects the default
// cart capacity.
func NewService(repo domain.ProductRepository, maxLines int, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		carts:    make(map[string]*domain.Cart),
		maxLines: maxLines,
		logger:   log,
	}
}

// Get returns the session's cart, creating it on first use.
func (s *Service) Get(sessionID string) *domain.Cart {
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	cart := domain.NewCart(s.maxLines)
	s.carts[sessionID] = cart
	return cart
}

// AddProduct loads the product and adds it to the session's cart.
func (s *Service) AddProduct(ctx context.Context, sessionID string, id domain.ProductID, qty int) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load product for cart", err)
		return err
	}

	if err := s.Get(sessionID).AddProduct(product, qty); err != nil {
		s.logger.Error("Failed to add product to cart", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"session_id": sessionID,
		"product_id": id.String(),
		"quantity":   qty,
	}).Info("Product added to cart")

	return nil
}

// RemoveProduct drops the product's line from the session's cart.
func (s *Service) RemoveProduct(sessionID string, id domain.ProductID) {
	s.Get(sessionID).RemoveProduct(id)
}

// UpdateQuantity replaces a line's quantity in the session's cart.
func (s *Service) UpdateQuantity(sessionID string, id domain.ProductID, qty int) error {
	if err := s.Get(sessionID).UpdateQuantity(id, qty); err != nil {
		s.logger.Error("Failed to update cart quantity", err)
		return err
	}
	return nil
}

// Total computes the session cart's total.
func (s *Service) Total(sessionID string) (domain.Money, error) {
	total, err := s.Get(sessionID).Total()
	if err != nil {
		s.logger.Error("Failed to total cart", err)
		return domain.Money{}, err
	}
	return total, nil
}

// Clear empties the session's cart.
func (s *Service) Clear(sessionID string) {
	s.Get(sessionID).Clear()
}
