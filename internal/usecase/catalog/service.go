package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	pkgvalidator "github.com/Pesokrava/product_catalog/internal/pkg/validator"
)

// CreateProductInput is the payload for creating a catalog product. Field
// validation here is a first gate; the domain constructors enforce the real
// invariants afterwards.
type CreateProductInput struct {
	Kind        domain.VariantKind `validate:"required,oneof=standard digital natural"`
	Name        string             `validate:"required,max=100"`
	Description string             `validate:"required"`
	Price       float64            `validate:"gte=0"`
	Currency    string             `validate:"omitempty,len=3"`
	Stock       int                `validate:"gte=-1"`
	CategoryID  string
	ImageURL    string  `validate:"omitempty,url"`
	Discount    float64 `validate:"gte=0,lte=100"`
	Featured    bool
	Tags        []string

	Format      domain.DigitalFormat
	SizeMB      float64 `validate:"gte=0"`
	DownloadURL string  `validate:"omitempty,url"`

	Nature         domain.NatureCategory
	Ingredients    []string
	Benefits       []string
	Certifications []string
}

// Service handles catalog business logic
type Service struct {
	repo     domain.ProductRepository
	factory  *domain.Factory
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new catalog service
func NewService(repo domain.ProductRepository, factory *domain.Factory, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		factory:  factory,
		validate: pkgvalidator.Get(),
		logger:   log,
	}
}

// Create builds a product through the factory and stores it
func (s *Service) Create(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	if err := s.validate.Struct(in); err != nil {
		s.logger.Error("Product input validation failed", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	product, err := s.factory.Create(in.Kind, domain.ProductInput{
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Currency:       in.Currency,
		Stock:          in.Stock,
		CategoryID:     in.CategoryID,
		ImageURL:       in.ImageURL,
		Discount:       in.Discount,
		Featured:       in.Featured,
		Tags:           in.Tags,
		Format:         in.Format,
		SizeMB:         in.SizeMB,
		DownloadURL:    in.DownloadURL,
		Nature:         in.Nature,
		Ingredients:    in.Ingredients,
		Benefits:       in.Benefits,
		Certifications: in.Certifications,
	})
	if err != nil {
		s.logger.Error("Failed to construct product", err)
		return nil, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID().String(),
		"variant":    string(product.Variant()),
		"name":       product.Name(),
	}).Info("Product created successfully")

	return product, nil
}

// GetByID retrieves a product by id
func (s *Service) GetByID(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Product not found: %s", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}
	return product, nil
}

// List retrieves every product
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, err
	}
	return products, nil
}

// ListByCategory retrieves the products in a category
func (s *Service) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	products, err := s.repo.FindByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("Failed to list products by category", err)
		return nil, err
	}
	return products, nil
}

// ListFeatured retrieves the featured products
func (s *Service) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindFeatured(ctx)
	if err != nil {
		s.logger.Error("Failed to list featured products", err)
		return nil, err
	}
	return products, nil
}

// Rename changes a product's name
func (s *Service) Rename(ctx context.Context, id domain.ProductID, name string) error {
	return s.mutate(ctx, id, "renamed", func(p domain.Product) error {
		return p.SetName(name)
	})
}

// ChangePrice replaces a product's base price
func (s *Service) ChangePrice(ctx context.Context, id domain.ProductID, amount float64, currency string) error {
	price, err := domain.NewMoney(amount, currency)
	if err != nil {
		return err
	}
	return s.mutate(ctx, id, "repriced", func(p domain.Product) error {
		return p.SetPrice(price)
	})
}

// ReduceStock decrements a product's stock
func (s *Service) ReduceStock(ctx context.Context, id domain.ProductID, qty int) error {
	return s.mutate(ctx, id, "stock reduced", func(p domain.Product) error {
		return p.ReduceStock(qty)
	})
}

// IncreaseStock increments a product's stock
func (s *Service) IncreaseStock(ctx context.Context, id domain.ProductID, qty int) error {
	return s.mutate(ctx, id, "stock increased", func(p domain.Product) error {
		return p.IncreaseStock(qty)
	})
}

// Delete removes a product from the repository. Deletion is a repository
// concern; products themselves have no terminal state.
func (s *Service) Delete(ctx context.Context, id domain.ProductID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id.String(),
	}).Info("Product deleted successfully")

	return nil
}

// mutate loads a product, applies a domain mutation and persists the result.
func (s *Service) mutate(ctx context.Context, id domain.ProductID, action string, fn func(domain.Product) error) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to load product for mutation", err)
		return err
	}

	if err := fn(product); err != nil {
		s.logger.Error("Product mutation rejected", err)
		return err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to persist product mutation", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id.String(),
		"action":     action,
	}).Info("Product mutated successfully")

	return nil
}
