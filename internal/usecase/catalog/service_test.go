package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/product_catalog/internal/domain"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindFeatured(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id domain.ProductID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(repo domain.ProductRepository) *Service {
	log := logger.New("test")
	factory := domain.NewFactory(domain.NewEventBus(), "EUR")
	return NewService(repo, factory, log)
}

func standardProduct(t *testing.T) *domain.StandardProduct {
	t.Helper()
	price, err := domain.NewMoneyFromString("10.00", "EUR")
	require.NoError(t, err)
	p, err := domain.NewStandardProduct(domain.StandardParams{
		Name:        "Ceramic Mug",
		Description: "Hand-glazed ceramic mug",
		Price:       price,
		Stock:       5,
	}, nil)
	require.NoError(t, err)
	return p
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	product, err := service.Create(context.Background(), CreateProductInput{
		Kind:        domain.VariantStandard,
		Name:        "Ceramic Mug",
		Description: "Hand-glazed ceramic mug",
		Price:       10,
		Stock:       5,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.VariantStandard, product.Variant())
	mockRepo.AssertExpectations(t)
}

func TestService_Create_InvalidInput(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	_, err := service.Create(context.Background(), CreateProductInput{
		Kind:        domain.VariantStandard,
		Name:        "", // Invalid: empty name
		Description: "d",
		Price:       10,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestService_Create_UnknownKind(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	_, err := service.Create(context.Background(), CreateProductInput{
		Kind:        "bundle",
		Name:        "n",
		Description: "d",
		Price:       10,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestService_Create_ConstructorRejection(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	// Passes DTO validation but the digital constructor requires a URL
	_, err := service.Create(context.Background(), CreateProductInput{
		Kind:        domain.VariantDigital,
		Name:        "Course",
		Description: "d",
		Price:       10,
		Format:      domain.FormatPDF,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestService_GetByID_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)
	expected := standardProduct(t)

	mockRepo.On("FindByID", mock.Anything, expected.ID()).Return(expected, nil)

	product, err := service.GetByID(context.Background(), expected.ID())

	require.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)
}

func TestService_GetByID_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)
	id := domain.NewProductID()

	mockRepo.On("FindByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	product, err := service.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestService_List_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)
	expected := []domain.Product{standardProduct(t), standardProduct(t)}

	mockRepo.On("FindAll", mock.Anything).Return(expected, nil)

	products, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestService_ListFeatured_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)
	expected := []domain.Product{standardProduct(t)}

	mockRepo.On("FindFeatured", mock.Anything).Return(expected, nil)

	products, err := service.ListFeatured(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestService_ReduceStock_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)
	product := standardProduct(t)

	mockRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	mockRepo.On("Update", mock.Anything, product).Return(nil)

	err := service.ReduceStock(context.Background(), product.ID(), 3)

	require.NoError(t, err)
	assert.Equal(t, 2, product.Stock())
	mockRepo.AssertExpectations(t)
}

func TestService_ReduceStock_Insufficient(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)
	product := standardProduct(t)

	mockRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)

	err := service.ReduceStock(context.Background(), product.ID(), 10)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 5, product.Stock())
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Rename_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)
	product := standardProduct(t)

	mockRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	mockRepo.On("Update", mock.Anything, product).Return(nil)

	err := service.Rename(context.Background(), product.ID(), "Travel Mug")

	require.NoError(t, err)
	assert.Equal(t, "Travel Mug", product.Name())
	mockRepo.AssertExpectations(t)
}

func TestService_ChangePrice_Invalid(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	err := service.ChangePrice(context.Background(), domain.NewProductID(), -5, "EUR")

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	mockRepo.AssertNotCalled(t, "FindByID")
}

func TestService_Delete_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)
	id := domain.NewProductID()

	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	err := service.Delete(context.Background(), id)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
