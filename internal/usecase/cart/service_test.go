package cart

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

func testProduct(t *testing.T, price string, discount float64, stock int) *domain.StandardProduct {
	t.Helper()
	money, err := domain.NewMoneyFromString(price, "EUR")
	require.NoError(t, err)
	p, err := domain.NewStandardProduct(domain.StandardParams{
		Name:        "Test Product",
		Description: "test product",
		Price:       money,
		Stock:       stock,
		Discount:    discount,
	}, nil)
	require.NoError(t, err)
	return p
}

func TestService_AddProduct_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, 0, logger.New("test"))
	product := testProduct(t, "10.00", 0, 5)

	mockRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)

	err := service.AddProduct(context.Background(), "session-1", product.ID(), 2)

	require.NoError(t, err)
	assert.True(t, service.Get("session-1").HasProduct(product.ID()))
	assert.Equal(t, 2, service.Get("session-1").TotalQuantity())
	mockRepo.AssertExpectations(t)
}

func TestService_AddProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, 0, logger.New("test"))
	id := domain.NewProductID()

	mockRepo.On("FindByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	err := service.AddProduct(context.Background(), "session-1", id, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, service.Get("session-1").IsEmpty())
}

func TestService_AddProduct_Unavailable(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, 0, logger.New("test"))
	depleted := testProduct(t, "10.00", 0, 0)

	mockRepo.On("FindByID", mock.Anything, depleted.ID()).Return(depleted, nil)

	err := service.AddProduct(context.Background(), "session-1", depleted.ID(), 1)

	assert.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestService_CartsAreSessionScoped(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, 0, logger.New("test"))
	product := testProduct(t, "10.00", 0, 5)

	mockRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)

	require.NoError(t, service.AddProduct(context.Background(), "alice", product.ID(), 1))

	assert.False(t, service.Get("alice").IsEmpty())
	assert.True(t, service.Get("bob").IsEmpty())
}

func TestService_UpdateQuantityAndRemove(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, 0, logger.New("test"))
	product := testProduct(t, "10.00", 0, 5)

	mockRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	require.NoError(t, service.AddProduct(context.Background(), "s", product.ID(), 1))

	require.NoError(t, service.UpdateQuantity("s", product.ID(), 4))
	assert.Equal(t, 4, service.Get("s").TotalQuantity())

	assert.ErrorIs(t, service.UpdateQuantity("s", domain.NewProductID(), 1), domain.ErrLineNotFound)

	service.RemoveProduct("s", product.ID())
	assert.True(t, service.Get("s").IsEmpty())
}

func TestService_Total(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, 0, logger.New("test"))
	a := testProduct(t, "10.00", 0, 10)
	b := testProduct(t, "5.00", 50, 10)

	mockRepo.On("FindByID", mock.Anything, a.ID()).Return(a, nil)
	mockRepo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

	ctx := context.Background()
	require.NoError(t, service.AddProduct(ctx, "s", a.ID(), 2))
	require.NoError(t, service.AddProduct(ctx, "s", b.ID(), 1))

	total, err := service.Total("s")

	require.NoError(t, err)
	expected, err := domain.NewMoneyFromString("22.50", "EUR")
	require.NoError(t, err)
	assert.True(t, total.Equals(expected))
}

func TestService_Clear(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, 0, logger.New("test"))
	product := testProduct(t, "10.00", 0, 5)

	mockRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	require.NoError(t, service.AddProduct(context.Background(), "s", product.ID(), 3))

	service.Clear("s")

	assert.True(t, service.Get("s").IsEmpty())
}
