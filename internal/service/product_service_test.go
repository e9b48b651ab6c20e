package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-api/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, userID uuid.UUID, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, userID, productID uuid.UUID, delta int) (*model.Product, error) {
	args := m.Called(ctx, userID, productID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Stats(ctx context.Context, userID uuid.UUID) (*model.ProductStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductStats), args.Error(1)
}

func strPtr(s string) *string          { return &s }
func intPtr(i int) *int                { return &i }
func decPtr(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }

func testProduct(userID uuid.UUID) *model.Product {
	return &model.Product{
		ID:          uuid.New(),
		Name:        "Widget",
		Description: strPtr("A widget"),
		Price:       decimal.RequireFromString("10"),
		Stock:       3,
		SKU:         "W1",
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
}

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Invalid stock filter", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.List(ctx, userID, model.ProductFilter{Stock: "plenty"})
		assert.ErrorIs(t, err, model.ErrInvalidStockFilter)
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid sort key", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.List(ctx, userID, model.ProductFilter{Sort: "colour"})
		assert.ErrorIs(t, err, model.ErrInvalidSortKey)
	})

	t.Run("Empty result is an empty slice", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("List", ctx, userID, model.ProductFilter{}).Return(nil, nil)
		svc := NewProductService(mockRepo, logger)

		products, err := svc.List(ctx, userID, model.ProductFilter{})
		require.NoError(t, err)
		require.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("Passes filter through", func(t *testing.T) {
		filter := model.ProductFilter{Search: "wid", Stock: model.StockFilterLow, Sort: model.SortPrice}
		expected := []model.Product{*testProduct(userID)}

		mockRepo := new(MockProductRepository)
		mockRepo.On("List", ctx, userID, filter).Return(expected, nil)
		svc := NewProductService(mockRepo, logger)

		products, err := svc.List(ctx, userID, filter)
		require.NoError(t, err)
		assert.Equal(t, expected, products)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("List", ctx, userID, model.ProductFilter{}).
			Return(nil, errors.New("database error"))
		svc := NewProductService(mockRepo, logger)

		_, err := svc.List(ctx, userID, model.ProductFilter{})
		assert.Error(t, err)
	})
}

func TestProductService_Get(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		product := testProduct(userID)
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetByID", ctx, userID, product.ID).Return(product, nil)
		svc := NewProductService(mockRepo, logger)

		got, err := svc.Get(ctx, userID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Missing or owned by someone else", func(t *testing.T) {
		productID := uuid.New()
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetByID", ctx, userID, productID).Return(nil, nil)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.Get(ctx, userID, productID)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name        string
		req         model.CreateProductRequest
		expectedErr error
	}{
		{
			name:        "Missing name",
			req:         model.CreateProductRequest{Price: decPtr("10"), SKU: "W1"},
			expectedErr: model.ErrMissingProductFields,
		},
		{
			name:        "Missing price",
			req:         model.CreateProductRequest{Name: "Widget", SKU: "W1"},
			expectedErr: model.ErrMissingProductFields,
		},
		{
			name:        "Missing sku",
			req:         model.CreateProductRequest{Name: "Widget", Price: decPtr("10")},
			expectedErr: model.ErrMissingProductFields,
		},
		{
			name:        "Negative price",
			req:         model.CreateProductRequest{Name: "Widget", Price: decPtr("-0.01"), SKU: "W1"},
			expectedErr: model.ErrNegativePrice,
		},
		{
			name:        "Negative stock",
			req:         model.CreateProductRequest{Name: "Widget", Price: decPtr("10"), Stock: intPtr(-1), SKU: "W1"},
			expectedErr: model.ErrNegativeStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			svc := NewProductService(mockRepo, logger)

			_, err := svc.Create(ctx, userID, tt.req)
			assert.ErrorIs(t, err, tt.expectedErr)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("Success with defaulted stock", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		var created *model.Product
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*model.Product)
			}).
			Return(nil)
		svc := NewProductService(mockRepo, logger)

		product, err := svc.Create(ctx, userID, model.CreateProductRequest{
			Name:  "Widget",
			Price: decPtr("10"),
			SKU:   "W1",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created, product)
		assert.Equal(t, 0, product.Stock)
		assert.Equal(t, userID, product.UserID)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("10")))
	})

	t.Run("Zero price is allowed", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)
		svc := NewProductService(mockRepo, logger)

		product, err := svc.Create(ctx, userID, model.CreateProductRequest{
			Name:  "Freebie",
			Price: decPtr("0"),
			SKU:   "F1",
		})
		require.NoError(t, err)
		assert.True(t, product.Price.IsZero())
	})

	t.Run("Duplicate sku", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).
			Return(model.ErrSKUTaken)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.Create(ctx, userID, model.CreateProductRequest{
			Name:  "Widget",
			Price: decPtr("10"),
			SKU:   "W1",
		})
		assert.ErrorIs(t, err, model.ErrSKUTaken)
	})
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Only stock provided leaves other fields unchanged", func(t *testing.T) {
		existing := testProduct(userID)
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetByID", ctx, userID, existing.ID).Return(existing, nil)

		var saved *model.Product
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*model.Product)
			}).
			Return(nil)
		svc := NewProductService(mockRepo, logger)

		updated, err := svc.Update(ctx, userID, existing.ID, model.UpdateProductRequest{
			Stock: intPtr(5),
		})
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Equal(t, 5, saved.Stock)
		assert.Equal(t, "Widget", saved.Name)
		assert.Equal(t, "W1", saved.SKU)
		assert.True(t, saved.Price.Equal(decimal.RequireFromString("10")))
		assert.Equal(t, strPtr("A widget"), saved.Description)
		assert.Equal(t, updated, saved)
	})

	t.Run("Missing or foreign product", func(t *testing.T) {
		productID := uuid.New()
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetByID", ctx, userID, productID).Return(nil, nil)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.Update(ctx, userID, productID, model.UpdateProductRequest{Stock: intPtr(5)})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Negative price rejected before any read", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.Update(ctx, userID, uuid.New(), model.UpdateProductRequest{
			Price: decPtr("-1"),
		})
		assert.ErrorIs(t, err, model.ErrNegativePrice)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SKU change hits a conflict", func(t *testing.T) {
		existing := testProduct(userID)
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetByID", ctx, userID, existing.ID).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).
			Return(model.ErrSKUTaken)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.Update(ctx, userID, existing.ID, model.UpdateProductRequest{
			SKU: strPtr("TAKEN"),
		})
		assert.ErrorIs(t, err, model.ErrSKUTaken)
	})
}

func TestProductService_AdjustStock(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Missing adjustment", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.AdjustStock(ctx, userID, uuid.New(), model.AdjustStockRequest{})
		assert.ErrorIs(t, err, model.ErrMissingAdjustment)
	})

	t.Run("Missing or foreign product", func(t *testing.T) {
		productID := uuid.New()
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetByID", ctx, userID, productID).Return(nil, nil)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.AdjustStock(ctx, userID, productID, model.AdjustStockRequest{Adjustment: intPtr(1)})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("Adjustment below zero", func(t *testing.T) {
		existing := testProduct(userID)
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetByID", ctx, userID, existing.ID).Return(existing, nil)
		mockRepo.On("AdjustStock", ctx, userID, existing.ID, -5).Return(nil, nil)
		svc := NewProductService(mockRepo, logger)

		_, err := svc.AdjustStock(ctx, userID, existing.ID, model.AdjustStockRequest{Adjustment: intPtr(-5)})
		assert.ErrorIs(t, err, model.ErrNegativeStock)
	})

	t.Run("Success", func(t *testing.T) {
		existing := testProduct(userID)
		updated := *existing
		updated.Stock = existing.Stock + 2

		mockRepo := new(MockProductRepository)
		mockRepo.On("GetByID", ctx, userID, existing.ID).Return(existing, nil)
		mockRepo.On("AdjustStock", ctx, userID, existing.ID, 2).Return(&updated, nil)
		svc := NewProductService(mockRepo, logger)

		got, err := svc.AdjustStock(ctx, userID, existing.ID, model.AdjustStockRequest{Adjustment: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, 5, got.Stock)
	})
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Delete", ctx, userID, productID).Return(true, nil)
		svc := NewProductService(mockRepo, logger)

		assert.NoError(t, svc.Delete(ctx, userID, productID))
	})

	t.Run("Missing or foreign product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Delete", ctx, userID, productID).Return(false, nil)
		svc := NewProductService(mockRepo, logger)

		assert.ErrorIs(t, svc.Delete(ctx, userID, productID), model.ErrProductNotFound)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("Delete", ctx, userID, productID).Return(false, errors.New("database error"))
		svc := NewProductService(mockRepo, logger)

		err := svc.Delete(ctx, userID, productID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestProductService_Stats(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	userID := uuid.New()

	expected := &model.ProductStats{
		TotalProducts:   3,
		TotalValue:      decimal.RequireFromString("130"),
		LowStockCount:   1,
		OutOfStockCount: 1,
	}

	mockRepo := new(MockProductRepository)
	mockRepo.On("Stats", ctx, userID).Return(expected, nil)
	svc := NewProductService(mockRepo, logger)

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
