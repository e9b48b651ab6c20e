package service

import (
	"context"
	"fmt"
	"time"

	"stock-api/internal/model"
	"stock-api/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves the user's products, filtered and sorted.
func (s *productService) List(ctx context.Context, userID uuid.UUID, filter model.ProductFilter) ([]model.Product, error) {
	switch filter.Stock {
	case "", model.StockFilterAll, model.StockFilterIn, model.StockFilterLow, model.StockFilterOut:
	default:
		return nil, model.ErrInvalidStockFilter
	}

	switch filter.Sort {
	case "", model.SortName, model.SortSKU, model.SortPrice, model.SortStock, model.SortDate:
	default:
		return nil, model.ErrInvalidSortKey
	}

	products, err := s.productRepo.List(ctx, userID, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("user_id", userID.String()).
		Msg("listed products")

	return products, nil
}

// Get retrieves a single product owned by the user.
func (s *productService) Get(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, userID, productID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create adds a product owned by the user. Stock defaults to zero when
// absent. SKU uniqueness is left to the store's unique index.
func (s *productService) Create(ctx context.Context, userID uuid.UUID, req model.CreateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}

	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       stock,
		SKU:         req.SKU,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if err == model.ErrSKUTaken {
			return nil, err
		}
		s.logger.Error().Err(err).Str("sku", req.SKU).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("user_id", userID.String()).
		Str("sku", product.SKU).
		Msg("product created")

	return product, nil
}

// Update applies the provided fields to a product owned by the user.
// Ownership is checked before any mutation; a missing or foreign product
// is the same not-found error either way.
func (s *productService) Update(ctx context.Context, userID, productID uuid.UUID, req model.UpdateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, userID, productID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Msg("failed to load product for update")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	if req.Name != nil && *req.Name != "" {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.SKU != nil && *req.SKU != "" {
		product.SKU = *req.SKU
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if err == model.ErrSKUTaken || err == model.ErrProductNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("user_id", userID.String()).
		Msg("product updated")

	return product, nil
}

// AdjustStock applies a relative stock change to a product owned by the
// user. The existence check runs first so that "not yours" stays a 404
// while a would-go-negative adjustment is a validation failure.
func (s *productService) AdjustStock(ctx context.Context, userID, productID uuid.UUID, req model.AdjustStockRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, userID, productID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Msg("failed to load product for stock adjustment")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	updated, err := s.productRepo.AdjustStock(ctx, userID, productID, *req.Adjustment)
	if err != nil {
		s.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Int("adjustment", *req.Adjustment).
			Msg("failed to adjust stock")
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	if updated == nil {
		return nil, model.ErrNegativeStock
	}

	s.logger.Info().
		Str("product_id", productID.String()).
		Int("adjustment", *req.Adjustment).
		Int("stock", updated.Stock).
		Msg("stock adjusted")

	return updated, nil
}

// Delete removes a product owned by the user.
func (s *productService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	deleted, err := s.productRepo.Delete(ctx, userID, productID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		return model.ErrProductNotFound
	}

	s.logger.Info().
		Str("product_id", productID.String()).
		Str("user_id", userID.String()).
		Msg("product deleted")

	return nil
}

// Stats computes the dashboard aggregates for the user's inventory.
func (s *productService) Stats(ctx context.Context, userID uuid.UUID) (*model.ProductStats, error) {
	stats, err := s.productRepo.Stats(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Msg("failed to compute stats")
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return stats, nil
}
