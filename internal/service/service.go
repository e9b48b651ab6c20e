package service

import (
	"context"

	"stock-api/internal/model"

	"github.com/google/uuid"
)

// AuthService defines registration and credential verification.
type AuthService interface {
	// Register creates an account and returns its public fields plus an
	// issued token.
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error)

	// Login verifies credentials and returns the user plus an issued
	// token. Failures are deliberately indistinguishable between unknown
	// email and wrong password.
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error)
}

// ProductService defines operations over a user's inventory. Every
// operation takes the authenticated user id as a scoping parameter.
type ProductService interface {
	// List retrieves the user's products, filtered and sorted.
	List(ctx context.Context, userID uuid.UUID, filter model.ProductFilter) ([]model.Product, error)

	// Get retrieves a single product owned by the user.
	Get(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error)

	// Create adds a product owned by the user.
	Create(ctx context.Context, userID uuid.UUID, req model.CreateProductRequest) (*model.Product, error)

	// Update applies the provided fields to a product owned by the user.
	Update(ctx context.Context, userID, productID uuid.UUID, req model.UpdateProductRequest) (*model.Product, error)

	// AdjustStock applies a relative stock change to a product owned by
	// the user.
	AdjustStock(ctx context.Context, userID, productID uuid.UUID, req model.AdjustStockRequest) (*model.Product, error)

	// Delete removes a product owned by the user.
	Delete(ctx context.Context, userID, productID uuid.UUID) error

	// Stats computes the dashboard aggregates for the user's inventory.
	Stats(ctx context.Context, userID uuid.UUID) (*model.ProductStats, error)
}
