package repository

import (
	"context"

	"stock-api/internal/model"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user. Returns model.ErrEmailTaken if the email
	// is already registered.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email. Returns nil without error if
	// no such user exists.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by id. Returns nil without error if no
	// such user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// ProductRepository defines the interface for product data access
// operations. Every operation is scoped to the owning user.
type ProductRepository interface {
	// List retrieves the user's products, narrowed and ordered by filter.
	List(ctx context.Context, userID uuid.UUID, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a product owned by the user. Returns nil without
	// error if the product does not exist or belongs to someone else.
	GetByID(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error)

	// Create inserts a new product. Returns model.ErrSKUTaken if the SKU
	// is already in use by any product.
	Create(ctx context.Context, product *model.Product) error

	// Update persists all mutable fields of the product, keyed by id and
	// owner. Returns model.ErrSKUTaken on a SKU collision.
	Update(ctx context.Context, product *model.Product) error

	// AdjustStock atomically applies a relative stock change, refusing any
	// change that would drive stock below zero. Returns the updated
	// product, or nil if no row matched (missing, not owned, or the
	// adjustment would go negative).
	AdjustStock(ctx context.Context, userID, productID uuid.UUID, delta int) (*model.Product, error)

	// Delete removes a product owned by the user. Reports whether a row
	// was deleted.
	Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// Stats computes the dashboard aggregates over the user's products.
	Stats(ctx context.Context, userID uuid.UUID) (*model.ProductStats, error)
}
