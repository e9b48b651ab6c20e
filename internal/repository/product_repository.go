package repository

import (
	"context"
	"errors"
	"fmt"

	"stock-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, name, description, price, stock, sku, user_id, created_at"

// uniqueViolation is the SQLSTATE for a unique constraint violation.
// Check-then-insert races are settled here: the database rejects the
// loser and the error is mapped to a domain conflict.
const uniqueViolation = "23505"

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves the user's products, narrowed and ordered by filter.
func (r *productRepository) List(ctx context.Context, userID uuid.UUID, filter model.ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(
			" AND (name ILIKE $%d OR sku ILIKE $%d OR COALESCE(description, '') ILIKE $%d)",
			n, n, n,
		)
	}

	switch filter.Stock {
	case model.StockFilterIn:
		query += " AND stock > 0"
	case model.StockFilterLow:
		query += fmt.Sprintf(" AND stock > 0 AND stock < %d", model.LowStockThreshold)
	case model.StockFilterOut:
		query += " AND stock = 0"
	}

	switch filter.Sort {
	case model.SortName:
		query += " ORDER BY name"
	case model.SortSKU:
		query += " ORDER BY sku"
	case model.SortPrice:
		query += " ORDER BY price"
	case model.SortStock:
		query += " ORDER BY stock"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a product owned by the user. The same nil result
// covers "does not exist" and "owned by someone else" so that callers
// cannot leak other users' records.
func (r *productRepository) GetByID(ctx context.Context, userID, productID uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2`

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, productID, userID), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", productID.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product. SKU uniqueness is global across users and
// enforced by the database's unique index.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, sku, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.Stock, product.SKU, product.UserID, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "products_sku_key") {
			r.logger.Debug().Str("sku", product.SKU).Msg("sku already in use")
			return model.ErrSKUTaken
		}
		r.logger.Error().Err(err).
			Str("product_id", product.ID.String()).
			Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().
		Str("product_id", product.ID.String()).
		Str("sku", product.SKU).
		Msg("product created")

	return nil
}

// Update persists all mutable fields of the product, keyed by id and owner.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET name = $3, description = $4, price = $5, stock = $6, sku = $7
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		product.ID, product.UserID, product.Name, product.Description,
		product.Price, product.Stock, product.SKU,
	)
	if err != nil {
		if isUniqueViolation(err, "products_sku_key") {
			r.logger.Debug().Str("sku", product.SKU).Msg("sku already in use")
			return model.ErrSKUTaken
		}
		r.logger.Error().Err(err).
			Str("product_id", product.ID.String()).
			Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// AdjustStock atomically applies a relative stock change. The guard in the
// WHERE clause keeps stock non-negative even under concurrent adjustments.
func (r *productRepository) AdjustStock(ctx context.Context, userID, productID uuid.UUID, delta int) (*model.Product, error) {
	query := `
		UPDATE products
		SET stock = stock + $3
		WHERE id = $1 AND user_id = $2 AND stock + $3 >= 0
		RETURNING ` + productColumns

	var p model.Product
	err := scanProduct(r.pool.QueryRow(ctx, query, productID, userID, delta), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Int("delta", delta).
			Msg("failed to adjust stock")
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return &p, nil
}

// Delete removes a product owned by the user.
func (r *productRepository) Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	query := `DELETE FROM products WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, productID, userID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", productID.String()).
			Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Stats computes the dashboard aggregates over the user's products.
func (r *productRepository) Stats(ctx context.Context, userID uuid.UUID) (*model.ProductStats, error) {
	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COALESCE(SUM(price * stock), 0),
			COUNT(*) FILTER (WHERE stock > 0 AND stock < %d),
			COUNT(*) FILTER (WHERE stock = 0)
		FROM products
		WHERE user_id = $1
	`, model.LowStockThreshold)

	var stats model.ProductStats
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&stats.TotalProducts,
		&stats.TotalValue,
		&stats.LowStockCount,
		&stats.OutOfStockCount,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("user_id", userID.String()).
			Msg("failed to compute product stats")
		return nil, fmt.Errorf("failed to compute product stats: %w", err)
	}

	return &stats, nil
}

// scanProduct scans one product row in productColumns order.
func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price,
		&p.Stock, &p.SKU, &p.UserID, &p.CreatedAt,
	)
}
