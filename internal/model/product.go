package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product counts as
// "low stock" in filters and dashboard stats.
const LowStockThreshold = 10

// Product represents an inventory item owned by a single user. Price is a
// decimal to avoid binary floating-point drift on currency values.
type Product struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	SKU         string          `json:"sku" db:"sku"`
	UserID      uuid.UUID       `json:"userId" db:"user_id"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// Stock filter values accepted by the product list endpoint.
const (
	StockFilterAll = "all"
	StockFilterIn  = "in"
	StockFilterLow = "low"
	StockFilterOut = "out"
)

// Sort keys accepted by the product list endpoint. SortDate orders by
// creation time descending; the rest are ascending.
const (
	SortName  = "name"
	SortSKU   = "sku"
	SortPrice = "price"
	SortStock = "stock"
	SortDate  = "date"
)

// ProductFilter narrows and orders a product listing. Zero value means
// "everything, newest first".
type ProductFilter struct {
	Search string
	Stock  string
	Sort   string
}

// ProductStats holds the dashboard aggregates for one user's inventory.
// TotalValue is the sum of price*stock across all products.
type ProductStats struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
}
