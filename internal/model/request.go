package model

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks presence of all fields and the minimum password length.
func (r RegisterRequest) Validate() error {
	if validation.Validate(r.Name, validation.Required) != nil ||
		validation.Validate(r.Email, validation.Required) != nil ||
		validation.Validate(r.Password, validation.Required) != nil {
		return ErrMissingRegisterFields
	}
	if validation.Validate(r.Password, validation.Length(6, 0)) != nil {
		return ErrPasswordTooShort
	}
	return nil
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks presence of both fields.
func (r LoginRequest) Validate() error {
	if validation.Validate(r.Email, validation.Required) != nil ||
		validation.Validate(r.Password, validation.Required) != nil {
		return ErrMissingLoginFields
	}
	return nil
}

// CreateProductRequest is the payload for POST /api/products. Price and
// Stock are pointers so that absent and zero values are distinguishable.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	SKU         string           `json:"sku"`
}

// Validate checks required fields and numeric ranges. Stock defaults to
// zero when absent, so only a provided negative value is rejected.
func (r CreateProductRequest) Validate() error {
	if validation.Validate(r.Name, validation.Required) != nil ||
		r.Price == nil ||
		validation.Validate(r.SKU, validation.Required) != nil {
		return ErrMissingProductFields
	}
	if r.Price.IsNegative() {
		return ErrNegativePrice
	}
	if validation.Validate(r.Stock, validation.Min(0)) != nil {
		return ErrNegativeStock
	}
	return nil
}

// UpdateProductRequest is the payload for PUT /api/products/{id}. All
// fields are optional; only provided fields are applied.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	SKU         *string          `json:"sku"`
}

// Validate re-checks numeric ranges for any provided field.
func (r UpdateProductRequest) Validate() error {
	if r.Price != nil && r.Price.IsNegative() {
		return ErrNegativePrice
	}
	if validation.Validate(r.Stock, validation.Min(0)) != nil {
		return ErrNegativeStock
	}
	return nil
}

// AdjustStockRequest is the payload for PATCH /api/products/{id}/stock.
// Adjustment is a relative delta; the resulting stock must stay >= 0.
type AdjustStockRequest struct {
	Adjustment *int `json:"adjustment"`
}

// Validate checks that an adjustment was provided.
func (r AdjustStockRequest) Validate() error {
	if r.Adjustment == nil {
		return ErrMissingAdjustment
	}
	return nil
}
