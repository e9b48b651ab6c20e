package model

// Standard error codes for API responses
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure with a stable code and a message
// safe to return to clients.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingRegisterFields = NewDomainError(ErrCodeValidation, "Please provide name, email, and password")
	ErrPasswordTooShort      = NewDomainError(ErrCodeValidation, "Password must be at least 6 characters long")
	ErrMissingLoginFields    = NewDomainError(ErrCodeValidation, "Please provide email, and password")
	ErrEmailTaken            = NewDomainError(ErrCodeConflict, "User already exists with this email")
	ErrInvalidCredentials    = NewDomainError(ErrCodeInvalidCredentials, "Invalid credentials")

	ErrMissingProductFields = NewDomainError(ErrCodeValidation, "Please provide name, price, and SKU")
	ErrNegativePrice        = NewDomainError(ErrCodeValidation, "Price cannot be negative")
	ErrNegativeStock        = NewDomainError(ErrCodeValidation, "Stock cannot be negative")
	ErrMissingAdjustment    = NewDomainError(ErrCodeValidation, "Please provide a stock adjustment")
	ErrInvalidStockFilter   = NewDomainError(ErrCodeValidation, "Invalid stock filter")
	ErrInvalidSortKey       = NewDomainError(ErrCodeValidation, "Invalid sort key")
	ErrSKUTaken             = NewDomainError(ErrCodeConflict, "Product with this SKU already exists")
	ErrProductNotFound      = NewDomainError(ErrCodeNotFound, "Product not found")
)
