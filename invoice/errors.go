package invoice

import "errors"

// Sentinel errors for invoice assembly and the archive store.
var (
	ErrMissingCustomer = errors.New("customer name is required")
	ErrPriceMismatch   = errors.New("breakdown does not match final price")
	ErrNotFound        = errors.New("invoice not found")
	ErrLoadFailed      = errors.New("invoice load failed")
	ErrSaveFailed      = errors.New("invoice save failed")
)
