package pricing

import "errors"

// Sentinel errors for price computation.
var (
	ErrInvalidPrice    = errors.New("invalid base price")
	ErrUnknownIncoterm = errors.New("unknown incoterm")
	ErrUnknownCurrency = errors.New("unknown display currency")
)
