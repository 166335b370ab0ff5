package inventory

import "errors"

// Sentinel errors for inventory sources.
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidListing  = errors.New("invalid listing")
	ErrMissingColumns  = errors.New("inventory file missing required columns")
	ErrEmptyInventory  = errors.New("inventory is empty")
)
