package desk

import "errors"

// Sentinel errors for desk operations.
var (
	// ErrNoVehicle is returned when a negotiation command arrives before the
	// buyer has selected a vehicle.
	ErrNoVehicle = errors.New("no vehicle selected")
	// ErrNotConcluded is returned by Issue before a price has been agreed.
	ErrNotConcluded = errors.New("negotiation not concluded")
)
