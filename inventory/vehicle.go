// Package inventory supplies vehicle listings to the sales desk from
// pluggable sources: a seeded demo generator, a CSV file, or a MySQL table.
package inventory

import (
	"context"
	"fmt"
)

// Vehicle is one immutable listing. BasePrice is in yen. Records are passed
// by value and never mutated after construction.
type Vehicle struct {
	ID           string `json:"id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	BasePrice    int64  `json:"base_price"`
	Mileage      int    `json:"mileage"`
	Fuel         string `json:"fuel"`
	Transmission string `json:"transmission"`
	Color        string `json:"color"`
	Grade        string `json:"grade"`
	Location     string `json:"location"`
	ImageURL     string `json:"image_url,omitempty"`
}

// DisplayName returns the "2021 Toyota Harrier" form used in chat replies
// and invoices.
func (v Vehicle) DisplayName() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}

// Validate reports whether the listing is usable by the desk.
func (v Vehicle) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidListing)
	}
	if v.Make == "" || v.Model == "" {
		return fmt.Errorf("%w: %s: missing make/model", ErrInvalidListing, v.ID)
	}
	if v.BasePrice <= 0 {
		return fmt.Errorf("%w: %s: non-positive price %d", ErrInvalidListing, v.ID, v.BasePrice)
	}
	return nil
}

// Source provides vehicle listings. Implementations must be safe for
// concurrent use.
type Source interface {
	// List returns all available listings.
	List(ctx context.Context) ([]Vehicle, error)
	// Get returns the listing with the given ID, or ErrVehicleNotFound.
	Get(ctx context.Context, id string) (Vehicle, error)
}
