// Package pricing converts a vehicle's listed base price and a shipping
// incoterm into a full landed-cost breakdown. Calculations are pure: the
// calculator holds configuration only and is safe for concurrent use.
package pricing

import (
	"fmt"
	"math"
)

// Incoterm is the shipping-cost tier determining which components apply.
type Incoterm string

const (
	FOB   Incoterm = "FOB" // Free on board: domestic transport only.
	CAndF Incoterm = "C&F" // Cost and freight: adds ocean freight.
	CIF   Incoterm = "CIF" // Cost, insurance and freight: adds insurance.
)

// ParseIncoterm normalizes a caller-supplied incoterm string.
// Returns ErrUnknownIncoterm for anything outside FOB/C&F/CIF.
func ParseIncoterm(s string) (Incoterm, error) {
	switch Incoterm(s) {
	case FOB, CAndF, CIF:
		return Incoterm(s), nil
	case "CNF", "CFR": // common aliases for cost-and-freight
		return CAndF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIncoterm, s)
}

// Breakdown is the landed-price decomposition for one vehicle at one incoterm.
// Amounts are in the listing currency's smallest unit (yen). Components not
// activated by the incoterm are zero, and TotalPrice is always the sum of the
// other four fields.
type Breakdown struct {
	Incoterm          Incoterm `json:"incoterm"`
	BasePrice         int64    `json:"base_price"`
	DomesticTransport int64    `json:"domestic_transport"`
	FreightCost       int64    `json:"freight_cost"`
	Insurance         int64    `json:"insurance"`
	TotalPrice        int64    `json:"total_price"`
}

// Calculator computes breakdowns from configured fee levels.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a Calculator from configuration. A nil config uses
// the defaults.
func NewCalculator(cfg *Config) *Calculator {
	c := DefaultConfig()
	if cfg != nil {
		c.Merge(cfg)
	}
	return &Calculator{cfg: c}
}

// Compute maps (basePrice, incoterm) to a Breakdown.
//
// Domestic transport applies to every supported incoterm, freight to C&F and
// CIF, and insurance only to CIF. Insurance is charged on the cost-and-freight
// value (base price plus freight), not on base price alone.
//
// Returns ErrInvalidPrice for a non-positive base price — callers that want a
// degraded "total = base" display must do so explicitly after logging, never
// by silent coercion here.
func (c *Calculator) Compute(basePrice int64, term Incoterm) (Breakdown, error) {
	if basePrice <= 0 {
		return Breakdown{}, fmt.Errorf("%w: %d", ErrInvalidPrice, basePrice)
	}

	b := Breakdown{Incoterm: term, BasePrice: basePrice}

	switch term {
	case FOB:
		b.DomesticTransport = c.cfg.DomesticTransport
	case CAndF:
		b.DomesticTransport = c.cfg.DomesticTransport
		b.FreightCost = c.cfg.FreightCost
	case CIF:
		b.DomesticTransport = c.cfg.DomesticTransport
		b.FreightCost = c.cfg.FreightCost
		b.Insurance = int64(math.Round(c.cfg.InsuranceRate * float64(basePrice+b.FreightCost)))
	default:
		return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownIncoterm, term)
	}

	b.TotalPrice = b.BasePrice + b.DomesticTransport + b.FreightCost + b.Insurance
	return b, nil
}
