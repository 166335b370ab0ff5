package negotiation

// Default ladder parameters: up to 12% off list, a 3% unsolicited opening
// discount, counters rounded to the nearest 1,000 yen.
const (
	defaultMaxDiscount     = 0.12
	defaultOpeningDiscount = 0.03
	defaultRoundingUnit    = 1_000
)

// Config holds the negotiation ladder parameters.
type Config struct {
	// MaxDiscount is the ceiling discount off the listed price; the floor
	// price is original × (1 − MaxDiscount).
	MaxDiscount float64 `json:"max_discount,omitempty"`
	// OpeningDiscount is the unsolicited discount quoted when a buyer asks
	// for a better price before making a numeric offer.
	OpeningDiscount float64 `json:"opening_discount,omitempty"`
	// RoundingUnit is the granularity counter-offers are rounded down to.
	RoundingUnit int64 `json:"rounding_unit,omitempty"`
	// MaxLowOffers closes the negotiation after this many consecutive
	// below-floor offers. 0 leaves the session open indefinitely.
	MaxLowOffers int `json:"max_low_offers,omitempty"`
}

// DefaultConfig returns the standard negotiation ladder.
func DefaultConfig() Config {
	return Config{
		MaxDiscount:     defaultMaxDiscount,
		OpeningDiscount: defaultOpeningDiscount,
		RoundingUnit:    defaultRoundingUnit,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.MaxDiscount > 0 {
		c.MaxDiscount = source.MaxDiscount
	}
	if source.OpeningDiscount > 0 {
		c.OpeningDiscount = source.OpeningDiscount
	}
	if source.RoundingUnit > 0 {
		c.RoundingUnit = source.RoundingUnit
	}
	if source.MaxLowOffers > 0 {
		c.MaxLowOffers = source.MaxLowOffers
	}
}
