package pricing

// Default shipping fees in JPY, matching the seller's published tariff.
const (
	defaultDomesticTransport = 50_000
	defaultFreightCost       = 150_000
	defaultInsuranceRate     = 0.025
)

// Config holds the fee schedule for breakdown computation plus an optional
// display-currency rate table. Amounts are yen; rates are unit-less fractions.
type Config struct {
	DomesticTransport int64   `json:"domestic_transport,omitempty"`
	FreightCost       int64   `json:"freight_cost,omitempty"`
	InsuranceRate     float64 `json:"insurance_rate,omitempty"`

	// DisplayRates maps currency codes to units-per-yen conversion rates.
	// Conversion is a presentation concern only; all pricing and negotiation
	// stays in the listing currency.
	DisplayRates map[string]float64 `json:"display_rates,omitempty"`
}

// DefaultConfig returns the standard fee schedule with no display currencies.
func DefaultConfig() Config {
	return Config{
		DomesticTransport: defaultDomesticTransport,
		FreightCost:       defaultFreightCost,
		InsuranceRate:     defaultInsuranceRate,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.DomesticTransport > 0 {
		c.DomesticTransport = source.DomesticTransport
	}
	if source.FreightCost > 0 {
		c.FreightCost = source.FreightCost
	}
	if source.InsuranceRate > 0 {
		c.InsuranceRate = source.InsuranceRate
	}
	if len(source.DisplayRates) > 0 {
		c.DisplayRates = source.DisplayRates
	}
}
