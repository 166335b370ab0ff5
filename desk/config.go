package desk

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/otoz-ai/salesdesk/inventory"
	"github.com/otoz-ai/salesdesk/invoice"
	"github.com/otoz-ai/salesdesk/negotiation"
	"github.com/otoz-ai/salesdesk/pricing"
)

const defaultIncoterm = pricing.CIF

// Config holds initialization parameters for all desk subsystems.
// Each subsystem section delegates to that subsystem's config-driven
// constructor.
type Config struct {
	Inventory   inventory.Config   `json:"inventory"`
	Pricing     pricing.Config     `json:"pricing"`
	Negotiation negotiation.Config `json:"negotiation"`
	Invoices    invoice.Config     `json:"invoices"`

	Seller          invoice.Seller `json:"seller,omitempty"`
	DefaultIncoterm string         `json:"default_incoterm,omitempty"`

	// Observers names the registered observers events are fanned out to.
	// Empty means the default slog observer; more than one name yields a
	// MultiObserver.
	Observers []string `json:"observers,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Inventory:       inventory.DefaultConfig(),
		Pricing:         pricing.DefaultConfig(),
		Negotiation:     negotiation.DefaultConfig(),
		Invoices:        invoice.DefaultConfig(),
		Seller:          invoice.DefaultSeller(),
		DefaultIncoterm: string(defaultIncoterm),
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Inventory.Merge(&source.Inventory)
	c.Pricing.Merge(&source.Pricing)
	c.Negotiation.Merge(&source.Negotiation)
	c.Invoices.Merge(&source.Invoices)

	if source.Seller.Name != "" {
		c.Seller = source.Seller
	}
	if source.DefaultIncoterm != "" {
		c.DefaultIncoterm = source.DefaultIncoterm
	}
	if len(source.Observers) > 0 {
		c.Observers = append([]string(nil), source.Observers...)
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
