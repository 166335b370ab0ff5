package desk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/otoz-ai/salesdesk/desk"
	"github.com/otoz-ai/salesdesk/negotiation"
	"github.com/otoz-ai/salesdesk/pricing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := desk.DefaultConfig()

	if cfg.DefaultIncoterm != "CIF" {
		t.Errorf("got default incoterm %q, want CIF", cfg.DefaultIncoterm)
	}
	if cfg.Inventory.Kind != "demo" {
		t.Errorf("got inventory kind %q, want demo", cfg.Inventory.Kind)
	}
	if cfg.Pricing.DomesticTransport != 50_000 {
		t.Errorf("got domestic transport %d, want 50000", cfg.Pricing.DomesticTransport)
	}
	if cfg.Negotiation.MaxDiscount != 0.12 {
		t.Errorf("got max discount %v, want 0.12", cfg.Negotiation.MaxDiscount)
	}
	if cfg.Seller.Name == "" {
		t.Error("default seller should be populated")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := desk.DefaultConfig()

	cfg.Merge(&desk.Config{
		Pricing:         pricing.Config{FreightCost: 200_000},
		Negotiation:     negotiation.Config{MaxDiscount: 0.10},
		DefaultIncoterm: "FOB",
		Observers:       []string{"noop"},
	})

	if cfg.Pricing.FreightCost != 200_000 {
		t.Errorf("got freight %d, want 200000", cfg.Pricing.FreightCost)
	}
	if cfg.Pricing.DomesticTransport != 50_000 {
		t.Errorf("merge clobbered domestic transport: %d", cfg.Pricing.DomesticTransport)
	}
	if cfg.Negotiation.MaxDiscount != 0.10 {
		t.Errorf("got max discount %v, want 0.10", cfg.Negotiation.MaxDiscount)
	}
	if cfg.DefaultIncoterm != "FOB" {
		t.Errorf("got incoterm %q, want FOB", cfg.DefaultIncoterm)
	}
	if cfg.Seller.Name == "" {
		t.Error("merge with zero seller should keep the default")
	}
	if len(cfg.Observers) != 1 || cfg.Observers[0] != "noop" {
		t.Errorf("got observers %v, want [noop]", cfg.Observers)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"inventory": {"kind": "demo", "seed": 42},
		"negotiation": {"max_low_offers": 3},
		"default_incoterm": "C&F"
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := desk.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Inventory.Seed != 42 {
		t.Errorf("got seed %d, want 42", cfg.Inventory.Seed)
	}
	if cfg.Negotiation.MaxLowOffers != 3 {
		t.Errorf("got max low offers %d, want 3", cfg.Negotiation.MaxLowOffers)
	}
	if cfg.DefaultIncoterm != "C&F" {
		t.Errorf("got incoterm %q, want C&F", cfg.DefaultIncoterm)
	}
	if cfg.Pricing.InsuranceRate != 0.025 {
		t.Errorf("unset sections should keep defaults, got insurance rate %v", cfg.Pricing.InsuranceRate)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := desk.LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}
