package pricing_test

import (
	"errors"
	"testing"

	"github.com/otoz-ai/salesdesk/pricing"
)

func TestCompute_ComponentActivation(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	tests := []struct {
		name          string
		incoterm      pricing.Incoterm
		wantTransport int64
		wantFreight   int64
		wantInsurance int64
	}{
		{name: "FOB has transport only", incoterm: pricing.FOB, wantTransport: 50_000},
		{name: "C&F adds freight", incoterm: pricing.CAndF, wantTransport: 50_000, wantFreight: 150_000},
		{name: "CIF adds insurance", incoterm: pricing.CIF, wantTransport: 50_000, wantFreight: 150_000, wantInsurance: 28_750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := calc.Compute(1_000_000, tt.incoterm)
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}

			if b.DomesticTransport != tt.wantTransport {
				t.Errorf("got transport %d, want %d", b.DomesticTransport, tt.wantTransport)
			}
			if b.FreightCost != tt.wantFreight {
				t.Errorf("got freight %d, want %d", b.FreightCost, tt.wantFreight)
			}
			if b.Insurance != tt.wantInsurance {
				t.Errorf("got insurance %d, want %d", b.Insurance, tt.wantInsurance)
			}

			sum := b.BasePrice + b.DomesticTransport + b.FreightCost + b.Insurance
			if b.TotalPrice != sum {
				t.Errorf("total %d != sum of components %d", b.TotalPrice, sum)
			}
		})
	}
}

func TestCompute_CIFScenario(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	b, err := calc.Compute(1_000_000, pricing.CIF)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	// insurance = 0.025 × (1,000,000 + 150,000)
	if b.Insurance != 28_750 {
		t.Errorf("got insurance %d, want 28750", b.Insurance)
	}
	if b.TotalPrice != 1_228_750 {
		t.Errorf("got total %d, want 1228750", b.TotalPrice)
	}
}

func TestCompute_InsuranceOnCostAndFreight(t *testing.T) {
	// The insurance base must include freight, not just the vehicle price.
	calc := pricing.NewCalculator(&pricing.Config{
		DomesticTransport: 1,
		FreightCost:       200_000,
		InsuranceRate:     0.1,
	})

	b, err := calc.Compute(800_000, pricing.CIF)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if want := int64(100_000); b.Insurance != want {
		t.Errorf("got insurance %d, want %d (0.1 × (800000+200000))", b.Insurance, want)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	first, err := calc.Compute(2_345_000, pricing.CIF)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	second, err := calc.Compute(2_345_000, pricing.CIF)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if first != second {
		t.Errorf("identical inputs produced different breakdowns: %+v vs %+v", first, second)
	}
}

func TestCompute_InvalidPrice(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	tests := []struct {
		name     string
		price    int64
		incoterm pricing.Incoterm
	}{
		{name: "zero FOB", price: 0, incoterm: pricing.FOB},
		{name: "negative CIF", price: -100, incoterm: pricing.CIF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Compute(tt.price, tt.incoterm)
			if !errors.Is(err, pricing.ErrInvalidPrice) {
				t.Errorf("got error %v, want ErrInvalidPrice", err)
			}
		})
	}
}

func TestCompute_UnknownIncoterm(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	_, err := calc.Compute(1_000_000, "EXW")
	if !errors.Is(err, pricing.ErrUnknownIncoterm) {
		t.Errorf("got error %v, want ErrUnknownIncoterm", err)
	}
}

func TestParseIncoterm(t *testing.T) {
	tests := []struct {
		in      string
		want    pricing.Incoterm
		wantErr bool
	}{
		{in: "FOB", want: pricing.FOB},
		{in: "C&F", want: pricing.CAndF},
		{in: "CNF", want: pricing.CAndF},
		{in: "CFR", want: pricing.CAndF},
		{in: "CIF", want: pricing.CIF},
		{in: "DDP", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := pricing.ParseIncoterm(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIncoterm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseIncoterm(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := pricing.DefaultConfig()

	cfg.Merge(&pricing.Config{FreightCost: 200_000})

	if cfg.FreightCost != 200_000 {
		t.Errorf("got freight %d, want 200000", cfg.FreightCost)
	}
	if cfg.DomesticTransport != 50_000 {
		t.Errorf("merge clobbered transport: got %d, want 50000 (preserved default)", cfg.DomesticTransport)
	}
	if cfg.InsuranceRate != 0.025 {
		t.Errorf("merge clobbered insurance rate: got %v, want 0.025", cfg.InsuranceRate)
	}
}
