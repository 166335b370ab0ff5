package pricing_test

import (
	"errors"
	"testing"

	"github.com/otoz-ai/salesdesk/pricing"
)

func TestDisplay(t *testing.T) {
	calc := pricing.NewCalculator(&pricing.Config{
		DisplayRates: map[string]float64{"USD": 0.0067},
	})

	got, err := calc.Display(1_000_000, "usd")
	if err != nil {
		t.Fatalf("Display failed: %v", err)
	}
	if got != 6_700 {
		t.Errorf("got %v USD, want 6700", got)
	}
}

func TestDisplay_JPYIsIdentity(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	got, err := calc.Display(1_228_750, "JPY")
	if err != nil {
		t.Fatalf("Display failed: %v", err)
	}
	if got != 1_228_750 {
		t.Errorf("got %v, want 1228750", got)
	}
}

func TestDisplay_UnknownCurrency(t *testing.T) {
	calc := pricing.NewCalculator(nil)

	_, err := calc.Display(1_000_000, "EUR")
	if !errors.Is(err, pricing.ErrUnknownCurrency) {
		t.Errorf("got error %v, want ErrUnknownCurrency", err)
	}
}

func TestFormatYen(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "¥0"},
		{amount: 950, want: "¥950"},
		{amount: 1_000, want: "¥1,000"},
		{amount: 880_000, want: "¥880,000"},
		{amount: 1_228_750, want: "¥1,228,750"},
		{amount: -50_000, want: "-¥50,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := pricing.FormatYen(tt.amount); got != tt.want {
				t.Errorf("FormatYen(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
