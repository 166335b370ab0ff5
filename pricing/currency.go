package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Display converts a yen amount into a configured display currency using the
// calculator's rate table. Returns ErrUnknownCurrency for codes without a
// configured rate. "JPY" always converts 1:1.
func (c *Calculator) Display(amount int64, currency string) (float64, error) {
	code := strings.ToUpper(currency)
	if code == "JPY" {
		return float64(amount), nil
	}

	rate, ok := c.cfg.DisplayRates[code]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}
	return math.Round(float64(amount)*rate*100) / 100, nil
}

// FormatYen renders a yen amount with thousands separators and the ¥ prefix,
// the way chat replies and invoices present prices.
func FormatYen(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	if neg {
		return "-¥" + b.String()
	}
	return "¥" + b.String()
}
