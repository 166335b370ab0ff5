// Package intent converts free-text buyer messages into typed protocol
// commands. It is the caller-side shim the negotiation engine deliberately
// does not contain: the engine's surface stays typed and phrase-independent,
// and all keyword knowledge lives here.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/otoz-ai/salesdesk/core/protocol"
)

// Amounts below this are treated as incidental numbers (years, counts),
// not price offers. Listing prices start at 300,000 yen.
const minOfferAmount = 10_000

var (
	rejectPhrases = []string{
		"another car", "start over", "change car", "go back",
		"cancel", "no deal", "not interested", "too expensive, bye",
	}
	discountPhrases = []string{
		"discount", "best price", "any better", "cheaper", "lower price",
		"can you go lower", "come down",
	}
	quotePhrases = []string{
		"how much", "total price", "price", "quote", "breakdown", "cost",
	}

	acceptPattern = regexp.MustCompile(`\b(accept|agreed|agree|deal|confirm|proceed|yes|ok|okay|sounds good)\b`)

	// Matches "¥950,000", "950000 yen", "950k", "1.2m", "1,000,000".
	amountPattern = regexp.MustCompile(`(?:¥|jpy\s*)?([0-9][0-9,]*(?:\.[0-9]+)?)\s*(million|mil|m|k|yen)?\b`)
)

// Parse classifies one buyer message into a Command. Unrecognized messages
// yield CommandUnknown carrying the raw text so callers can fall back to
// scripted skills or a human handoff.
func Parse(message string) protocol.Command {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return protocol.Command{Kind: protocol.CommandUnknown, Text: message}
	}

	for _, p := range rejectPhrases {
		if strings.Contains(lowered, p) {
			return protocol.Command{Kind: protocol.CommandReject}
		}
	}

	if amount, ok := extractAmount(lowered); ok {
		return protocol.NewOffer(amount)
	}

	for _, p := range discountPhrases {
		if strings.Contains(lowered, p) {
			return protocol.Command{Kind: protocol.CommandRequestDiscount}
		}
	}

	for _, p := range quotePhrases {
		if strings.Contains(lowered, p) {
			return protocol.NewQuote(detectIncoterm(lowered))
		}
	}

	// Bare affirmatives ("ok", "yes") rank below concrete asks: a message
	// that opens with "ok" but goes on to ask for a price is a question,
	// not an acceptance.
	if acceptPattern.MatchString(lowered) {
		return protocol.Command{Kind: protocol.CommandAccept}
	}

	return protocol.Command{Kind: protocol.CommandUnknown, Text: message}
}

// extractAmount finds the largest plausible price in the message.
// Magnitude suffixes (k, m, million) and currency markers are honored;
// bare numbers below the offer threshold are ignored.
func extractAmount(lowered string) (int64, bool) {
	var best int64

	for _, m := range amountPattern.FindAllStringSubmatch(lowered, -1) {
		digits := strings.ReplaceAll(m[1], ",", "")
		value, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			continue
		}

		switch m[2] {
		case "k":
			value *= 1_000
		case "m", "mil", "million":
			value *= 1_000_000
		}

		amount := int64(value)
		if amount >= minOfferAmount && amount > best {
			best = amount
		}
	}

	return best, best > 0
}

func detectIncoterm(lowered string) string {
	switch {
	case strings.Contains(lowered, "cif"):
		return "CIF"
	case strings.Contains(lowered, "c&f"), strings.Contains(lowered, "cnf"), strings.Contains(lowered, "cfr"):
		return "C&F"
	case strings.Contains(lowered, "fob"):
		return "FOB"
	}
	return ""
}
