package intent_test

import (
	"testing"

	"github.com/otoz-ai/salesdesk/core/protocol"
	"github.com/otoz-ai/salesdesk/intent"
)

func TestParse_Offers(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int64
	}{
		{name: "plain number", message: "950000", want: 950_000},
		{name: "thousands separators", message: "I can do 1,000,000", want: 1_000_000},
		{name: "yen sign", message: "how about ¥880,000?", want: 880_000},
		{name: "k suffix", message: "would you take 950k", want: 950_000},
		{name: "million suffix", message: "my budget is 1.2m", want: 1_200_000},
		{name: "largest number wins", message: "between 900,000 and 950,000", want: 950_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := intent.Parse(tt.message)
			if cmd.Kind != protocol.CommandSubmitOffer {
				t.Fatalf("got kind %q, want submit_offer", cmd.Kind)
			}
			if cmd.Amount != tt.want {
				t.Errorf("got amount %d, want %d", cmd.Amount, tt.want)
			}
		})
	}
}

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    protocol.CommandKind
	}{
		{name: "accept", message: "ok, deal!", want: protocol.CommandAccept},
		{name: "accept verbose", message: "I accept your price", want: protocol.CommandAccept},
		{name: "reject", message: "show me another car please", want: protocol.CommandReject},
		{name: "cancel", message: "cancel this", want: protocol.CommandReject},
		{name: "no deal beats deal keyword", message: "no deal, sorry", want: protocol.CommandReject},
		{name: "discount", message: "any discount for me?", want: protocol.CommandRequestDiscount},
		{name: "best price", message: "what's your best price", want: protocol.CommandRequestDiscount},
		{name: "quote", message: "how much is it shipped?", want: protocol.CommandQuote},
		{name: "affirmative question is a quote", message: "ok, how much is shipping?", want: protocol.CommandQuote},
		{name: "affirmative discount ask", message: "yes but can you go lower?", want: protocol.CommandRequestDiscount},
		{name: "unknown", message: "do you sell motorcycles", want: protocol.CommandUnknown},
		{name: "empty", message: "   ", want: protocol.CommandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cmd := intent.Parse(tt.message); cmd.Kind != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.message, cmd.Kind, tt.want)
			}
		})
	}
}

func TestParse_QuoteIncoterm(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{message: "what's the total price CIF?", want: "CIF"},
		{message: "price for c&f please", want: "C&F"},
		{message: "FOB price?", want: "FOB"},
		{message: "how much in total", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			cmd := intent.Parse(tt.message)
			if cmd.Kind != protocol.CommandQuote {
				t.Fatalf("got kind %q, want quote", cmd.Kind)
			}
			if cmd.Incoterm != tt.want {
				t.Errorf("got incoterm %q, want %q", cmd.Incoterm, tt.want)
			}
		})
	}
}

func TestParse_SmallNumbersAreNotOffers(t *testing.T) {
	cmd := intent.Parse("is the 2019 model available?")
	if cmd.Kind == protocol.CommandSubmitOffer {
		t.Errorf("year mistaken for an offer: %+v", cmd)
	}
}

func TestParse_UnknownKeepsText(t *testing.T) {
	cmd := intent.Parse("do you sell motorcycles")
	if cmd.Text != "do you sell motorcycles" {
		t.Errorf("got text %q, want the original message", cmd.Text)
	}
}
