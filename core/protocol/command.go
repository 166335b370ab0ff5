// Package protocol defines the typed surface between the chat presentation
// layer and the negotiation desk: commands parsed from buyer messages and
// structured outcomes the caller renders into chat text.
package protocol

import "encoding/json"

// CommandKind identifies the buyer's intent for one chat turn.
type CommandKind string

const (
	CommandSubmitOffer     CommandKind = "submit_offer"
	CommandAccept          CommandKind = "accept"
	CommandReject          CommandKind = "reject"
	CommandRequestDiscount CommandKind = "request_discount"
	CommandQuote           CommandKind = "quote"
	CommandUnknown         CommandKind = "unknown"
)

// Command is one structured buyer instruction. Amount is set only for
// submit_offer (smallest currency unit, e.g. yen); Incoterm only for quote.
type Command struct {
	Kind     CommandKind `json:"kind"`
	Amount   int64       `json:"amount,omitempty"`
	Incoterm string      `json:"incoterm,omitempty"`
	Text     string      `json:"text,omitempty"` // Raw buyer text, for unknown-intent fallbacks.
}

// NewOffer creates a submit_offer command for the given amount.
func NewOffer(amount int64) Command {
	return Command{Kind: CommandSubmitOffer, Amount: amount}
}

// NewQuote creates a quote command for the given incoterm.
func NewQuote(incoterm string) Command {
	return Command{Kind: CommandQuote, Incoterm: incoterm}
}

// UnmarshalJSON handles both the flat desk format ({kind, amount}) and the
// nested chat-widget format ({type, payload: {amount, incoterm}}). This allows
// widget requests to decode directly into the canonical Command type.
func (c *Command) UnmarshalJSON(data []byte) error {
	var nested struct {
		Type    string `json:"type"`
		Payload struct {
			Amount   int64  `json:"amount"`
			Incoterm string `json:"incoterm"`
			Text     string `json:"text"`
		} `json:"payload"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}

	if nested.Type != "" {
		c.Kind = CommandKind(nested.Type)
		c.Amount = nested.Payload.Amount
		c.Incoterm = nested.Payload.Incoterm
		c.Text = nested.Payload.Text
		return nil
	}

	type plain Command
	return json.Unmarshal(data, (*plain)(c))
}
