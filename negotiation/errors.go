package negotiation

import "errors"

// Sentinel errors for negotiation transitions.
var (
	// ErrNoActiveOffer is returned by Accept when no price is on the table.
	ErrNoActiveOffer = errors.New("no active offer to accept")
	// ErrNegotiationClosed is returned for transitions on a concluded session.
	ErrNegotiationClosed = errors.New("negotiation is closed")
	// ErrInvalidOffer is returned for a non-positive offer amount.
	ErrInvalidOffer = errors.New("invalid offer amount")
)
