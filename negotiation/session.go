// Package negotiation implements the per-conversation price negotiation
// state machine: a buyer submits offers against one vehicle's listed price,
// and the engine answers with counter-offers, acceptance, or a floor-price
// rejection according to a fixed discount ladder.
//
// Sessions are independent of each other; each is safe for concurrent use
// and every transition is a single deterministic step. A malformed or
// out-of-range offer never corrupts state.
package negotiation

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/otoz-ai/salesdesk/core/protocol"
	"github.com/otoz-ai/salesdesk/inventory"
)

// Session negotiates one buyer against one vehicle listing. Create with New
// when the buyer picks a vehicle; discard after acceptance or abandonment.
// The caller owns one Session per active conversation.
type Session struct {
	id      string
	vehicle inventory.Vehicle
	cfg     Config

	mu             sync.Mutex
	state          protocol.State
	originalPrice  int64
	floorPrice     int64
	lastAgentOffer int64
	finalPrice     int64
	lowOffers      int
	closed         bool
}

// New creates a Session for the given vehicle. The floor price is fixed at
// creation from the configured maximum discount. A nil config uses defaults.
// Listings that fail validation (notably a non-positive price) are rejected.
func New(vehicle inventory.Vehicle, cfg *Config) (*Session, error) {
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if cfg != nil {
		c.Merge(cfg)
	}

	original := vehicle.BasePrice
	floor := int64(math.Round(float64(original) * (1 - c.MaxDiscount)))

	return &Session{
		id:            uuid.Must(uuid.NewV7()).String(),
		vehicle:       vehicle,
		cfg:           c,
		state:         protocol.StateInitial,
		originalPrice: original,
		floorPrice:    floor,
	}, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() string { return s.id }

// Vehicle returns the listing under negotiation.
func (s *Session) Vehicle() inventory.Vehicle { return s.vehicle }

// OriginalPrice returns the listed asking price.
func (s *Session) OriginalPrice() int64 { return s.originalPrice }

// FloorPrice returns the lowest price the engine may accept.
func (s *Session) FloorPrice() int64 { return s.floorPrice }

// State returns the current negotiation state.
func (s *Session) State() protocol.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FinalPrice returns the agreed or pending price, 0 when none is on the table.
func (s *Session) FinalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalPrice
}

// LastAgentOffer returns the engine's most recent counter-offer, 0 when none.
func (s *Session) LastAgentOffer() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAgentOffer
}

// SubmitOffer applies one buyer offer and returns the resulting outcome.
//
// An offer at or above a standing agent counter-offer, or at or above the
// asking price, concludes the deal. Offers between floor and asking draw a
// counter-offer at the rounded-down midpoint, strictly between the offer and
// the asking price. Offers below floor are refused with the floor price
// quoted as the best possible deal; the session stays open for a higher
// offer unless the configured low-offer limit is exhausted.
func (s *Session) SubmitOffer(amount int64) (protocol.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == protocol.StateAccepted || s.closed {
		return protocol.Outcome{}, ErrNegotiationClosed
	}
	if amount <= 0 {
		return protocol.Outcome{}, fmt.Errorf("%w: %d", ErrInvalidOffer, amount)
	}

	switch {
	case s.lastAgentOffer > 0 && amount >= s.lastAgentOffer:
		// Buyer met or beat our counter.
		return s.conclude(amount), nil

	case amount >= s.originalPrice:
		// Offered at or above asking; charge asking.
		return s.conclude(s.originalPrice), nil

	case amount >= s.floorPrice:
		counter := s.counterFor(amount)
		if counter >= s.originalPrice {
			// No unit-aligned price fits strictly between offer and asking;
			// the offer is close enough to take as-is.
			return s.conclude(amount), nil
		}
		s.lastAgentOffer = counter
		s.finalPrice = counter
		s.state = protocol.StateCountered
		s.lowOffers = 0
		return protocol.Outcome{
			State:       protocol.StateCountered,
			QuotedPrice: counter,
			Kind:        protocol.KindCountered,
		}, nil

	default:
		s.lowOffers++
		if s.cfg.MaxLowOffers > 0 && s.lowOffers >= s.cfg.MaxLowOffers {
			s.closed = true
			return protocol.Outcome{
				State:       s.state,
				QuotedPrice: s.floorPrice,
				Kind:        protocol.KindFinalOffer,
			}, nil
		}
		return protocol.Outcome{
			State:       s.state,
			QuotedPrice: s.floorPrice,
			Kind:        protocol.KindBelowFloor,
		}, nil
	}
}

// RequestDiscount answers an unsolicited discount inquiry with the opening
// discount price and records it as a standing agent offer, so the buyer's
// next matching offer concludes the deal. A repeated inquiry never quotes a
// worse price than an offer already on the table.
func (s *Session) RequestDiscount() (protocol.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == protocol.StateAccepted || s.closed {
		return protocol.Outcome{}, ErrNegotiationClosed
	}

	opening := float64(s.originalPrice) * (1 - s.cfg.OpeningDiscount)
	quote := int64(opening) - int64(opening)%s.cfg.RoundingUnit
	if quote < s.floorPrice {
		quote = s.floorPrice
	}
	if s.lastAgentOffer > 0 && s.lastAgentOffer < quote {
		quote = s.lastAgentOffer
	}

	s.lastAgentOffer = quote
	s.finalPrice = quote
	s.state = protocol.StateCountered

	return protocol.Outcome{
		State:       protocol.StateCountered,
		QuotedPrice: quote,
		Kind:        protocol.KindOpeningOffer,
	}, nil
}

// Accept concludes the negotiation at the price on the table (a standing
// counter-offer or opening quote). Returns ErrNoActiveOffer when called with
// nothing to accept — the caller should prompt for a concrete price instead
// of fabricating one.
func (s *Session) Accept() (protocol.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == protocol.StateAccepted || s.closed {
		return protocol.Outcome{}, ErrNegotiationClosed
	}
	if s.finalPrice == 0 {
		return protocol.Outcome{}, ErrNoActiveOffer
	}

	return s.conclude(s.finalPrice), nil
}

// Reject abandons the negotiation and clears the session back to its initial
// state. Idempotent. Rejecting an accepted session is a caller error; the
// deal is already done.
func (s *Session) Reject() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == protocol.StateAccepted {
		return ErrNegotiationClosed
	}

	s.state = protocol.StateInitial
	s.lastAgentOffer = 0
	s.finalPrice = 0
	s.lowOffers = 0
	s.closed = false
	return nil
}

// conclude finalizes the deal at price. Caller holds the lock.
func (s *Session) conclude(price int64) protocol.Outcome {
	s.finalPrice = price
	s.state = protocol.StateAccepted
	return protocol.Outcome{
		State:       protocol.StateAccepted,
		QuotedPrice: price,
		Kind:        protocol.KindAccepted,
	}
}

// counterFor computes the counter-offer for an in-range buyer offer: the
// midpoint toward asking, rounded down to the rounding unit, then bumped one
// unit if rounding collapsed onto the buyer's own offer. The result may equal
// or exceed the asking price only when the offer is within one unit of it;
// the caller accepts the offer outright in that case. Caller holds the lock.
func (s *Session) counterFor(amount int64) int64 {
	mid := (amount + s.originalPrice) / 2
	counter := mid - mid%s.cfg.RoundingUnit
	for counter <= amount {
		counter += s.cfg.RoundingUnit
	}
	return counter
}
