package protocol

// State is the negotiation session state visible to callers.
type State string

const (
	StateInitial   State = "initial"   // No live agent offer yet.
	StateCountered State = "countered" // Agent has proposed a price and awaits the buyer.
	StateAccepted  State = "accepted"  // Terminal: a final price has been agreed.
)

// OutcomeKind tells the presentation layer which message family to render.
type OutcomeKind string

const (
	KindAccepted     OutcomeKind = "accepted"      // Deal concluded at QuotedPrice.
	KindCountered    OutcomeKind = "countered"     // Agent counter-offer at QuotedPrice.
	KindBelowFloor   OutcomeKind = "below_floor"   // Offer rejected; QuotedPrice is the floor.
	KindOpeningOffer OutcomeKind = "opening_offer" // Unsolicited discount quote at QuotedPrice.
	KindFinalOffer   OutcomeKind = "final_offer"   // Floor restated; negotiation closed to further offers.
	KindQuote        OutcomeKind = "quote"         // Landed-price quote at QuotedPrice.
)

// Outcome is the structured result of one negotiation transition or quote.
// QuotedPrice is zero when no price accompanies the outcome.
type Outcome struct {
	State       State       `json:"state"`
	QuotedPrice int64       `json:"quoted_price,omitempty"`
	Kind        OutcomeKind `json:"kind"`
}
