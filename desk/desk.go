// Package desk implements the sales-desk runtime that composes inventory,
// pricing, negotiation, skills, and the chat transcript into the
// parse/decide/reply cycle of one buyer conversation.
//
// The desk initializes from configuration via New, creating all subsystems
// internally. Functional options allow test overrides of any subsystem.
//
//	d, err := desk.New(&cfg)
//	vehicle, err := d.SelectVehicle(ctx, id)
//	reply, err := d.Handle(ctx, "would you take 950,000?")
package desk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/otoz-ai/salesdesk/core/protocol"
	"github.com/otoz-ai/salesdesk/intent"
	"github.com/otoz-ai/salesdesk/inventory"
	"github.com/otoz-ai/salesdesk/invoice"
	"github.com/otoz-ai/salesdesk/negotiation"
	"github.com/otoz-ai/salesdesk/observability"
	"github.com/otoz-ai/salesdesk/pricing"
	"github.com/otoz-ai/salesdesk/session"
	"github.com/otoz-ai/salesdesk/skills"
)

// Reply is the outcome of one conversation turn: rendered chat text plus the
// structured outcome when the turn touched negotiation or pricing.
type Reply struct {
	Text    string
	Outcome *protocol.Outcome
}

// Option configures a Desk after config-driven initialization.
// Applied by New after cold start; overrides replace config-created defaults.
type Option func(*Desk)

// WithSource overrides the config-created inventory source.
func WithSource(s inventory.Source) Option {
	return func(d *Desk) { d.source = s }
}

// WithTranscript overrides the config-created transcript.
func WithTranscript(t session.Transcript) Option {
	return func(d *Desk) { d.transcript = t }
}

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(d *Desk) { d.observer = o }
}

// WithArchive overrides the config-created invoice archive.
func WithArchive(s invoice.Store) Option {
	return func(d *Desk) { d.archive = s }
}

// Desk is the per-conversation runtime. One Desk serves one buyer
// conversation; the hosting application holds one instance per active chat.
type Desk struct {
	source     inventory.Source
	calc       *pricing.Calculator
	negCfg     negotiation.Config
	seller     invoice.Seller
	archive    invoice.Store
	transcript session.Transcript
	observer   observability.Observer
	incoterm   pricing.Incoterm

	mu       sync.Mutex
	neg      *negotiation.Session // nil when no vehicle is attached
	customer invoice.Customer
}

// New creates a Desk from configuration. Subsystems (inventory, pricing,
// invoice archive) are initialized from their respective config sections.
// Functional options applied after initialization can override any subsystem
// for testing.
func New(cfg *Config, opts ...Option) (*Desk, error) {
	source, err := inventory.NewSource(context.Background(), &cfg.Inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory source: %w", err)
	}

	archive, err := invoice.NewStore(&cfg.Invoices)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice archive: %w", err)
	}

	term, err := pricing.ParseIncoterm(cfg.DefaultIncoterm)
	if err != nil {
		return nil, fmt.Errorf("invalid default incoterm: %w", err)
	}

	observer, err := resolveObservers(cfg.Observers)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	d := &Desk{
		source:     source,
		calc:       pricing.NewCalculator(&cfg.Pricing),
		negCfg:     cfg.Negotiation,
		seller:     cfg.Seller,
		archive:    archive,
		transcript: session.NewMemoryTranscript(),
		observer:   observer,
		incoterm:   term,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// resolveObservers looks the configured names up in the global observer
// registry, fanning out to a MultiObserver when several are named.
func resolveObservers(names []string) (observability.Observer, error) {
	if len(names) == 0 {
		return observability.NewSlogObserver(slog.Default()), nil
	}

	resolved := make([]observability.Observer, 0, len(names))
	for _, name := range names {
		o, err := observability.GetObserver(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, o)
	}

	if len(resolved) == 1 {
		return resolved[0], nil
	}
	return observability.NewMultiObserver(resolved...), nil
}

// Transcript returns the conversation transcript.
func (d *Desk) Transcript() session.Transcript {
	return d.transcript
}

// Vehicles lists the available inventory.
func (d *Desk) Vehicles(ctx context.Context) ([]inventory.Vehicle, error) {
	return d.source.List(ctx)
}

// SetCustomer records the buyer contact fields used on the proforma invoice.
func (d *Desk) SetCustomer(c invoice.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customer = c
}

// SelectVehicle attaches the conversation to a listing and opens a fresh
// negotiation for it. Selecting a different vehicle discards any negotiation
// in progress.
func (d *Desk) SelectVehicle(ctx context.Context, id string) (inventory.Vehicle, error) {
	v, err := d.source.Get(ctx, id)
	if err != nil {
		return inventory.Vehicle{}, err
	}

	neg, err := negotiation.New(v, &d.negCfg)
	if err != nil {
		return inventory.Vehicle{}, fmt.Errorf("failed to open negotiation: %w", err)
	}

	d.mu.Lock()
	d.neg = neg
	d.mu.Unlock()

	d.observer.OnEvent(ctx, observability.Event{
		Type:      EventVehicleSelected,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "desk.SelectVehicle",
		Data: map[string]any{
			"vehicle_id": v.ID,
			"session_id": neg.ID(),
			"list_price": v.BasePrice,
		},
	})

	return v, nil
}

// Negotiation returns the active negotiation session, nil when unattached.
func (d *Desk) Negotiation() *negotiation.Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.neg
}

// Handle processes one free-text buyer message: the message is parsed into a
// typed command and dispatched, and the exchange is appended to the
// transcript as a buyer/agent turn pair. A failed dispatch records nothing,
// keeping the transcript balanced.
func (d *Desk) Handle(ctx context.Context, message string) (Reply, error) {
	d.observer.OnEvent(ctx, observability.Event{
		Type:      EventTurnStart,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "desk.Handle",
		Data:      map[string]any{"message_length": len(message)},
	})

	cmd := intent.Parse(message)
	reply, err := d.Apply(ctx, cmd)
	if err != nil {
		d.observer.OnEvent(ctx, observability.Event{
			Type:      EventError,
			Level:     observability.LevelWarning,
			Timestamp: time.Now(),
			Source:    "desk.Handle",
			Data:      map[string]any{"command": string(cmd.Kind), "error": err.Error()},
		})
		return Reply{}, err
	}

	d.transcript.Append(session.Turn{Role: session.RoleBuyer, Content: message, At: time.Now()})
	d.transcript.Append(session.Turn{Role: session.RoleAgent, Content: reply.Text, At: time.Now()})
	return reply, nil
}

// Apply dispatches one typed command. Engine-level refusals (nothing to
// accept, negotiation already concluded, malformed amount) come back as
// prompting replies, not errors: every error path here leaves the session in
// a well-defined state and tells the buyer what is expected next.
func (d *Desk) Apply(ctx context.Context, cmd protocol.Command) (Reply, error) {
	d.observer.OnEvent(ctx, observability.Event{
		Type:      EventCommand,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "desk.Apply",
		Data:      map[string]any{"command": string(cmd.Kind)},
	})

	switch cmd.Kind {
	case protocol.CommandSubmitOffer:
		return d.applyNegotiation(ctx, func(n *negotiation.Session) (protocol.Outcome, error) {
			return n.SubmitOffer(cmd.Amount)
		})

	case protocol.CommandRequestDiscount:
		return d.applyNegotiation(ctx, func(n *negotiation.Session) (protocol.Outcome, error) {
			return n.RequestDiscount()
		})

	case protocol.CommandAccept:
		return d.applyNegotiation(ctx, func(n *negotiation.Session) (protocol.Outcome, error) {
			return n.Accept()
		})

	case protocol.CommandReject:
		return d.reject(ctx)

	case protocol.CommandQuote:
		return d.quote(ctx, cmd.Incoterm)

	default:
		return d.fallback(ctx, cmd.Text)
	}
}

// Issue builds the proforma invoice for a concluded negotiation, computing
// the landed-cost breakdown on the negotiated price, and archives it when an
// archive is configured.
func (d *Desk) Issue(ctx context.Context) (invoice.Proforma, error) {
	d.mu.Lock()
	neg := d.neg
	customer := d.customer
	d.mu.Unlock()

	if neg == nil {
		return invoice.Proforma{}, ErrNoVehicle
	}
	if neg.State() != protocol.StateAccepted {
		return invoice.Proforma{}, ErrNotConcluded
	}

	final := neg.FinalPrice()
	breakdown, err := d.calc.Compute(final, d.incoterm)
	if err != nil {
		return invoice.Proforma{}, fmt.Errorf("failed to price invoice: %w", err)
	}

	p, err := invoice.Build(d.seller, customer, neg.Vehicle(), final, breakdown, time.Now())
	if err != nil {
		return invoice.Proforma{}, err
	}

	if d.archive != nil {
		if err := d.archive.Save(ctx, p); err != nil {
			return invoice.Proforma{}, err
		}
	}

	d.observer.OnEvent(ctx, observability.Event{
		Type:      EventInvoiceIssued,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "desk.Issue",
		Data: map[string]any{
			"invoice":     p.Number,
			"vehicle_id":  p.Vehicle.ID,
			"total_price": p.Breakdown.TotalPrice,
		},
	})

	return p, nil
}

func (d *Desk) applyNegotiation(ctx context.Context, transition func(*negotiation.Session) (protocol.Outcome, error)) (Reply, error) {
	d.mu.Lock()
	neg := d.neg
	d.mu.Unlock()

	if neg == nil {
		return Reply{}, ErrNoVehicle
	}

	outcome, err := transition(neg)
	if err != nil {
		if text, ok := promptFor(err); ok {
			return Reply{Text: text}, nil
		}
		return Reply{}, err
	}

	d.observer.OnEvent(ctx, observability.Event{
		Type:      EventOutcome,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "desk.Apply",
		Data: map[string]any{
			"session_id": neg.ID(),
			"state":      string(outcome.State),
			"kind":       string(outcome.Kind),
			"quoted":     outcome.QuotedPrice,
		},
	})

	return Reply{Text: renderOutcome(neg.Vehicle(), outcome), Outcome: &outcome}, nil
}

func (d *Desk) reject(ctx context.Context) (Reply, error) {
	d.mu.Lock()
	neg := d.neg
	d.neg = nil
	d.mu.Unlock()

	if neg != nil {
		// A concluded session cannot be reopened; detaching is enough.
		if err := neg.Reject(); err != nil && !errors.Is(err, negotiation.ErrNegotiationClosed) {
			return Reply{}, err
		}
	}

	return Reply{Text: "No problem — let me know when you would like to look at another vehicle."}, nil
}

func (d *Desk) quote(ctx context.Context, incoterm string) (Reply, error) {
	d.mu.Lock()
	neg := d.neg
	d.mu.Unlock()

	if neg == nil {
		return Reply{}, ErrNoVehicle
	}

	term := d.incoterm
	if incoterm != "" {
		parsed, err := pricing.ParseIncoterm(incoterm)
		if err != nil {
			return Reply{Text: "I can quote FOB, C&F, or CIF — which shipping term would you like?"}, nil
		}
		term = parsed
	}

	base := neg.OriginalPrice()
	if p := neg.FinalPrice(); p > 0 {
		base = p
	}

	breakdown, err := d.calc.Compute(base, term)
	if err != nil {
		// Degraded path: report the base price itself rather than a broken total.
		d.observer.OnEvent(ctx, observability.Event{
			Type:      EventError,
			Level:     observability.LevelWarning,
			Timestamp: time.Now(),
			Source:    "desk.quote",
			Data:      map[string]any{"error": err.Error(), "base_price": base},
		})
		return Reply{Text: fmt.Sprintf("The current price is %s.", pricing.FormatYen(base))}, nil
	}

	outcome := protocol.Outcome{
		State:       neg.State(),
		QuotedPrice: breakdown.TotalPrice,
		Kind:        protocol.KindQuote,
	}

	text := fmt.Sprintf(
		"The current total price for the %s is %s %s. Our prices are competitive, but feel free to state your best offer.",
		neg.Vehicle().DisplayName(), pricing.FormatYen(breakdown.TotalPrice), term,
	)
	return Reply{Text: text, Outcome: &outcome}, nil
}

func (d *Desk) fallback(ctx context.Context, message string) (Reply, error) {
	if name, ok := skills.Match(message); ok {
		result, err := skills.Execute(ctx, name, message)
		if err != nil {
			return Reply{}, err
		}

		d.observer.OnEvent(ctx, observability.Event{
			Type:      EventSkill,
			Level:     observability.LevelVerbose,
			Timestamp: time.Now(),
			Source:    "desk.Apply",
			Data:      map[string]any{"skill": name},
		})
		return Reply{Text: result.Content}, nil
	}

	d.observer.OnEvent(ctx, observability.Event{
		Type:      EventFallback,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "desk.Apply",
		Data:      map[string]any{"message_length": len(message)},
	})

	return Reply{
		Text: "That's a great question. I am forwarding it to a human sales representative who will get back to you shortly.",
	}, nil
}

// promptFor maps expected engine refusals to buyer-facing prompts.
func promptFor(err error) (string, bool) {
	switch {
	case errors.Is(err, negotiation.ErrNoActiveOffer):
		return "There is no offer on the table yet — please state the price you have in mind.", true
	case errors.Is(err, negotiation.ErrNegotiationClosed):
		return "This negotiation has already concluded. Say \"another car\" to start over.", true
	case errors.Is(err, negotiation.ErrInvalidOffer):
		return "I didn't catch a valid price there — could you give me a concrete amount in yen?", true
	}
	return "", false
}

func renderOutcome(v inventory.Vehicle, o protocol.Outcome) string {
	price := pricing.FormatYen(o.QuotedPrice)

	switch o.Kind {
	case protocol.KindAccepted:
		return fmt.Sprintf("Excellent — we have a deal on the %s at %s. I'll prepare the proforma invoice.", v.DisplayName(), price)
	case protocol.KindCountered:
		return fmt.Sprintf("We can't quite do that, but how about %s for the %s?", price, v.DisplayName())
	case protocol.KindOpeningOffer:
		return fmt.Sprintf("For you, I can offer the %s at %s today.", v.DisplayName(), price)
	case protocol.KindBelowFloor:
		return fmt.Sprintf("I'm afraid that's below what we can accept. The very best I can do on the %s is %s.", v.DisplayName(), price)
	case protocol.KindFinalOffer:
		return fmt.Sprintf("That really is our limit — %s is the final price for the %s. I'll have to close the negotiation here.", price, v.DisplayName())
	}
	return fmt.Sprintf("The price stands at %s.", price)
}
