package desk

import "github.com/otoz-ai/salesdesk/observability"

// Desk event types emitted during conversation handling.
const (
	EventTurnStart       observability.EventType = "desk.turn.start"
	EventVehicleSelected observability.EventType = "desk.vehicle.selected"
	EventCommand         observability.EventType = "desk.command"
	EventOutcome         observability.EventType = "desk.negotiation.outcome"
	EventSkill           observability.EventType = "desk.skill"
	EventFallback        observability.EventType = "desk.fallback"
	EventInvoiceIssued   observability.EventType = "desk.invoice.issued"
	EventError           observability.EventType = "desk.error"
)
