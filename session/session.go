// Package session manages the chat transcript for one desk conversation.
package session

import "time"

// Role identifies the sender of a transcript turn.
type Role string

const (
	RoleBuyer Role = "buyer"
	RoleAgent Role = "agent"
)

// Turn is a single transcript entry.
type Turn struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Transcript holds an ordered sequence of conversation turns. Implementations
// must be safe for concurrent use.
type Transcript interface {
	// ID returns the unique transcript identifier.
	ID() string
	// Append adds a turn to the conversation history.
	Append(turn Turn)
	// Turns returns a defensive copy of the conversation history.
	Turns() []Turn
	// Clear resets the conversation history.
	Clear()
}
