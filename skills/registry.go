// Package skills provides the registry of scripted conversation skills: the
// canned-reply branches of the sales chat (payment instructions, invoice
// confirmation, shipping guidance) that sit outside price negotiation.
// Skills are matched against the buyer's message by keyword.
package skills

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Handler is the function signature for skill implementations.
// Handlers receive the request context and the buyer's raw message.
type Handler func(ctx context.Context, message string) (Result, error)

// Result is the skill output rendered back into the chat.
type Result struct {
	Content string
}

// Skill describes a registered conversation skill. A skill matches when any
// of its keywords appears in the lowercased buyer message.
type Skill struct {
	Name        string
	Description string
	Keywords    []string
}

type entry struct {
	skill   Skill
	handler Handler
}

type registry struct {
	entries map[string]entry
	order   []string // registration order decides match priority
	mu      sync.RWMutex
}

var register = &registry{
	entries: make(map[string]entry),
}

// Register adds a new skill to the global registry.
// Returns ErrAlreadyExists if a skill with the same name is already
// registered. Use Replace to update an existing skill's handler.
// Thread-safe for concurrent registration.
func Register(skill Skill, handler Handler) error {
	if skill.Name == "" {
		return ErrEmptyName
	}
	if len(skill.Keywords) == 0 {
		return fmt.Errorf("%w: %s", ErrNoKeywords, skill.Name)
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.entries[skill.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, skill.Name)
	}

	register.entries[skill.Name] = entry{skill: skill, handler: handler}
	register.order = append(register.order, skill.Name)
	return nil
}

// Replace updates an existing skill's definition and handler.
// Returns ErrNotFound if no skill with the given name is registered.
// Thread-safe for concurrent access.
func Replace(skill Skill, handler Handler) error {
	if skill.Name == "" {
		return ErrEmptyName
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.entries[skill.Name]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, skill.Name)
	}

	register.entries[skill.Name] = entry{skill: skill, handler: handler}
	return nil
}

// List returns the definitions of all registered skills in registration order.
// Thread-safe for concurrent access.
func List() []Skill {
	register.mu.RLock()
	defer register.mu.RUnlock()

	skills := make([]Skill, 0, len(register.order))
	for _, name := range register.order {
		skills = append(skills, register.entries[name].skill)
	}
	return skills
}

// Match returns the name of the first registered skill whose keywords appear
// in the message, and true if any matched. Matching is case-insensitive and
// follows registration order.
func Match(message string) (string, bool) {
	lowered := strings.ToLower(message)

	register.mu.RLock()
	defer register.mu.RUnlock()

	for _, name := range register.order {
		for _, kw := range register.entries[name].skill.Keywords {
			if strings.Contains(lowered, kw) {
				return name, true
			}
		}
	}
	return "", false
}

// Execute dispatches a buyer message to the named skill's handler.
// Returns ErrNotFound if the skill is not registered.
// Handler errors are wrapped with the skill name for context.
// Thread-safe for concurrent execution.
func Execute(ctx context.Context, name string, message string) (Result, error) {
	register.mu.RLock()
	e, exists := register.entries[name]
	register.mu.RUnlock()

	if !exists {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	result, err := e.handler(ctx, message)
	if err != nil {
		return Result{}, fmt.Errorf("skill %s execution failed: %w", name, err)
	}

	return result, nil
}

// Reset clears the global registry. Intended for tests.
func Reset() {
	register.mu.Lock()
	defer register.mu.Unlock()

	register.entries = make(map[string]entry)
	register.order = nil
}
