package session

import (
	"sync"

	"github.com/google/uuid"
)

type memoryTranscript struct {
	id    string
	turns []Turn
	mu    sync.RWMutex
}

// NewMemoryTranscript creates a Transcript backed by an in-memory slice.
// The transcript is assigned a unique UUIDv7 identifier.
func NewMemoryTranscript() Transcript {
	return &memoryTranscript{
		id: uuid.Must(uuid.NewV7()).String(),
	}
}

func (t *memoryTranscript) ID() string {
	return t.id
}

func (t *memoryTranscript) Append(turn Turn) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = append(t.turns, turn)
}

func (t *memoryTranscript) Turns() []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()

	copied := make([]Turn, len(t.turns))
	copy(copied, t.turns)
	return copied
}

func (t *memoryTranscript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = nil
}
