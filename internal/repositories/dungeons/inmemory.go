package dungeons

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Record
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*Record),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Save stores a layout
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	record := &Record{
		ID:        input.ID,
		Layout:    input.Layout,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	r.store[input.ID] = record

	copied := *record
	return &SaveOutput{Record: &copied}, nil
}

// Get retrieves a layout by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	record, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound("dungeon not found").WithMeta("dungeon_id", input.ID)
	}
	if r.clock.Now().After(record.ExpiresAt) {
		r.mu.Lock()
		if r.store[input.ID] == record {
			delete(r.store, input.ID)
		}
		r.mu.Unlock()
		return nil, errors.NotFound("dungeon has expired").WithMeta("dungeon_id", input.ID)
	}

	// Return a copy to prevent external modification
	copied := *record
	return &GetOutput{Record: &copied}, nil
}

// Delete removes a layout
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.ID]
	delete(r.store, input.ID)

	return &DeleteOutput{Deleted: exists}, nil
}
