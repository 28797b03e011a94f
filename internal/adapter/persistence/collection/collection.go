// Package collection provides typed, JSON-encoded access to one slot of the
// backing store.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"oficina_nova_brasil/internal/usecase/interfaces"
)

var emptyPayload = []byte("[]")

// Collection reads and writes the whole slot at once. The last payload read
// or written is cached, so reads after the first do not hit the store; every
// Load decodes a fresh copy, so callers may modify what they get.
//
// Read-modify-write cycles (Mutate) are serialised per collection. Writes from
// another process sharing the store are not seen once the cache is warm.
type Collection[T any] struct {
	store interfaces.IKeyValueStore
	name  string

	mu     sync.Mutex
	cache  []byte
	loaded bool
}

func New[T any](store interfaces.IKeyValueStore, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) Name() string { return c.name }

// Load returns the current records in insertion order. A slot never written
// yields an empty, non-nil slice.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

// Save fully replaces the slot with items.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(ctx, items)
}

// Mutate loads the records, hands them to fn and saves what fn returns.
// Nothing is written when fn fails.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.loadLocked(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return c.saveLocked(ctx, next)
}

func (c *Collection[T]) loadLocked(ctx context.Context) ([]T, error) {
	if !c.loaded {
		payload, found, err := c.store.Get(ctx, c.name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", c.name, err)
		}
		if !found || len(payload) == 0 {
			payload = emptyPayload
		}
		c.cache = payload
		c.loaded = true
	}

	items := []T{}
	if err := json.Unmarshal(c.cache, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	if items == nil {
		// The slot held JSON null.
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) saveLocked(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.store.Set(ctx, c.name, payload); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	c.cache = payload
	c.loaded = true
	return nil
}

// Seed writes an empty array into every named slot that is absent from the
// store. Existing slots are left untouched.
func Seed(ctx context.Context, store interfaces.IKeyValueStore, names ...string) error {
	for _, name := range names {
		_, found, err := store.Get(ctx, name)
		if err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		if found {
			continue
		}
		if err := store.Set(ctx, name, emptyPayload); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return nil
}
