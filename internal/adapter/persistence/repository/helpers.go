package repository

import (
	"context"
	"fmt"
	"time"

	"oficina_nova_brasil/internal/adapter/persistence/collection"
	"oficina_nova_brasil/internal/domain/identity"
	"oficina_nova_brasil/internal/usecase/interfaces"
)

// Option customises a repository; tests use it to pin ids and time.
type Option func(*settings)

type settings struct {
	ids identity.Strategy
	now func() time.Time
}

func WithIDStrategy(s identity.Strategy) Option {
	return func(o *settings) { o.ids = s }
}

func WithClock(now func() time.Time) Option {
	return func(o *settings) { o.now = now }
}

func newSettings(defaultIDs identity.Strategy, opts []Option) settings {
	s := settings{ids: defaultIDs, now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) stamp() time.Time {
	return s.now().UTC()
}

// records implements the list/get/insert/modify/remove cycle shared by every
// repository on top of one collection.
type records[T any] struct {
	col  *collection.Collection[T]
	kind string
	idOf func(T) string
}

func newRecords[T any](store interfaces.IKeyValueStore, slot, kind string, idOf func(T) string) records[T] {
	return records[T]{col: collection.New[T](store, slot), kind: kind, idOf: idOf}
}

func (r records[T]) notFound(id string) error {
	return fmt.Errorf("%s %q: %w", r.kind, id, interfaces.ErrNotFound)
}

func (r records[T]) list(ctx context.Context) ([]T, error) {
	return r.col.Load(ctx)
}

func (r records[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := r.col.Load(ctx)
	if err != nil {
		return zero, err
	}
	if i := r.indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	return zero, r.notFound(id)
}

// insert appends the record produced by build, which sees the current items.
func (r records[T]) insert(ctx context.Context, build func(existing []T) T) (T, error) {
	var created T
	err := r.col.Mutate(ctx, func(items []T) ([]T, error) {
		created = build(items)
		return append(items, created), nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

func (r records[T]) modify(ctx context.Context, id string, fn func(T) T) (T, error) {
	return r.mutate(ctx, id, func(item T) (T, error) { return fn(item), nil })
}

// mutate replaces the record with fn's result while the collection is
// locked. An error from fn aborts the write and is returned unchanged.
func (r records[T]) mutate(ctx context.Context, id string, fn func(T) (T, error)) (T, error) {
	var updated T
	err := r.col.Mutate(ctx, func(items []T) ([]T, error) {
		i := r.indexOf(items, id)
		if i < 0 {
			return nil, r.notFound(id)
		}
		next, err := fn(items[i])
		if err != nil {
			return nil, err
		}
		updated = next
		items[i] = updated
		return items, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (r records[T]) remove(ctx context.Context, id string) error {
	return r.col.Mutate(ctx, func(items []T) ([]T, error) {
		i := r.indexOf(items, id)
		if i < 0 {
			return nil, r.notFound(id)
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

func (r records[T]) indexOf(items []T, id string) int {
	for i, it := range items {
		if r.idOf(it) == id {
			return i
		}
	}
	return -1
}

func (r records[T]) contains(items []T, id string) bool {
	return r.indexOf(items, id) >= 0
}
