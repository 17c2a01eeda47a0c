// Package collection stores an ordered list of entities as a single JSON
// array under one key of the kv store.
//
// Every mutation reads the whole list, changes it in memory and writes the
// whole list back. There is no partial-write protection: a failed write
// leaves the previously stored list in place and returns the error.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wastetrack/internal/common"
	"github.com/dmitrijs2005/wastetrack/internal/logging"
)

// Entity is implemented by the stored models.
type Entity[T any] interface {
	GetID() string
	WithID(id string) T
}

// List is a JSON-array collection bound to one kv key.
type List[T Entity[T]] struct {
	repo   kv.Repository
	key    string
	logger logging.Logger
	now    func() time.Time
}

// New binds a collection to key. now is used for id generation; nil means
// time.Now.
func New[T Entity[T]](repo kv.Repository, key string, logger logging.Logger, now func() time.Time) *List[T] {
	if now == nil {
		now = time.Now
	}
	return &List[T]{repo: repo, key: key, logger: logger.With("key", key), now: now}
}

// GetAll returns the stored items in insertion order. A missing key yields
// an empty slice. A corrupt blob also yields an empty slice; the decode
// error is logged, not returned.
func (l *List[T]) GetAll(ctx context.Context) ([]T, error) {
	blob, err := l.repo.Get(ctx, l.key)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		l.logger.Warn(ctx, "stored collection is unreadable, treating as empty", "error", err, "bytes", len(blob))
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Add assigns a fresh id to item, appends it and persists the list.
func (l *List[T]) Add(ctx context.Context, item T) (T, error) {
	var zero T

	items, err := l.GetAll(ctx)
	if err != nil {
		return zero, err
	}

	item = item.WithID(common.NewID(l.now()))
	items = append(items, item)

	if err := l.Replace(ctx, items); err != nil {
		return zero, err
	}

	l.logger.Debug(ctx, "item added", "id", item.GetID(), "count", len(items))
	return item, nil
}

// Delete removes every item whose id equals id. Unknown ids are a no-op.
func (l *List[T]) Delete(ctx context.Context, id string) error {
	items, err := l.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetID() != id {
			kept = append(kept, it)
		}
	}

	if err := l.Replace(ctx, kept); err != nil {
		return err
	}

	l.logger.Debug(ctx, "item deleted", "id", id, "removed", len(items)-len(kept))
	return nil
}

// Update applies fn to the item with the given id and persists the list.
// It returns common.ErrorNotFound when no item matches.
func (l *List[T]) Update(ctx context.Context, id string, fn func(T) T) (T, error) {
	var zero T

	items, err := l.GetAll(ctx)
	if err != nil {
		return zero, err
	}

	idx := -1
	for i, it := range items {
		if it.GetID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, fmt.Errorf("%s %s: %w", l.key, id, common.ErrorNotFound)
	}

	// the id is not updatable
	items[idx] = fn(items[idx]).WithID(id)

	if err := l.Replace(ctx, items); err != nil {
		return zero, err
	}
	return items[idx], nil
}

// Replace serializes items and stores them as the whole collection.
func (l *List[T]) Replace(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", l.key, err)
	}

	return l.repo.Set(ctx, l.key, blob)
}

// Exists reports whether the key is present in the store at all.
func (l *List[T]) Exists(ctx context.Context) (bool, error) {
	blob, err := l.repo.Get(ctx, l.key)
	if err != nil {
		return false, err
	}
	return blob != nil, nil
}
