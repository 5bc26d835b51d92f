package repositories

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/unicrud/internal/pkg/logger"
)

// keyed is implemented by records identified by a natural string key.
type keyed interface {
	Key() string
}

// collection is an ordered, mutex-guarded sequence of records. Insertion order
// is listing order. Keys are not unique: lookups return the first match.
type collection[T keyed] struct {
	mu    sync.RWMutex
	items []T
	log   zerolog.Logger
}

func newCollection[T keyed](name string, seed []T) *collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &collection[T]{
		items: items,
		log:   logger.Component(name),
	}
}

// list returns a snapshot of the collection.
func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// indexOf returns the position of the first record with key, or -1.
// Callers must hold the lock.
func (c *collection[T]) indexOf(key string) int {
	for i := range c.items {
		if c.items[i].Key() == key {
			return i
		}
	}
	return -1
}

func (c *collection[T]) get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(key); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) add(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.log.Debug().Str("key", item.Key()).Int("size", len(c.items)).Msg("Record appended")
	return item
}

// update applies fn to the first record with key in place.
func (c *collection[T]) update(key string, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(key)
	if i < 0 {
		var zero T
		return zero, false
	}
	fn(&c.items[i])
	c.log.Debug().Str("key", key).Int("position", i).Msg("Record updated")
	return c.items[i], true
}

// remove drops every record with key and reports whether any was dropped.
func (c *collection[T]) remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Key() != key {
			kept = append(kept, item)
		}
	}
	removed := len(c.items) - len(kept)
	// clear the tail left behind in the backing array
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	if removed > 0 {
		c.log.Debug().Str("key", key).Int("removed", removed).Msg("Records removed")
	}
	return removed > 0
}

func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
