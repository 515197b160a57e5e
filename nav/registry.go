package nav

import (
	"container/list"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry[T any] struct {
	id      string
	value   T
	expires time.Time
}

// Registry maps generated ids to values. Entries expire after ttl, and once more than
// maxLen entries are held the oldest one is evicted.
type Registry[T any] struct {
	mu     sync.Mutex
	ttl    time.Duration
	maxLen int
	order  *list.List
	byID   map[string]*list.Element
	now    func() time.Time
}

func NewRegistry[T any](ttl time.Duration, maxLen int) *Registry[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	return &Registry[T]{
		ttl:    ttl,
		maxLen: maxLen,
		order:  list.New(),
		byID:   make(map[string]*list.Element),
		now:    time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (r *Registry[T]) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.now = now
}

func (r *Registry[T]) Put(value T) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()

	id := uuid.NewString()
	r.byID[id] = r.order.PushBack(&entry[T]{id: id, value: value, expires: r.now().Add(r.ttl)})

	for r.order.Len() > r.maxLen {
		r.remove(r.order.Front())
	}

	return id
}

func (r *Registry[T]) Get(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.lookup(id, false)
}

// Take returns the value and forgets it.
func (r *Registry[T]) Take(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.lookup(id, true)
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()

	return r.order.Len()
}

func (r *Registry[T]) lookup(id string, consume bool) (T, bool) {
	var zero T

	el, ok := r.byID[id]
	if !ok {
		return zero, false
	}

	e := el.Value.(*entry[T])
	if !r.now().Before(e.expires) {
		r.remove(el)

		return zero, false
	}

	if consume {
		r.remove(el)
	}

	return e.value, true
}

// sweep drops expired entries from the front; entries are ordered by expiry since ttl is fixed.
func (r *Registry[T]) sweep() {
	now := r.now()

	for el := r.order.Front(); el != nil; el = r.order.Front() {
		if now.Before(el.Value.(*entry[T]).expires) {
			return
		}

		r.remove(el)
	}
}

func (r *Registry[T]) remove(el *list.Element) {
	e := r.order.Remove(el).(*entry[T])
	delete(r.byID, e.id)
}
