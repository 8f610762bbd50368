package resource

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Insert after the table has been closed.
var ErrClosed = errors.New("resource table closed")

// Table maps integer handles to open values. Slots freed by Remove are
// recycled through a free list, so handles stay small and dense. A removed
// handle is never the same live entry twice: the slot generation is not
// tracked, which is why callers must not use a handle after removing it.
type Table struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	value any
	name  string
	valid bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 16),
		freeList: make([]Handle, 0, 8),
	}
}

// Insert stores a named value and returns its handle, or ErrClosed.
func (t *Table) Insert(name string, value any) (Handle, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, ErrClosed
	}

	e := entry{name: name, value: value, valid: true}
	var h Handle
	if n := len(t.freeList); n > 0 {
		h = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[h-1] = e
	} else {
		t.entries = append(t.entries, e)
		h = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventOpened, Handle: h, Name: name, Value: value})
	return h, nil
}

// Get retrieves a value by handle.
func (t *Table) Get(h Handle) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(h)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Name returns the name the entry was inserted under.
func (t *Table) Name(h Handle) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(h)
	if !ok {
		return "", false
	}
	return e.name, true
}

// lookup resolves h to a live entry. Callers hold t.mu.
func (t *Table) lookup(h Handle) (*entry, bool) {
	if h == 0 || int(h) > len(t.entries) {
		return nil, false
	}
	e := &t.entries[h-1]
	if !e.valid {
		return nil, false
	}
	return e, true
}

// Remove drops an entry and returns its value. Removing an already-removed
// or unknown handle returns (nil, false); it never panics.
func (t *Table) Remove(h Handle) (any, bool) {
	t.mu.Lock()
	e, ok := t.lookup(h)
	if !ok {
		t.mu.Unlock()
		return nil, false
	}

	value, name := e.value, e.name
	e.valid = false
	e.value = nil
	e.name = ""
	t.freeList = append(t.freeList, h)
	t.mu.Unlock()

	t.notify(Event{Type: EventClosed, Handle: h, Name: name, Value: value})
	return value, true
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for i := range t.entries {
		if t.entries[i].valid {
			n++
		}
	}
	return n
}

// Each calls fn for every live entry until fn returns false.
func (t *Table) Each(fn func(h Handle, name string, value any) bool) {
	t.mu.RLock()
	type item struct {
		h     Handle
		name  string
		value any
	}
	items := make([]item, 0, len(t.entries))
	for i := range t.entries {
		if t.entries[i].valid {
			items = append(items, item{Handle(i + 1), t.entries[i].name, t.entries[i].value})
		}
	}
	t.mu.RUnlock()

	for _, it := range items {
		if !fn(it.h, it.name, it.value) {
			return
		}
	}
}

// Close removes every live entry and stops accepting inserts. The removed
// values are passed to fn (if non-nil) so the caller can release them.
func (t *Table) Close(fn func(value any)) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	var handles []Handle
	t.Each(func(h Handle, _ string, _ any) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		if v, ok := t.Remove(h); ok && fn != nil {
			fn(v)
		}
	}
	return nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
