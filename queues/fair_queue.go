package queues

import (
	"log/slog"
	"sync"
)

// FairQueue holds one FIFO lane per producer identity and serves lanes in
// strict round-robin rotation. Rotation order is the order in which lane
// IDs were first pushed, never reordered by load or activity, so replaying
// the same push/pop trace always yields the same service order.
//
// Push is safe to call from concurrent producers. Pop, PopFrom, Remove and
// Clear are meant to run on a single consuming loop, though every method
// takes the lock and none of them blocks.
//
// A drained lane stays registered and is skipped during rotation until
// Remove drops it. The round-robin policy is the whole contract here; a
// weighted or priority variant would replace this type behind the same
// method set.
type FairQueue[K comparable, V any] struct {
	mu     sync.Mutex
	index  map[K]int // lane ID -> slot
	slots  []laneSlot[K, V]
	cursor int // slot last served, -1 before the first Pop
	dead   int
	logger *slog.Logger
}

type laneSlot[K comparable, V any] struct {
	id    K
	items []V
	live  bool
}

// New returns an empty queue. The logger is optional; it only ever
// reports abnormal-but-survivable conditions such as Restore merging
// duplicate lanes.
func New[K comparable, V any](logger *slog.Logger) *FairQueue[K, V] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FairQueue[K, V]{
		index:  make(map[K]int),
		cursor: -1,
		logger: logger,
	}
}

// Push appends v to the lane identified by id, registering the lane at
// the end of the rotation order on first sight. It never blocks and never
// fails.
func (q *FairQueue[K, V]) Push(id K, v V) {
	q.mu.Lock()
	defer q.mu.Unlock()

	slot, ok := q.index[id]
	if !ok {
		slot = len(q.slots)
		q.slots = append(q.slots, laneSlot[K, V]{id: id, live: true})
		q.index[id] = slot
	}
	q.slots[slot].items = append(q.slots[slot].items, v)
}

// Pop removes and returns the next item in rotation order along with the
// lane it came from. ok is false when every lane is empty; that is the
// normal idle condition, not an error.
func (q *FairQueue[K, V]) Pop() (id K, v V, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.slots)
	for off := 1; off <= n; off++ {
		i := (q.cursor + off) % n
		slot := &q.slots[i]
		if !slot.live || len(slot.items) == 0 {
			continue
		}
		q.cursor = i
		return slot.id, slot.take(), true
	}
	return
}

// PopFrom removes and returns the head item of one specific lane,
// bypassing rotation. The rotation pointer is left untouched, so targeted
// pops cannot starve or favor other lanes.
func (q *FairQueue[K, V]) PopFrom(id K) (v V, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	slot, found := q.index[id]
	if !found || len(q.slots[slot].items) == 0 {
		return
	}
	return q.slots[slot].take(), true
}

func (s *laneSlot[K, V]) take() V {
	v := s.items[0]
	var zero V
	s.items[0] = zero
	s.items = s.items[1:]
	if len(s.items) == 0 {
		s.items = nil
	}
	return v
}

// Remove drops a lane and any items it still holds. Removing an unknown
// lane is a no-op: removal racing a concurrent drain is expected.
func (q *FairQueue[K, V]) Remove(id K) {
	q.mu.Lock()
	defer q.mu.Unlock()

	slot, ok := q.index[id]
	if !ok {
		return
	}
	delete(q.index, id)
	q.slots[slot].live = false
	q.slots[slot].items = nil
	q.dead++

	if q.dead > 8 && q.dead > len(q.slots)/2 {
		q.compact()
	}
}

// compact rebuilds the slot arena without dead entries, preserving the
// relative order of live lanes. The cursor is remapped so the next Pop
// still starts at the lane that would have been served next.
func (q *FairQueue[K, V]) compact() {
	slots := make([]laneSlot[K, V], 0, len(q.slots)-q.dead)
	cursor := -1
	for i := range q.slots {
		if q.slots[i].live {
			q.index[q.slots[i].id] = len(slots)
			slots = append(slots, q.slots[i])
		}
		if i == q.cursor {
			// a dead cursor slot resolves to the nearest live slot
			// before it, which scans the same successor
			cursor = len(slots) - 1
		}
	}
	q.slots = slots
	q.cursor = cursor
	q.dead = 0
}

// Len is the total number of pending items across all lanes.
func (q *FairQueue[K, V]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for i := range q.slots {
		n += len(q.slots[i].items)
	}
	return n
}

// Contains reports whether the lane exists and has at least one pending
// item.
func (q *FairQueue[K, V]) Contains(id K) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	slot, ok := q.index[id]
	return ok && len(q.slots[slot].items) > 0
}

// Keys returns the IDs of all non-empty lanes in rotation order.
func (q *FairQueue[K, V]) Keys() []K {
	q.mu.Lock()
	defer q.mu.Unlock()

	var keys []K
	for i := range q.slots {
		if q.slots[i].live && len(q.slots[i].items) > 0 {
			keys = append(keys, q.slots[i].id)
		}
	}
	return keys
}

// Clear empties the queue, dropping every lane registration and resetting
// the rotation.
func (q *FairQueue[K, V]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.index = make(map[K]int)
	q.slots = nil
	q.cursor = -1
	q.dead = 0
}
