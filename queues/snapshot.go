package queues

import (
	"log/slog"
	"slices"
)

// LaneState is one lane's portion of a queue snapshot.
type LaneState[K comparable, V any] struct {
	ID    K
	Items []V
}

// Dump captures every registered lane in rotation order, pending items
// included, with empty-but-registered lanes kept. The copy is detached
// from the queue.
func (q *FairQueue[K, V]) Dump() []LaneState[K, V] {
	q.mu.Lock()
	defer q.mu.Unlock()

	var states []LaneState[K, V]
	for i := range q.slots {
		if !q.slots[i].live {
			continue
		}
		states = append(states, LaneState[K, V]{
			ID:    q.slots[i].id,
			Items: slices.Clone(q.slots[i].items),
		})
	}
	return states
}

// Restore builds a queue from a Dump snapshot, registering lanes in
// snapshot order. Duplicate lane IDs are merged in order, with a warning,
// rather than rejected.
func Restore[K comparable, V any](states []LaneState[K, V], logger *slog.Logger) *FairQueue[K, V] {
	q := New[K, V](logger)
	for _, state := range states {
		slot, ok := q.index[state.ID]
		if ok {
			q.logger.Warn("lane already present, merging",
				"lane", state.ID,
			)
		} else {
			slot = len(q.slots)
			q.slots = append(q.slots, laneSlot[K, V]{id: state.ID, live: true})
			q.index[state.ID] = slot
		}
		q.slots[slot].items = append(q.slots[slot].items, state.Items...)
	}
	return q
}
