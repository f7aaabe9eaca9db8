// File: delay.go
// Role: delay-mode node ordering (§4.7): a binary max-heap keyed by
// pathD*pathR, so the most timing-critical node is always attempted next,
// and UpdateTiming (ntk.Network) can push updated priorities straight back
// in after a commit. Grounded on ABC's Vec_Que_t usage in Acb_NtkOpt
// (Vec_QueIsMember/Vec_QueUpdate/Vec_QuePush, acbUtil.c lines 546-569)
// reimplemented over container/heap instead of ABC's hand-rolled array
// heap, since Go's standard library already provides the primitive.
package schedule

import "container/heap"

type entry struct {
	id       int
	priority int64
}

// innerHeap is the container/heap.Interface implementation; kept private
// and separate from DelayQueue so DelayQueue's own Push(id, priority) (the
// ntk.PriorityQueue shape) never collides with heap.Interface's
// Push(any).
type innerHeap struct {
	items []entry
	index map[int]int // node id -> position in items
}

func (h *innerHeap) Len() int { return len(h.items) }

// Less orders by descending priority: this is a max-heap, so the node
// with the largest pathD*pathR product pops first.
func (h *innerHeap) Less(i, j int) bool { return h.items[i].priority > h.items[j].priority }

func (h *innerHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].id] = i
	h.index[h.items[j].id] = j
}

func (h *innerHeap) Push(x any) {
	e := x.(entry)
	h.index[e.id] = len(h.items)
	h.items = append(h.items, e)
}

func (h *innerHeap) Pop() any {
	old := h.items
	last := len(old) - 1
	e := old[last]
	h.items = old[:last]
	delete(h.index, e.id)
	return e
}

// DelayQueue is a binary max-heap of (node id, priority) pairs, satisfying
// ntk.PriorityQueue so Network.UpdateTiming can push fresh priorities back
// in as it recomputes levels and path counts after a commit.
type DelayQueue struct {
	h *innerHeap
}

// NewDelayQueue returns an empty delay-mode queue.
func NewDelayQueue() *DelayQueue {
	return &DelayQueue{h: &innerHeap{index: map[int]int{}}}
}

// IsMember reports whether id currently has an entry in the queue.
func (q *DelayQueue) IsMember(id int) bool {
	_, ok := q.h.index[id]
	return ok
}

// Push inserts id with the given priority. Pushing an id already present
// is a caller error (use Update instead); Acb_ObjUpdatePriority never
// double-pushes, so this mirrors that contract rather than silently
// correcting it.
func (q *DelayQueue) Push(id int, priority int64) {
	heap.Push(q.h, entry{id: id, priority: priority})
}

// Update changes id's priority, pushing it if it is not already a member,
// and restores the heap invariant in O(log n) either way.
func (q *DelayQueue) Update(id int, priority int64) {
	i, ok := q.h.index[id]
	if !ok {
		q.Push(id, priority)
		return
	}
	q.h.items[i].priority = priority
	heap.Fix(q.h, i)
}

// Pop removes and returns the highest-priority node id. ok is false when
// the queue is empty.
func (q *DelayQueue) Pop() (id int, ok bool) {
	if q.h.Len() == 0 {
		return 0, false
	}
	e := heap.Pop(q.h).(entry)
	return e.id, true
}

// Len reports how many nodes remain queued.
func (q *DelayQueue) Len() int { return q.h.Len() }
