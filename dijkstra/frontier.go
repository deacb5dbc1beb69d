package dijkstra

import "container/heap"

// frontier is the set of discovered, not yet settled nodes.
//
// pop returns the member with the lowest cost; among equal costs, the member
// that was pushed first. decrease is called after the cost of v was lowered;
// it is a no-op for nodes that are no longer members.
type frontier interface {
	push(v int)
	decrease(v int)
	pop() int
	len() int
}

// linearFrontier keeps members in discovery order and scans for the minimum.
type linearFrontier struct {
	cost  []int64 // shared with the runner
	slots []int
}

func newLinearFrontier(cost []int64) *linearFrontier {
	return &linearFrontier{cost: cost}
}

func (f *linearFrontier) push(v int) { f.slots = append(f.slots, v) }

// decrease needs no bookkeeping: pop always reads live costs.
func (f *linearFrontier) decrease(int) {}

func (f *linearFrontier) len() int { return len(f.slots) }

func (f *linearFrontier) pop() int {
	best := 0
	for i := 1; i < len(f.slots); i++ {
		if f.cost[f.slots[i]] < f.cost[f.slots[best]] {
			best = i
		}
	}
	v := f.slots[best]
	// Preserve discovery order of the remaining members.
	f.slots = append(f.slots[:best], f.slots[best+1:]...)

	return v
}

// heapFrontier orders entries by (cost, seq) where seq is the node's discovery
// rank, which reproduces the linear scan's tie-break exactly.
type heapFrontier struct {
	cost    []int64 // shared with the runner
	seq     []int   // slot → discovery rank
	member  []bool  // slot → currently in the frontier
	pq      nodePQ
	members int
	nextSeq int
}

func newHeapFrontier(cost []int64, n int) *heapFrontier {
	return &heapFrontier{
		cost:   cost,
		seq:    make([]int, n),
		member: make([]bool, n),
		pq:     make(nodePQ, 0, n),
	}
}

func (f *heapFrontier) push(v int) {
	f.seq[v] = f.nextSeq
	f.nextSeq++
	f.member[v] = true
	f.members++
	heap.Push(&f.pq, nodeItem{slot: v, cost: f.cost[v], seq: f.seq[v]})
}

// decrease pushes a fresh entry; the outdated one is dropped when popped.
func (f *heapFrontier) decrease(v int) {
	if !f.member[v] {
		return
	}
	heap.Push(&f.pq, nodeItem{slot: v, cost: f.cost[v], seq: f.seq[v]})
}

func (f *heapFrontier) len() int { return f.members }

func (f *heapFrontier) pop() int {
	for {
		it := heap.Pop(&f.pq).(nodeItem)
		// Stale: already settled, or superseded by a cheaper entry.
		if !f.member[it.slot] || it.cost != f.cost[it.slot] {
			continue
		}
		f.member[it.slot] = false
		f.members--

		return it.slot
	}
}

// nodeItem is one heap entry: a slot and the cost it had when pushed.
type nodeItem struct {
	slot int
	cost int64
	seq  int
}

// nodePQ is a min-heap of nodeItem ordered by cost, then discovery rank.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost; equal costs fall back to discovery rank.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
