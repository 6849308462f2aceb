package search

// frontierItem is one entry of the A* open set.
type frontierItem struct {
	idx  int // arena index
	g    int
	f    int
	seq  int // insertion order, breaks f ties stably
	slot int // position in the heap, maintained by Swap
}

// frontier is a binary heap ordered by ascending f, ties broken by
// insertion order so equal-scored cells come out in discovery order.
type frontier []*frontierItem

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].slot = i
	q[j].slot = j
}

func (q *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.slot = len(*q)
	*q = append(*q, item)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
