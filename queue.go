package labyrinth

import (
	"container/heap"
)

// workQueue holds arena indexes of steps waiting to be expanded.
type workQueue interface {
	Push(step int, priority float64)
	Pop() int
	Len() int
}

func newWorkQueue(s Strategy) workQueue {
	if s == BestFirst {
		pq := &PriorityQueue{}
		heap.Init(pq)
		return &heapQueue{pq: pq}
	}
	return &fifoQueue{}
}

// fifoQueue ignores priorities and hands steps out in arrival order.
type fifoQueue struct {
	items []int
	head  int
}

func (q *fifoQueue) Push(step int, _ float64) {
	q.items = append(q.items, step)
}

func (q *fifoQueue) Pop() int {
	step := q.items[q.head]
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return step
}

func (q *fifoQueue) Len() int {
	return len(q.items) - q.head
}

// Node is a queued step in the best-first search
type Node struct {
	Step     int     // arena index of the step
	Priority float64 // path length so far plus straight-line distance to the destination
	Seq      int     // insertion order, breaks ties
	Index    int     // Index in the heap
}

// PriorityQueue implements heap.Interface for the best-first search
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	node := x.(*Node)
	node.Index = n
	*pq = append(*pq, node)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*pq = old[0 : n-1]
	return node
}

type heapQueue struct {
	pq  *PriorityQueue
	seq int
}

func (q *heapQueue) Push(step int, priority float64) {
	heap.Push(q.pq, &Node{Step: step, Priority: priority, Seq: q.seq})
	q.seq++
}

func (q *heapQueue) Pop() int {
	return heap.Pop(q.pq).(*Node).Step
}

func (q *heapQueue) Len() int {
	return q.pq.Len()
}
