package calculator

// ItemQueue is an unbounded FIFO queue. It is not safe for concurrent use:
// callers must not enqueue into a queue that a Formula is draining.
type ItemQueue[T any] struct {
	items []T
	head  int
}

// NewItemQueue returns a queue holding items in order.
func NewItemQueue[T any](items ...T) *ItemQueue[T] {
	q := &ItemQueue[T]{}
	for _, item := range items {
		q.Enqueue(item)
	}
	return q
}

// Enqueue appends item to the tail of the queue.
func (q *ItemQueue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the head of the queue.
func (q *ItemQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrQueueEmpty
	}

	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item, nil
}

// Peek returns the head of the queue without removing it.
func (q *ItemQueue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrQueueEmpty
	}
	return q.items[q.head], nil
}

func (q *ItemQueue[T]) IsEmpty() bool {
	return q.Count() == 0
}

func (q *ItemQueue[T]) Count() int {
	return len(q.items) - q.head
}

// RemoveAll empties the queue.
func (q *ItemQueue[T]) RemoveAll() {
	q.items = nil
	q.head = 0
}
