package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a generic FIFO queue which additionally supports re-injection at the
// front. Enqueue, Dequeue and Requeue are O(1) amortized (backed by ef-ds/deque).
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// Enqueue adds an item to the back of the queue
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Requeue places an item at the front of the queue so that it is returned by
// the next Dequeue
func (q *Q[T]) Requeue(item T) {
	q.d.PushFront(item)
}

// Dequeue removes and returns the item at the front of the queue
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Peek returns the item at the front of the queue without removing it
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.d.Init()
}
