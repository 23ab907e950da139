package queue

import "errors"

var ErrQueueFull = errors.New("queue is full")

// Queue represents a bounded FIFO queue.
type Queue[T any] interface {
	// Enqueue adds an item to the end of the queue without blocking.
	// It returns ErrQueueFull when there is no room left.
	Enqueue(item T) error
	Size() int
	ReadAllMessages() ([]T, error)
	ClearQueue()
}
