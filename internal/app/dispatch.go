package app

import (
	"errors"
	"sync"
)

// ErrQueueClosed is returned by Send once the worker side is gone.
var ErrQueueClosed = errors.New("dispatch queue closed")

// Request asks the worker to look up IP with one provider.
type Request struct {
	Provider Provider
	IP       string
}

// Sender is the producer half of the dispatch queue.
type Sender interface {
	Send(Request) error
}

// Queue is an unbounded FIFO between the UI and the worker. Send never
// blocks; Receive blocks until a request arrives or the queue is closed.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []Request
	closed bool
}

// NewQueue returns an open, empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send enqueues req.
func (q *Queue) Send(req Request) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	q.items = append(q.items, req)
	q.cond.Signal()
	return nil
}

// Receive dequeues the oldest request. It returns false once the queue is
// closed and drained.
func (q *Queue) Receive() (Request, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return Request{}, false
	}
	req := q.items[0]
	q.items[0] = Request{}
	q.items = q.items[1:]
	return req, true
}

// Close rejects further sends and wakes a blocked Receive.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}

// Len reports how many requests are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
