// File: core/future/pending.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package future

import "github.com/eapache/queue"

// pendingQueue is the FIFO backlog for values or errors produced while no
// handler was attached. Backed by a ring queue with O(1) append and
// pop-front.
type pendingQueue struct {
	q *queue.Queue
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{q: queue.New()}
}

func (p *pendingQueue) push(v any) {
	p.q.Add(v)
}

// drain pops elements front-to-back and hands each to fn. The element is
// removed before fn runs, so a panicking handler can never cause an
// already delivered element to be delivered again.
func (p *pendingQueue) drain(fn func(any)) {
	for p.q.Length() > 0 {
		fn(p.q.Remove())
	}
}

func (p *pendingQueue) len() int {
	return p.q.Length()
}
