// Package pool provides the bounded worker pool shared by the fetch and
// reconcile stages.
package pool

import "sync"

type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Go schedules fn on the pool. Submission never blocks; at most size tasks run
// at once. This keeps pipeline stages that submit work while draining results
// from stalling each other.
func (p *Pool) Go(fn func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.sem <- struct{}{}
		defer func() { <-p.sem }()
		fn()
	}()
}

// Wait blocks until every task submitted so far has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}
