// Copyright (c) 2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package async

import (
	"context"
	"sync"
)

const (
	// DefaultMaxWorkers of a Pool used when PoolOptions does not set one.
	DefaultMaxWorkers = 4
)

// PoolOptions for constructing a new Pool.
type PoolOptions struct {
	MaxWorkers int
}

// Pool runs up to a maximum number of jobs concurrently. The pool has an
// internal queue, such that all jobs added will be accepted but not run
// until they reach the front of the queue and a worker is free.
type Pool struct {
	sync.Mutex
	options    PoolOptions
	queue      Queue
	numWorkers int
	jobs       sync.WaitGroup
	stopChan   chan struct{}
}

// NewPool returns a new pool, provided the PoolOptions and the queue. A nil
// queue defaults to an unbounded FIFO queue.
func NewPool(o PoolOptions, queue Queue) *Pool {
	if o.MaxWorkers <= 0 {
		o.MaxWorkers = DefaultMaxWorkers
	}

	if queue == nil {
		queue = newQueue()
	}

	return &Pool{
		options:    o,
		queue:      queue,
		numWorkers: o.MaxWorkers,
	}
}

// Enqueue a job in the pool.
func (p *Pool) Enqueue(job Job) {
	p.jobs.Add(1)
	p.queue.Enqueue(job)
}

// WaitUntilProcessed will block until both the queue is empty and all
// workers are idle.
func (p *Pool) WaitUntilProcessed() {
	p.jobs.Wait()
}

// Start the worker pool by initializing the stop channel and starting all
// the workers.
func (p *Pool) Start() {
	p.Lock()
	defer p.Unlock()
	if p.stopChan != nil {
		return
	}

	p.stopChan = make(chan struct{})
	p.numWorkers = p.options.MaxWorkers
	for i := 0; i < p.options.MaxWorkers; i++ {
		go p.runWorker(p.stopChan)
	}
}

// Stop terminates all running workers and cleans up the stop channel. Jobs
// still sitting in the queue will not be run.
func (p *Pool) Stop() {
	p.Lock()
	if p.stopChan == nil {
		p.Unlock()
		return
	}

	p.options.MaxWorkers = 0
	p.Unlock()
	p.stopWorkers()

	p.Lock()
	defer p.Unlock()
	close(p.stopChan)
	p.stopChan = nil
}

// stopWorkers stops running workers until the actual worker count matches
// the goal state.
func (p *Pool) stopWorkers() {
	for {
		p.Lock()
		if p.numWorkers <= p.options.MaxWorkers {
			p.Unlock()
			return
		}
		// Best effort send on stopChan to terminate a worker, a received
		// send means a running worker is terminated.
		select {
		case p.stopChan <- struct{}{}:
			p.numWorkers--
		default:
		}
		p.Unlock()
	}
}

// runWorker processes jobs from the FIFO queue until stopped.
func (p *Pool) runWorker(stopChan chan struct{}) {
	for {
		job := p.queue.Dequeue(stopChan)
		if job == nil {
			return
		}

		job.Run(context.TODO())
		p.jobs.Done()
	}
}
