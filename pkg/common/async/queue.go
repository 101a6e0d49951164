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
	"container/list"
	"sync"
)

// Queue defines the interface of a queue used by the async pool to buffer
// jobs until a worker becomes available.
type Queue interface {
	// Enqueue adds a job to the queue. It never blocks.
	Enqueue(job Job)
	// Dequeue removes and returns the oldest job. It blocks until a job is
	// available or the stop channel is signaled, in which case nil is
	// returned.
	Dequeue(stopChan chan struct{}) Job
}

// queue structure that works similar to an unlimited channel, where jobs can
// be added using Enqueue and drained using Dequeue.
type queue struct {
	sync.Mutex
	list *list.List

	// enqueueSignal is added to after a successful enqueue. By having a
	// buffer size of 1, it's guaranteed that an enqueued job will wake up a
	// waiting worker.
	enqueueSignal chan struct{}
}

// newQueue for enqueueing jobs.
func newQueue() *queue {
	return &queue{
		list:          list.New(),
		enqueueSignal: make(chan struct{}, 1),
	}
}

// Enqueue the job. This method will return immediately.
func (q *queue) Enqueue(job Job) {
	q.Lock()
	q.list.PushBack(job)
	q.Unlock()

	q.signal()
}

// Dequeue the oldest job, waiting for one to be enqueued when the queue is
// empty.
func (q *queue) Dequeue(stopChan chan struct{}) Job {
	for {
		q.Lock()
		if f := q.list.Front(); f != nil {
			q.list.Remove(f)
			more := q.list.Len() > 0
			q.Unlock()

			// Pass the wakeup on, other workers may be waiting for the
			// remaining jobs.
			if more {
				q.signal()
			}
			return f.Value.(Job)
		}
		q.Unlock()

		select {
		case <-q.enqueueSignal:
		case <-stopChan:
			return nil
		}
	}
}

// signal that a new item may be available.
func (q *queue) signal() {
	select {
	case q.enqueueSignal <- struct{}{}:
	default:
	}
}
