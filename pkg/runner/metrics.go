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

package runner

import (
	"github.com/uber-go/tally"
)

// Metrics contains all the metrics relevant to the batch runner.
type Metrics struct {
	// Started counts the runs handed to the worker pool.
	Started tally.Counter
	// Succeeded counts the runs that produced a result.
	Succeeded tally.Counter
	// Failed counts the runs that returned an error.
	Failed tally.Counter
	// BatchDuration times whole batches from dispatch to completion.
	BatchDuration tally.Timer
}

// NewMetrics returns a new Metrics struct with all metrics initialized and
// rooted below the given tally scope.
func NewMetrics(scope tally.Scope) *Metrics {
	runnerScope := scope.SubScope("runner")
	return &Metrics{
		Started:       runnerScope.Counter("started"),
		Succeeded:     runnerScope.Counter("succeeded"),
		Failed:        runnerScope.Counter("failed"),
		BatchDuration: runnerScope.Timer("batch_duration"),
	}
}
