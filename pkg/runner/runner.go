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
	"context"
	"time"

	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.uber.org/atomic"

	"github.com/uber/flock/pkg/common"
	"github.com/uber/flock/pkg/common/async"
	"github.com/uber/flock/pkg/placement"
	"github.com/uber/flock/pkg/placement/config"
	"github.com/uber/flock/pkg/placement/models"
)

// RunResult is the outcome of one placement run of a batch.
type RunResult struct {
	// RunID identifies the run in logs and reports.
	RunID string `json:"run_id"`
	// Scenario is the name of the scenario the run placed.
	Scenario string `json:"scenario"`
	// Seed is the seed the run was started with.
	Seed int64 `json:"seed"`
	// Result is set when the run completed.
	Result *placement.Result `json:"result,omitempty"`
	// Error is set when the run failed.
	Error string `json:"error,omitempty"`

	// Err is the failure of the run, kept off the wire.
	Err error `json:"-"`
}

// Runner executes batches of placement runs on a worker pool.
type Runner struct {
	scope   tally.Scope
	config  *config.Config
	pool    *async.Pool
	metrics *Metrics
}

// New creates a batch runner executing runs on the given pool.
func New(parent tally.Scope, cfg *config.Config, pool *async.Pool) *Runner {
	cfg.Normalize()
	return &Runner{
		scope:   parent,
		config:  cfg,
		pool:    pool,
		metrics: NewMetrics(parent),
	}
}

// Run places every scenario the configured number of times and returns one
// result per run, in scenario order with repeats adjacent. Each run draws
// its own seed from the base seed and its batch index, so a batch is
// reproducible run by run regardless of worker interleaving.
func (r *Runner) Run(
	ctx context.Context,
	scenarios []*models.Scenario,
	baseSeed int64) []*RunResult {
	repeats := r.config.Runner.Repeats
	results := make([]*RunResult, len(scenarios)*repeats)
	completed := atomic.NewInt64(0)
	start := time.Now()

	log.WithFields(log.Fields{
		"scenarios": len(scenarios),
		"repeats":   repeats,
		"runs":      len(results),
		"base_seed": baseSeed,
	}).Info("Dispatching placement batch")

	for index := range results {
		scenario := scenarios[index/repeats]
		runResult := &RunResult{
			RunID:    uuid.New(),
			Scenario: scenario.Name,
			Seed:     baseSeed + int64(index),
		}
		results[index] = runResult

		r.metrics.Started.Inc(1)
		r.pool.Enqueue(async.JobFunc(func(context.Context) {
			r.runOne(ctx, scenario, runResult)
			log.WithFields(log.Fields{
				common.RunIDLogField: runResult.RunID,
				"completed":          completed.Inc(),
				"total":              len(results),
			}).Debug("Completed placement run")
		}))
	}
	r.pool.WaitUntilProcessed()

	r.metrics.BatchDuration.Record(time.Since(start))
	return results
}

// runOne executes a single run against a private copy of the placement
// config, so concurrent runs never share mutable state.
func (r *Runner) runOne(
	ctx context.Context,
	scenario *models.Scenario,
	runResult *RunResult) {
	engine, err := placement.New(
		r.scope,
		r.config.Placement.Copy(),
		scenario,
		runResult.Seed)
	if err == nil {
		runResult.Result, err = engine.Run(ctx)
	}
	if err != nil {
		runResult.Err = err
		runResult.Error = err.Error()
		r.metrics.Failed.Inc(1)
		log.WithFields(log.Fields{
			common.RunIDLogField: runResult.RunID,
			"scenario":           runResult.Scenario,
			"seed":               runResult.Seed,
		}).WithError(err).Error("Placement run failed")
		return
	}
	r.metrics.Succeeded.Inc(1)
}
