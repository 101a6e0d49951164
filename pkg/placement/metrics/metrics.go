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

package metrics

import (
	"github.com/uber-go/tally"
)

// Metrics contains all the metrics relevant to the placement engine
type Metrics struct {
	// Runs counts finished optimization runs
	Runs tally.Counter
	// RunDuration records the wall clock time of one optimization run
	RunDuration tally.Timer

	// Iterations counts executed swarm iterations
	Iterations tally.Counter
	// Improvements counts iterations that improved the global best
	Improvements tally.Counter
	// FallbackResults counts runs that never improved on any particle and
	// fell back to the first particle's best
	FallbackResults tally.Counter

	// PheromoneUpdates counts evaporation and deposit cycles of the matrix
	PheromoneUpdates tally.Counter
	// VelocityClamps counts velocity components that hit the velocity bound
	VelocityClamps tally.Counter
	// NumericAnomalies counts non finite intermediates that were clamped
	// or dropped
	NumericAnomalies tally.Counter

	// BestFitness tracks the global best fitness of the current run
	BestFitness tally.Gauge
	// AverageFitness tracks the swarm average fitness of the current run
	AverageFitness tally.Gauge
}

// New returns a new Metrics struct with all metrics initialized and rooted
// below the given tally scope
func New(scope tally.Scope) *Metrics {
	engineScope := scope.SubScope("engine")
	swarmScope := scope.SubScope("swarm")

	return &Metrics{
		Runs:        engineScope.Counter("runs"),
		RunDuration: engineScope.Timer("run_duration"),

		Iterations:      engineScope.Counter("iterations"),
		Improvements:    engineScope.Counter("improvements"),
		FallbackResults: engineScope.Counter("fallback_results"),

		PheromoneUpdates: swarmScope.Counter("pheromone_updates"),
		VelocityClamps:   swarmScope.Counter("velocity_clamps"),
		NumericAnomalies: swarmScope.Counter("numeric_anomalies"),

		BestFitness:    engineScope.Gauge("best_fitness"),
		AverageFitness: engineScope.Gauge("average_fitness"),
	}
}
