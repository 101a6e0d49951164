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

package placement

import (
	"time"

	"github.com/uber/flock/pkg/placement/balance"
	"github.com/uber/flock/pkg/placement/migration"
	"github.com/uber/flock/pkg/placement/models"
)

// IterationStats is one row of the convergence history of a run.
type IterationStats struct {
	// Iteration is the zero based iteration index.
	Iteration int `json:"iteration"`
	// GlobalBestFitness is the best fitness seen by any particle so far.
	GlobalBestFitness float64 `json:"global_best_fitness"`
	// AverageFitness is the mean fitness of the swarm in this iteration.
	AverageFitness float64 `json:"average_fitness"`
}

// Result holds everything a single placement run produced.
type Result struct {
	// ScenarioName is the name of the scenario the run placed.
	ScenarioName string `json:"scenario_name"`
	// Seed is the random seed the run was started with.
	Seed int64 `json:"seed"`
	// Position maps task index to the data center index the task landed on.
	Position []int `json:"position"`
	// Fitness is the combined compute and memory load variance of the position.
	Fitness float64 `json:"fitness"`
	// Improved is false when no particle ever improved on its starting
	// position and the result fell back to the first particle.
	Improved bool `json:"improved"`
	// Assignments is the position translated to task and data center ids.
	Assignments []models.Assignment `json:"assignments"`
	// LoadReport describes how balanced the final placement is.
	LoadReport *balance.Report `json:"load_report"`
	// MigrationPlan rebalances the final placement when it is skewed.
	MigrationPlan *migration.Plan `json:"migration_plan"`
	// History is the per iteration convergence history.
	History []IterationStats `json:"history"`
	// Duration is the wall clock time the run took.
	Duration time.Duration `json:"duration"`
}
