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

package fitness

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/uber/flock/pkg/placement/models"
)

// Evaluator scores candidate placements by how evenly they spread load
// across the data centers. Lower scores are better, zero is a perfectly
// even spread.
type Evaluator struct {
	tasks          []models.Task
	numDataCenters int
}

// NewEvaluator returns an evaluator for the scenario.
func NewEvaluator(scenario *models.Scenario) *Evaluator {
	return &Evaluator{
		tasks:          scenario.Tasks,
		numDataCenters: len(scenario.DataCenters),
	}
}

// Score returns the sum of the population variances of the per data center
// compute and memory loads under the given position. The score is always
// finite and non negative, a non finite intermediate is clamped to the max
// float and reported through the second return value.
func (e *Evaluator) Score(position []int) (float64, bool) {
	loads := models.AggregateLoads(e.tasks, e.numDataCenters, position)

	compute := make([]float64, len(loads))
	memory := make([]float64, len(loads))
	for i, load := range loads {
		compute[i] = load.Compute
		memory[i] = load.Memory
	}

	score := stat.PopVariance(compute, nil) + stat.PopVariance(memory, nil)
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return math.MaxFloat64, false
	}
	return score, true
}
