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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uber/flock/pkg/placement/models"
)

func evaluatorScenario() *models.Scenario {
	return &models.Scenario{
		Name: "fitness",
		Tasks: []models.Task{
			{ID: "task-0", ComputeDemand: 10, MemoryDemand: 10},
			{ID: "task-1", ComputeDemand: 10, MemoryDemand: 10},
			{ID: "task-2", ComputeDemand: 10, MemoryDemand: 10},
			{ID: "task-3", ComputeDemand: 10, MemoryDemand: 10},
		},
		DataCenters: []models.DataCenter{
			{ID: "dc-0", ComputeCapacity: 100, MemoryCapacity: 100},
			{ID: "dc-1", ComputeCapacity: 100, MemoryCapacity: 100},
		},
	}
}

func TestScoreEvenSpreadIsZero(t *testing.T) {
	evaluator := NewEvaluator(evaluatorScenario())

	score, ok := evaluator.Score([]int{0, 0, 1, 1})
	assert.True(t, ok)
	assert.Equal(t, 0.0, score)
}

func TestScoreSkewedSpreadIsPositive(t *testing.T) {
	evaluator := NewEvaluator(evaluatorScenario())

	// All tasks on dc-0: compute loads are 40 and 0, memory likewise. The
	// population variance of each axis is 400.
	score, ok := evaluator.Score([]int{0, 0, 0, 0})
	assert.True(t, ok)
	assert.InDelta(t, 800.0, score, 1e-9)
}

func TestScoreOrdersPlacementsByImbalance(t *testing.T) {
	evaluator := NewEvaluator(evaluatorScenario())

	even, _ := evaluator.Score([]int{0, 1, 0, 1})
	slight, _ := evaluator.Score([]int{0, 0, 0, 1})
	heavy, _ := evaluator.Score([]int{0, 0, 0, 0})

	assert.Less(t, even, slight)
	assert.Less(t, slight, heavy)
}

func TestScoreIsolatesHeavyTask(t *testing.T) {
	scenario := &models.Scenario{
		Name: "skewed",
		Tasks: []models.Task{
			{ID: "task-0", ComputeDemand: 90, MemoryDemand: 90},
			{ID: "task-1", ComputeDemand: 10, MemoryDemand: 10},
			{ID: "task-2", ComputeDemand: 10, MemoryDemand: 10},
			{ID: "task-3", ComputeDemand: 10, MemoryDemand: 10},
		},
		DataCenters: []models.DataCenter{
			{ID: "dc-0", ComputeCapacity: 100, MemoryCapacity: 100},
			{ID: "dc-1", ComputeCapacity: 100, MemoryCapacity: 100},
		},
	}
	evaluator := NewEvaluator(scenario)

	// Isolating the heavy task leaves loads of 90 and 30, any other split
	// is more lopsided.
	isolated, _ := evaluator.Score([]int{0, 1, 1, 1})
	for _, position := range [][]int{
		{0, 0, 1, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	} {
		other, _ := evaluator.Score(position)
		assert.Greater(t, other, isolated)
	}
}

func TestScoreClampsNonFiniteVariance(t *testing.T) {
	scenario := evaluatorScenario()
	scenario.Tasks[0].ComputeDemand = math.MaxFloat64
	scenario.Tasks[1].ComputeDemand = math.MaxFloat64
	evaluator := NewEvaluator(scenario)

	// Demands this large overflow the variance to infinity, the score is
	// clamped instead of propagating the overflow.
	score, ok := evaluator.Score([]int{0, 0, 1, 1})
	assert.False(t, ok)
	assert.Equal(t, math.MaxFloat64, score)
}

func TestScoreSingleDataCenter(t *testing.T) {
	scenario := evaluatorScenario()
	scenario.DataCenters = scenario.DataCenters[:1]
	evaluator := NewEvaluator(scenario)

	// One data center has no spread to measure.
	score, ok := evaluator.Score([]int{0, 0, 0, 0})
	assert.True(t, ok)
	assert.Equal(t, 0.0, score)
}
