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

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateLoads(t *testing.T) {
	tasks := []Task{
		{ID: "task-0", ComputeDemand: 10, MemoryDemand: 4},
		{ID: "task-1", ComputeDemand: 20, MemoryDemand: 8},
		{ID: "task-2", ComputeDemand: 30, MemoryDemand: 12},
	}

	loads := AggregateLoads(tasks, 2, []int{0, 1, 0})
	assert.Len(t, loads, 2)
	assert.Equal(t, 40.0, loads[0].Compute)
	assert.Equal(t, 16.0, loads[0].Memory)
	assert.Equal(t, 20.0, loads[1].Compute)
	assert.Equal(t, 8.0, loads[1].Memory)
}

func TestAggregateLoadsIgnoresOutOfRangeEntries(t *testing.T) {
	tasks := []Task{
		{ID: "task-0", ComputeDemand: 10, MemoryDemand: 4},
		{ID: "task-1", ComputeDemand: 20, MemoryDemand: 8},
	}

	loads := AggregateLoads(tasks, 2, []int{-1, 5})
	assert.Equal(t, 0.0, loads[0].Compute)
	assert.Equal(t, 0.0, loads[1].Compute)
}

func TestAggregateLoadsShortPosition(t *testing.T) {
	tasks := []Task{
		{ID: "task-0", ComputeDemand: 10, MemoryDemand: 4},
		{ID: "task-1", ComputeDemand: 20, MemoryDemand: 8},
	}

	loads := AggregateLoads(tasks, 1, []int{0})
	assert.Equal(t, 10.0, loads[0].Compute)
	assert.Equal(t, 4.0, loads[0].Memory)
}

func TestAssignmentsFromPosition(t *testing.T) {
	scenario := validScenario()

	assignments := AssignmentsFromPosition(scenario, []int{1, 0})
	assert.Equal(t, []Assignment{
		{TaskID: "task-0", DataCenterID: "dc-1"},
		{TaskID: "task-1", DataCenterID: "dc-0"},
	}, assignments)
}

func TestAssignmentsFromPositionSkipsOutOfRangeEntries(t *testing.T) {
	scenario := validScenario()

	assignments := AssignmentsFromPosition(scenario, []int{7, 0})
	assert.Equal(t, []Assignment{
		{TaskID: "task-1", DataCenterID: "dc-0"},
	}, assignments)
}
