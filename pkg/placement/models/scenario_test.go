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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validScenario() *Scenario {
	return &Scenario{
		Name: "valid",
		Tasks: []Task{
			{ID: "task-0", ComputeDemand: 10, MemoryDemand: 8},
			{ID: "task-1", ComputeDemand: 20, MemoryDemand: 16},
		},
		DataCenters: []DataCenter{
			{ID: "dc-0", ComputeCapacity: 100, MemoryCapacity: 100},
			{ID: "dc-1", ComputeCapacity: 100, MemoryCapacity: 100},
		},
	}
}

func TestScenarioValidate(t *testing.T) {
	assert.NoError(t, validScenario().Validate())
}

func TestScenarioValidateNoTasks(t *testing.T) {
	scenario := validScenario()
	scenario.Tasks = nil
	assert.Equal(t, ErrNoTasks, scenario.Validate())
}

func TestScenarioValidateNoDataCenters(t *testing.T) {
	scenario := validScenario()
	scenario.DataCenters = nil
	assert.Equal(t, ErrNoDataCenters, scenario.Validate())
}

func TestScenarioValidateNegativeDemand(t *testing.T) {
	scenario := validScenario()
	scenario.Tasks[0].ComputeDemand = -1
	assert.Error(t, scenario.Validate())
}

func TestScenarioValidateNonFiniteCapacity(t *testing.T) {
	scenario := validScenario()
	scenario.DataCenters[1].MemoryCapacity = math.NaN()
	assert.Error(t, scenario.Validate())

	scenario = validScenario()
	scenario.DataCenters[0].ComputeCapacity = math.Inf(1)
	assert.Error(t, scenario.Validate())
}
