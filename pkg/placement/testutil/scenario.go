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

package testutil

import (
	"fmt"

	"github.com/uber/flock/pkg/placement/config"
	"github.com/uber/flock/pkg/placement/models"
)

// SetupScenario creates a scenario with the given number of identical tasks
// and identical data centers.
func SetupScenario(numTasks, numDataCenters int) *models.Scenario {
	scenario := &models.Scenario{
		Name: "test-scenario",
	}
	for i := 0; i < numTasks; i++ {
		scenario.Tasks = append(scenario.Tasks, models.Task{
			ID:            fmt.Sprintf("task-%d", i),
			ComputeDemand: 10.0,
			MemoryDemand:  10.0,
		})
	}
	for i := 0; i < numDataCenters; i++ {
		scenario.DataCenters = append(scenario.DataCenters, models.DataCenter{
			ID:               fmt.Sprintf("dc-%d", i),
			ComputeCapacity:  100.0,
			MemoryCapacity:   100.0,
			StorageCapacity:  1000.0,
			NetworkBandwidth: 10000.0,
		})
	}
	return scenario
}

// SetupSkewedScenario creates the canonical skewed scenario of one heavy
// task and three light tasks competing for two data centers. Its optimum
// isolates the heavy task on a data center of its own.
func SetupSkewedScenario() *models.Scenario {
	demands := []float64{90.0, 10.0, 10.0, 10.0}
	scenario := &models.Scenario{
		Name: "skewed-scenario",
	}
	for i, demand := range demands {
		scenario.Tasks = append(scenario.Tasks, models.Task{
			ID:            fmt.Sprintf("task-%d", i),
			ComputeDemand: demand,
			MemoryDemand:  demand,
		})
	}
	for i := 0; i < 2; i++ {
		scenario.DataCenters = append(scenario.DataCenters, models.DataCenter{
			ID:              fmt.Sprintf("dc-%d", i),
			ComputeCapacity: 200.0,
			MemoryCapacity:  200.0,
		})
	}
	return scenario
}

// SetupPlacementConfig creates a placement config small enough to keep
// tests fast while still exercising the full search.
func SetupPlacementConfig() *config.PlacementConfig {
	cfg := &config.PlacementConfig{
		NumParticles:  20,
		MaxIterations: 30,
	}
	cfg.Normalize()
	return cfg
}
