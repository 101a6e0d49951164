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

package swarm

// PheromoneMatrix holds a pheromone level for every task to data center
// pairing. Levels never drop below the configured floor, so no pairing ever
// loses all attraction.
type PheromoneMatrix struct {
	levels [][]float64
	floor  float64
}

// NewPheromoneMatrix returns a matrix with every level set to initial.
func NewPheromoneMatrix(numTasks, numDataCenters int, initial, floor float64) *PheromoneMatrix {
	levels := make([][]float64, numTasks)
	for t := range levels {
		row := make([]float64, numDataCenters)
		for dc := range row {
			row[dc] = initial
		}
		levels[t] = row
	}
	return &PheromoneMatrix{levels: levels, floor: floor}
}

// Evaporate decays every level by the evaporation rate, clamping at the
// floor.
func (m *PheromoneMatrix) Evaporate(rate float64) {
	for _, row := range m.levels {
		for i, level := range row {
			level *= 1 - rate
			if level < m.floor {
				level = m.floor
			}
			row[i] = level
		}
	}
}

// Deposit adds amount along every task to data center pair of the given
// position.
func (m *PheromoneMatrix) Deposit(position []int, amount float64) {
	for t, dc := range position {
		if t >= len(m.levels) || dc < 0 || dc >= len(m.levels[t]) {
			continue
		}
		m.levels[t][dc] += amount
	}
}

// Level returns the pheromone level of the task to data center pair.
func (m *PheromoneMatrix) Level(task, dataCenter int) float64 {
	return m.levels[task][dataCenter]
}
