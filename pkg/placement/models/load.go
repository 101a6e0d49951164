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

// Load is the aggregate resource demand placed on a single data center.
type Load struct {
	Compute float64 `json:"compute"`
	Memory  float64 `json:"memory"`
}

// AggregateLoads sums the demand of every task per data center for the given
// position vector. Position entries are expected to be inside
// [0, numDataCenters), entries outside the range contribute no load.
func AggregateLoads(tasks []Task, numDataCenters int, position []int) []Load {
	loads := make([]Load, numDataCenters)
	for i, task := range tasks {
		if i >= len(position) {
			break
		}
		dc := position[i]
		if dc < 0 || dc >= numDataCenters {
			continue
		}
		loads[dc].Compute += task.ComputeDemand
		loads[dc].Memory += task.MemoryDemand
	}
	return loads
}
