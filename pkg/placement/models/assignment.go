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

// Assignment maps one task to the data center chosen for it.
type Assignment struct {
	TaskID       string `json:"task_id"`
	DataCenterID string `json:"data_center_id"`
}

// AssignmentsFromPosition expands an encoded position vector into explicit
// task to data center assignments.
func AssignmentsFromPosition(scenario *Scenario, position []int) []Assignment {
	assignments := make([]Assignment, 0, len(scenario.Tasks))
	for i, task := range scenario.Tasks {
		if i >= len(position) {
			break
		}
		dc := position[i]
		if dc < 0 || dc >= len(scenario.DataCenters) {
			continue
		}
		assignments = append(assignments, Assignment{
			TaskID:       task.ID,
			DataCenterID: scenario.DataCenters[dc].ID,
		})
	}
	return assignments
}

// Migration is one recommended task move between two data centers.
type Migration struct {
	TaskID         string `json:"task_id"`
	FromDataCenter string `json:"from_data_center"`
	ToDataCenter   string `json:"to_data_center"`
}
