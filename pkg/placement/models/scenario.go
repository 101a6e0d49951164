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

	"github.com/pkg/errors"
)

var (
	// ErrNoTasks is returned when a scenario contains no tasks to place.
	ErrNoTasks = errors.New("scenario contains no tasks")
	// ErrNoDataCenters is returned when a scenario contains no data centers
	// to place tasks on.
	ErrNoDataCenters = errors.New("scenario contains no data centers")
)

// Scenario is one complete placement problem, the tasks to place and the
// data centers available to them.
type Scenario struct {
	Name        string       `yaml:"name" json:"name"`
	Tasks       []Task       `yaml:"tasks" json:"tasks"`
	DataCenters []DataCenter `yaml:"data_centers" json:"data_centers"`
}

// Validate checks that the scenario is well formed. It runs before any swarm
// state is allocated so malformed input fails fast.
func (s *Scenario) Validate() error {
	if len(s.Tasks) == 0 {
		return ErrNoTasks
	}
	if len(s.DataCenters) == 0 {
		return ErrNoDataCenters
	}
	for _, task := range s.Tasks {
		if !isValidAmount(task.ComputeDemand) || !isValidAmount(task.MemoryDemand) {
			return errors.Errorf(
				"task %s has a negative or non finite resource demand", task.ID)
		}
	}
	for _, dc := range s.DataCenters {
		if !isValidAmount(dc.ComputeCapacity) || !isValidAmount(dc.MemoryCapacity) {
			return errors.Errorf(
				"data center %s has a negative or non finite capacity", dc.ID)
		}
	}
	return nil
}

// isValidAmount accepts any finite non negative resource amount.
func isValidAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
