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

package migration

import (
	"math"

	"github.com/uber/flock/pkg/placement/models"
)

const (
	// DefaultOverloadFactor marks a data center overloaded above 120% of
	// the mean task count.
	DefaultOverloadFactor = 1.2
	// DefaultUnderloadFactor marks a data center underloaded below 80% of
	// the mean task count.
	DefaultUnderloadFactor = 0.8
	// DefaultMoveFraction recommends moving half of the excess, rounded up.
	DefaultMoveFraction = 0.5
)

// Config holds the thresholds of the migration planner.
type Config struct {
	// OverloadFactor marks a data center overloaded when its task count
	// exceeds this multiple of the mean task count.
	OverloadFactor float64 `yaml:"overload_factor"`

	// UnderloadFactor marks a data center underloaded when its task count
	// falls below this multiple of the mean task count.
	UnderloadFactor float64 `yaml:"underload_factor"`

	// MoveFraction is the fraction of a data center's excess above the mean
	// that is recommended for migration, rounded up.
	MoveFraction float64 `yaml:"move_fraction"`
}

// Normalize fills unset thresholds with the defaults.
func (c *Config) Normalize() {
	if c.OverloadFactor == 0 {
		c.OverloadFactor = DefaultOverloadFactor
	}
	if c.UnderloadFactor == 0 {
		c.UnderloadFactor = DefaultUnderloadFactor
	}
	if c.MoveFraction == 0 {
		c.MoveFraction = DefaultMoveFraction
	}
}

// Plan lists the task moves recommended to even out task counts across data
// centers. A plan with zero migrations means every data center is already
// inside the configured bands.
type Plan struct {
	TotalMigrations int                `json:"total_migrations"`
	Migrations      []models.Migration `json:"migrations"`
	Overloaded      []string           `json:"overloaded_data_centers"`
	Underloaded     []string           `json:"underloaded_data_centers"`
}

// Planner recommends task moves from overloaded to underloaded data
// centers.
type Planner struct {
	config *Config
}

// NewPlanner returns a planner with unset thresholds normalized to the
// defaults.
func NewPlanner(config *Config) *Planner {
	config.Normalize()
	return &Planner{config: config}
}

// BuildPlan compares the task count of every data center against the mean
// task count and recommends moving a fraction of the excess off each
// overloaded data center, round robin over the underloaded ones. Tasks are
// picked in ascending task order so the plan is deterministic for a given
// position.
func (p *Planner) BuildPlan(scenario *models.Scenario, position []int) *Plan {
	numDCs := len(scenario.DataCenters)
	tasksByDC := make([][]int, numDCs)
	for i := range scenario.Tasks {
		if i >= len(position) {
			break
		}
		dc := position[i]
		if dc < 0 || dc >= numDCs {
			continue
		}
		tasksByDC[dc] = append(tasksByDC[dc], i)
	}

	mean := float64(len(scenario.Tasks)) / float64(numDCs)

	plan := &Plan{
		Migrations:  []models.Migration{},
		Overloaded:  []string{},
		Underloaded: []string{},
	}
	var overloaded, underloaded []int
	for dc := 0; dc < numDCs; dc++ {
		count := float64(len(tasksByDC[dc]))
		switch {
		case count > p.config.OverloadFactor*mean:
			overloaded = append(overloaded, dc)
			plan.Overloaded = append(plan.Overloaded, scenario.DataCenters[dc].ID)
		case count < p.config.UnderloadFactor*mean:
			underloaded = append(underloaded, dc)
			plan.Underloaded = append(plan.Underloaded, scenario.DataCenters[dc].ID)
		}
	}

	// Without both sides of the imbalance there is nothing to move, the
	// plan stays empty rather than inventing migrations.
	if len(overloaded) == 0 || len(underloaded) == 0 {
		return plan
	}

	receiver := 0
	for _, from := range overloaded {
		excess := float64(len(tasksByDC[from])) - mean
		moves := int(math.Ceil(p.config.MoveFraction * excess))
		if moves > len(tasksByDC[from]) {
			moves = len(tasksByDC[from])
		}
		for m := 0; m < moves; m++ {
			task := scenario.Tasks[tasksByDC[from][m]]
			to := underloaded[receiver%len(underloaded)]
			receiver++
			plan.Migrations = append(plan.Migrations, models.Migration{
				TaskID:         task.ID,
				FromDataCenter: scenario.DataCenters[from].ID,
				ToDataCenter:   scenario.DataCenters[to].ID,
			})
		}
	}
	plan.TotalMigrations = len(plan.Migrations)
	return plan
}
