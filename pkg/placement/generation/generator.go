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

package generation

import (
	"fmt"
	"math/rand"

	"github.com/uber/flock/pkg/placement/models"
)

const (
	// DefaultNumTasks of a generated scenario.
	DefaultNumTasks = 20
	// DefaultNumDataCenters of a generated scenario.
	DefaultNumDataCenters = 4
	// DefaultMinDemand of a generated task, on both axes.
	DefaultMinDemand = 1.0
	// DefaultMaxDemand of a generated task, on both axes.
	DefaultMaxDemand = 50.0
	// DefaultMinCapacity of a generated data center, on both axes.
	DefaultMinCapacity = 100.0
	// DefaultMaxCapacity of a generated data center, on both axes.
	DefaultMaxCapacity = 500.0
)

// Options bound the shape of the scenarios a generator produces.
type Options struct {
	// Name prefixes the names of all generated scenarios.
	Name string `yaml:"name"`

	// NumTasks is the number of tasks per scenario.
	NumTasks int `yaml:"num_tasks"`

	// NumDataCenters is the number of data centers per scenario.
	NumDataCenters int `yaml:"num_data_centers"`

	// MinDemand and MaxDemand bound the compute and memory demand of a task.
	MinDemand float64 `yaml:"min_demand"`
	MaxDemand float64 `yaml:"max_demand"`

	// MinCapacity and MaxCapacity bound the compute and memory capacity of
	// a data center.
	MinCapacity float64 `yaml:"min_capacity"`
	MaxCapacity float64 `yaml:"max_capacity"`
}

// Normalize fills unset fields with the default generation bounds.
func (o *Options) Normalize() {
	if o.Name == "" {
		o.Name = "random"
	}
	if o.NumTasks <= 0 {
		o.NumTasks = DefaultNumTasks
	}
	if o.NumDataCenters <= 0 {
		o.NumDataCenters = DefaultNumDataCenters
	}
	if o.MaxDemand <= 0 {
		o.MinDemand = DefaultMinDemand
		o.MaxDemand = DefaultMaxDemand
	}
	if o.MaxCapacity <= 0 {
		o.MinCapacity = DefaultMinCapacity
		o.MaxCapacity = DefaultMaxCapacity
	}
}

// Generator creates random scenarios. Scenarios drawn from the same seed in
// the same order are identical.
type Generator struct {
	rng      *rand.Rand
	sequence int
}

// NewGenerator returns a generator drawing from the given source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate creates one scenario within the given bounds.
func (g *Generator) Generate(options Options) *models.Scenario {
	options.Normalize()
	g.sequence++

	scenario := &models.Scenario{
		Name: fmt.Sprintf("%s-%d", options.Name, g.sequence),
	}
	for i := 0; i < options.NumTasks; i++ {
		scenario.Tasks = append(scenario.Tasks, models.Task{
			ID:            fmt.Sprintf("task-%d", i),
			ComputeDemand: g.draw(options.MinDemand, options.MaxDemand),
			MemoryDemand:  g.draw(options.MinDemand, options.MaxDemand),
		})
	}
	for i := 0; i < options.NumDataCenters; i++ {
		scenario.DataCenters = append(scenario.DataCenters, models.DataCenter{
			ID:              fmt.Sprintf("dc-%d", i),
			ComputeCapacity: g.draw(options.MinCapacity, options.MaxCapacity),
			MemoryCapacity:  g.draw(options.MinCapacity, options.MaxCapacity),
		})
	}
	return scenario
}

func (g *Generator) draw(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.rng.Float64()*(max-min)
}
