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

package config

import (
	"github.com/uber/flock/pkg/common/metrics"
	"github.com/uber/flock/pkg/placement/balance"
	"github.com/uber/flock/pkg/placement/migration"
)

const (
	// DefaultNumParticles in the swarm.
	DefaultNumParticles = 50
	// DefaultMaxIterations of one optimization run.
	DefaultMaxIterations = 100
	// DefaultInertiaWeight at the start of a run, decaying linearly to zero.
	DefaultInertiaWeight = 0.7
	// DefaultCognitiveWeight pulls particles towards their personal best.
	DefaultCognitiveWeight = 1.5
	// DefaultSocialWeight pulls particles towards the global best.
	DefaultSocialWeight = 1.5
	// DefaultEvaporationRate decays pheromone on global best improvement.
	DefaultEvaporationRate = 0.1
	// DefaultPheromoneDeposit is laid along an improved global best path.
	DefaultPheromoneDeposit = 1.0
	// DefaultInitialPheromone is the uniform starting pheromone level.
	DefaultInitialPheromone = 1.0
	// DefaultPheromoneFloor is the lowest level evaporation can reach.
	DefaultPheromoneFloor = 0.1
	// DefaultPheromoneScale weighs the pheromone term of the velocity
	// update.
	DefaultPheromoneScale = 0.1
	// DefaultRunnerMaxWorkers bounds how many runs execute concurrently.
	DefaultRunnerMaxWorkers = 4
	// DefaultRunnerRepeats is how often each scenario is run.
	DefaultRunnerRepeats = 1
)

// Config holds all configs to run the flock simulator.
type Config struct {
	Metrics   metrics.Config  `yaml:"metrics"`
	Placement PlacementConfig `yaml:"placement"`
	Runner    RunnerConfig    `yaml:"runner"`
}

// Normalize fills unset fields of every section with their defaults.
func (c *Config) Normalize() {
	c.Placement.Normalize()
	c.Runner.Normalize()
}

// PlacementConfig is the optimization engine specific config.
type PlacementConfig struct {
	// NumParticles is the swarm size of one run.
	NumParticles int `yaml:"num_particles"`

	// MaxIterations is the fixed iteration budget of one run.
	MaxIterations int `yaml:"max_iterations"`

	// InertiaWeight carries a fraction of the previous velocity into the
	// next step. The effective weight decays linearly over the run.
	InertiaWeight float64 `yaml:"inertia_weight"`

	// CognitiveWeight scales the pull towards a particle's personal best.
	CognitiveWeight float64 `yaml:"cognitive_weight"`

	// SocialWeight scales the pull towards the global best.
	SocialWeight float64 `yaml:"social_weight"`

	// EvaporationRate is the fraction of pheromone that decays when the
	// matrix is updated.
	EvaporationRate float64 `yaml:"evaporation_rate"`

	// PheromoneDeposit is the amount laid along the global best path on
	// improvement.
	PheromoneDeposit float64 `yaml:"pheromone_deposit"`

	// InitialPheromone is the uniform starting level of the matrix.
	InitialPheromone float64 `yaml:"initial_pheromone"`

	// PheromoneFloor is the lowest level evaporation can reach.
	PheromoneFloor float64 `yaml:"pheromone_floor"`

	// PheromoneScale weighs the pheromone attraction term of the velocity
	// update.
	PheromoneScale float64 `yaml:"pheromone_scale"`

	// Balance holds the load condition classifier thresholds.
	Balance balance.Config `yaml:"balance"`

	// Migration holds the migration planner thresholds.
	Migration migration.Config `yaml:"migration"`
}

// Normalize fills unset fields with the default search parameters.
func (c *PlacementConfig) Normalize() {
	if c.NumParticles <= 0 {
		c.NumParticles = DefaultNumParticles
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.InertiaWeight == 0 {
		c.InertiaWeight = DefaultInertiaWeight
	}
	if c.CognitiveWeight == 0 {
		c.CognitiveWeight = DefaultCognitiveWeight
	}
	if c.SocialWeight == 0 {
		c.SocialWeight = DefaultSocialWeight
	}
	if c.EvaporationRate == 0 {
		c.EvaporationRate = DefaultEvaporationRate
	}
	if c.PheromoneDeposit == 0 {
		c.PheromoneDeposit = DefaultPheromoneDeposit
	}
	if c.InitialPheromone == 0 {
		c.InitialPheromone = DefaultInitialPheromone
	}
	if c.PheromoneFloor == 0 {
		c.PheromoneFloor = DefaultPheromoneFloor
	}
	if c.PheromoneScale == 0 {
		c.PheromoneScale = DefaultPheromoneScale
	}
	c.Balance.Normalize()
	c.Migration.Normalize()
}

// Copy returns a deep copy of the config, so concurrent runs can not step
// on each other through shared config state.
func (c *PlacementConfig) Copy() *PlacementConfig {
	copied := *c
	return &copied
}

// RunnerConfig is the batch runner specific config.
type RunnerConfig struct {
	// MaxWorkers is the number of runs executed concurrently.
	MaxWorkers int `yaml:"max_workers"`

	// Repeats is how often each scenario is run, each repeat with its own
	// derived seed.
	Repeats int `yaml:"repeats"`
}

// Normalize fills unset fields with the default runner parameters.
func (c *RunnerConfig) Normalize() {
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = DefaultRunnerMaxWorkers
	}
	if c.Repeats <= 0 {
		c.Repeats = DefaultRunnerRepeats
	}
}
