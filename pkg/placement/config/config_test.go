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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uber/flock/pkg/placement/balance"
)

func TestPlacementConfigNormalizeDefaults(t *testing.T) {
	var cfg PlacementConfig
	cfg.Normalize()

	assert.Equal(t, DefaultNumParticles, cfg.NumParticles)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
	assert.Equal(t, DefaultInertiaWeight, cfg.InertiaWeight)
	assert.Equal(t, DefaultCognitiveWeight, cfg.CognitiveWeight)
	assert.Equal(t, DefaultSocialWeight, cfg.SocialWeight)
	assert.Equal(t, DefaultEvaporationRate, cfg.EvaporationRate)
	assert.Equal(t, DefaultPheromoneDeposit, cfg.PheromoneDeposit)
	assert.Equal(t, DefaultInitialPheromone, cfg.InitialPheromone)
	assert.Equal(t, DefaultPheromoneFloor, cfg.PheromoneFloor)
	assert.Equal(t, DefaultPheromoneScale, cfg.PheromoneScale)
	assert.Equal(t, balance.DefaultComputeWeight, cfg.Balance.ComputeWeight)
}

func TestPlacementConfigNormalizeKeepsExplicitValues(t *testing.T) {
	cfg := PlacementConfig{
		NumParticles:  10,
		MaxIterations: 25,
		InertiaWeight: 0.9,
	}
	cfg.Normalize()

	assert.Equal(t, 10, cfg.NumParticles)
	assert.Equal(t, 25, cfg.MaxIterations)
	assert.Equal(t, 0.9, cfg.InertiaWeight)
	assert.Equal(t, DefaultSocialWeight, cfg.SocialWeight)
}

func TestPlacementConfigCopyIsDetached(t *testing.T) {
	cfg := PlacementConfig{NumParticles: 10}
	copied := cfg.Copy()
	copied.NumParticles = 99

	assert.Equal(t, 10, cfg.NumParticles)
	assert.Equal(t, 99, copied.NumParticles)
}

func TestConfigNormalizeCoversAllSections(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	assert.Equal(t, DefaultNumParticles, cfg.Placement.NumParticles)
	assert.Equal(t, DefaultRunnerMaxWorkers, cfg.Runner.MaxWorkers)
	assert.Equal(t, DefaultRunnerRepeats, cfg.Runner.Repeats)
}
