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

import (
	"math"
	"math/rand"

	"github.com/uber/flock/pkg/placement/config"
)

// UpdateStats counts the defensive interventions of one update step.
type UpdateStats struct {
	// VelocityClamps is how many velocity components hit the velocity
	// bound.
	VelocityClamps int
	// NumericAnomalies is how many non finite velocity components were
	// dropped.
	NumericAnomalies int
}

// Add accumulates the counts of another update step.
func (s *UpdateStats) Add(other UpdateStats) {
	s.VelocityClamps += other.VelocityClamps
	s.NumericAnomalies += other.NumericAnomalies
}

// Updater applies one velocity and position update step to particles. All
// randomness comes from the injected rng, so runs are reproducible for a
// given seed.
type Updater struct {
	config         *config.PlacementConfig
	pheromone      *PheromoneMatrix
	numDataCenters int
	rng            *rand.Rand
}

// NewUpdater returns an updater moving particles over the given number of
// data centers.
func NewUpdater(
	cfg *config.PlacementConfig,
	pheromone *PheromoneMatrix,
	numDataCenters int,
	rng *rand.Rand) *Updater {
	return &Updater{
		config:         cfg,
		pheromone:      pheromone,
		numDataCenters: numDataCenters,
		rng:            rng,
	}
}

// inertiaAt returns the inertia weight of the given iteration. The weight
// decays linearly over the run, so early iterations explore and late
// iterations settle.
func (u *Updater) inertiaAt(iteration int) float64 {
	maxIterations := u.config.MaxIterations
	if maxIterations <= 0 {
		return u.config.InertiaWeight
	}
	return u.config.InertiaWeight * (1 - float64(iteration)/float64(maxIterations))
}

// Update moves the particle one step towards its personal best, the global
// best and the strongest pheromone trail. Velocity components are clamped
// to the number of data centers and positions are rounded and clamped back
// into range, so every position element stays a valid data center index.
func (u *Updater) Update(p *Particle, globalBest []int, iteration int) UpdateStats {
	var stats UpdateStats
	inertia := u.inertiaAt(iteration)
	maxVelocity := float64(u.numDataCenters)

	for t := range p.Position {
		current := float64(p.Position[t])
		velocity := inertia*p.Velocity[t] +
			u.config.CognitiveWeight*u.rng.Float64()*(float64(p.BestPosition[t])-current) +
			u.config.SocialWeight*u.rng.Float64()*(float64(globalBest[t])-current) +
			u.config.PheromoneScale*(u.pheromone.Level(t, globalBest[t])-u.pheromone.Level(t, p.Position[t]))

		// A non finite component would poison the position, drop it instead
		// of aborting the run.
		if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
			stats.NumericAnomalies++
			velocity = 0
		}
		if velocity > maxVelocity {
			velocity = maxVelocity
			stats.VelocityClamps++
		} else if velocity < -maxVelocity {
			velocity = -maxVelocity
			stats.VelocityClamps++
		}
		p.Velocity[t] = velocity

		next := int(math.Round(current + velocity))
		if next < 0 {
			next = 0
		} else if next >= u.numDataCenters {
			next = u.numDataCenters - 1
		}
		p.Position[t] = next
	}
	return stats
}
