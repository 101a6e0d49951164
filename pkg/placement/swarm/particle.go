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
)

// Particle is one candidate placement and its search velocity. Position
// element t is the index of the data center that task t is assigned to.
type Particle struct {
	ID       int
	Position []int
	Velocity []float64

	// BestPosition is the best placement this particle has visited and
	// BestFitness its score. BestFitness starts at positive infinity so the
	// first evaluation always records a personal best.
	BestPosition []int
	BestFitness  float64
}

// NewSwarm creates numParticles particles with uniformly random positions
// over the data centers and small random initial velocities.
func NewSwarm(numParticles, numTasks, numDataCenters int, rng *rand.Rand) []*Particle {
	particles := make([]*Particle, numParticles)
	for i := range particles {
		p := &Particle{
			ID:           i,
			Position:     make([]int, numTasks),
			Velocity:     make([]float64, numTasks),
			BestPosition: make([]int, numTasks),
			BestFitness:  math.Inf(1),
		}
		for t := 0; t < numTasks; t++ {
			p.Position[t] = rng.Intn(numDataCenters)
			p.Velocity[t] = 2*rng.Float64() - 1
		}
		copy(p.BestPosition, p.Position)
		particles[i] = p
	}
	return particles
}

// RecordBest updates the particle's personal best if the given fitness of
// its current position improves on it. Returns true on improvement.
func (p *Particle) RecordBest(fitness float64) bool {
	if fitness >= p.BestFitness {
		return false
	}
	p.BestFitness = fitness
	copy(p.BestPosition, p.Position)
	return true
}
