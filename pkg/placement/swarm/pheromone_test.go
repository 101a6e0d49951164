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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPheromoneMatrixInitialLevels(t *testing.T) {
	m := NewPheromoneMatrix(3, 2, 1.0, 0.1)

	for task := 0; task < 3; task++ {
		for dc := 0; dc < 2; dc++ {
			assert.Equal(t, 1.0, m.Level(task, dc))
		}
	}
}

func TestEvaporateDecaysLevels(t *testing.T) {
	m := NewPheromoneMatrix(2, 2, 1.0, 0.1)

	m.Evaporate(0.1)
	assert.InDelta(t, 0.9, m.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.9, m.Level(1, 1), 1e-9)
}

func TestEvaporateNeverDropsBelowFloor(t *testing.T) {
	m := NewPheromoneMatrix(2, 2, 1.0, 0.1)

	for i := 0; i < 100; i++ {
		m.Evaporate(0.5)
	}
	for task := 0; task < 2; task++ {
		for dc := 0; dc < 2; dc++ {
			assert.Equal(t, 0.1, m.Level(task, dc))
		}
	}
}

func TestDepositAddsAlongPosition(t *testing.T) {
	m := NewPheromoneMatrix(3, 2, 1.0, 0.1)

	m.Deposit([]int{1, 0, 1}, 2.5)
	assert.Equal(t, 3.5, m.Level(0, 1))
	assert.Equal(t, 3.5, m.Level(1, 0))
	assert.Equal(t, 3.5, m.Level(2, 1))

	// Pairs off the deposited path are untouched.
	assert.Equal(t, 1.0, m.Level(0, 0))
	assert.Equal(t, 1.0, m.Level(1, 1))
	assert.Equal(t, 1.0, m.Level(2, 0))
}

func TestDepositIgnoresOutOfRangeEntries(t *testing.T) {
	m := NewPheromoneMatrix(2, 2, 1.0, 0.1)

	m.Deposit([]int{-1, 5, 0}, 1.0)
	assert.Equal(t, 1.0, m.Level(0, 0))
	assert.Equal(t, 1.0, m.Level(0, 1))
	assert.Equal(t, 1.0, m.Level(1, 0))
	assert.Equal(t, 1.0, m.Level(1, 1))
}
