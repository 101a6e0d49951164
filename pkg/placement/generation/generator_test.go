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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUsesDefaultBounds(t *testing.T) {
	generator := NewGenerator(rand.New(rand.NewSource(42)))

	scenario := generator.Generate(Options{})

	require.NoError(t, scenario.Validate())
	assert.Equal(t, "random-1", scenario.Name)
	assert.Len(t, scenario.Tasks, DefaultNumTasks)
	assert.Len(t, scenario.DataCenters, DefaultNumDataCenters)
	for _, task := range scenario.Tasks {
		assert.True(t, task.ComputeDemand >= DefaultMinDemand)
		assert.True(t, task.ComputeDemand < DefaultMaxDemand)
		assert.True(t, task.MemoryDemand >= DefaultMinDemand)
		assert.True(t, task.MemoryDemand < DefaultMaxDemand)
	}
	for _, dataCenter := range scenario.DataCenters {
		assert.True(t, dataCenter.ComputeCapacity >= DefaultMinCapacity)
		assert.True(t, dataCenter.ComputeCapacity < DefaultMaxCapacity)
		assert.True(t, dataCenter.MemoryCapacity >= DefaultMinCapacity)
		assert.True(t, dataCenter.MemoryCapacity < DefaultMaxCapacity)
	}
}

func TestGenerateHonorsOptions(t *testing.T) {
	generator := NewGenerator(rand.New(rand.NewSource(42)))

	scenario := generator.Generate(Options{
		Name:           "load-test",
		NumTasks:       3,
		NumDataCenters: 2,
		MinDemand:      5.0,
		MaxDemand:      6.0,
		MinCapacity:    50.0,
		MaxCapacity:    51.0,
	})

	assert.Equal(t, "load-test-1", scenario.Name)
	assert.Len(t, scenario.Tasks, 3)
	assert.Len(t, scenario.DataCenters, 2)
	for _, task := range scenario.Tasks {
		assert.True(t, task.ComputeDemand >= 5.0 && task.ComputeDemand < 6.0)
	}
	for _, dataCenter := range scenario.DataCenters {
		assert.True(t,
			dataCenter.ComputeCapacity >= 50.0 && dataCenter.ComputeCapacity < 51.0)
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	first := NewGenerator(rand.New(rand.NewSource(7))).Generate(Options{})
	second := NewGenerator(rand.New(rand.NewSource(7))).Generate(Options{})

	assert.Equal(t, first, second)
}

func TestGenerateNamesScenariosSequentially(t *testing.T) {
	generator := NewGenerator(rand.New(rand.NewSource(7)))

	assert.Equal(t, "random-1", generator.Generate(Options{}).Name)
	assert.Equal(t, "random-2", generator.Generate(Options{}).Name)
	assert.Equal(t, "random-3", generator.Generate(Options{}).Name)
}

func TestGenerateCollapsedRangeUsesMinimum(t *testing.T) {
	generator := NewGenerator(rand.New(rand.NewSource(7)))

	scenario := generator.Generate(Options{
		NumTasks:       2,
		NumDataCenters: 1,
		MinDemand:      10.0,
		MaxDemand:      10.0,
		MinCapacity:    100.0,
		MaxCapacity:    100.0,
	})

	for _, task := range scenario.Tasks {
		assert.Equal(t, 10.0, task.ComputeDemand)
		assert.Equal(t, 10.0, task.MemoryDemand)
	}
	assert.Equal(t, 100.0, scenario.DataCenters[0].ComputeCapacity)
}
