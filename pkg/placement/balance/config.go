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

package balance

const (
	// DefaultComputeWeight of the compute axis in the utilization score.
	DefaultComputeWeight = 0.7
	// DefaultMemoryWeight of the memory axis in the utilization score.
	DefaultMemoryWeight = 0.3

	// DefaultUnbalancedVariance is the utilization variance at or above
	// which a placement is considered unbalanced.
	DefaultUnbalancedVariance = 500.0
	// DefaultUnbalancedMax is the utilization above which a single data
	// center marks the placement unbalanced.
	DefaultUnbalancedMax = 90.0
	// DefaultUnbalancedMin is the utilization below which a single data
	// center marks the placement unbalanced.
	DefaultUnbalancedMin = 10.0
	// DefaultUnbalancedSpread is the max minus min utilization above which
	// a placement is considered unbalanced.
	DefaultUnbalancedSpread = 60.0

	// DefaultPartialVariance is the utilization variance at or above which
	// a placement is considered partially balanced.
	DefaultPartialVariance = 200.0
	// DefaultPartialMax is the utilization above which a single data center
	// marks the placement partially balanced.
	DefaultPartialMax = 85.0
	// DefaultPartialMin is the utilization below which a single data center
	// marks the placement partially balanced.
	DefaultPartialMin = 15.0
	// DefaultPartialSpread is the max minus min utilization above which a
	// placement is considered partially balanced.
	DefaultPartialSpread = 40.0
)

// Config holds the thresholds of the load condition classifier.
type Config struct {
	// ComputeWeight is the weight of compute utilization in the combined
	// utilization score of a data center.
	ComputeWeight float64 `yaml:"compute_weight"`

	// MemoryWeight is the weight of memory utilization in the combined
	// utilization score of a data center.
	MemoryWeight float64 `yaml:"memory_weight"`

	// UnbalancedVariance is the variance threshold of the unbalanced band.
	UnbalancedVariance float64 `yaml:"unbalanced_variance"`

	// UnbalancedMax is the max utilization threshold of the unbalanced band.
	UnbalancedMax float64 `yaml:"unbalanced_max"`

	// UnbalancedMin is the min utilization threshold of the unbalanced band.
	UnbalancedMin float64 `yaml:"unbalanced_min"`

	// UnbalancedSpread is the utilization spread threshold of the
	// unbalanced band.
	UnbalancedSpread float64 `yaml:"unbalanced_spread"`

	// PartialVariance is the variance threshold of the partially balanced
	// band.
	PartialVariance float64 `yaml:"partial_variance"`

	// PartialMax is the max utilization threshold of the partially balanced
	// band.
	PartialMax float64 `yaml:"partial_max"`

	// PartialMin is the min utilization threshold of the partially balanced
	// band.
	PartialMin float64 `yaml:"partial_min"`

	// PartialSpread is the utilization spread threshold of the partially
	// balanced band.
	PartialSpread float64 `yaml:"partial_spread"`
}

// Normalize fills unset thresholds with the default classification bands.
func (c *Config) Normalize() {
	if c.ComputeWeight == 0 {
		c.ComputeWeight = DefaultComputeWeight
	}
	if c.MemoryWeight == 0 {
		c.MemoryWeight = DefaultMemoryWeight
	}
	if c.UnbalancedVariance == 0 {
		c.UnbalancedVariance = DefaultUnbalancedVariance
	}
	if c.UnbalancedMax == 0 {
		c.UnbalancedMax = DefaultUnbalancedMax
	}
	if c.UnbalancedMin == 0 {
		c.UnbalancedMin = DefaultUnbalancedMin
	}
	if c.UnbalancedSpread == 0 {
		c.UnbalancedSpread = DefaultUnbalancedSpread
	}
	if c.PartialVariance == 0 {
		c.PartialVariance = DefaultPartialVariance
	}
	if c.PartialMax == 0 {
		c.PartialMax = DefaultPartialMax
	}
	if c.PartialMin == 0 {
		c.PartialMin = DefaultPartialMin
	}
	if c.PartialSpread == 0 {
		c.PartialSpread = DefaultPartialSpread
	}
}
