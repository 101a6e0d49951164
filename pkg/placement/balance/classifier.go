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

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/uber/flock/pkg/placement/models"
)

// Condition labels how evenly a placement spreads load over the data
// centers.
type Condition string

const (
	// Balanced means load is spread evenly across all data centers.
	Balanced Condition = "Balanced"
	// PartiallyBalanced means load shows moderate skew.
	PartiallyBalanced Condition = "Partially Balanced"
	// Unbalanced means load is heavily skewed.
	Unbalanced Condition = "Unbalanced"
)

// DataCenterUtilization is the per data center breakdown behind a report.
type DataCenterUtilization struct {
	DataCenterID       string  `json:"data_center_id"`
	ComputeLoad        float64 `json:"compute_load"`
	MemoryLoad         float64 `json:"memory_load"`
	ComputeUtilization float64 `json:"compute_utilization"`
	MemoryUtilization  float64 `json:"memory_utilization"`
	Utilization        float64 `json:"utilization"`
}

// Report is the outcome of classifying the load spread of a placement.
type Report struct {
	Condition       Condition               `json:"condition"`
	MeanUtilization float64                 `json:"mean_utilization"`
	MinUtilization  float64                 `json:"min_utilization"`
	MaxUtilization  float64                 `json:"max_utilization"`
	Variance        float64                 `json:"variance"`
	DataCenters     []DataCenterUtilization `json:"data_centers"`
}

// Classifier labels placements with a load condition based on configurable
// utilization thresholds.
type Classifier struct {
	config *Config
}

// NewClassifier returns a classifier using the thresholds of the given
// config, with unset thresholds normalized to the defaults.
func NewClassifier(config *Config) *Classifier {
	config.Normalize()
	return &Classifier{config: config}
}

// Classify computes the utilization of every data center under the given
// position and labels the spread. Utilization of a data center is the
// weighted mix of its compute and memory utilization percentages, each
// capped at 100.
func (c *Classifier) Classify(scenario *models.Scenario, position []int) *Report {
	loads := models.AggregateLoads(scenario.Tasks, len(scenario.DataCenters), position)

	utilizations := make([]float64, len(loads))
	breakdown := make([]DataCenterUtilization, len(loads))
	for i, load := range loads {
		dc := scenario.DataCenters[i]
		computePct := utilizationPct(load.Compute, dc.ComputeCapacity)
		memoryPct := utilizationPct(load.Memory, dc.MemoryCapacity)
		utilization := c.config.ComputeWeight*computePct + c.config.MemoryWeight*memoryPct
		if utilization > 100 {
			utilization = 100
		}

		utilizations[i] = utilization
		breakdown[i] = DataCenterUtilization{
			DataCenterID:       dc.ID,
			ComputeLoad:        load.Compute,
			MemoryLoad:         load.Memory,
			ComputeUtilization: computePct,
			MemoryUtilization:  memoryPct,
			Utilization:        utilization,
		}
	}

	report := &Report{
		MeanUtilization: stat.Mean(utilizations, nil),
		MinUtilization:  floats.Min(utilizations),
		MaxUtilization:  floats.Max(utilizations),
		Variance:        stat.PopVariance(utilizations, nil),
		DataCenters:     breakdown,
	}
	report.Condition = c.classify(report)
	return report
}

// classify applies the threshold bands to the utilization statistics. The
// unbalanced band is checked first, any remaining moderate skew lands in the
// partially balanced band.
func (c *Classifier) classify(report *Report) Condition {
	spread := report.MaxUtilization - report.MinUtilization
	cfg := c.config

	if report.Variance >= cfg.UnbalancedVariance ||
		report.MaxUtilization > cfg.UnbalancedMax ||
		report.MinUtilization < cfg.UnbalancedMin ||
		spread > cfg.UnbalancedSpread {
		return Unbalanced
	}
	if report.Variance >= cfg.PartialVariance ||
		report.MaxUtilization > cfg.PartialMax ||
		report.MinUtilization < cfg.PartialMin ||
		spread > cfg.PartialSpread {
		return PartiallyBalanced
	}
	return Balanced
}

// utilizationPct returns the percent of capacity used, capped at 100. A data
// center with no capacity on an axis counts as fully utilized as soon as it
// carries any load on that axis.
func utilizationPct(load, capacity float64) float64 {
	if capacity <= 0 {
		if load > 0 {
			return 100
		}
		return 0
	}
	pct := 100 * load / capacity
	if pct > 100 {
		return 100
	}
	return pct
}
