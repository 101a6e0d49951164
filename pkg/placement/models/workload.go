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

package models

// Task is one unit of work to be placed on a data center. Tasks are
// immutable for the duration of a run.
type Task struct {
	ID            string  `yaml:"id" json:"id"`
	ComputeDemand float64 `yaml:"compute_demand" json:"compute_demand"`
	MemoryDemand  float64 `yaml:"memory_demand" json:"memory_demand"`
}

// DataCenter is a placement target with finite capacities. Storage and
// network capacities are carried along for reporting but do not take part
// in the load balance objective.
type DataCenter struct {
	ID               string  `yaml:"id" json:"id"`
	ComputeCapacity  float64 `yaml:"compute_capacity" json:"compute_capacity"`
	MemoryCapacity   float64 `yaml:"memory_capacity" json:"memory_capacity"`
	StorageCapacity  float64 `yaml:"storage_capacity" json:"storage_capacity"`
	NetworkBandwidth float64 `yaml:"network_bandwidth" json:"network_bandwidth"`
}
