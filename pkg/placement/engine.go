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

package placement

import (
	"context"
	"math"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/uber/flock/pkg/placement/balance"
	"github.com/uber/flock/pkg/placement/config"
	"github.com/uber/flock/pkg/placement/fitness"
	tally_metrics "github.com/uber/flock/pkg/placement/metrics"
	"github.com/uber/flock/pkg/placement/migration"
	"github.com/uber/flock/pkg/placement/models"
	"github.com/uber/flock/pkg/placement/swarm"
)

// State is the phase the engine is currently in.
type State int

const (
	// Initialized means the swarm exists but nothing has been scored yet.
	Initialized State = iota
	// Evaluating means the engine is scoring particle positions.
	Evaluating
	// Updating means the engine is moving particles.
	Updating
	// Converged means the iteration budget is spent and the result is final.
	Converged
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Evaluating:
		return "evaluating"
	case Updating:
		return "updating"
	case Converged:
		return "converged"
	}
	return "unknown"
}

// Engine places the tasks of one scenario onto its data centers.
type Engine interface {
	// Run performs the full placement run and returns the final result.
	Run(ctx context.Context) (*Result, error)

	// State returns the phase the engine is currently in.
	State() State
}

// New creates a placement engine for the given scenario. The scenario is
// validated up front so a run never starts from unusable input. Runs are
// deterministic for a fixed scenario, config and seed.
func New(
	parent tally.Scope,
	cfg *config.PlacementConfig,
	scenario *models.Scenario,
	seed int64) (Engine, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &engine{
		config:     cfg,
		scenario:   scenario,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
		metrics:    tally_metrics.New(parent),
		classifier: balance.NewClassifier(&cfg.Balance),
		planner:    migration.NewPlanner(&cfg.Migration),
		state:      Initialized,
	}, nil
}

type engine struct {
	config     *config.PlacementConfig
	scenario   *models.Scenario
	seed       int64
	rng        *rand.Rand
	metrics    *tally_metrics.Metrics
	classifier *balance.Classifier
	planner    *migration.Planner
	state      State
}

func (e *engine) State() State {
	return e.state
}

func (e *engine) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	numTasks := len(e.scenario.Tasks)
	numDataCenters := len(e.scenario.DataCenters)
	log.WithFields(log.Fields{
		"scenario":         e.scenario.Name,
		"num_tasks":        numTasks,
		"num_data_centers": numDataCenters,
		"num_particles":    e.config.NumParticles,
		"max_iterations":   e.config.MaxIterations,
		"seed":             e.seed,
	}).Info("Starting placement run")

	particles := swarm.NewSwarm(e.config.NumParticles, numTasks, numDataCenters, e.rng)
	pheromone := swarm.NewPheromoneMatrix(
		numTasks,
		numDataCenters,
		e.config.InitialPheromone,
		e.config.PheromoneFloor)
	updater := swarm.NewUpdater(e.config, pheromone, numDataCenters, e.rng)
	evaluator := fitness.NewEvaluator(e.scenario)

	var globalBest []int
	globalBestFitness := math.Inf(1)
	anyValid := false
	history := make([]IterationStats, 0, e.config.MaxIterations)

	for iteration := 0; iteration < e.config.MaxIterations; iteration++ {
		e.state = Evaluating
		improved := false
		totalFitness := 0.0
		for _, particle := range particles {
			score, ok := evaluator.Score(particle.Position)
			if ok {
				anyValid = true
			} else {
				e.metrics.NumericAnomalies.Inc(1)
				log.WithFields(log.Fields{
					"scenario":  e.scenario.Name,
					"particle":  particle.ID,
					"iteration": iteration,
				}).Warn("Replaced non finite fitness with the worst finite score")
			}
			totalFitness += score
			particle.RecordBest(score)
			if score < globalBestFitness {
				globalBestFitness = score
				globalBest = append(globalBest[:0], particle.Position...)
				improved = true
			}
		}

		if improved {
			pheromone.Evaporate(e.config.EvaporationRate)
			pheromone.Deposit(globalBest, e.config.PheromoneDeposit)
			e.metrics.Improvements.Inc(1)
			e.metrics.PheromoneUpdates.Inc(1)
		}

		e.state = Updating
		var stats swarm.UpdateStats
		for _, particle := range particles {
			stats.Add(updater.Update(particle, globalBest, iteration))
		}
		e.metrics.VelocityClamps.Inc(int64(stats.VelocityClamps))
		e.metrics.NumericAnomalies.Inc(int64(stats.NumericAnomalies))
		e.metrics.Iterations.Inc(1)

		average := totalFitness / float64(len(particles))
		if math.IsInf(average, 0) || math.IsNaN(average) {
			average = math.MaxFloat64
		}
		history = append(history, IterationStats{
			Iteration:         iteration,
			GlobalBestFitness: globalBestFitness,
			AverageFitness:    average,
		})
		e.metrics.BestFitness.Update(globalBestFitness)
		e.metrics.AverageFitness.Update(average)

		log.WithFields(log.Fields{
			"scenario":    e.scenario.Name,
			"iteration":   iteration,
			"global_best": globalBestFitness,
			"average":     average,
		}).Debug("Completed iteration")
	}
	e.state = Converged

	improved := anyValid
	if !anyValid {
		// Every score of the run was replaced by the worst finite value, so
		// the tracked global best is noise. Fall back to the first particle's
		// best known position instead of failing the run.
		first := particles[0]
		globalBest = append(globalBest[:0], first.BestPosition...)
		globalBestFitness, _ = evaluator.Score(globalBest)
		e.metrics.FallbackResults.Inc(1)
		log.WithField("scenario", e.scenario.Name).
			Warn("No position ever scored a valid fitness, returning the first particle's best")
	}

	result := &Result{
		ScenarioName:  e.scenario.Name,
		Seed:          e.seed,
		Position:      globalBest,
		Fitness:       globalBestFitness,
		Improved:      improved,
		Assignments:   models.AssignmentsFromPosition(e.scenario, globalBest),
		LoadReport:    e.classifier.Classify(e.scenario, globalBest),
		MigrationPlan: e.planner.BuildPlan(e.scenario, globalBest),
		History:       history,
		Duration:      time.Since(start),
	}

	e.metrics.Runs.Inc(1)
	e.metrics.RunDuration.Record(result.Duration)
	log.WithFields(log.Fields{
		"scenario":       e.scenario.Name,
		"fitness":        result.Fitness,
		"load_condition": result.LoadReport.Condition,
		"migrations":     result.MigrationPlan.TotalMigrations,
		"duration":       result.Duration.String(),
	}).Info("Finished placement run")
	return result, nil
}
