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

package main

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"

	"github.com/uber/flock/pkg/common"
	"github.com/uber/flock/pkg/common/async"
	common_config "github.com/uber/flock/pkg/common/config"
	"github.com/uber/flock/pkg/common/logging"
	"github.com/uber/flock/pkg/common/metrics"
	"github.com/uber/flock/pkg/placement/config"
	"github.com/uber/flock/pkg/placement/generation"
	"github.com/uber/flock/pkg/placement/models"
	"github.com/uber/flock/pkg/report"
	"github.com/uber/flock/pkg/runner"

	log "github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	version string
	app     = kingpin.New(common.FlockSimulator, "Flock Cloud Workload Placement Simulator")

	debug = app.Flag(
		"debug", "enable debug mode (print full json responses)").
		Short('d').
		Default("false").
		Envar("ENABLE_DEBUG_LOGGING").
		Bool()

	cfgFiles = app.Flag(
		"config",
		"YAML config files (can be provided multiple times to merge configs)").
		Short('c').
		ExistingFiles()

	scenarioFiles = app.Flag(
		"scenario",
		"YAML scenario files (can be provided multiple times to place each scenario)").
		Short('s').
		ExistingFiles()

	seed = app.Flag(
		"seed",
		"Base random seed, each run of the batch derives its own seed from it "+
			"(set $FLOCK_SEED to override)").
		Default("1").
		Envar("FLOCK_SEED").
		Int64()

	numParticles = app.Flag(
		"num-particles", "Number of particles (placement.num_particles override)").
		Default("0").
		Envar("FLOCK_NUM_PARTICLES").
		Int()

	maxIterations = app.Flag(
		"max-iterations", "Number of iterations (placement.max_iterations override)").
		Default("0").
		Envar("FLOCK_MAX_ITERATIONS").
		Int()

	maxWorkers = app.Flag(
		"workers", "Number of concurrent runs (runner.max_workers override)").
		Default("0").
		Envar("FLOCK_WORKERS").
		Int()

	repeats = app.Flag(
		"repeats", "Number of runs per scenario (runner.repeats override)").
		Default("0").
		Envar("FLOCK_REPEATS").
		Int()

	randomScenarios = app.Flag(
		"random-scenarios",
		"Number of random scenarios to generate when no scenario files are given").
		Default("1").
		Int()

	randomTasks = app.Flag(
		"random-tasks", "Number of tasks per generated scenario").
		Default("0").
		Int()

	randomDataCenters = app.Flag(
		"random-data-centers", "Number of data centers per generated scenario").
		Default("0").
		Int()

	outputFile = app.Flag(
		"output", "File to write the batch results JSON to instead of stdout").
		Short('o').
		String()

	plotFile = app.Flag(
		"plot", "File to write an HTML convergence report to").
		String()
)

func main() {
	app.Version(version)
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFormatter(
		&logging.LogFieldFormatter{
			Formatter: &log.JSONFormatter{},
			Fields: log.Fields{
				common.AppLogField: app.Name,
			},
		},
	)

	initialLevel := log.InfoLevel
	if *debug {
		initialLevel = log.DebugLevel
	}
	log.SetLevel(initialLevel)

	var cfg config.Config
	if len(*cfgFiles) > 0 {
		log.WithField("files", *cfgFiles).
			Info("Loading Placement Simulator config")
		if err := common_config.Parse(&cfg, *cfgFiles...); err != nil {
			log.WithField("error", err).Fatal("Cannot parse yaml config")
		}
	}

	// now, override any CLI flags in the loaded config.Config
	if *numParticles != 0 {
		cfg.Placement.NumParticles = *numParticles
	}

	if *maxIterations != 0 {
		cfg.Placement.MaxIterations = *maxIterations
	}

	if *maxWorkers != 0 {
		cfg.Runner.MaxWorkers = *maxWorkers
	}

	if *repeats != 0 {
		cfg.Runner.Repeats = *repeats
	}

	cfg.Normalize()

	log.WithField("config", cfg).
		Info("Completed Loading Placement Simulator config")

	rootScope, scopeCloser := metrics.InitMetricScope(
		&cfg.Metrics,
		common.FlockSimulator,
		metrics.TallyFlushInterval,
	)
	defer scopeCloser.Close()

	// Start collecting runtime metrics
	defer metrics.StartCollectingRuntimeMetrics(
		rootScope,
		cfg.Metrics.RuntimeMetrics.Enabled,
		cfg.Metrics.RuntimeMetrics.CollectInterval)()

	scenarios := loadScenarios()

	pool := async.NewPool(async.PoolOptions{
		MaxWorkers: cfg.Runner.MaxWorkers,
	}, nil)
	pool.Start()
	defer pool.Stop()

	batchRunner := runner.New(rootScope, &cfg, pool)
	results := batchRunner.Run(context.Background(), scenarios, *seed)

	writeResults(results)

	if *plotFile != "" {
		if err := report.WriteConvergence(*plotFile, results); err != nil {
			log.WithError(err).Fatal("Cannot write convergence report")
		}
		log.WithField("file", *plotFile).Info("Wrote convergence report")
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	log.WithFields(log.Fields{
		"runs":   len(results),
		"failed": failed,
	}).Info("Finished placement batch")
	if failed > 0 {
		os.Exit(1)
	}
}

// loadScenarios reads every scenario file, or generates random scenarios
// when no files are given. Invalid scenarios abort the whole batch before
// any run starts.
func loadScenarios() []*models.Scenario {
	var scenarios []*models.Scenario
	for _, file := range *scenarioFiles {
		var scenario models.Scenario
		if err := common_config.Parse(&scenario, file); err != nil {
			log.WithField("file", file).
				WithError(err).
				Fatal("Cannot parse yaml scenario")
		}
		scenarios = append(scenarios, &scenario)
	}

	if len(scenarios) == 0 {
		generator := generation.NewGenerator(rand.New(rand.NewSource(*seed)))
		options := generation.Options{
			NumTasks:       *randomTasks,
			NumDataCenters: *randomDataCenters,
		}
		for i := 0; i < *randomScenarios; i++ {
			scenarios = append(scenarios, generator.Generate(options))
		}
		log.WithField("scenarios", len(scenarios)).
			Info("Generated random scenarios")
	}

	for _, scenario := range scenarios {
		if err := scenario.Validate(); err != nil {
			log.WithField("scenario", scenario.Name).
				WithError(err).
				Fatal("Invalid scenario")
		}
	}
	return scenarios
}

// writeResults emits the batch results as JSON to the output file, or to
// stdout when no file is given.
func writeResults(results []*runner.RunResult) {
	encoded, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("Cannot marshal batch results")
	}
	encoded = append(encoded, '\n')

	if *outputFile == "" {
		if _, err := os.Stdout.Write(encoded); err != nil {
			log.WithError(err).Fatal("Cannot write batch results")
		}
		return
	}
	if err := os.WriteFile(*outputFile, encoded, 0644); err != nil {
		log.WithField("file", *outputFile).
			WithError(err).
			Fatal("Cannot write batch results")
	}
	log.WithField("file", *outputFile).Info("Wrote batch results")
}
