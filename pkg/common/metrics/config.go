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

package metrics

import (
	"io"
	"time"

	"github.com/cactus/go-statsd-client/statsd"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	tallystatsd "github.com/uber-go/tally/statsd"
)

// TallyFlushInterval is the flush interval of the root tally scope.
const TallyFlushInterval = 1 * time.Second

// Config contains the metrics configuration
type Config struct {
	Statsd         *statsdConfig `yaml:"statsd"`
	RuntimeMetrics runtimeConfig `yaml:"runtime_metrics"`
}

type statsdConfig struct {
	Enable   bool   `yaml:"enable"`
	Endpoint string `yaml:"endpoint"`
}

type runtimeConfig struct {
	Enabled         bool          `yaml:"enabled"`
	CollectInterval time.Duration `yaml:"collect_interval"`
}

// InitMetricScope initializes a root scope and its closer. Without a statsd
// backend configured the scope reports through the statsd noop client.
func InitMetricScope(
	cfg *Config,
	rootMetricScope string,
	metricFlushInterval time.Duration) (tally.Scope, io.Closer) {
	var reporter tally.StatsReporter
	if cfg.Statsd != nil && cfg.Statsd.Enable {
		log.Infof("Metrics configured with statsd endpoint %s", cfg.Statsd.Endpoint)
		c, err := statsd.NewClient(cfg.Statsd.Endpoint, "")
		if err != nil {
			log.Fatalf("Unable to setup Statsd client: %v", err)
		}
		reporter = tallystatsd.NewReporter(c, tallystatsd.Options{})
	} else {
		log.Warnf("No metrics backends configured, using the statsd.NoopClient")
		c, _ := statsd.NewNoopClient()
		reporter = tallystatsd.NewReporter(c, tallystatsd.Options{})
	}

	metricScope, scopeCloser := tally.NewRootScope(
		tally.ScopeOptions{
			Prefix:   rootMetricScope,
			Tags:     map[string]string{},
			Reporter: reporter,
		},
		metricFlushInterval)
	return metricScope, scopeCloser
}
