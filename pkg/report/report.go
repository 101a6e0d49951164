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

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/uber/flock/pkg/runner"
)

// ErrNoCompletedRuns is returned when a batch holds nothing to plot.
var ErrNoCompletedRuns = errors.New("no completed runs to plot")

// RenderConvergence writes an HTML page with one convergence chart per
// completed run. Failed runs are skipped, a batch with no completed run is
// an error.
func RenderConvergence(w io.Writer, results []*runner.RunResult) error {
	page := components.NewPage()
	page.PageTitle = "Placement convergence"

	charted := 0
	for _, result := range results {
		if result.Result == nil {
			continue
		}
		page.AddCharts(convergenceChart(result))
		charted++
	}
	if charted == 0 {
		return ErrNoCompletedRuns
	}
	return page.Render(w)
}

// WriteConvergence renders the convergence page into the given file.
func WriteConvergence(path string, results []*runner.RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create report file %v", path)
	}
	defer f.Close()
	return RenderConvergence(f, results)
}

// convergenceChart plots the global best and the swarm average fitness of
// one run over its iterations.
func convergenceChart(result *runner.RunResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s (run %s)", result.Scenario, result.RunID),
			Subtitle: fmt.Sprintf("seed %d, final fitness %.2f",
				result.Seed, result.Result.Fitness),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "iteration",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "fitness",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	iterations := make([]int, len(result.Result.History))
	best := make([]opts.LineData, len(result.Result.History))
	average := make([]opts.LineData, len(result.Result.History))
	for i, stats := range result.Result.History {
		iterations[i] = stats.Iteration
		best[i] = opts.LineData{Value: stats.GlobalBestFitness}
		average[i] = opts.LineData{Value: stats.AverageFitness}
	}

	line.SetXAxis(iterations).
		AddSeries("global best", best).
		AddSeries("swarm average", average).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(true),
			}))
	return line
}
