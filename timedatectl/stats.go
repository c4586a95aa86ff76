/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package timedatectl

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// possible values of the result label
const (
	ResultChanged         = "changed"
	ResultUnchanged       = "unchanged"
	ResultValidationError = "validation_error"
	ResultFieldNotFound   = "field_not_found"
	ResultCommandError    = "command_error"
	ResultError           = "error"
)

// Stats holds metrics about reconciliation runs
type Stats struct {
	registry     *prometheus.Registry
	runs         *prometheus.CounterVec
	fieldChanges *prometheus.CounterVec
	lastRun      prometheus.Gauge
}

// NewStats creates a new instance of Stats with all metrics registered
func NewStats() *Stats {
	s := &Stats{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timedate_reconcile_runs_total",
			Help: "Number of reconciliation runs by result",
		}, []string{"result", "dry_run"}),
		fieldChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timedate_field_changes_total",
			Help: "Number of fields found out of sync, by field",
		}, []string{"field", "dry_run"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "timedate_last_run_timestamp_seconds",
			Help: "Unix time of the last reconciliation run",
		}),
	}
	s.registry.MustRegister(s.runs, s.fieldChanges, s.lastRun)
	return s
}

// ErrorResult classifies err into one of Result* values
func ErrorResult(err error) string {
	var validationErr *ValidationError
	var notFoundErr *FieldNotFoundError
	var cmdErr *ExternalCommandError
	switch {
	case errors.As(err, &validationErr):
		return ResultValidationError
	case errors.As(err, &notFoundErr):
		return ResultFieldNotFound
	case errors.As(err, &cmdErr):
		return ResultCommandError
	}
	return ResultError
}

// Observe records outcome of a single Reconcile call
func (s *Stats) Observe(report *ChangeReport, dryRun bool, err error) {
	s.lastRun.SetToCurrentTime()
	dry := strconv.FormatBool(dryRun)
	if err != nil {
		s.runs.WithLabelValues(ErrorResult(err), dry).Inc()
		return
	}
	result := ResultUnchanged
	if report.Changed {
		result = ResultChanged
	}
	s.runs.WithLabelValues(result, dry).Inc()
	for _, c := range report.Pending() {
		s.fieldChanges.WithLabelValues(c.Name, dry).Inc()
	}
}

func (s *Stats) gatherer() prometheus.Gatherer {
	return s.registry
}

// WriteTextfile writes metrics in node_exporter textfile format
func (s *Stats) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, s.registry)
}
