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
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ValidationError is returned when the request can't be acted upon
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Msg
}

// Desired holds values we want fields to have. Absent key means "leave as is".
type Desired map[FieldKey]Value

// Input is the caller-facing set of optional settings
type Input struct {
	NTP      *bool
	Time     *string
	Timezone *string
}

// Desired converts Input into Desired
func (i Input) Desired() Desired {
	d := Desired{}
	if i.NTP != nil {
		d[FieldNTP] = BoolValue(*i.NTP)
	}
	if i.Time != nil {
		d[FieldLocalTime] = StringValue(*i.Time)
	}
	if i.Timezone != nil {
		d[FieldTimezone] = StringValue(*i.Timezone)
	}
	return d
}

// Reconciler brings clock settings to desired values using timedatectl-like tool.
// It keeps no state between calls, but concurrent calls against the same host race
// with each other and must be serialized by the caller.
type Reconciler struct {
	Tool     string
	Runner   Runner
	Registry *Registry
}

// NewReconciler returns Reconciler for the tool using default field registry
func NewReconciler(tool string, runner Runner) *Reconciler {
	if tool == "" {
		tool = DefaultTool
	}
	return &Reconciler{
		Tool:     tool,
		Runner:   runner,
		Registry: DefaultRegistry,
	}
}

// run calls the tool, making sure every failure is an *ExternalCommandError
func (r *Reconciler) run(ctx context.Context, args ...string) (string, error) {
	out, err := r.Runner.Run(ctx, r.Tool, args...)
	if err == nil {
		return out, nil
	}
	var cmdErr *ExternalCommandError
	if errors.As(err, &cmdErr) {
		return "", err
	}
	return "", &ExternalCommandError{Command: CommandLine(r.Tool, args...), ExitCode: -1, Err: err}
}

func (r *Reconciler) readStatus(ctx context.Context, names []string) (ObservedState, error) {
	out, err := r.run(ctx, "status")
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}
	state, err := ParseStatus(out, names...)
	if err != nil {
		return nil, err
	}
	for _, name := range state.Names() {
		log.Debugf("status %s: %q", name, state[name])
	}
	return state, nil
}

// Status returns current values of all known fields
func (r *Reconciler) Status(ctx context.Context) (ObservedState, error) {
	return r.readStatus(ctx, r.Registry.DisplayNames())
}

type plannedField struct {
	spec  FieldSpec
	value string
}

// plan validates desired values and orders them as the registry does
func (r *Reconciler) plan(desired Desired) ([]plannedField, error) {
	if len(desired) == 0 {
		return nil, &ValidationError{Msg: "one of ntp, time or timezone must be specified"}
	}
	fields := make([]plannedField, 0, len(desired))
	for _, spec := range r.Registry.Specs() {
		v, ok := desired[spec.Key]
		if !ok {
			continue
		}
		normalized, err := spec.Normalize(v)
		if err != nil {
			return nil, err
		}
		fields = append(fields, plannedField{spec: spec, value: normalized})
	}
	if len(fields) != len(desired) {
		for k := range desired {
			if _, ok := r.Registry.Lookup(k); !ok {
				return nil, &ValidationError{Msg: fmt.Sprintf("unsupported field %v", k)}
			}
		}
	}
	return fields, nil
}

// Reconcile compares desired values with what the tool reports and issues set commands
// for every field that differs. A field counts as already set when the desired value is
// a substring of the reported one, so "Asia/Tokyo" matches "Asia/Tokyo (JST, +0900)".
//
// With dryRun no set commands are run and NewValue holds the intended value.
// Otherwise status is read again after the changes and NewValue holds what the tool reports.
// A failed set command aborts the run, changes already applied are kept.
func (r *Reconciler) Reconcile(ctx context.Context, desired Desired, dryRun bool) (*ChangeReport, error) {
	fields, err := r.plan(desired)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.spec.DisplayName)
	}

	before, err := r.readStatus(ctx, names)
	if err != nil {
		return nil, err
	}

	changes := make([]FieldChange, 0, len(fields))
	for _, f := range fields {
		old := before[f.spec.DisplayName]
		c := FieldChange{
			Name:     f.spec.DisplayName,
			OldValue: old,
			NewValue: f.value,
		}
		if !strings.Contains(old, f.value) {
			c.Command = CommandLine(r.Tool, f.spec.SetArgs(f.value)...)
			c.Changed = true
		}
		log.Debugf("%s: have %q, want %q, changed: %v", c.Name, old, f.value, c.Changed)
		changes = append(changes, c)
	}

	if dryRun {
		return newChangeReport(changes), nil
	}

	for i, f := range fields {
		if !changes[i].Changed {
			continue
		}
		log.Infof("setting %s to %q (was %q)", f.spec.DisplayName, f.value, changes[i].OldValue)
		if _, err := r.run(ctx, f.spec.SetArgs(f.value)...); err != nil {
			return nil, fmt.Errorf("setting %s: %w", f.spec.DisplayName, err)
		}
	}

	after, err := r.readStatus(ctx, names)
	if err != nil {
		return nil, err
	}
	for i := range changes {
		changes[i].NewValue = after[changes[i].Name]
	}
	return newChangeReport(changes), nil
}
