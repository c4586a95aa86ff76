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

// FieldChange records what happened to a single requested field.
// Command is empty iff Changed is false.
type FieldChange struct {
	Name     string `json:"name"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
	Command  string `json:"command"`
	Changed  bool   `json:"changed"`
}

// ChangeReport is the result of one reconciliation
type ChangeReport struct {
	Changed bool          `json:"changed"`
	Changes []FieldChange `json:"changelogs"`
}

func newChangeReport(changes []FieldChange) *ChangeReport {
	r := &ChangeReport{Changes: changes}
	for _, c := range changes {
		r.Changed = r.Changed || c.Changed
	}
	return r
}

// Pending returns changes that needed a command
func (r *ChangeReport) Pending() []FieldChange {
	pending := []FieldChange{}
	for _, c := range r.Changes {
		if c.Changed {
			pending = append(pending, c)
		}
	}
	return pending
}
