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
	"bufio"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// FieldNotFoundError is returned when status output has no line for the label
type FieldNotFoundError struct {
	Name string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found in status output", e.Name)
}

// ObservedState maps status labels to their raw values, as seen in one status capture
type ObservedState map[string]string

// Names returns sorted list of labels in the state
func (s ObservedState) Names() []string {
	names := maps.Keys(s)
	sort.Strings(names)
	return names
}

// ParseField returns the value of the first line in status text that looks like
// "<name>: <value>". Leading indentation and whitespace around the value are dropped.
func ParseField(status, name string) (string, error) {
	prefix := name + ":"
	scanner := bufio.NewScanner(strings.NewReader(status))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		return strings.TrimSpace(strings.TrimPrefix(line, prefix)), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading status output: %w", err)
	}
	return "", &FieldNotFoundError{Name: name}
}

// ParseStatus extracts every named field from status text.
// Any missing field fails the whole parse.
func ParseStatus(status string, names ...string) (ObservedState, error) {
	state := make(ObservedState, len(names))
	for _, name := range names {
		v, err := ParseField(status, name)
		if err != nil {
			return nil, err
		}
		state[name] = v
	}
	return state, nil
}
