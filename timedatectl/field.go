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
	"fmt"
)

// FieldKey identifies a reconcilable clock setting
type FieldKey int

// supported fields, in the order they are reconciled
const (
	FieldNTP FieldKey = iota
	FieldLocalTime
	FieldTimezone
)

// fieldKeyToString maps key to the name used on the command line
var fieldKeyToString = map[FieldKey]string{
	FieldNTP:       "ntp",
	FieldLocalTime: "time",
	FieldTimezone:  "timezone",
}

func (k FieldKey) String() string {
	if s, ok := fieldKeyToString[k]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// ValueKind is the type of value a field accepts
type ValueKind int

// possible value kinds
const (
	KindBoolean ValueKind = iota
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Value is a desired field value, either boolean or string
type Value struct {
	kind ValueKind
	b    bool
	s    string
}

// BoolValue returns boolean Value
func BoolValue(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// StringValue returns string Value
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns kind of the value
func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) String() string {
	if v.kind == KindBoolean {
		return fmt.Sprintf("%v", v.b)
	}
	return v.s
}

// FieldSpec describes a single field: how it is labelled in status output and how to change it
type FieldSpec struct {
	Key         FieldKey
	DisplayName string // label as printed by `timedatectl status`
	Kind        ValueKind
	SetCommand  string // tool subcommand changing the field, like set-timezone
}

// Normalize renders value the way the tool expects and reports it.
// Booleans become "yes"/"no", strings pass through.
func (f FieldSpec) Normalize(v Value) (string, error) {
	if v.kind != f.Kind {
		return "", &ValidationError{Msg: fmt.Sprintf("field %q expects %s value, got %s", f.Key, f.Kind, v.kind)}
	}
	if f.Kind == KindBoolean {
		if v.b {
			return "yes", nil
		}
		return "no", nil
	}
	return v.s, nil
}

// SetArgs returns arguments for the tool to set field to already normalized value
func (f FieldSpec) SetArgs(normalized string) []string {
	return []string{f.SetCommand, normalized}
}

// Registry is an ordered, immutable catalog of field specs
type Registry struct {
	specs []FieldSpec
	byKey map[FieldKey]int
}

// NewRegistry builds a Registry, making sure every spec is well formed
func NewRegistry(specs ...FieldSpec) (*Registry, error) {
	r := &Registry{
		specs: make([]FieldSpec, 0, len(specs)),
		byKey: make(map[FieldKey]int, len(specs)),
	}
	for _, s := range specs {
		if _, ok := fieldKeyToString[s.Key]; !ok {
			return nil, fmt.Errorf("unsupported field key %v", s.Key)
		}
		if s.DisplayName == "" {
			return nil, fmt.Errorf("field %q has empty display name", s.Key)
		}
		if s.SetCommand == "" {
			return nil, fmt.Errorf("field %q has empty set command", s.Key)
		}
		if s.Kind != KindBoolean && s.Kind != KindString {
			return nil, fmt.Errorf("field %q has unsupported value kind %v", s.Key, s.Kind)
		}
		if _, dup := r.byKey[s.Key]; dup {
			return nil, fmt.Errorf("field %q declared twice", s.Key)
		}
		r.byKey[s.Key] = len(r.specs)
		r.specs = append(r.specs, s)
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on malformed specs
func MustNewRegistry(specs ...FieldSpec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Specs returns copy of all specs in registry order
func (r *Registry) Specs() []FieldSpec {
	out := make([]FieldSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Lookup returns spec for the key
func (r *Registry) Lookup(k FieldKey) (FieldSpec, bool) {
	i, ok := r.byKey[k]
	if !ok {
		return FieldSpec{}, false
	}
	return r.specs[i], true
}

// DisplayNames returns status labels of all fields in registry order
func (r *Registry) DisplayNames() []string {
	names := make([]string, 0, len(r.specs))
	for _, s := range r.specs {
		names = append(names, s.DisplayName)
	}
	return names
}

// DefaultRegistry holds the fields `timedatectl status` reports
var DefaultRegistry = MustNewRegistry(
	FieldSpec{Key: FieldNTP, DisplayName: "NTP enabled", Kind: KindBoolean, SetCommand: "set-ntp"},
	FieldSpec{Key: FieldLocalTime, DisplayName: "Local time", Kind: KindString, SetCommand: "set-time"},
	FieldSpec{Key: FieldTimezone, DisplayName: "Timezone", Kind: KindString, SetCommand: "set-timezone"},
)
