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
	"fmt"
	"regexp"

	version "github.com/hashicorp/go-version"
)

// systemd 239 dropped the "NTP enabled" status label
var legacyLabels = mustNewConstraint("< 239")

func mustNewConstraint(c string) version.Constraints {
	constraints, err := version.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraints
}

// systemd 245 (245.4-4ubuntu3.20)
var versionRegexp = regexp.MustCompile(`(?m)^systemd (\d+)`)

// ToolVersion describes the systemd release the tool comes from
type ToolVersion struct {
	Raw     string
	Version *version.Version
}

// LegacyLabels tells if status output of this version still has the labels DefaultRegistry expects
func (v *ToolVersion) LegacyLabels() bool {
	return legacyLabels.Check(v.Version)
}

func (v *ToolVersion) String() string {
	return v.Version.String()
}

// ParseToolVersion extracts systemd version from `timedatectl --version` output
func ParseToolVersion(out string) (*ToolVersion, error) {
	matches := versionRegexp.FindStringSubmatch(out)
	if len(matches) != 2 {
		return nil, fmt.Errorf("no systemd version in %q", out)
	}
	v, err := version.NewVersion(matches[1])
	if err != nil {
		return nil, err
	}
	return &ToolVersion{Raw: matches[0], Version: v}, nil
}

// Version asks the tool for its version
func (r *Reconciler) Version(ctx context.Context) (*ToolVersion, error) {
	out, err := r.run(ctx, "--version")
	if err != nil {
		return nil, fmt.Errorf("getting tool version: %w", err)
	}
	return ParseToolVersion(out)
}
