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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "timedate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `ntp: false
timezone: Asia/Tokyo
metrics_file: /var/lib/node_exporter/timedate.prom
`)
	c, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultTool, c.Tool)
	require.NotNil(t, c.NTP)
	require.False(t, *c.NTP)
	require.Nil(t, c.Time)
	require.Equal(t, "Asia/Tokyo", *c.Timezone)
	require.Equal(t, "/var/lib/node_exporter/timedate.prom", c.MetricsFile)
	require.NoError(t, c.Validate())

	require.Equal(t, Desired{
		FieldNTP:      BoolValue(false),
		FieldTimezone: StringValue("Asia/Tokyo"),
	}, c.Input().Desired())
}

func TestReadConfigTime(t *testing.T) {
	path := writeConfig(t, `tool: /usr/bin/timedatectl
time: "2012-10-30 18:17:16"
`)
	c, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/timedatectl", c.Tool)
	require.Equal(t, "2012-10-30 18:17:16", *c.Time)
}

func TestReadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "timzone: UTC\n")
	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig("/does/not/exist/for/sure.yaml")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	err := c.Validate()
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))

	tz := "UTC"
	c.Timezone = &tz
	require.NoError(t, c.Validate())

	c.Tool = ""
	require.ErrorContains(t, c.Validate(), "'tool' must be specified")
}
