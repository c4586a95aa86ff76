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
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config represents desired clock settings we expect to read from file
type Config struct {
	Tool        string  `yaml:"tool"`         // binary to drive, timedatectl by default
	NTP         *bool   `yaml:"ntp"`          // enable or disable NTP sync
	Time        *string `yaml:"time"`         // local time, like 2012-10-30 18:17:16
	Timezone    *string `yaml:"timezone"`     // IANA zone name, like Asia/Tokyo
	MetricsFile string  `yaml:"metrics_file"` // where to write prometheus textfile, disabled if empty
}

// DefaultConfig returns Config with defaults set
func DefaultConfig() *Config {
	return &Config{Tool: DefaultTool}
}

// Validate makes sure config is usable for reconciliation
func (c *Config) Validate() error {
	if c.Tool == "" {
		return fmt.Errorf("bad config: 'tool' must be specified")
	}
	if c.NTP == nil && c.Time == nil && c.Timezone == nil {
		return &ValidationError{Msg: "one of ntp, time or timezone must be specified"}
	}
	return nil
}

// Input returns desired settings from the config
func (c *Config) Input() Input {
	return Input{
		NTP:      c.NTP,
		Time:     c.Time,
		Timezone: c.Timezone,
	}
}

// ReadConfig reads config and unmarshals it from yaml into Config
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}
