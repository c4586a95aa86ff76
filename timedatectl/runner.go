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

//go:generate mockgen -source runner.go -destination runner_mock.go -package timedatectl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultTool is the name of the binary we drive
const DefaultTool = "timedatectl"

// Runner runs external command and returns its stdout.
// Non-zero exit must be reported as *ExternalCommandError.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExternalCommandError is returned when external command could not be run or exited with non-zero code
type ExternalCommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExternalCommandError) Error() string {
	msg := fmt.Sprintf("running %q: exit code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}

// CommandLine renders command the way it is shown in reports
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// ExecRunner runs commands on the local host
type ExecRunner struct{}

// Run implements Runner
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("running %v", cmd.Args)
	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	cmdErr := &ExternalCommandError{
		Command:  CommandLine(name, args...),
		ExitCode: -1,
		Stderr:   strings.TrimSpace(stderr.String()),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr.ExitCode = exitErr.ExitCode()
	}
	return stdout.String(), cmdErr
}
