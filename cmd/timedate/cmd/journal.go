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

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/journal"
	log "github.com/sirupsen/logrus"
)

var levelToPriority = map[log.Level]journal.Priority{
	log.PanicLevel: journal.PriEmerg,
	log.FatalLevel: journal.PriCrit,
	log.ErrorLevel: journal.PriErr,
	log.WarnLevel:  journal.PriWarning,
	log.InfoLevel:  journal.PriInfo,
	log.DebugLevel: journal.PriDebug,
	log.TraceLevel: journal.PriDebug,
}

// journalHook forwards logrus entries to systemd-journald
type journalHook struct {
	send func(message string, priority journal.Priority, vars map[string]string) error
}

func (h *journalHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *journalHook) Fire(e *log.Entry) error {
	vars := map[string]string{"SYSLOG_IDENTIFIER": "timedate"}
	for k, v := range e.Data {
		vars[journalField(k)] = fmt.Sprint(v)
	}
	return h.send(e.Message, levelToPriority[e.Level], vars)
}

// journalField turns logrus field name into a valid journal field name:
// uppercase letters, digits and underscores, starting with a letter
func journalField(k string) string {
	f := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, k)
	f = strings.TrimLeft(f, "_")
	if f == "" {
		return "FIELD"
	}
	if f[0] >= '0' && f[0] <= '9' {
		return "F_" + f
	}
	return f
}

func addJournalHook(l *log.Logger) error {
	if !journal.Enabled() {
		return errors.New("journal socket is not available")
	}
	l.AddHook(&journalHook{send: journal.Send})
	return nil
}
