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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/facebook/timedate/timedatectl"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var statusJSONFlag bool

func init() {
	RootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSONFlag, "json", false, "print status in JSON format")
}

func statusRun(ctx context.Context, w io.Writer, runner timedatectl.Runner, tool string, asJSON bool) error {
	r := timedatectl.NewReconciler(tool, runner)
	state, err := r.Status(ctx)
	if err != nil {
		explainNotFound(ctx, r, err)
		return err
	}
	if asJSON {
		toPrint, err := json.Marshal(state)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(toPrint))
		return nil
	}

	rows := [][]string{}
	for _, spec := range r.Registry.Specs() {
		rows = append(rows, []string{spec.Key.String(), spec.DisplayName, state[spec.DisplayName]})
	}
	table := tablewriter.NewWriter(w)
	table.Header("field", "name", "value")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print current NTP, local time and timezone settings",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		if err := statusRun(context.Background(), os.Stdout, timedatectl.ExecRunner{}, rootToolFlag, statusJSONFlag); err != nil {
			log.Fatal(err)
		}
	},
}
