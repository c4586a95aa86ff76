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
	"fmt"
	"io"
	"os"

	"github.com/facebook/timedate/timedatectl"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(versionCmd)
}

func versionRun(ctx context.Context, w io.Writer, runner timedatectl.Runner, tool string) error {
	r := timedatectl.NewReconciler(tool, runner)
	v, err := r.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", tool, v.Raw)
	if v.LegacyLabels() {
		fmt.Fprintf(w, "%s status output is supported\n", color.GreenString("[ OK ]"))
		return nil
	}
	fmt.Fprintf(w, "%s status output lacks %q labels, 'status' and 'apply' will fail\n",
		color.YellowString("[WARN]"), r.Registry.DisplayNames())
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print timedatectl version and whether its status output is supported",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		if err := versionRun(context.Background(), os.Stdout, timedatectl.ExecRunner{}, rootToolFlag); err != nil {
			log.Fatal(err)
		}
	},
}
