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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/facebook/timedate/timedatectl"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	applyNTPFlag         bool
	applyTimeFlag        string
	applyTimezoneFlag    string
	applyCheckFlag       bool
	applyJSONFlag        bool
	applyConfigFlag      string
	applyMetricsFileFlag string
)

func init() {
	RootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyNTPFlag, "ntp", false, "enable or disable clock synchronization using NTP. Default is to keep current setting")
	applyCmd.Flags().StringVar(&applyTimeFlag, "time", "", "set local time, in format '2012-10-30 18:17:16'. Default is to keep current setting")
	applyCmd.Flags().StringVar(&applyTimezoneFlag, "timezone", "", "set time zone, like Asia/Tokyo. Default is to keep current setting")
	applyCmd.Flags().BoolVarP(&applyCheckFlag, "check", "C", false, "don't change anything, only report what would be changed")
	applyCmd.Flags().BoolVar(&applyJSONFlag, "json", false, "print change report in JSON format")
	applyCmd.Flags().StringVarP(&applyConfigFlag, "config", "c", "", "path to YAML config with desired settings. Explicitly set flags take precedence")
	applyCmd.Flags().StringVar(&applyMetricsFileFlag, "metrics-file", "", "write prometheus metrics about the run into this file")
}

// prepareConfig merges config file (if any) with explicitly set flags
func prepareConfig(configPath string, changed func(name string) bool) (*timedatectl.Config, error) {
	cfg := timedatectl.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = timedatectl.ReadConfig(configPath)
		if err != nil {
			return nil, err
		}
	}
	if changed("tool") || cfg.Tool == "" {
		cfg.Tool = rootToolFlag
	}
	if changed("ntp") {
		cfg.NTP = &applyNTPFlag
	}
	if changed("time") {
		cfg.Time = &applyTimeFlag
	}
	if changed("timezone") {
		cfg.Timezone = &applyTimezoneFlag
	}
	if changed("metrics-file") {
		cfg.MetricsFile = applyMetricsFileFlag
	}
	return cfg, cfg.Validate()
}

func changedString() string {
	return color.YellowString("[CHANGED]")
}

func wouldChangeString() string {
	return color.YellowString("[ WOULD ]")
}

func unchangedString() string {
	return color.GreenString("[  OK   ]")
}

func printReport(w io.Writer, report *timedatectl.ChangeReport, check bool) {
	for _, c := range report.Changes {
		if !c.Changed {
			fmt.Fprintf(w, "%s %s: %q\n", unchangedString(), c.Name, c.NewValue)
			continue
		}
		mark := changedString()
		if check {
			mark = wouldChangeString()
		}
		fmt.Fprintf(w, "%s %s: %q -> %q (%s)\n", mark, c.Name, c.OldValue, c.NewValue, color.BlueString(c.Command))
	}
}

func printReportJSON(w io.Writer, report *timedatectl.ChangeReport) error {
	toPrint, err := json.Marshal(report)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(toPrint))
	return nil
}

// explainNotFound hints at tool version mismatch when status has no expected label
func explainNotFound(ctx context.Context, r *timedatectl.Reconciler, err error) {
	var notFound *timedatectl.FieldNotFoundError
	if !errors.As(err, &notFound) {
		return
	}
	v, verr := r.Version(ctx)
	if verr != nil {
		log.Debugf("unable to get tool version: %v", verr)
		return
	}
	if !v.LegacyLabels() {
		log.Warningf("%s prints status labels this tool doesn't understand", v.Raw)
	}
}

func applyRun(ctx context.Context, w io.Writer, runner timedatectl.Runner, cfg *timedatectl.Config, check, asJSON bool) error {
	r := timedatectl.NewReconciler(cfg.Tool, runner)
	report, err := r.Reconcile(ctx, cfg.Input().Desired(), check)
	if cfg.MetricsFile != "" {
		stats := timedatectl.NewStats()
		stats.Observe(report, check, err)
		if werr := stats.WriteTextfile(cfg.MetricsFile); werr != nil {
			log.Errorf("writing metrics to %s: %v", cfg.MetricsFile, werr)
		}
	}
	if err != nil {
		explainNotFound(ctx, r, err)
		return err
	}
	if asJSON {
		return printReportJSON(w, report)
	}
	printReport(w, report, check)
	return nil
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Bring NTP, local time and timezone settings to desired values",
	Long: `Bring NTP, local time and timezone settings to desired values.
Only settings that differ from what 'timedatectl status' reports are changed.
A setting counts as already applied when desired value is a part of the reported one,
so '--timezone Asia/Tokyo' matches 'Asia/Tokyo (JST, +0900)'.`,
	Run: func(c *cobra.Command, _ []string) {
		ConfigureVerbosity()

		cfg, err := prepareConfig(applyConfigFlag, c.Flags().Changed)
		if err != nil {
			log.Fatal(err)
		}
		log.Debugf("Config: %+v", *cfg)
		if err := applyRun(context.Background(), os.Stdout, timedatectl.ExecRunner{}, cfg, applyCheckFlag, applyJSONFlag); err != nil {
			log.Fatal(err)
		}
	},
}
