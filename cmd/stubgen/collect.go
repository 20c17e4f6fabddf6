package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vericore/stubgen/internal/collect"
	"github.com/vericore/stubgen/internal/scenario"
)

func newCollectCmd() *cobra.Command {
	var scenarioPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Run the collection phase against a scenario file and print the outer mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(scenarioPath)
			if err != nil {
				return err
			}
			defer f.Close()

			built, err := scenario.Load(f)
			if err != nil {
				return err
			}

			runID := uuid.New()
			res := collect.Collect(built.Universe, built.Attrs)

			if jsonOut {
				return printCollectJSON(runID, res)
			}
			printCollectHuman(cmd, runID, res)
			if res.HasFatal() {
				return fmt.Errorf("collection failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a scenario YAML file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")
	cmd.MarkFlagRequired("scenario")
	return cmd
}

func printCollectHuman(cmd *cobra.Command, runID uuid.UUID, res collect.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d harness(es)\n", runID, len(res.HarnessDefs))

	for _, harness := range res.Mapping.SortedHarnesses() {
		set := res.Mapping[harness]
		fmt.Fprintf(out, "%s (%d mapping(s))\n", harness, len(set))
		for _, original := range set.SortedOriginals() {
			fmt.Fprintf(out, "  %s -> %s\n", original, set[original])
		}
	}

	for _, d := range res.Diagnostics {
		label := color.New(color.FgYellow).Sprint("warning")
		if d.IsFatal() {
			label = color.New(color.FgRed, color.Bold).Sprint("error")
		}
		fmt.Fprintf(out, "%s[%s] %s\n", label, d.Code, d.Message)
	}
}

func printCollectJSON(runID uuid.UUID, res collect.Result) error {
	type envelope struct {
		RunID       string                       `json:"run_id"`
		HarnessDefs int                          `json:"harness_count"`
		Mapping     map[string]map[string]string `json:"mapping"`
	}
	m := make(map[string]map[string]string, len(res.Mapping))
	for harness, set := range res.Mapping {
		inner := make(map[string]string, len(set))
		for k, v := range set {
			inner[string(k)] = string(v)
		}
		m[string(harness)] = inner
	}
	env := envelope{RunID: runID.String(), HarnessDefs: len(res.HarnessDefs), Mapping: m}
	enc := jsonEncoder(os.Stdout)
	return enc(env)
}
