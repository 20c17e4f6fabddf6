package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vericore/stubgen/internal/collect"
	"github.com/vericore/stubgen/internal/scenario"
	"github.com/vericore/stubgen/internal/stubmap"
	"github.com/vericore/stubgen/internal/transform"
	"github.com/vericore/stubgen/internal/universe"
)

func newGenerateCmd() *cobra.Command {
	var scenarioPath string
	var harnessPath string
	var debug bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run collection then generation for one harness, printing the final body of every definition it stubs",
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

			res := collect.Collect(built.Universe, built.Attrs)
			if res.HasFatal() {
				for _, d := range res.Diagnostics {
					if d.IsFatal() {
						fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", d.Code, d.Message)
					}
				}
				return fmt.Errorf("collection failed, aborting before generation")
			}

			harness, set, err := selectHarness(res, harnessPath)
			if err != nil {
				return err
			}

			store := stubmap.New()
			store.Install(set)

			driver := transform.NewDriver()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "generating for harness %s\n", harness)

			for _, original := range set.SortedOriginals() {
				def, ok := built.Universe.FindLocalByCanonicalPath(original)
				if !ok {
					continue
				}
				body, diags := driver.Generate(built.Universe, store, def)
				for _, d := range diags {
					label := color.New(color.FgYellow).Sprint("warning")
					fmt.Fprintf(out, "%s[%s] %s\n", label, d.Code, d.Message)
				}
				fmt.Fprintf(out, "%s => %s\n", original, body)
				if debug {
					dumpDebug(out, string(original), body)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a scenario YAML file")
	cmd.Flags().StringVar(&harnessPath, "harness", "", "canonical path of the harness to generate for (required if the crate has more than one)")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump the full IR body with go-spew")
	cmd.MarkFlagRequired("scenario")
	return cmd
}

// selectHarness resolves which harness's StubSet to install for a single
// generation run. An explicit --harness wins; with exactly one harness in
// the mapping it is used by default; otherwise the caller must choose.
func selectHarness(res collect.Result, requested string) (universe.CanonicalPath, collect.StubSet, error) {
	if requested != "" {
		set, ok := res.Mapping[universe.CanonicalPath(requested)]
		if !ok {
			return "", nil, fmt.Errorf("no such harness %q in this crate", requested)
		}
		return universe.CanonicalPath(requested), set, nil
	}

	if len(res.Mapping) == 1 {
		for harness, set := range res.Mapping {
			return harness, set, nil
		}
	}

	harnesses := res.Mapping.SortedHarnesses()
	return "", nil, fmt.Errorf("this crate has %d harnesses, pick one with --harness: %v", len(harnesses), harnesses)
}
