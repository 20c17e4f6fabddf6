package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/vericore/stubgen/internal/collect"
	"github.com/vericore/stubgen/internal/pathresolve"
	"github.com/vericore/stubgen/internal/scenario"
	"github.com/vericore/stubgen/internal/universe"
)

const resolveHistoryFile = ".stubgen_resolve_history"

func newResolveCmd() *cobra.Command {
	var scenarioPath string
	var fromPath string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Interactively resolve paths against a scenario's universe",
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

			current, ok := built.Universe.FindLocalByCanonicalPath(universe.CanonicalPath(fromPath))
			if !ok {
				root, rootOK := built.Registry[built.Universe.LocalCrate()+"/"]
				if !rootOK {
					return fmt.Errorf("resolve: cannot locate starting module %q", fromPath)
				}
				current = root
			}

			return runResolveRepl(cmd.OutOrStdout(), built, current)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a scenario YAML file")
	cmd.Flags().StringVar(&fromPath, "from", "", "canonical path of the module to resolve paths from (default crate root)")
	cmd.MarkFlagRequired("scenario")
	return cmd
}

func runResolveRepl(out io.Writer, built *scenario.Built, current universe.DefID) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(resolveHistoryFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(resolveHistoryFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, "stubgen resolve: enter a path, or :suggest <path>, or :quit")
	for {
		input, err := line.Prompt("resolve> ")
		if err != nil {
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == ":quit" || input == ":q" {
			return nil
		}
		if strings.HasPrefix(input, ":suggest ") {
			attempted := strings.TrimSpace(strings.TrimPrefix(input, ":suggest "))
			if best, ok := collect.Suggest(built.Universe, attempted); ok {
				fmt.Fprintf(out, "  closest known path: %s\n", best)
			} else {
				fmt.Fprintln(out, "  no known paths to suggest")
			}
			continue
		}

		path, diag := pathresolve.Resolve(built.Universe, current, input, universe.Span{})
		if diag != nil {
			fmt.Fprintf(out, "  %s [%s] %s\n", color.New(color.FgRed).Sprint("unresolved"), diag.Code, diag.Message)
			continue
		}
		fmt.Fprintf(out, "  %s\n", color.New(color.FgGreen).Sprint(path))
	}
}
