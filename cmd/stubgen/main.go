// Command stubgen drives the function-stubbing facility's two phases,
// collection and generation, against a declarative scenario.Spec YAML
// file standing in for a real compiler's post-analysis item tree. Its
// command layout is a cobra root command with one subcommand per mode,
// colorized diagnostic output, and a REPL for interactive path
// resolution.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stubgen",
		Short: "Function-stubbing facility for proof harnesses",
		Long: "stubgen resolves stub_by(ORIGINAL, REPLACEMENT) attributes on proof harnesses\n" +
			"against a compilation universe and substitutes bodies at generation time.",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newCollectCmd(),
		newGenerateCmd(),
		newResolveCmd(),
		newLegacyConvertCmd(),
	)
	return cmd
}
