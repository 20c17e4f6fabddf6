package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vericore/stubgen/internal/legacyfile"
)

func newLegacyConvertCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "legacy-convert",
		Short: "Convert a legacy ORIGINAL/REPLACEMENT mapping file to sorted canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			mapping, diags := legacyfile.Parse(in)
			for _, d := range diags {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", d.Code, d.Message)
			}
			if len(diags) > 0 {
				return fmt.Errorf("legacy-convert: %d malformed line(s)", len(diags))
			}

			var out *os.File
			if outPath == "" || outPath == "-" {
				out = os.Stdout
			} else {
				out, err = os.Create(outPath)
				if err != nil {
					return err
				}
				defer out.Close()
			}
			return legacyfile.Write(out, mapping)
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "legacy mapping file to read")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "file to write (default stdout)")
	cmd.MarkFlagRequired("in")
	return cmd
}
