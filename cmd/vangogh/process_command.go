package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var correctedPath string

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Join paintings with hex codes and write the exploded CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := ctx.newRunner()
			if err != nil {
				return err
			}
			runCtx := ctx.runContext(cmd)
			data, err := runner.Load(runCtx)
			if err != nil {
				return err
			}
			path, err := runner.WriteExploded(runCtx, data, strings.TrimSpace(outPath))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d color uses from %d paintings to %s\n",
				len(data.Uses), len(data.Paintings), path)
			if corrected := strings.TrimSpace(correctedPath); corrected != "" {
				if err := runner.WriteCorrected(runCtx, data, corrected); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d paintings with %d year override(s) to %s\n",
					len(data.Paintings), data.OverridesApplied, corrected)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination CSV (defaults to paths.exploded_csv)")
	cmd.Flags().StringVar(&correctedPath, "corrected", "", "Also write the paintings with year overrides applied to this CSV")
	return cmd
}
