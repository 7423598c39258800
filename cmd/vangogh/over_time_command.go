package main

import (
	"strings"

	"github.com/spf13/cobra"

	"vangogh/internal/dataset"
	"vangogh/internal/report"
)

func newOverTimeCommand(ctx *commandContext) *cobra.Command {
	var (
		column  string
		limit   int
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "over-time",
		Short: "Chart how often each value of a column occurs per year",
		Long: "Chart how often each value of a column occurs per year.\n\n" +
			"Color, Hex Name, and Hex Code are counted per color use; every other\n" +
			"column is counted per painting.",
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
			result, err := runner.OverTime(runCtx, data, report.OverTimeOptions{
				Column: column,
				Limit:  limit,
				Out:    strings.TrimSpace(outPath),
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSeries(out, result.Series)
			printWrote(out, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", dataset.ColumnColor, "Column to trace over time (Color, Style, Genre, ...)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of distinct values to chart (defaults to analysis.over_time_limit)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination HTML page (defaults to <graphs_dir>/q1-1.html for Color, q1-2.html for Style)")
	return cmd
}
