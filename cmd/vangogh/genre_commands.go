package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vangogh/internal/analysis"
	"vangogh/internal/dataset"
	"vangogh/internal/report"
	"vangogh/internal/textutil"
)

func newGenresCommand(ctx *commandContext) *cobra.Command {
	var minCount int

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List genres that appear more often than the threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := ctx.newRunner()
			if err != nil {
				return err
			}
			data, err := runner.Load(ctx.runContext(cmd))
			if err != nil {
				return err
			}
			threshold := -1
			if cmd.Flags().Changed("min-count") {
				threshold = minCount
			}
			genres, err := runner.Genres(data, threshold)
			if err != nil {
				return err
			}

			values := make([]string, 0, len(data.Paintings))
			for _, p := range data.Paintings {
				values = append(values, p.Genre)
			}
			totals := make(map[string]int)
			for _, c := range analysis.CountValues(values) {
				totals[c.Label] = c.Count
			}

			out := cmd.OutOrStdout()
			if len(genres) == 0 {
				fmt.Fprintln(out, "No genre passes the threshold")
				return nil
			}
			rows := make([][]string, 0, len(genres))
			for _, genre := range genres {
				rows = append(rows, []string{genre, strconv.Itoa(totals[genre])})
			}
			printTable(out, []string{"Genre", "Paintings"}, rows, []columnAlignment{alignLeft, alignRight})
			return nil
		},
	}

	cmd.Flags().IntVar(&minCount, "min-count", 0, "Keep genres appearing strictly more than this many times (defaults to analysis.genre_min_count)")
	return cmd
}

func newGenreColorsCommand(ctx *commandContext) *cobra.Command {
	var (
		minCount  int
		topN      int
		outPath   string
		exportCSV bool
	)

	cmd := &cobra.Command{
		Use:   "genre-colors",
		Short: "Chart the most used colors of each genre",
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
			threshold := -1
			if cmd.Flags().Changed("min-count") {
				threshold = minCount
			}
			result, err := runner.GenreColors(runCtx, data, report.GenreColorsOptions{
				MinCount:  threshold,
				TopN:      topN,
				Out:       strings.TrimSpace(outPath),
				ExportCSV: exportCSV,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, section := range result.Sections {
				fmt.Fprintln(out, textutil.Title(section.Name))
				printCounts(out, dataset.ColumnColor, section.Counts, true)
				printSummary(out, section.Summary)
			}
			printWrote(out, result)
			return nil
		},
	}

	cmd.Flags().IntVar(&minCount, "min-count", 0, "Keep genres appearing strictly more than this many times (defaults to analysis.genre_min_count)")
	cmd.Flags().IntVar(&topN, "top", 0, "Colors per genre (defaults to analysis.top_n)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination HTML page (defaults to <graphs_dir>/q2.html)")
	cmd.Flags().BoolVar(&exportCSV, "export-csv", false, "Also write each genre's rows to paths.genre_dump_dir")
	return cmd
}
