package main

import (
	"fmt"
	"io"
	"strconv"

	"vangogh/internal/analysis"
	"vangogh/internal/report"
)

func printCounts(out io.Writer, label string, counts []analysis.Count, withHex bool) {
	headers := []string{label, "Count"}
	aligns := []columnAlignment{alignLeft, alignRight}
	if withHex {
		headers = append(headers, "Hex")
		aligns = append(aligns, alignLeft)
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		row := []string{c.Label, strconv.Itoa(c.Count)}
		if withHex {
			row = append(row, c.Hex)
		}
		rows = append(rows, row)
	}
	printTable(out, headers, rows, aligns)
}

func printSummary(out io.Writer, summary analysis.Summary) {
	if summary.Distinct == 0 {
		return
	}
	fmt.Fprintf(out, "%d distinct, %d total, mean %.1f, stddev %.1f, top share %.0f%%\n",
		summary.Distinct, summary.Total, summary.Mean, summary.StdDev, summary.TopShare*100)
}

func printSeries(out io.Writer, series []analysis.TimeSeries) {
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		first, last := "", ""
		if len(s.Years) > 0 {
			first = strconv.Itoa(s.Years[0])
			last = strconv.Itoa(s.Years[len(s.Years)-1])
		}
		rows = append(rows, []string{s.Value, strconv.Itoa(s.Total()), first, last})
	}
	printTable(out,
		[]string{"Value", "Total", "From", "To"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight})
}

func printWrote(out io.Writer, result *report.Result) {
	fmt.Fprintf(out, "Wrote %d chart(s) to %s\n", result.Charts, result.Path)
	for _, dump := range result.Dumps {
		fmt.Fprintf(out, "Wrote %s\n", dump)
	}
}
