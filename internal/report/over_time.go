package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"

	"vangogh/internal/analysis"
	"vangogh/internal/dataset"
	"vangogh/internal/logging"
	"vangogh/internal/plot"
	"vangogh/internal/textutil"
)

// OverTimeOptions selects the column to trace and where to write the page.
type OverTimeOptions struct {
	Column string
	Limit  int
	Out    string
}

// OverTime charts the yearly occurrences of the first distinct values of a
// column, one line chart per value. Color and Hex Code are read from the
// exploded rows; every other column from the painting rows.
func (r *Runner) OverTime(ctx context.Context, data *Data, opts OverTimeOptions) (*Result, error) {
	column := strings.TrimSpace(opts.Column)
	if column == "" {
		return nil, errors.New("over time: column required")
	}
	ctx = logging.WithQuestion(ctx, "q1")
	logger := logging.WithContext(ctx, r.logger)

	limit := opts.Limit
	if limit <= 0 {
		limit = r.cfg.Analysis.OverTimeLimit
	}

	var (
		series []analysis.TimeSeries
		err    error
	)
	if usesExplodedRows(column) {
		series, err = analysis.ValuesOverTime(data.Uses, column, limit)
	} else {
		series, err = analysis.ValuesOverTime(data.Paintings, column, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("values over time for %s: %w", column, err)
	}

	items := make([]components.Charter, 0, len(series))
	for _, s := range series {
		items = append(items, plot.TimeSeriesLine(s))
	}

	result := &Result{
		Question: "q1",
		Path:     outputPath(r.cfg, opts.Out, OverTimeFile(column)),
		Series:   series,
	}
	pageTitle := textutil.Title(column) + " Over Time"
	if err := plot.RenderFile(result.Path, pageTitle, items...); err != nil {
		return nil, fmt.Errorf("render %s over time: %w", column, err)
	}
	result.Charts = len(items)

	logger.Info("time series charts written",
		logging.String(logging.FieldEventType, "chart_written"),
		logging.String(logging.FieldPath, result.Path),
		logging.String("column", column),
		logging.Int("series", len(series)))
	return result, nil
}

// OverTimeFile returns the default page name for column: q1-1.html for
// colors, q1-2.html for styles, and a name derived from the column otherwise.
func OverTimeFile(column string) string {
	switch column {
	case dataset.ColumnColor:
		return "q1-1.html"
	case dataset.ColumnStyle:
		return "q1-2.html"
	default:
		name := strings.ReplaceAll(textutil.SanitizeFileName(column), " ", "-")
		return "over-time-" + strings.ToLower(name) + ".html"
	}
}

func usesExplodedRows(column string) bool {
	switch column {
	case dataset.ColumnColor, dataset.ColumnHexCode, dataset.ColumnHexName:
		return true
	default:
		return false
	}
}
