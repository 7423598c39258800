package plot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"vangogh/internal/analysis"
	"vangogh/internal/fileutil"
	"vangogh/internal/textutil"
)

const (
	chartWidth       = "1000px"
	barHeight        = "600px"
	lineHeight       = "750px"
	titleFontSize    = 16
	labelRotate      = 30
	lineWidth        = 2
	defaultBarColor  = "#1f77b4"
	countSeriesLabel = "Count"
)

// ColorBars draws the most used colors of one genre, each bar filled with
// the color's hex code.
func ColorBars(genre string, counts []analysis.Count) *charts.Bar {
	title := "Most Frequently Used Colors For: " + textutil.Title(genre)
	return barChart(title, "Color", counts)
}

// TopicBars draws topic frequencies under the given title.
func TopicBars(title string, counts []analysis.Count) *charts.Bar {
	return barChart(title, "Topic", counts)
}

// TimeSeriesLine draws the yearly count of one value.
func TimeSeriesLine(series analysis.TimeSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: lineHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:      "Use of " + series.Value + " Over Time",
			TitleStyle: &opts.TextStyle{FontSize: titleFontSize},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: countSeriesLabel}),
	)

	years := make([]string, len(series.Years))
	for i, year := range series.Years {
		years[i] = strconv.Itoa(year)
	}
	data := make([]opts.LineData, len(series.Counts))
	for i, n := range series.Counts {
		data[i] = opts.LineData{Value: n}
	}
	line.SetXAxis(years).AddSeries(series.Value, data,
		charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
	)
	return line
}

// barChart applies the formatting every bar chart shares: a tooltip with
// the category and its count, a 16pt title, rotated category labels, and no
// vertical grid lines.
func barChart(title, category string, counts []analysis.Count) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: barHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:      title,
			TitleStyle: &opts.TextStyle{FontSize: titleFontSize},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}<br/>Count: {c}",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      category,
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
			AxisLabel: &opts.AxisLabel{Rotate: labelRotate},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: countSeriesLabel}),
	)

	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		color := c.Hex
		if color == "" {
			color = defaultBarColor
		}
		data[i] = opts.BarData{
			Name:      c.Label,
			Value:     c.Count,
			ItemStyle: &opts.ItemStyle{Color: color},
		}
	}
	bar.SetXAxis(analysis.Labels(counts)).AddSeries(countSeriesLabel, data)
	return bar
}

// Render writes the charts stacked vertically into one HTML page.
func Render(w io.Writer, pageTitle string, items ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = pageTitle
	page.AddCharts(items...)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderFile renders the page to path, creating parent directories and
// replacing any previous file only once rendering succeeded.
func RenderFile(path, pageTitle string, items ...components.Charter) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		return Render(w, pageTitle, items...)
	})
}
