package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"vangogh/internal/dataset"
)

// TimeSeries is the yearly occurrence count of one value. Years covers every
// year present in the filtered data so all series share one x axis; years
// in which the value does not occur count zero.
type TimeSeries struct {
	Column string
	Value  string
	Years  []int
	Counts []int
}

// Total returns the number of occurrences across all years.
func (s TimeSeries) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// ValuesOverTime builds one series for each of the first limit distinct
// values of column, in first-appearance order. Rows missing a year or a
// value are dropped; a year that is not exactly four digits is an error.
func ValuesOverTime[R dataset.Record](rows []R, column string, limit int) ([]TimeSeries, error) {
	type observation struct {
		year  int
		value string
	}

	if len(rows) > 0 {
		if _, ok := rows[0].Value(column); !ok {
			return nil, fmt.Errorf("%w %q", dataset.ErrUnknownColumn, column)
		}
	}

	observations := make([]observation, 0, len(rows))
	yearSet := make(map[int]struct{})
	var values []string
	seen := make(map[string]struct{})
	for _, row := range rows {
		rawYear, _ := row.Value(dataset.ColumnYear)
		value, _ := row.Value(column)
		if dataset.IsMissing(rawYear) || dataset.IsMissing(value) {
			continue
		}
		year, err := parseYear(rawYear)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.SourceRow(), err)
		}
		observations = append(observations, observation{year: year, value: value})
		yearSet[year] = struct{}{}
		if _, ok := seen[value]; !ok {
			seen[value] = struct{}{}
			values = append(values, value)
		}
	}

	if limit > 0 && limit < len(values) {
		values = values[:limit]
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)
	position := make(map[int]int, len(years))
	for i, year := range years {
		position[year] = i
	}

	series := make([]TimeSeries, len(values))
	byValue := make(map[string]int, len(values))
	for i, value := range values {
		byValue[value] = i
		series[i] = TimeSeries{Column: column, Value: value, Years: years, Counts: make([]int, len(years))}
	}
	for _, obs := range observations {
		i, ok := byValue[obs.value]
		if !ok {
			continue
		}
		series[i].Counts[position[obs.year]]++
	}
	return series, nil
}

func parseYear(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) != 4 || strings.Trim(trimmed, "0123456789") != "" {
		return 0, fmt.Errorf("parse year %q: want YYYY", raw)
	}
	return strconv.Atoi(trimmed)
}
