package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the spread of a frequency table.
type Summary struct {
	Distinct int
	Total    int
	Mean     float64
	StdDev   float64
	Max      int
	// TopShare is the fraction of all occurrences held by the largest count.
	TopShare float64
}

// Summarize computes descriptive statistics over the counts. An empty table
// yields the zero Summary.
func Summarize(counts []Count) Summary {
	if len(counts) == 0 {
		return Summary{}
	}
	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
	}

	total := floats.Sum(values)
	maxValue := floats.Max(values)
	summary := Summary{
		Distinct: len(counts),
		Total:    int(total),
		Max:      int(maxValue),
	}
	if len(values) > 1 {
		summary.Mean, summary.StdDev = stat.MeanStdDev(values, nil)
	} else {
		summary.Mean = values[0]
	}
	if total > 0 {
		summary.TopShare = maxValue / total
	}
	return summary
}
