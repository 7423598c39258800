package analysis

import (
	"sort"

	"vangogh/internal/dataset"
)

// Count is one bar: a label, how often it occurred, and an optional hex
// color for the bar.
type Count struct {
	Label string
	Count int
	Hex   string
}

// CountValues builds a frequency table in first-appearance order. Missing
// values are dropped.
func CountValues(values []string) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, value := range values {
		if dataset.IsMissing(value) {
			continue
		}
		if i, ok := index[value]; ok {
			counts[i].Count++
			continue
		}
		index[value] = len(counts)
		counts = append(counts, Count{Label: value, Count: 1})
	}
	return counts
}

// NLargest returns the n highest counts in descending order. Ties keep
// their input order. n <= 0 returns every count sorted.
func NLargest(counts []Count, n int) []Count {
	sorted := make([]Count, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// ColorCountsForGenre counts the colors used by paintings of one genre. Each
// count carries the hex code of the color's first occurrence.
func ColorCountsForGenre(uses []dataset.ColorUse, genre string) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, use := range uses {
		if use.Genre != genre || dataset.IsMissing(use.Color) {
			continue
		}
		if i, ok := index[use.Color]; ok {
			counts[i].Count++
			continue
		}
		index[use.Color] = len(counts)
		counts = append(counts, Count{Label: use.Color, Count: 1, Hex: use.HexCode})
	}
	return counts
}

// TopicCounts converts a term -> count map into counts ordered by label, so
// ties in NLargest resolve the same way on every run.
func TopicCounts(topics map[string]int) []Count {
	counts := make([]Count, 0, len(topics))
	for label, n := range topics {
		counts = append(counts, Count{Label: label, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Label < counts[j].Label
	})
	return counts
}

// Labels returns the labels of counts in order.
func Labels(counts []Count) []string {
	labels := make([]string, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
	}
	return labels
}
