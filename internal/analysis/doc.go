// Package analysis aggregates the exploded painting rows into the frequency
// tables and yearly series the charts draw.
//
// Ordering is deterministic throughout: frequency tables keep first-appearance
// order and NLargest is a stable sort, so equal counts resolve the same way on
// every run.
package analysis
