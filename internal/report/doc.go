// Package report wires the dataset, analysis, and plot packages into the
// four analysis questions and writes their HTML pages.
//
// A Runner loads both CSV files once per invocation and every question
// works from the same Data. Output locations default to the configured
// graphs directory (q1-1.html, q1-2.html, q2.html, q4.html) and can be
// overridden per call.
package report
