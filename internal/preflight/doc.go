// Package preflight provides readiness checks for the input files, output
// directories, and external API that vangogh depends on.
//
// These checks run in two contexts:
//   - `vangogh run` calls RunAll before loading data and stops when any
//     check fails, naming every problem at once instead of the first.
//   - `vangogh status` prints every check with its detail.
//
// Each check is gated by its config toggle -- disabled questions are skipped.
package preflight
