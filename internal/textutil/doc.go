// Package textutil provides small string helpers shared by the chart and
// export code: title casing for chart headings and filename sanitizing for
// per-genre exports.
package textutil
