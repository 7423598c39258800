package preflight

import (
	"context"

	"vangogh/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Checks are only run when the corresponding feature is enabled.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Inputs and chart output (always checked)
	results = append(results, CheckInputFile("Paintings CSV", cfg.Paths.PaintingsCSV))
	results = append(results, CheckInputFile("Hex CSV", cfg.Paths.HexCSV))
	results = append(results, CheckDirectoryAccess("Graphs directory", cfg.Paths.GraphsDir))

	if cfg.Analysis.ExportGenreCSV {
		results = append(results, CheckDirectoryAccess("Genre dump directory", cfg.Paths.GenreDumpDir))
	}

	if cfg.Questions.Topics {
		results = append(results, CheckMuseum(ctx, cfg.Museum.BaseURL))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
