package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"vangogh/internal/analysis"
	"vangogh/internal/config"
	"vangogh/internal/dataset"
	"vangogh/internal/fileutil"
	"vangogh/internal/logging"
)

// Runner answers the analysis questions against one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Data is the loaded and processed dataset shared by every question.
type Data struct {
	Paintings []dataset.Painting
	Uses      []dataset.ColorUse
	// OverridesApplied counts year overrides that matched a painting row.
	OverridesApplied int
}

// Section is one chart's worth of counts: a genre's colors or the topics.
type Section struct {
	Name    string
	Counts  []analysis.Count
	Summary analysis.Summary
}

// Result describes what one question produced.
type Result struct {
	Question string
	Path     string
	Charts   int
	Sections []Section
	Series   []analysis.TimeSeries
	// Dumps lists per-genre CSV exports written alongside the chart.
	Dumps []string
}

// New constructs a Runner. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "report"),
	}
}

// Load reads both CSV files, applies the configured year overrides, and
// explodes the colors into long form.
func (r *Runner) Load(ctx context.Context) (*Data, error) {
	logger := logging.WithContext(ctx, r.logger)

	paintings, err := readInput(r.cfg.Paths.PaintingsCSV, dataset.LoadPaintings)
	if err != nil {
		return nil, fmt.Errorf("load paintings: %w", err)
	}
	hexRows, err := readInput(r.cfg.Paths.HexCSV, dataset.LoadHexRows)
	if err != nil {
		return nil, fmt.Errorf("load hex codes: %w", err)
	}

	overrides := make([]dataset.YearOverride, 0, len(r.cfg.Analysis.YearOverrides))
	for _, o := range r.cfg.Analysis.YearOverrides {
		overrides = append(overrides, dataset.YearOverride{Row: o.Row, Year: o.Year})
	}
	applied := dataset.ApplyYearOverrides(paintings, overrides)
	if applied < len(overrides) {
		logging.WarnWithContext(logger, "year overrides did not match every row", "year_override_unmatched",
			logging.Int("configured", len(overrides)),
			logging.Int("applied", applied),
			logging.String(logging.FieldErrorHint, "check analysis.year_overrides rows against the paintings file"))
	}

	uses, err := dataset.ProcessData(paintings, hexRows)
	if err != nil {
		return nil, fmt.Errorf("process data: %w", err)
	}

	logger.Info("dataset loaded",
		logging.String(logging.FieldEventType, "dataset_loaded"),
		logging.Int("paintings", len(paintings)),
		logging.Int("color_uses", len(uses)),
		logging.Int("year_overrides", applied))
	return &Data{Paintings: paintings, Uses: uses, OverridesApplied: applied}, nil
}

// WriteExploded writes the long-form rows to path, or to the configured
// exploded CSV when path is empty, and returns the path written.
func (r *Runner) WriteExploded(ctx context.Context, data *Data, path string) (string, error) {
	if path == "" {
		path = r.cfg.Paths.ExplodedCSV
	}
	err := fileutil.WriteAtomic(path, func(w io.Writer) error {
		return dataset.WriteColorUses(w, data.Uses)
	})
	if err != nil {
		return "", fmt.Errorf("write exploded csv: %w", err)
	}
	logging.WithContext(ctx, r.logger).Info("exploded data written",
		logging.String(logging.FieldEventType, "exploded_written"),
		logging.String(logging.FieldPath, path),
		logging.Int("rows", len(data.Uses)))
	return path, nil
}

// WriteCorrected writes the painting rows after year overrides to path.
func (r *Runner) WriteCorrected(ctx context.Context, data *Data, path string) error {
	err := fileutil.WriteAtomic(path, func(w io.Writer) error {
		return dataset.WritePaintings(w, data.Paintings)
	})
	if err != nil {
		return fmt.Errorf("write corrected paintings: %w", err)
	}
	logging.WithContext(ctx, r.logger).Info("corrected paintings written",
		logging.String(logging.FieldEventType, "corrected_written"),
		logging.String(logging.FieldPath, path),
		logging.Int("rows", len(data.Paintings)),
		logging.Int("year_overrides", data.OverridesApplied))
	return nil
}

func readInput[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := fileutil.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rows, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func outputPath(cfg *config.Config, out, fallback string) string {
	if out != "" {
		return out
	}
	return cfg.GraphPath(fallback)
}
