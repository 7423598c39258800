package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"

	"vangogh/internal/analysis"
	"vangogh/internal/dataset"
	"vangogh/internal/fileutil"
	"vangogh/internal/logging"
	"vangogh/internal/plot"
	"vangogh/internal/textutil"
)

const genreColorsFile = "q2.html"

// GenreColorsOptions tunes the per-genre color charts. A negative MinCount
// and a zero TopN fall back to the configuration.
type GenreColorsOptions struct {
	MinCount  int
	TopN      int
	Out       string
	ExportCSV bool
}

// Genres lists the genres that occur strictly more than minCount times, in
// first-appearance order. A negative minCount uses the configured threshold.
func (r *Runner) Genres(data *Data, minCount int) ([]string, error) {
	if minCount < 0 {
		minCount = r.cfg.Analysis.GenreMinCount
	}
	return dataset.ListUniqueFromFile(data.Paintings, dataset.ColumnGenre, minCount)
}

// GenreColors charts the most used colors of every qualifying genre into one
// page, one bar chart per genre.
func (r *Runner) GenreColors(ctx context.Context, data *Data, opts GenreColorsOptions) (*Result, error) {
	ctx = logging.WithQuestion(ctx, "q2")
	logger := logging.WithContext(ctx, r.logger)

	minCount := opts.MinCount
	if minCount < 0 {
		minCount = r.cfg.Analysis.GenreMinCount
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = r.cfg.Analysis.TopN
	}
	exportCSV := opts.ExportCSV || r.cfg.Analysis.ExportGenreCSV

	genres, err := r.Genres(data, minCount)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	if len(genres) == 0 {
		logging.WarnWithContext(logger, "no genre passes the threshold", "genre_threshold_empty",
			logging.Int("min_count", minCount),
			logging.String(logging.FieldImpact, "genre color page has no charts"),
			logging.String(logging.FieldErrorHint, "lower analysis.genre_min_count or pass --min-count"))
	}

	result := &Result{Question: "q2", Path: outputPath(r.cfg, opts.Out, genreColorsFile)}
	items := make([]components.Charter, 0, len(genres))
	dumpNames := make(map[string]struct{}, len(genres))
	for _, genre := range genres {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		counts := analysis.ColorCountsForGenre(data.Uses, genre)
		top := analysis.NLargest(counts, topN)
		result.Sections = append(result.Sections, Section{
			Name:    genre,
			Counts:  top,
			Summary: analysis.Summarize(counts),
		})
		items = append(items, plot.ColorBars(genre, top))
		logger.Debug("genre colors counted",
			logging.String("genre", genre),
			logging.Int("colors", len(counts)),
			logging.Float64("top_share", result.Sections[len(result.Sections)-1].Summary.TopShare))

		if exportCSV {
			path, err := r.dumpGenre(logger, data, genre, dumpNames)
			if err != nil {
				return nil, err
			}
			result.Dumps = append(result.Dumps, path)
		}
	}

	if err := plot.RenderFile(result.Path, "Most Frequently Used Colors Per Genre", items...); err != nil {
		return nil, fmt.Errorf("render genre colors: %w", err)
	}
	result.Charts = len(items)

	logger.Info("genre color charts written",
		logging.String(logging.FieldEventType, "chart_written"),
		logging.String(logging.FieldPath, result.Path),
		logging.Int("genres", len(genres)),
		logging.Int("top_n", topN),
		logging.Int("csv_dumps", len(result.Dumps)))
	return result, nil
}

// dumpGenre writes the genre's exploded rows for inspection in other tools.
// Genres whose names sanitize to a file name already used get a numeric
// suffix.
func (r *Runner) dumpGenre(logger *slog.Logger, data *Data, genre string, used map[string]struct{}) (string, error) {
	rows := dataset.FilterByColumn(data.Uses, dataset.ColumnGenre, genre)
	base := textutil.SanitizeFileName(genre)
	name := base
	for n := 2; ; n++ {
		if _, taken := used[strings.ToLower(name)]; !taken {
			break
		}
		name = fmt.Sprintf("%s-%d", base, n)
	}
	used[strings.ToLower(name)] = struct{}{}
	if name != base {
		logging.WarnWithContext(logger, "genre dump name collides", "genre_dump_renamed",
			logging.String("genre", genre),
			logging.String("file", name+".csv"),
			logging.String(logging.FieldImpact, "dump written under a suffixed name"))
	}

	path := filepath.Join(r.cfg.Paths.GenreDumpDir, name+".csv")
	err := fileutil.WriteAtomic(path, func(w io.Writer) error {
		return dataset.WriteColorUses(w, rows)
	})
	if err != nil {
		return "", fmt.Errorf("dump genre %q: %w", genre, err)
	}
	return path, nil
}
