package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"vangogh/internal/analysis"
	"vangogh/internal/fileutil"
	"vangogh/internal/logging"
	"vangogh/internal/museum"
	"vangogh/internal/plot"
)

const topicsFile = "q4.html"

// TopicSource yields subject term counts and the number of objects they were
// counted over.
type TopicSource interface {
	Topics(ctx context.Context) (map[string]int, int, error)
}

// MuseumTopics counts topics by querying the collection API.
type MuseumTopics struct {
	Client *museum.Client
	Artist string
	// Limit caps the number of objects fetched. Zero fetches all.
	Limit int
}

// Topics implements TopicSource.
func (m MuseumTopics) Topics(ctx context.Context) (map[string]int, int, error) {
	if m.Client == nil {
		return nil, 0, errors.New("museum client required")
	}
	return m.Client.QueryTopics(ctx, m.Artist, m.Limit)
}

// FileTopics reads a mapping of each term to its count, the shape
// QueryTopics returns, from a JSON file or, for .yaml and .yml names, a YAML
// file. The object total is unknown and reported as zero.
type FileTopics string

// Topics implements TopicSource.
func (f FileTopics) Topics(context.Context) (map[string]int, int, error) {
	path := string(f)
	file, err := fileutil.OpenInput(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	var topics map[string]int
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(&topics)
	default:
		err = json.NewDecoder(file).Decode(&topics)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("decode topics %s: %w", path, err)
	}
	return topics, 0, nil
}

// TopicsOptions controls the topic chart. Zero values fall back to the
// configuration.
type TopicsOptions struct {
	Title string
	TopN  int
	Out   string
}

// Topics charts the most frequent subject terms from source.
func (r *Runner) Topics(ctx context.Context, source TopicSource, opts TopicsOptions) (*Result, error) {
	ctx = logging.WithQuestion(ctx, "q4")
	logger := logging.WithContext(ctx, r.logger)

	topics, total, err := source.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect topics: %w", err)
	}
	return r.chartTopics(ctx, logger, topics, total, opts)
}

// ChartTopics charts an in-memory term -> count map.
func (r *Runner) ChartTopics(ctx context.Context, topics map[string]int, opts TopicsOptions) (*Result, error) {
	ctx = logging.WithQuestion(ctx, "q4")
	return r.chartTopics(ctx, logging.WithContext(ctx, r.logger), topics, 0, opts)
}

func (r *Runner) chartTopics(ctx context.Context, logger *slog.Logger, topics map[string]int, total int, opts TopicsOptions) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	title := opts.Title
	if title == "" {
		title = r.cfg.Museum.TopicsTitle
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = r.cfg.Analysis.TopN
	}

	counts := analysis.TopicCounts(topics)
	top := analysis.NLargest(counts, topN)
	result := &Result{
		Question: "q4",
		Path:     outputPath(r.cfg, opts.Out, topicsFile),
		Sections: []Section{{Name: title, Counts: top, Summary: analysis.Summarize(counts)}},
	}
	if err := plot.RenderFile(result.Path, title, plot.TopicBars(title, top)); err != nil {
		return nil, fmt.Errorf("render topics: %w", err)
	}
	result.Charts = 1

	logger.Info("topic chart written",
		logging.String(logging.FieldEventType, "chart_written"),
		logging.String(logging.FieldPath, result.Path),
		logging.Int("topics", len(counts)),
		logging.Int("objects", total))
	return result, nil
}
