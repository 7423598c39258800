package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"vangogh/internal/dataset"
	"vangogh/internal/logging"
)

// Run loads the dataset, writes the exploded CSV, and answers every question
// enabled in the configuration in order: colors over time, styles over
// time, genre colors, topics. topics may be nil when the topic question is
// disabled.
func (r *Runner) Run(ctx context.Context, topics TopicSource) ([]Result, error) {
	logger := logging.WithContext(ctx, r.logger)
	questions := r.cfg.Questions
	started := time.Now()

	data, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := r.WriteExploded(ctx, data, ""); err != nil {
		return nil, err
	}

	var results []Result
	if questions.ColorsOverTime {
		result, err := r.OverTime(ctx, data, OverTimeOptions{Column: dataset.ColumnColor})
		if err != nil {
			return results, questionFailed(logger, "colors over time", err)
		}
		results = append(results, *result)
	}
	if questions.StylesOverTime {
		result, err := r.OverTime(ctx, data, OverTimeOptions{Column: dataset.ColumnStyle})
		if err != nil {
			return results, questionFailed(logger, "styles over time", err)
		}
		results = append(results, *result)
	}
	if questions.GenreColors {
		result, err := r.GenreColors(ctx, data, GenreColorsOptions{MinCount: -1})
		if err != nil {
			return results, questionFailed(logger, "genre colors", err)
		}
		results = append(results, *result)
	}
	if questions.Topics {
		if topics == nil {
			return results, errors.New("topics question enabled without a topic source")
		}
		result, err := r.Topics(ctx, topics, TopicsOptions{})
		if err != nil {
			return results, questionFailed(logger, "topics", err)
		}
		results = append(results, *result)
	}

	logger.Info("run complete",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("questions", len(results)),
		logging.Duration("elapsed", time.Since(started)))
	return results, nil
}

func questionFailed(logger *slog.Logger, question string, err error) error {
	logging.ErrorWithContext(logger, "question failed", "question_failed",
		logging.String("name", question),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "rerun the matching subcommand with --log-level debug"))
	return fmt.Errorf("%s: %w", question, err)
}
