package main

import (
	"strings"

	"github.com/spf13/cobra"

	"vangogh/internal/museum"
	"vangogh/internal/report"
)

func newTopicsCommand(ctx *commandContext) *cobra.Command {
	var (
		artist   string
		fromPath string
		title    string
		topN     int
		limit    int
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Chart the most frequent subject tags of the artist's museum objects",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runner, err := ctx.newRunner()
			if err != nil {
				return err
			}
			runCtx := ctx.runContext(cmd)
			opts := report.TopicsOptions{
				Title: strings.TrimSpace(title),
				TopN:  topN,
				Out:   strings.TrimSpace(outPath),
			}

			var result *report.Result
			if from := strings.TrimSpace(fromPath); from != "" {
				result, err = runner.Topics(runCtx, report.FileTopics(from), opts)
			} else {
				who := strings.TrimSpace(artist)
				if who == "" {
					who = cfg.Museum.Artist
				}
				objectLimit := cfg.Museum.ObjectLimit
				if cmd.Flags().Changed("limit") {
					objectLimit = limit
				}
				err = ctx.withMuseum(runCtx, func(client *museum.Client) error {
					var topicErr error
					result, topicErr = runner.Topics(runCtx, report.MuseumTopics{Client: client, Artist: who, Limit: objectLimit}, opts)
					return topicErr
				})
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			section := result.Sections[0]
			printCounts(out, "Topic", section.Counts, false)
			printSummary(out, section.Summary)
			printWrote(out, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Artist to search for (defaults to museum.artist)")
	cmd.Flags().StringVar(&fromPath, "from", "", "Read term counts from a JSON or YAML file instead of querying the API")
	cmd.Flags().StringVar(&title, "title", "", "Chart title (defaults to museum.topics_title)")
	cmd.Flags().IntVar(&topN, "top", 0, "Number of topics to chart (defaults to analysis.top_n)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after fetching this many objects; 0 fetches all (defaults to museum.object_limit)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination HTML page (defaults to <graphs_dir>/q4.html)")
	return cmd
}
