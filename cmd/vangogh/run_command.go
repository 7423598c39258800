package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"vangogh/internal/museum"
	"vangogh/internal/preflight"
	"vangogh/internal/report"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Answer every question enabled in [questions]",
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
			if err := requireReady(preflight.RunAll(runCtx, cfg)); err != nil {
				return err
			}

			var results []report.Result
			if cfg.Questions.Topics {
				err = ctx.withMuseum(runCtx, func(client *museum.Client) error {
					var runErr error
					results, runErr = runner.Run(runCtx, report.MuseumTopics{
						Client: client,
						Artist: cfg.Museum.Artist,
						Limit:  cfg.Museum.ObjectLimit,
					})
					return runErr
				})
			} else {
				results, err = runner.Run(runCtx, nil)
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{result.Question, strconv.Itoa(result.Charts), result.Path})
			}
			printTable(cmd.OutOrStdout(),
				[]string{"Question", "Charts", "Page"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft})
			return nil
		},
	}
}
