package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"convopairs/pkg/catalog"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded extraction runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			db, err := catalog.Open(cfg.CatalogFile())
			if err != nil {
				return err
			}
			defer db.Close()

			runs, err := catalog.ListRuns(db)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				cmd.Println("no runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				selector := r.SelectorKind
				if r.SelectorValue != "" && r.SelectorValue != r.SelectorKind {
					selector += ":" + r.SelectorValue
				}
				rows = append(rows, []string{
					r.CreatedAt.Local().Format(time.DateTime),
					r.Corpus,
					selector,
					strconv.Itoa(r.PairCount),
					strconv.Itoa(r.TrainCount),
					strconv.Itoa(r.TestCount),
					r.OutputDir,
				})
			}
			cmd.Println(renderTable(
				[]string{"When", "Corpus", "Selector", "Pairs", "Train", "Test", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
	return cmd
}
