package main

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"convopairs/pkg/catalog"
)

func newCommonCommand(ctx *commandContext) *cobra.Command {
	var (
		top          int
		extract      bool
		testFraction float64
		seed         uint64
	)

	cmd := &cobra.Command{
		Use:   "common",
		Short: "Rank the characters with the most lines, optionally extracting each",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if testFraction < 0 {
				testFraction = cfg.Extract.TestFraction
			}
			if seed == 0 {
				seed = cfg.Extract.Seed
			}

			c, err := ctx.cornell()
			if err != nil {
				return err
			}
			if err := c.Ensure(cmd.Context()); err != nil {
				return err
			}
			ix, err := c.Load()
			if err != nil {
				return err
			}

			ranking := ix.MostCommonCharacters(top)
			rows := make([][]string, 0, len(ranking))
			for i, entry := range ranking {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					entry.ID,
					strconv.Itoa(entry.Count),
				})
			}
			cmd.Println(renderTable(
				[]string{"#", "Character", "Lines"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight},
			))

			if !extract {
				return nil
			}
			for _, entry := range ranking {
				pairs, err := ix.ByCharacter(entry.ID)
				if err != nil {
					return err
				}
				outDir := filepath.Join(c.LocalPath(), entry.ID)
				if err := writeAndRecord(cmd, ctx, "cornell", catalog.SelectorCharacter, entry.ID, pairs, testFraction, seed, outDir); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "How many characters to rank")
	cmd.Flags().BoolVar(&extract, "extract", false, "Also extract pairs for each ranked character")
	cmd.Flags().Float64Var(&testFraction, "test-fraction", -1, "Fraction of pairs sampled into the test split (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the split sampler (0: from config, or non-deterministic)")

	return cmd
}
