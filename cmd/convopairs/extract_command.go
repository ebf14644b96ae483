package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/spf13/cobra"

	"convopairs/pkg/catalog"
	"convopairs/pkg/corpus"
	"convopairs/pkg/export"
	"convopairs/pkg/split"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var (
		corpusFlag   string
		character    string
		characterID  string
		year         string
		all          bool
		testFraction float64
		seed         uint64
		outDir       string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract pairs and write train/test .enc/.dec files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if testFraction < 0 {
				testFraction = cfg.Extract.TestFraction
			}
			if testFraction > 1 {
				return fmt.Errorf("--test-fraction must be in [0,1], got %v", testFraction)
			}
			if seed == 0 {
				seed = cfg.Extract.Seed
			}

			switch corpusFlag {
			case "ubuntu":
				if character != "" || characterID != "" || year != "" || all {
					return fmt.Errorf("the ubuntu corpus has no selectors; drop --character/--character-id/--year/--all")
				}
				return extractUbuntu(cmd, ctx, testFraction, seed, outDir)
			case "cornell":
				return extractCornell(cmd, ctx, character, characterID, year, all, testFraction, seed, outDir)
			default:
				return fmt.Errorf("unknown corpus %q (expected cornell or ubuntu)", corpusFlag)
			}
		},
	}

	cmd.Flags().StringVar(&corpusFlag, "corpus", "cornell", "Corpus to extract from (cornell or ubuntu)")
	cmd.Flags().StringVar(&character, "character", "", "Select responses spoken by this character name")
	cmd.Flags().StringVar(&characterID, "character-id", "", "Select responses spoken by this character ID")
	cmd.Flags().StringVar(&year, "year", "", "Select lines from movies matching this year (decade granularity)")
	cmd.Flags().BoolVar(&all, "all", false, "Extract every adjacent pair")
	cmd.Flags().Float64Var(&testFraction, "test-fraction", -1, "Fraction of pairs sampled into the test split (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the split sampler (0: from config, or non-deterministic)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: under the corpus directory, named by selection key)")

	return cmd
}

func extractCornell(cmd *cobra.Command, ctx *commandContext, character, characterID, year string, all bool, testFraction float64, seed uint64, outDir string) error {
	selectors := 0
	for _, set := range []bool{character != "", characterID != "", year != "", all} {
		if set {
			selectors++
		}
	}
	if selectors != 1 {
		return fmt.Errorf("pick exactly one of --character, --character-id, --year, --all")
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

	var (
		pairs []corpus.DialoguePair
		kind  string
		key   string
	)
	switch {
	case year != "":
		kind, key = catalog.SelectorYear, year
		pairs = ix.ByYear(year)
	case all:
		kind, key = catalog.SelectorAll, "all"
		pairs, err = ix.All()
		if err != nil {
			return err
		}
	default:
		id := characterID
		if id == "" {
			id = ix.CharacterID(character)
		}
		kind, key = catalog.SelectorCharacter, id
		if id == "" {
			cmd.Printf("character %q not found; nothing to extract\n", character)
			return recordRun(ctx, catalog.Run{
				Corpus:        "cornell",
				SelectorKind:  kind,
				SelectorValue: character,
			})
		}
		pairs, err = ix.ByCharacter(id)
		if err != nil {
			return err
		}
	}

	if outDir == "" {
		outDir = filepath.Join(c.LocalPath(), key)
	}
	return writeAndRecord(cmd, ctx, "cornell", kind, key, pairs, testFraction, seed, outDir)
}

func extractUbuntu(cmd *cobra.Command, ctx *commandContext, testFraction float64, seed uint64, outDir string) error {
	u, err := ctx.ubuntu()
	if err != nil {
		return err
	}
	if err := u.Ensure(cmd.Context()); err != nil {
		return err
	}
	pairs, err := u.Pairs()
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = u.Dir
	}
	return writeAndRecord(cmd, ctx, "ubuntu", catalog.SelectorAll, "all", pairs, testFraction, seed, outDir)
}

// writeAndRecord splits the pairs, writes the paired output files, and
// records the run in the catalog.
func writeAndRecord(cmd *cobra.Command, ctx *commandContext, corpusName, kind, key string, pairs []corpus.DialoguePair, testFraction float64, seed uint64, outDir string) error {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	train, test := split.Pairs(pairs, testFraction, rng)

	if err := export.Split(outDir, train, test); err != nil {
		return err
	}

	if err := recordRun(ctx, catalog.Run{
		Corpus:        corpusName,
		SelectorKind:  kind,
		SelectorValue: key,
		PairCount:     len(pairs),
		TrainCount:    len(train),
		TestCount:     len(test),
		OutputDir:     outDir,
	}); err != nil {
		return err
	}

	cmd.Printf("%d pairs (%d train, %d test) written to %s\n", len(pairs), len(train), len(test), outDir)
	return nil
}

func recordRun(ctx *commandContext, run catalog.Run) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	db, err := catalog.Open(cfg.CatalogFile())
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = catalog.RecordRun(db, run)
	return err
}
