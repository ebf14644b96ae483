package main

import (
	"github.com/spf13/cobra"
)

func newProvisionCommand(ctx *commandContext) *cobra.Command {
	var corpusFlag string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Fetch and unpack a corpus into the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := ctx.source(corpusFlag)
			if err != nil {
				return err
			}
			if err := src.Ensure(cmd.Context()); err != nil {
				return err
			}
			cmd.Printf("corpus %s is provisioned\n", corpusFlag)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusFlag, "corpus", "cornell", "Corpus to provision (cornell or ubuntu)")

	return cmd
}
