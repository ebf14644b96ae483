package main

import (
	"github.com/spf13/cobra"

	"convopairs/pkg/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print an annotated sample configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print(config.Sample())
			return nil
		},
	}
	return cmd
}
