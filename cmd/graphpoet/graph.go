package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphpoet/internal/export"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the corpus word graph as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, logger, err := loadPoet()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return export.WriteYAML(cmd.OutOrStdout(), p.Graph())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
