package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/joestump/content-genius/internal/llm"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the selectable models",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(llm.NewClient(a.cfg, a.log).ListModels(cmd.Context()))
		},
	}
}
