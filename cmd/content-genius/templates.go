package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/content-genius/internal/store"
)

func newTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates [id]",
		Short: "List templates, or show one by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			acc := a.accessor()
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if len(args) == 0 {
				return enc.Encode(acc.List(cmd.Context()))
			}
			tpl, ok := acc.Get(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("template %s not found", args[0])
			}
			return enc.Encode(tpl)
		},
	}
	cmd.AddCommand(newTemplatesSeedCmd())
	return cmd
}

func newTemplatesSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in templates into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.database == nil {
				return errors.New("CG_DB_DRIVER and CG_DB_DSN are required to seed")
			}
			ts := store.NewTemplateStore(a.database)
			for _, tpl := range store.Builtins() {
				if err := ts.Upsert(cmd.Context(), tpl); err != nil {
					return fmt.Errorf("seed %s: %w", tpl.ID, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", tpl.ID)
			}
			return nil
		},
	}
}
