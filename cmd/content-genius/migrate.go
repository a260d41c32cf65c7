package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joestump/content-genius/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the templates table",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.database == nil {
				return errors.New("CG_DB_DRIVER and CG_DB_DSN are required to migrate")
			}
			if err := db.Migrate(a.database, a.cfg.DB.Driver); err != nil {
				return err
			}

			a.log.Info("migrations complete")
			return nil
		},
	}
}
