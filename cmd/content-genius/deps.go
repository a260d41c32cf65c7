package main

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/joestump/content-genius/internal/config"
	"github.com/joestump/content-genius/internal/db"
	"github.com/joestump/content-genius/internal/logger"
	"github.com/joestump/content-genius/internal/store"
)

// app is the wiring shared by every subcommand.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	database *sqlx.DB // nil when no store is configured
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}
	if cfg.DB.Driver != "" {
		a.database, err = db.New(cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// accessor returns the template accessor, backed by the store when one is
// configured.
func (a *app) accessor() *store.Accessor {
	if a.database == nil {
		a.log.Info("no template store configured, serving built-in templates")
		return store.NewAccessor(nil, a.log)
	}
	return store.NewAccessor(store.NewTemplateStore(a.database), a.log)
}

func (a *app) Close() {
	if a.database != nil {
		_ = a.database.Close()
	}
	_ = a.log.Sync()
}
