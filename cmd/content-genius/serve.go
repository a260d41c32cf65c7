package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joestump/content-genius/internal/api"
	"github.com/joestump/content-genius/internal/build"
	"github.com/joestump/content-genius/internal/handler"
	"github.com/joestump/content-genius/internal/llm"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if a.cfg.LLM.APIKey == "" {
				a.log.Warn("no provider API key configured; generation requests will be rejected upstream")
			}

			client := llm.NewClient(a.cfg, a.log)
			router := handler.NewRouter(handler.Deps{
				API: api.Deps{
					Templates:    a.accessor(),
					Generator:    client,
					Catalog:      client,
					StrictErrors: a.cfg.LLM.StrictErrors,
					Log:          a.log,
				},
				AllowedOrigins: a.cfg.CORS.AllowedOrigins,
				Log:            a.log,
			})

			srv := &http.Server{
				Addr:              a.cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("listening",
					zap.String("addr", a.cfg.HTTP.Addr),
					zap.String("version", build.Version),
					zap.String("commit", build.Commit))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			a.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
