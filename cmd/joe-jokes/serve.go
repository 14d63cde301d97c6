package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joestump/joe-jokes/internal/build"
	"github.com/joestump/joe-jokes/internal/config"
	"github.com/joestump/joe-jokes/internal/handler"
	"github.com/joestump/joe-jokes/internal/logging"
	"github.com/joestump/joe-jokes/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)

			seed, err := store.LoadSeed(cfg.Seed.File)
			if err != nil {
				return err
			}
			jokeStore := store.NewJokeStore(seed)

			router := handler.NewRouter(handler.Deps{
				Logger:    log,
				JokeStore: jokeStore,
				MasterKey: cfg.MasterKey,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info().
					Str("addr", cfg.HTTP.Addr).
					Int("jokes", len(seed)).
					Str("version", build.Version).
					Msg("listening")
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

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown")
				return err
			}
			log.Info().Msg("stopped")
			return nil
		},
	}
}
