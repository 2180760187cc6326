package main

import (
	"context"
	"net/http"
	"os"

	"angelscout/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			log, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer log.Sync()

			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				log.Error("failed to start", zap.Error(err))
				return err
			}
			defer a.Close()

			generate := func(ctx context.Context, startURL string) (string, error) {
				return a.Generate(ctx, startURL), nil
			}

			port := os.Getenv("PORT")
			if port == "" {
				port = cfg.Server.Port // fallback for local development
			}

			srv := &http.Server{
				Addr:    ":" + port,
				Handler: server.New(generate, cfg.StartURL, log).Handler(),
			}

			go func() {
				<-cmd.Context().Done()
				_ = srv.Shutdown(context.Background())
			}()

			log.Info("server is running", zap.String("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
}
