package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"angelscout/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "angelscout",
		Short:        "List potential angel investors among a company's shareholders on proff.no",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
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

			document := a.Generate(cmd.Context(), cfg.StartURL)
			if err := a.WriteReport(document); err != nil {
				log.Error("failed to write report", zap.Error(err))
				return err
			}

			log.Info("report written", zap.String("file", cfg.OutputFile))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding the built-in settings")
	root.AddCommand(newServeCmd(&configPath))

	return root
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
