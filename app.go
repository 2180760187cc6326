package main

import (
	"context"

	"angelscout/browser"
	"angelscout/cache"
	"angelscout/config"
	"angelscout/report"
	"angelscout/scraper"

	"go.uber.org/zap"
)

// app owns the browser and cache for the lifetime of the process
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	session  *browser.ChromeSession
	store    cache.Store
	closeFns []func()
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	session, err := browser.Launch(ctx, browser.Options{
		Headless:    cfg.Browser.Headless,
		UserAgent:   cfg.Browser.UserAgent,
		WaitTimeout: cfg.Browser.WaitTimeout,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, session: session, closeFns: []func(){session.Close}}

	if cfg.Cache.RedisAddr != "" {
		redisStore := cache.NewRedisStore(cfg.Cache.RedisAddr)
		a.store = redisStore
		a.closeFns = append(a.closeFns, func() { _ = redisStore.Close() })
		log.Info("caching investigations", zap.String("redis", cfg.Cache.RedisAddr), zap.Duration("ttl", cfg.Cache.TTL))
	}

	return a, nil
}

// Generate runs the pipeline for startURL and renders the report
func (a *app) Generate(ctx context.Context, startURL string) string {
	findings := scraper.NewPipeline(a.session, a.log, scraper.Options{
		MaxExpansions: a.cfg.MaxExpansions,
		Cache:         a.store,
		CacheTTL:      a.cfg.Cache.TTL,
	}).Run(ctx, startURL)

	a.log.Info("investigation finished", zap.String("url", startURL), zap.Int("findings", len(findings)))

	return report.Build(findings)
}

// WriteReport writes document to the configured output file
func (a *app) WriteReport(document string) error {
	return report.WriteFile(a.cfg.OutputFile, document)
}

// Close stops the browser and drops the cache connection
func (a *app) Close() {
	for i := len(a.closeFns) - 1; i >= 0; i-- {
		a.closeFns[i]()
	}
}
