package scraper

import (
	"context"
	"time"

	"angelscout/browser"
	"angelscout/cache"
	"angelscout/models"
	"angelscout/utils"

	"go.uber.org/zap"
)

// Options tunes a Pipeline
type Options struct {
	MaxExpansions int
	Cache         cache.Store // nil disables memoization
	CacheTTL      time.Duration
}

// Pipeline runs navigation, extraction and investigation against one session, in order
type Pipeline struct {
	session      browser.Session
	log          *zap.Logger
	opts         Options
	navigator    *Navigator
	investigator *Investigator
}

// NewPipeline wires the scraping steps around session
func NewPipeline(session browser.Session, log *zap.Logger, opts Options) *Pipeline {
	return &Pipeline{
		session:      session,
		log:          log,
		opts:         opts,
		navigator:    NewNavigator(session, log, opts.MaxExpansions),
		investigator: NewInvestigator(session),
	}
}

// Run collects findings for every corporate shareholder of the company at startURL.
// Investors whose lookup fails or finds nothing are left out.
func (p *Pipeline) Run(ctx context.Context, startURL string) []models.Finding {
	p.navigator.Prepare(ctx, startURL)

	investors := ExtractInvestors(ctx, p.session, p.log, startURL)
	p.log.Info("extracted investors", zap.Int("count", len(investors)))

	findings := []models.Finding{}
	for _, investor := range investors {
		if ctx.Err() != nil {
			p.log.Warn("run cancelled", zap.Error(ctx.Err()))
			break
		}

		log := p.log.With(zap.String("investor", investor.Name), zap.String("url", investor.ProfileLink))

		key := utils.CacheKey("investigation", investor.ProfileLink)
		result, err := cache.Memoize(ctx, p.opts.Cache, key, p.opts.CacheTTL, func() (models.InvestigationResult, error) {
			return p.investigator.Investigate(ctx, investor.ProfileLink)
		})
		if err != nil {
			log.Warn("failed to investigate", zap.Error(err))
			continue
		}

		if result.Empty() {
			log.Debug("nothing notable")
			continue
		}

		findings = append(findings, models.Finding{Investor: investor, Result: result})
	}

	return findings
}
