package scraper

import (
	"context"
	"errors"
	"iter"

	"angelscout/browser"

	"go.uber.org/zap"
)

// Navigator brings a session to the fully expanded shareholder list.
// Every step logs a failed wait and carries on.
type Navigator struct {
	session       browser.Session
	log           *zap.Logger
	maxExpansions int
}

// NewNavigator creates a navigator; maxExpansions <= 0 means no cap
func NewNavigator(session browser.Session, log *zap.Logger, maxExpansions int) *Navigator {
	return &Navigator{session: session, log: log, maxExpansions: maxExpansions}
}

// Prepare opens startURL and expands the shareholder list as far as it goes
func (n *Navigator) Prepare(ctx context.Context, startURL string) {
	if err := n.session.Navigate(ctx, startURL); err != nil {
		n.log.Warn("failed to open start page", zap.String("url", startURL), zap.Error(err))
	}

	n.AcceptCookies(ctx)
	n.OpenOwnersPage(ctx)
	n.ShowAllInvestors(ctx)
	expanded := n.ExpandAllPages(ctx)

	n.log.Info("shareholder list ready", zap.Int("expansions", expanded))
}

// AcceptCookies dismisses the consent banner; a missing banner is fine
func (n *Navigator) AcceptCookies(ctx context.Context) {
	if err := n.session.Click(ctx, cookieButton); err != nil {
		n.log.Warn("timeout when accepting the cookie", zap.Error(err))
	}
}

// OpenOwnersPage switches to the "Roller og Eiere" tab
func (n *Navigator) OpenOwnersPage(ctx context.Context) {
	if err := n.session.Click(ctx, ownersLink); err != nil {
		n.log.Warn("timeout when looking for Roller og Eiere", zap.Error(err))
	}
}

// ShowAllInvestors opens the full shareholder list
func (n *Navigator) ShowAllInvestors(ctx context.Context) {
	if err := n.session.Click(ctx, showAllLink); err != nil {
		n.log.Warn("timeout when clicking the Vis alle aksjonærer button", zap.Error(err))
	}
}

// ExpandAllPages clicks "Vis flere" until nothing more loads and returns the number of clicks
func (n *Navigator) ExpandAllPages(ctx context.Context) int {
	count := 0
	for i, err := range n.Expansions(ctx) {
		if err != nil {
			n.log.Warn("failed to load more shareholders", zap.Int("page", i), zap.Error(err))
			break
		}
		count++
	}
	return count
}

// Expansions yields one entry per successful "Vis flere" click.
// It ends quietly when the session reports no more content or the wait times out;
// any other failure is yielded once as the final element.
func (n *Navigator) Expansions(ctx context.Context) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for i := 0; n.maxExpansions <= 0 || i < n.maxExpansions; i++ {
			err := n.session.Click(ctx, showMoreLink)
			switch {
			case errors.Is(err, browser.ErrNoMoreContent), errors.Is(err, browser.ErrTimeout):
				return
			case err != nil:
				yield(i, err)
				return
			}
			if !yield(i, nil) {
				return
			}
		}
	}
}
