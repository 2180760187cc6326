package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Options controls how Chrome is started
type Options struct {
	Headless    bool
	UserAgent   string
	WaitTimeout time.Duration
}

// ChromeSession is a Session backed by a single chromedp tab
type ChromeSession struct {
	ctx     context.Context
	timeout time.Duration
	cancel  func()
}

// Launch starts Chrome and opens one tab. Close must be called to stop the browser.
func Launch(ctx context.Context, opts Options) (*ChromeSession, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("ignore-certificate-errors", true),
		chromedp.WindowSize(1920, 1080),
	)
	if opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(opts.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...interface{}) {
		// Silent logging
	}))

	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		switch ev.(type) {
		case *page.EventFrameStartedNavigating:
			// Silent handling
		}
	})

	// The first Run binds the browser to tabCtx; later per-step timeouts must not own it.
	if err := chromedp.Run(tabCtx, chromedp.Navigate("about:blank")); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	timeout := opts.WaitTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ChromeSession{
		ctx:     tabCtx,
		timeout: timeout,
		cancel: func() {
			tabCancel()
			allocCancel()
		},
	}, nil
}

// Close shuts the browser down
func (s *ChromeSession) Close() {
	s.cancel()
}

// run executes actions on the tab, bounded by the wait timeout and the caller's ctx
func (s *ChromeSession) run(ctx context.Context, loc Locator, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s", ErrTimeout, loc)
	default:
		return err
	}
}

// Navigate loads url and waits for the document body
func (s *ChromeSession) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, Locator(url), chromedp.Navigate(url))
}

// Click waits for the element to become visible and clicks it
func (s *ChromeSession) Click(ctx context.Context, loc Locator) error {
	return s.run(ctx, loc, chromedp.Click(string(loc), chromedp.BySearch, chromedp.NodeVisible))
}

// OuterHTML waits for the element and returns its markup
func (s *ChromeSession) OuterHTML(ctx context.Context, loc Locator) (string, error) {
	var html string
	if err := s.run(ctx, loc, chromedp.OuterHTML(string(loc), &html, chromedp.BySearch)); err != nil {
		return "", err
	}
	return html, nil
}

// Back navigates one entry back in history
func (s *ChromeSession) Back(ctx context.Context) error {
	return s.run(ctx, "history.back", chromedp.NavigateBack())
}
