// Package browser provides browser automation functionality
package browser

import (
	"context"
	"errors"
)

var (
	// ErrTimeout is returned when an element did not show up within the wait timeout
	ErrTimeout = errors.New("element not found within timeout")
	// ErrNoMoreContent signals that a paginating control has nothing left to load
	ErrNoMoreContent = errors.New("no more content")
)

// Locator is an XPath expression identifying one element on the current page
type Locator string

// Session is the slice of a browser tab the scraper depends on.
// Every lookup waits up to the session's timeout before failing with ErrTimeout.
type Session interface {
	// Navigate loads url in the tab
	Navigate(ctx context.Context, url string) error

	// Click waits for the element to become visible and clicks it
	Click(ctx context.Context, loc Locator) error

	// OuterHTML waits for the element and returns its outer HTML
	OuterHTML(ctx context.Context, loc Locator) (string, error)

	// Back goes one entry back in the tab's history
	Back(ctx context.Context) error
}
