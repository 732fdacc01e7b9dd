// Package browser hides the automated browser behind the handful of
// operations the downloader needs.
package browser

import (
	"context"
	"time"
)

type Cookie struct {
	Name  string
	Value string
}

type Browser interface {
	// SetCookies installs cookies scoped to url.
	SetCookies(ctx context.Context, url string, cookies []Cookie) error
	// Navigate loads url and returns once the page fired its load event.
	Navigate(ctx context.Context, url string) error
	// WaitForSelector blocks until a node matching selector is present.
	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error
	Click(ctx context.Context, selector string) error
	// Evaluate runs script in the page and returns the JSON encoding of its
	// result value.
	Evaluate(ctx context.Context, script string) ([]byte, error)
	// Content returns the rendered markup of the current document.
	Content(ctx context.Context) (string, error)
	Close() error
}
