package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Headless          bool
	UserAgent         string
	NavigationTimeout time.Duration
}

// Chrome drives a single tab of a local Chrome through chromedp. The tab is
// reused for every call until Close.
type Chrome struct {
	opts Options

	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

var _ Browser = (*Chrome)(nil)

func NewChrome(opts Options) (*Chrome, error) {
	c := &Chrome{opts: opts}
	if err := c.initBrowser(); err != nil {
		return nil, fmt.Errorf("failed to init browser: %w", err)
	}
	return c, nil
}

func (c *Chrome) initBrowser() error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-backgrounding-occluded-windows", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
	)
	if c.opts.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.opts.UserAgent))
	}

	c.allocCtx, c.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	c.browserCtx, c.browserCancel = chromedp.NewContext(c.allocCtx)

	// 预热浏览器
	if err := chromedp.Run(c.browserCtx, chromedp.Navigate("about:blank")); err != nil {
		c.closeBrowser()
		return fmt.Errorf("failed to initialize browser: %w", err)
	}

	log.Debug().Bool("headless", c.opts.Headless).Msg("Browser initialized successfully")
	return nil
}

func (c *Chrome) closeBrowser() {
	if c.browserCancel != nil {
		c.browserCancel()
	}
	if c.allocCancel != nil {
		c.allocCancel()
	}
}

func (c *Chrome) Close() error {
	c.closeBrowser()
	return nil
}

// run executes actions on the shared tab. The task stops when ctx is done
// or timeout elapses, without closing the tab.
func (c *Chrome) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	var (
		taskCtx context.Context
		cancel  context.CancelFunc
	)
	if timeout > 0 {
		taskCtx, cancel = context.WithTimeout(c.browserCtx, timeout)
	} else {
		taskCtx, cancel = context.WithCancel(c.browserCtx)
	}
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(taskCtx, actions...)
}

func (c *Chrome) SetCookies(ctx context.Context, url string, cookies []Cookie) error {
	params := make([]*network.CookieParam, 0, len(cookies))
	for _, cookie := range cookies {
		params = append(params, &network.CookieParam{
			Name:   cookie.Name,
			Value:  cookie.Value,
			URL:    url,
			Path:   "/",
			Secure: true,
		})
	}

	err := c.run(ctx, 0, chromedp.ActionFunc(func(ctx context.Context) error {
		return network.SetCookies(params).Do(ctx)
	}))
	if err != nil {
		return fmt.Errorf("failed to set cookies: %w", err)
	}
	return nil
}

func (c *Chrome) Navigate(ctx context.Context, url string) error {
	if err := c.run(ctx, c.opts.NavigationTimeout, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (c *Chrome) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	if err := c.run(ctx, timeout, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("failed to wait for %s: %w", selector, err)
	}
	return nil
}

func (c *Chrome) Click(ctx context.Context, selector string) error {
	if err := c.run(ctx, c.opts.NavigationTimeout, chromedp.Click(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

func (c *Chrome) Evaluate(ctx context.Context, script string) ([]byte, error) {
	var raw []byte
	if err := c.run(ctx, c.opts.NavigationTimeout, chromedp.Evaluate(script, &raw)); err != nil {
		return nil, fmt.Errorf("failed to evaluate script: %w", err)
	}
	return raw, nil
}

func (c *Chrome) Content(ctx context.Context) (string, error) {
	var html string
	if err := c.run(ctx, c.opts.NavigationTimeout, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("failed to get page content: %w", err)
	}
	return html, nil
}
