package metruyencv

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"metruyencv-downloader/model"
)

// GetChapterList opens storyURL, expands the table of contents when the
// page offers it and returns every chapter in document order.
func (d *Downloader) GetChapterList(ctx context.Context, storyURL string) ([]*model.Chapter, error) {
	d.logger.Info().Str("url", storyURL).Msg("Getting chapter list")

	if err := d.browser.SetCookies(ctx, storyURL, d.creds.Cookies()); err != nil {
		return nil, fmt.Errorf("failed to get chapter list: %w", err)
	}
	if err := d.browser.Navigate(ctx, storyURL); err != nil {
		return nil, fmt.Errorf("failed to get chapter list: %w", err)
	}

	d.openToc(ctx)

	html, err := d.browser.Content(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chapter list: %w", err)
	}

	chapters, err := ParseChapterList(html, storyURL)
	if err != nil {
		return nil, err
	}
	d.logger.Info().Int("count", len(chapters)).Msg("Chapter list retrieved")
	return chapters, nil
}

// openToc clicks the "all chapters" button. The list may already be fully
// rendered, so nothing here is fatal.
func (d *Downloader) openToc(ctx context.Context) {
	if err := d.browser.WaitForSelector(ctx, openTocSelector, d.opts.WaitTimeout); err != nil {
		d.logger.Debug().Err(err).Msg("Chapter list button not found")
		return
	}
	if err := d.browser.Click(ctx, openTocSelector); err != nil {
		d.logger.Warn().Err(err).Msg("Failed to open chapter list")
		return
	}
	if err := d.browser.WaitForSelector(ctx, tocContainerSelector, d.opts.WaitTimeout); err != nil {
		d.logger.Warn().Err(err).Msg("Chapter list did not expand")
	}
}

// ParseChapterList extracts chapter entries from the rendered story page.
// Relative links are resolved against baseURL.
func ParseChapterList(html string, baseURL string) ([]*model.Chapter, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	chapters := make([]*model.Chapter, 0)
	doc.Find(chapterItemSelector).Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}

		name := strings.TrimSpace(s.Find(chapterNameSelector).First().Text())
		if name == "" {
			name = UnknownChapterName
		}

		chapters = append(chapters, model.NewChapter(name, resolveLink(base, href)))
	})

	return chapters, nil
}

func resolveLink(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil || ref.IsAbs() {
		return href
	}
	return base.ResolveReference(ref).String()
}
