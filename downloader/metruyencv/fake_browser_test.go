package metruyencv

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"metruyencv-downloader/browser"
)

type fakePage struct {
	navigateErr error
	html        string
	// selectors present on the page
	selectors map[string]bool
	// text of #chapter-content, nil means the query returns null
	content  *string
	evalErr  error
	clickErr error

	// raw, when set, is returned by Evaluate as is
	raw []byte
}

type fakeBrowser struct {
	pages map[string]*fakePage

	current  string
	visited  []string
	cookies  map[string][]browser.Cookie
	clicked  []string
	waited   []string
	closed   bool
	navCalls int
}

var _ browser.Browser = (*fakeBrowser)(nil)

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		pages:   make(map[string]*fakePage),
		cookies: make(map[string][]browser.Cookie),
	}
}

func (f *fakeBrowser) page() *fakePage {
	if p, ok := f.pages[f.current]; ok {
		return p
	}
	return &fakePage{}
}

func (f *fakeBrowser) SetCookies(_ context.Context, url string, cookies []browser.Cookie) error {
	f.cookies[url] = cookies
	return nil
}

func (f *fakeBrowser) Navigate(_ context.Context, url string) error {
	f.navCalls++
	f.visited = append(f.visited, url)
	p, ok := f.pages[url]
	if !ok {
		return errors.New("net::ERR_NAME_NOT_RESOLVED")
	}
	if p.navigateErr != nil {
		return p.navigateErr
	}
	f.current = url
	return nil
}

func (f *fakeBrowser) WaitForSelector(_ context.Context, selector string, _ time.Duration) error {
	f.waited = append(f.waited, selector)
	if f.page().selectors[selector] {
		return nil
	}
	return context.DeadlineExceeded
}

func (f *fakeBrowser) Click(_ context.Context, selector string) error {
	f.clicked = append(f.clicked, selector)
	p := f.page()
	if p.clickErr != nil {
		return p.clickErr
	}
	if !p.selectors[selector] {
		return errors.New("no node")
	}
	return nil
}

func (f *fakeBrowser) Evaluate(_ context.Context, _ string) ([]byte, error) {
	p := f.page()
	if p.evalErr != nil {
		return nil, p.evalErr
	}
	if p.raw != nil {
		return p.raw, nil
	}
	if p.content == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*p.content)
}

func (f *fakeBrowser) Content(_ context.Context) (string, error) {
	return f.page().html, nil
}

func (f *fakeBrowser) Close() error {
	f.closed = true
	return nil
}

func chapterPage(text string) *fakePage {
	return &fakePage{
		selectors: map[string]bool{contentSelector: true},
		content:   &text,
	}
}
