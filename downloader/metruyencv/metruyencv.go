// Package metruyencv fetches chapter lists and chapter text from
// metruyencv.com through an authenticated browser session.
package metruyencv

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"metruyencv-downloader/browser"
	"metruyencv-downloader/credential"
)

const (
	chapterItemSelector  = `a[data-x-bind^="ChapterItem"]`
	chapterNameSelector  = `div[data-x-text="chapter.name"]`
	openTocSelector      = `button[data-x-bind^='ChapterOpenToc']`
	tocContainerSelector = `div.flex-auto.overflow-y-auto`
	contentSelector      = `#chapter-content`

	UnknownChapterName = "Unknown name"
	ContentNotFound    = "Content not found"
)

type Options struct {
	OutputDir   string
	Delay       time.Duration
	WaitTimeout time.Duration
}

type Downloader struct {
	browser browser.Browser
	creds   *credential.Credentials
	opts    Options
	logger  zerolog.Logger
}

func New(b browser.Browser, creds *credential.Credentials, opts Options) *Downloader {
	if opts.OutputDir == "" {
		opts.OutputDir = "download"
	}
	return &Downloader{
		browser: b,
		creds:   creds,
		opts:    opts,
		logger:  log.Logger,
	}
}

func (d *Downloader) SetLogger(logger zerolog.Logger) {
	d.logger = logger
}
