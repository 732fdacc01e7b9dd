package metruyencv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"metruyencv-downloader/model"
	"metruyencv-downloader/utils"
)

var contentScript = fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	return el ? el.innerText : %q;
})()`, contentSelector, ContentNotFound)

var errNoContent = errors.New("content not found")

// Failure describes a chapter that was attempted and not downloaded.
type Failure struct {
	Index int
	Name  string
	Link  string
	Err   error
}

type Summary struct {
	Total      int
	Downloaded int
	Skipped    int
	Failed     int
	Failures   []Failure
}

// DownloadAll walks the stored chapter list in order and downloads every
// chapter not yet marked as downloaded. The list is saved after each
// successful chapter. Per chapter browser failures are logged and reported
// in the summary; only load, write and save failures abort the run.
func (d *Downloader) DownloadAll(ctx context.Context, st model.ChapterStore) (*Summary, error) {
	chapters, err := st.Load()
	if err != nil {
		return nil, err
	}

	summary := &Summary{Total: len(chapters)}
	for i, chapter := range chapters {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if chapter.IsDownload {
			d.logger.Info().Msgf("> Skip %d/%d: %s", i+1, summary.Total, chapter.Name)
			summary.Skipped++
			continue
		}

		d.logger.Info().Msgf("> Crawl %d/%d: %s", i+1, summary.Total, chapter.Name)

		if err := d.visit(ctx, chapter); err != nil {
			d.logger.Error().Err(err).Str("link", chapter.Link).Msg("Failed to open chapter")
			summary.fail(i, chapter, err)
			continue
		}

		text, err := d.extract(ctx)
		if err != nil {
			d.logger.Warn().Err(err).Str("chapter", chapter.Name).Msg("Content not found")
			summary.fail(i, chapter, err)
			if err := d.sleep(ctx); err != nil {
				return summary, err
			}
			continue
		}

		filename, err := d.writeChapter(chapter, text)
		if err != nil {
			return summary, err
		}
		d.logger.Info().Msgf("Saved %s", filename)

		chapter.IsDownload = true
		if err := st.Save(chapters); err != nil {
			return summary, err
		}
		summary.Downloaded++

		if err := d.sleep(ctx); err != nil {
			return summary, err
		}
	}

	d.logger.Info().
		Int("downloaded", summary.Downloaded).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msgf("Finished downloading %d chapters", summary.Total)
	return summary, nil
}

func (d *Downloader) visit(ctx context.Context, chapter *model.Chapter) error {
	if err := d.browser.SetCookies(ctx, chapter.Link, d.creds.Cookies()); err != nil {
		return err
	}
	return d.browser.Navigate(ctx, chapter.Link)
}

// extract waits for the chapter container and returns its normalized text.
func (d *Downloader) extract(ctx context.Context) (string, error) {
	if err := d.browser.WaitForSelector(ctx, contentSelector, d.opts.WaitTimeout); err != nil {
		return "", fmt.Errorf("%w: %w", errNoContent, err)
	}

	raw, err := d.browser.Evaluate(ctx, contentScript)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errNoContent, err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return "", errNoContent
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%w: %w", errNoContent, err)
	}
	if value == "" || value == ContentNotFound {
		return "", errNoContent
	}

	encoded, err := encodeContent(value)
	if err != nil {
		return "", err
	}
	return Normalize(encoded), nil
}

// encodeContent quotes value as a JSON string, leaving non ASCII and HTML
// characters as they are. Chrome escapes them as \uXXXX, which Normalize
// would turn into plain text.
func encodeContent(value string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("failed to encode chapter content: %w", err)
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	return lineSeparators.Replace(out), nil
}

var lineSeparators = strings.NewReplacer(`\u2028`, "\u2028", `\u2029`, "\u2029")

func (d *Downloader) writeChapter(chapter *model.Chapter, text string) (string, error) {
	if err := utils.EnsureDir(d.opts.OutputDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := chapterFilePath(d.opts.OutputDir, chapter.Name)
	if err := os.WriteFile(filename, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write chapter file: %w", err)
	}
	return filename, nil
}

func (d *Downloader) sleep(ctx context.Context) error {
	if d.opts.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(d.opts.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Summary) fail(index int, chapter *model.Chapter, err error) {
	s.Failed++
	s.Failures = append(s.Failures, Failure{
		Index: index,
		Name:  chapter.Name,
		Link:  chapter.Link,
		Err:   err,
	})
}
