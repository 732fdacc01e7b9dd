package metruyencv

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"metruyencv-downloader/utils"
)

var newlineRun = regexp.MustCompile(`\n+`)

// Normalize cleans the raw value returned by the content query. The raw
// value is JSON encoded, so it arrives wrapped in one quote on each side
// with escaped newlines.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, `\n`, "\n")
	text = strings.ReplaceAll(text, `\`, "")
	text = newlineRun.ReplaceAllString(text, "\n")
	if text == "" {
		return text
	}

	_, first := utf8.DecodeRuneInString(text)
	text = text[first:]
	if text == "" {
		return text
	}
	_, last := utf8.DecodeLastRuneInString(text)
	return text[:len(text)-last]
}

func SanitizeFilename(name string) string {
	return utils.CleanFileName(name)
}

// ChapterFileStem is the output path of a chapter without its extension.
func ChapterFileStem(dir, name string) string {
	return filepath.Join(dir, SanitizeFilename(name))
}

func chapterFilePath(dir, name string) string {
	return ChapterFileStem(dir, name) + ".md"
}
