package epub

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

const unknownChapterTitle = "Unknown chapter"

// ListChapterFiles returns the .md files of folder in natural order, so
// "Chương 2" comes before "Chương 10".
func ListChapterFiles(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.SliceStable(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})

	files := make([]string, 0, len(names))
	for _, name := range names {
		files = append(files, filepath.Join(folder, name))
	}
	return files, nil
}

// ChapterTitle derives the display title from a chapter file name.
// Underscores become colons and a leading "Chapter"/"Chương" word gets a
// colon after it.
func ChapterTitle(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return unknownChapterTitle
	}

	title := strings.ReplaceAll(stem, "_", ":")
	if idx := strings.Index(title, " "); idx >= 0 {
		prefix, rest := title[:idx], title[idx:]
		if strings.EqualFold(prefix, "chapter") || strings.EqualFold(prefix, "chương") {
			title = prefix + ":" + rest
		}
	}

	return strings.TrimSpace(strings.Trim(title, ","))
}

// Paragraphs splits chapter text into trimmed, non blank lines.
func Paragraphs(content string) []string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}
	return paragraphs
}
