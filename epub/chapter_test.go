package epub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChapters(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func TestListChapterFilesNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	writeChapters(t, dir, map[string]string{
		"chapter_10.md": "x",
		"chapter_2.md":  "x",
		"chapter_1.md":  "x",
		"notes.txt":     "x",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.md"), 0755))

	files, err := ListChapterFiles(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"chapter_1.md", "chapter_2.md", "chapter_10.md"}, names)
}

func TestListChapterFilesMissingFolder(t *testing.T) {
	_, err := ListChapterFiles(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestChapterTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"download/Chương 1_ Mở đầu_.md", "Chương: 1: Mở đầu:"},
		{"download/chapter 12_ The End.md", "chapter: 12: The End"},
		{"download/Phần 3.md", "Phần 3"},
		{"download/,Lời mở đầu,.md", "Lời mở đầu"},
		{"download/Chapter.md", "Chapter"},
		{"download/.md", unknownChapterTitle},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ChapterTitle(tt.path))
		})
	}
}

func TestParagraphs(t *testing.T) {
	got := Paragraphs("  first line \r\n\r\n\tsecond\n   \nthird")
	assert.Equal(t, []string{"first line", "second", "third"}, got)
	assert.Empty(t, Paragraphs("\n \n"))
}
