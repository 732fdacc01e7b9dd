package metruyencv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"artifact wrapped", "XHello.\n\n\nWorld.X", "Hello.\nWorld."},
		{"escaped newlines", `"Hello.\n\nWorld."`, "Hello.\nWorld."},
		{"escaped quotes", `"She said \"hi\""`, `She said "hi"`},
		{"mixed escaped and real newlines", "\"a\\n\n\\nb\"", "a\nb"},
		{"multibyte wrapper", "«Xin chào»", "Xin chào"},
		{"empty", "", ""},
		{"single character", `"`, ""},
		{"only quotes", `""`, ""},
		{"backslashes only", `\\\`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeJSONValue(t *testing.T) {
	raw, err := json.Marshal("Chương 1\n\n\nĐoạn một.\nĐoạn hai.")
	require.NoError(t, err)

	assert.Equal(t, "Chương 1\nĐoạn một.\nĐoạn hai.", Normalize(string(raw)))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Chương 1: Mở đầu!", "Chương 1_ Mở đầu_"},
		{"Chapter 10", "Chapter 10"},
		{"a/b\\c", "a_b_c"},
		{"tab\there", "tab_here"},
		{"第1章", "第1章"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SanitizeFilename(tt.input), "SanitizeFilename(%q)", tt.input)
	}
}

func TestChapterFileStem(t *testing.T) {
	assert.Equal(t, "download/Chương 1_ Mở đầu_", ChapterFileStem("download", "Chương 1: Mở đầu!"))
	assert.Equal(t, "out/x_y.md", chapterFilePath("out", "x.y"))
}
