package epub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	answers map[string]string
	asked   []string
	err     error
}

func (f *fakePrompter) Prompt(label, defaultValue string) (string, error) {
	f.asked = append(f.asked, label)
	if f.err != nil {
		return "", f.err
	}
	return f.answers[label], nil
}

func TestReadMetadataPromptsAndDefaults(t *testing.T) {
	p := &fakePrompter{answers: map[string]string{
		"Enter title":  "  Đấu Phá Thương Khung ",
		"Enter author": "Thiên Tàm Thổ Đậu",
	}}

	meta, err := ReadMetadata(p, Metadata{OutputDir: "out"})
	require.NoError(t, err)

	assert.Equal(t, "Đấu Phá Thương Khung", meta.Title)
	assert.Equal(t, "Thiên Tàm Thổ Đậu", meta.Author)
	assert.Equal(t, DefaultCover, meta.Cover)
	assert.Equal(t, DefaultFolder, meta.FolderPath)
	assert.Equal(t, "out", meta.OutputDir)
	assert.Len(t, p.asked, 4)
}

func TestReadMetadataSkipsPresetFields(t *testing.T) {
	p := &fakePrompter{answers: map[string]string{"Enter author": "Someone"}}

	meta, err := ReadMetadata(p, Metadata{Title: "Book", Cover: "art.jpg", FolderPath: "chapters"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Enter author"}, p.asked)
	assert.Equal(t, "Book", meta.Title)
	assert.Equal(t, "art.jpg", meta.Cover)
	assert.Equal(t, "chapters", meta.FolderPath)
}

func TestReadMetadataRequiresTitle(t *testing.T) {
	_, err := ReadMetadata(&fakePrompter{}, Metadata{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestReadMetadataPromptError(t *testing.T) {
	boom := errors.New("interrupted")
	_, err := ReadMetadata(&fakePrompter{err: boom}, Metadata{})
	require.ErrorIs(t, err, boom)
}
