package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"metruyencv-downloader/model"
	"metruyencv-downloader/utils"
)

// JSONStore keeps the chapter list in a pretty printed JSON file.
type JSONStore struct {
	path string
}

var _ model.ChapterStore = (*JSONStore)(nil)

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Load() ([]*model.Chapter, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chapter list: %w", err)
	}

	var chapters []*model.Chapter
	if err := json.Unmarshal(data, &chapters); err != nil {
		return nil, fmt.Errorf("failed to parse chapter list %s: %w", s.path, err)
	}
	for i, chapter := range chapters {
		if chapter == nil {
			return nil, fmt.Errorf("failed to parse chapter list %s: entry %d is null", s.path, i)
		}
	}
	return chapters, nil
}

func (s *JSONStore) Save(chapters []*model.Chapter) error {
	if chapters == nil {
		chapters = []*model.Chapter{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(chapters); err != nil {
		return fmt.Errorf("failed to encode chapter list: %w", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if err := utils.WriteFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to save chapter list: %w", err)
	}
	return nil
}
