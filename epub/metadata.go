package epub

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultCover  = "cover.png"
	DefaultFolder = "./download"
)

type Metadata struct {
	Title  string
	Author string
	// Cover is a local image path or an http(s) URL.
	Cover      string
	FolderPath string
	OutputDir  string
}

// Prompter asks the user for a single value. defaultValue is returned when
// the answer is empty.
type Prompter interface {
	Prompt(label string, defaultValue string) (string, error)
}

// ReadMetadata fills the fields of preset that are still empty by asking p.
func ReadMetadata(p Prompter, preset Metadata) (*Metadata, error) {
	meta := preset

	steps := []struct {
		label string
		def   string
		dst   *string
	}{
		{"Enter title", "", &meta.Title},
		{"Enter author", "", &meta.Author},
		{"Enter image link", DefaultCover, &meta.Cover},
		{"Enter folder path", DefaultFolder, &meta.FolderPath},
	}
	for _, s := range steps {
		if *s.dst != "" {
			continue
		}
		v, err := p.Prompt(s.label, s.def)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", strings.ToLower(strings.TrimPrefix(s.label, "Enter ")), err)
		}
		v = strings.TrimSpace(v)
		if v == "" {
			v = s.def
		}
		*s.dst = v
	}

	if meta.Title == "" {
		return nil, errors.New("title is required")
	}
	return &meta, nil
}
