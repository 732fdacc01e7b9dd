package model

// ChapterStore persists the ordered chapter list. Save always rewrites the
// whole list.
type ChapterStore interface {
	Load() ([]*Chapter, error)
	Save(chapters []*Chapter) error
}
