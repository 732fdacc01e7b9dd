package model

// Chapter is one entry of the persisted chapter list.
type Chapter struct {
	Name       string `json:"name"`
	Link       string `json:"link"`
	IsDownload bool   `json:"is_download"`
}

func NewChapter(name, link string) *Chapter {
	return &Chapter{
		Name: name,
		Link: link,
	}
}
