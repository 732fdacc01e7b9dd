package epub

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"metruyencv-downloader/template"
	"metruyencv-downloader/utils"

	goepub "github.com/go-shiori/go-epub"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const Language = "vi"

var ErrNoChapters = errors.New("no chapter files found")

// Build packs the chapter files of meta.FolderPath into <title>.epub and
// returns the written path.
func Build(meta *Metadata) (string, error) {
	if meta == nil || meta.Title == "" {
		return "", errors.New("title is required")
	}

	files, err := ListChapterFiles(meta.FolderPath)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoChapters, meta.FolderPath)
	}

	workDir, err := os.MkdirTemp("", "metruyencv-epub-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	coverPath, err := resolveCover(meta.Cover, workDir)
	if err != nil {
		return "", err
	}

	log.Info().Msgf("Creating epub for %s", meta.Title)

	book, err := goepub.NewEpub(meta.Title)
	if err != nil {
		return "", fmt.Errorf("failed to create epub: %w", err)
	}
	book.SetAuthor(meta.Author)
	book.SetLang(Language)
	book.SetIdentifier("urn:uuid:" + uuid.New().String())

	cssFile := filepath.Join(workDir, "style.css")
	if err := os.WriteFile(cssFile, []byte(template.StyleCSS), 0644); err != nil {
		return "", fmt.Errorf("failed to write stylesheet: %w", err)
	}
	cssPath, err := book.AddCSS(cssFile, "style.css")
	if err != nil {
		return "", fmt.Errorf("failed to add stylesheet: %w", err)
	}

	coverImage, err := book.AddImage(coverPath, "cover"+coverExt(coverPath))
	if err != nil {
		return "", fmt.Errorf("failed to add cover: %w", err)
	}
	if err := book.SetCover(coverImage, ""); err != nil {
		return "", fmt.Errorf("failed to set cover: %w", err)
	}

	ctx := context.Background()
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read chapter %s: %w", file, err)
		}
		title := ChapterTitle(file)
		body, err := template.RenderString(ctx, template.ChapterBody(title, Paragraphs(string(data))))
		if err != nil {
			return "", fmt.Errorf("failed to render chapter %s: %w", file, err)
		}
		if _, err := book.AddSection(body, title, fmt.Sprintf("chapter_%d.xhtml", i), cssPath); err != nil {
			return "", fmt.Errorf("failed to add chapter %s: %w", file, err)
		}
		log.Debug().Msgf("Added chapter %d: %s", i, title)
	}

	if meta.OutputDir != "" {
		if err := utils.EnsureDir(meta.OutputDir); err != nil {
			return "", err
		}
	}
	outputPath := filepath.Join(meta.OutputDir, utils.CleanDirName(meta.Title)+".epub")
	if err := book.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write epub: %w", err)
	}

	log.Info().Msgf("Epub created: %s (%d chapters)", outputPath, len(files))
	return outputPath, nil
}

// resolveCover returns a local path for cover, downloading remote images
// into dir first.
func resolveCover(cover, dir string) (string, error) {
	if cover == "" {
		cover = DefaultCover
	}
	if strings.HasPrefix(cover, "http://") || strings.HasPrefix(cover, "https://") {
		log.Info().Msgf("Getting cover %s", cover)
		data, err := utils.Fetch(utils.NewRestyClient(3), cover)
		if err != nil {
			return "", fmt.Errorf("failed to download cover: %w", err)
		}
		local := filepath.Join(dir, "cover"+coverExt(cover))
		if err := os.WriteFile(local, data, 0644); err != nil {
			return "", fmt.Errorf("failed to save cover: %w", err)
		}
		return local, nil
	}

	info, err := os.Stat(cover)
	if err != nil {
		return "", fmt.Errorf("failed to read cover %s: %w", cover, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("cover %s is a directory", cover)
	}
	return cover, nil
}

func coverExt(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 && strings.Contains(p, "://") {
		p = p[:i]
	}
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	default:
		return ".png"
	}
}
