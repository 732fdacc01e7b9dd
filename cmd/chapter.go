package cmd

import (
	"fmt"

	"metruyencv-downloader/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var chapterOutput string

var getChapterCmd = &cobra.Command{
	Use:   "get-chapter <url>",
	Short: "Save the chapter list of a story",
	Long:  "Open the story page, read its table of contents and save the chapter list as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetChapter,
}

func init() {
	getChapterCmd.Flags().StringVarP(&chapterOutput, "output", "o", "chapters.json", "output file")
	RootCmd.AddCommand(getChapterCmd)
}

func runGetChapter(cmd *cobra.Command, args []string) error {
	d, chrome, err := newDownloader()
	if err != nil {
		return err
	}
	defer closeBrowser(chrome)

	chapters, err := d.GetChapterList(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get chapter list: %w", err)
	}

	if err := store.NewJSONStore(chapterOutput).Save(chapters); err != nil {
		return err
	}
	log.Info().Msgf("Saved %d chapters to %s", len(chapters), chapterOutput)
	return nil
}
