package cmd

import (
	"errors"
	"fmt"

	"metruyencv-downloader/epub"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var packArgs epub.Metadata

var packCmd = &cobra.Command{
	Use:   "epub-build",
	Short: "Pack downloaded chapters into an epub file",
	Long:  "Pack downloaded chapters into an epub file. Values not given as flags are asked for interactively.",
	Args:  cobra.NoArgs,
	RunE:  runPackage,
}

func init() {
	packCmd.Flags().StringVarP(&packArgs.Title, "title", "t", "", "book title")
	packCmd.Flags().StringVarP(&packArgs.Author, "author", "a", "", "book author")
	packCmd.Flags().StringVarP(&packArgs.Cover, "cover", "c", "", "cover image path or URL (default "+epub.DefaultCover+")")
	packCmd.Flags().StringVarP(&packArgs.FolderPath, "folder", "f", "", "chapter folder (default "+epub.DefaultFolder+")")
	packCmd.Flags().StringVarP(&packArgs.OutputDir, "output", "o", "", "output directory")
	RootCmd.AddCommand(packCmd)
}

type terminalPrompter struct{}

func (terminalPrompter) Prompt(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	v, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", fmt.Errorf("input cancelled")
	}
	return v, err
}

func runPackage(cmd *cobra.Command, args []string) error {
	meta, err := epub.ReadMetadata(terminalPrompter{}, packArgs)
	if err != nil {
		return err
	}

	path, err := epub.Build(meta)
	if err != nil {
		return fmt.Errorf("failed to create epub: %w", err)
	}
	fmt.Println("epub:", path)
	return nil
}
