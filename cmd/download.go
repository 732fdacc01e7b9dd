package cmd

import (
	"fmt"
	"io"
	"os"

	"metruyencv-downloader/downloader/metruyencv"
	"metruyencv-downloader/store"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <json_path>",
	Short: "Download every chapter listed in a chapter list file",
	Long:  "Download every chapter listed in a chapter list file. Chapters already marked as downloaded are skipped, so an interrupted run can be resumed.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownload,
}

func init() {
	RootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to open chapter list: %w", err)
	}

	d, chrome, err := newDownloader()
	if err != nil {
		return err
	}
	defer closeBrowser(chrome)

	summary, err := d.DownloadAll(cmd.Context(), store.NewJSONStore(path))
	printSummary(cmd.OutOrStdout(), summary)
	if err != nil {
		return fmt.Errorf("failed to download chapters: %w", err)
	}
	return nil
}

// printSummary reports what a run saved. A nil summary means the list could
// not be loaded and prints nothing.
func printSummary(w io.Writer, summary *metruyencv.Summary) {
	if summary == nil {
		return
	}
	fmt.Fprintf(w, "total: %d, downloaded: %d, skipped: %d, failed: %d\n",
		summary.Total, summary.Downloaded, summary.Skipped, summary.Failed)
	for _, f := range summary.Failures {
		fmt.Fprintf(w, " - %d %s (%s): %v\n", f.Index+1, f.Name, f.Link, f.Err)
	}
}
