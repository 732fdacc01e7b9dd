package cmd

import (
	"fmt"

	"metruyencv-downloader/browser"
	"metruyencv-downloader/config"
	"metruyencv-downloader/credential"
	"metruyencv-downloader/downloader/metruyencv"
	"metruyencv-downloader/utils"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagDebug  bool

	cfg *config.Config
)

var RootCmd = &cobra.Command{
	Use:               "metruyencv-downloader",
	Short:             "Download novels from metruyencv and pack them into epub",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default "+config.DefaultPath+")")
	RootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	c, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flagDebug {
		c.Debug = true
	}
	cfg = c

	utils.SetupLogger(cfg.Debug)
	if cfg.Debug {
		cfg.Print()
	}
	return nil
}

// newDownloader reads the credentials before starting Chrome, so a missing
// variable never costs a browser launch. The caller closes the browser.
func newDownloader() (*metruyencv.Downloader, *browser.Chrome, error) {
	creds, err := credential.Load()
	if err != nil {
		return nil, nil, err
	}

	chrome, err := browser.NewChrome(browser.Options{
		Headless:          cfg.Browser.Headless,
		UserAgent:         cfg.Browser.UserAgent,
		NavigationTimeout: cfg.Browser.NavigationTimeout,
	})
	if err != nil {
		return nil, nil, err
	}

	d := metruyencv.New(chrome, creds, metruyencv.Options{
		OutputDir:   cfg.Download.OutputDir,
		Delay:       cfg.Download.Delay,
		WaitTimeout: cfg.Browser.WaitTimeout,
	})
	d.SetLogger(log.Logger)
	return d, chrome, nil
}

func closeBrowser(c *browser.Chrome) {
	if err := c.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close browser")
	}
}
