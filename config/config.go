package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "metruyencv.yaml"

type Config struct {
	Download DownloadConfig `yaml:"download"`
	Browser  BrowserConfig  `yaml:"browser"`
	Debug    bool           `yaml:"debug"`
}

type DownloadConfig struct {
	OutputDir string        `yaml:"output_dir"`
	Delay     time.Duration `yaml:"delay"`
}

type BrowserConfig struct {
	Headless          bool          `yaml:"headless"`
	UserAgent         string        `yaml:"user_agent"`
	NavigationTimeout time.Duration `yaml:"navigation_timeout"`
	WaitTimeout       time.Duration `yaml:"wait_timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Download: DownloadConfig{
			OutputDir: "download",
			Delay:     800 * time.Millisecond,
		},
		Browser: BrowserConfig{
			Headless:          true,
			NavigationTimeout: 60 * time.Second,
			WaitTimeout:       20 * time.Second,
		},
	}
}

// Load builds the configuration from the defaults, the YAML file at path
// and MTC_* environment variables, in that order. An empty path falls back
// to DefaultPath when that file exists.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := cfg.LoadFromFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.LoadFromEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) LoadFromEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("MTC_OUTPUT_DIR"); ok && v != "" {
		c.Download.OutputDir = v
	}
	if v, ok := lookup("MTC_USER_AGENT"); ok && v != "" {
		c.Browser.UserAgent = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"MTC_DELAY", &c.Download.Delay},
		{"MTC_NAVIGATION_TIMEOUT", &c.Browser.NavigationTimeout},
		{"MTC_WAIT_TIMEOUT", &c.Browser.WaitTimeout},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"MTC_HEADLESS", &c.Browser.Headless},
		{"MTC_DEBUG", &c.Debug},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", b.key, err)
		}
		*b.dst = parsed
	}
	return nil
}

func (c *Config) normalize() {
	if c.Download.OutputDir == "" {
		c.Download.OutputDir = "download"
	}
	if c.Download.Delay < 0 {
		c.Download.Delay = 0
	}
}

// LoadDotEnv loads .env from the working directory. Variables already set
// in the environment win.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func (c *Config) Print() {
	fmt.Printf(" -output_dir: %s\n", c.Download.OutputDir)
	fmt.Printf(" -delay: %s\n", c.Download.Delay)
	fmt.Printf(" -headless: %t\n", c.Browser.Headless)
	fmt.Printf(" -navigation_timeout: %s\n", c.Browser.NavigationTimeout)
	fmt.Printf(" -wait_timeout: %s\n", c.Browser.WaitTimeout)
	if c.Browser.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.Browser.UserAgent)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}
