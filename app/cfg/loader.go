package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Scrape source configuration
	SourceURL     string `long:"source-url" env:"SOURCE_URL" default:"https://www.bolagsplatsen.se" description:"Base URL of the listings site"`
	MaxPages      int    `long:"max-pages" env:"MAX_PAGES" default:"3" description:"Maximum number of index pages to crawl per request"`
	WorkerCount   int    `long:"worker-count" env:"WORKER_COUNT" default:"5" description:"Number of concurrent detail page fetchers"`
	ScrapeTimeout int    `long:"scrape-timeout" env:"SCRAPE_TIMEOUT" default:"30" description:"Per-request scrape timeout in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"BizComb/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Europe/Stockholm)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:          raw.Port,
		APIAccessKey:  raw.APIAccessKey,
		SourceURL:     raw.SourceURL,
		MaxPages:      raw.MaxPages,
		WorkerCount:   raw.WorkerCount,
		ScrapeTimeout: raw.ScrapeTimeout,
		UserAgent:     raw.UserAgent,
		Timezone:      raw.Timezone,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
