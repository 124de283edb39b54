package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		Port:          "8080",
		APIAccessKey:  "test-key",
		SourceURL:     "https://www.bolagsplatsen.se",
		MaxPages:      3,
		WorkerCount:   5,
		ScrapeTimeout: 30,
		UserAgent:     "Test Agent",
		Timezone:      "UTC",
		Debug:         true,
		Version:       "test-version",
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
	}
	if cfg.SourceURL != "https://www.bolagsplatsen.se" {
		t.Errorf("Expected source URL 'https://www.bolagsplatsen.se', got '%s'", cfg.SourceURL)
	}
	if cfg.MaxPages != 3 {
		t.Errorf("Expected max pages 3, got %d", cfg.MaxPages)
	}
	if cfg.WorkerCount != 5 {
		t.Errorf("Expected worker count 5, got %d", cfg.WorkerCount)
	}
	if cfg.ScrapeTimeout != 30 {
		t.Errorf("Expected scrape timeout 30, got %d", cfg.ScrapeTimeout)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
