package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Research.Depth != 2 {
		t.Fatalf("expected default depth 2, got %d", cfg.Research.Depth)
	}
	if cfg.Research.MaxFollowupQuestions != 5 {
		t.Fatalf("expected default 5 followups, got %d", cfg.Research.MaxFollowupQuestions)
	}
	if cfg.Search.Provider != "serper" {
		t.Fatalf("expected default serper provider, got %q", cfg.Search.Provider)
	}
	if cfg.Search.MaxQueriesResearch != 5 || cfg.Search.MaxQueriesEvidence != 3 {
		t.Fatalf("unexpected query bounds: %d/%d", cfg.Search.MaxQueriesResearch, cfg.Search.MaxQueriesEvidence)
	}
	if cfg.Crawl.Timeout != 15*time.Second {
		t.Fatalf("expected 15s crawl timeout, got %v", cfg.Crawl.Timeout)
	}
	if cfg.Report.BlockSentences != 3 || cfg.Report.TopKReferences != 5 {
		t.Fatalf("unexpected report defaults: %d/%d", cfg.Report.BlockSentences, cfg.Report.TopKReferences)
	}
	if cfg.Storage.Store != "inmemory" || cfg.Storage.TTLHours != 48 {
		t.Fatalf("unexpected storage defaults: %q/%d", cfg.Storage.Store, cfg.Storage.TTLHours)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("RESEARCHPAL_RESEARCH_DEPTH", "4")
	t.Setenv("RESEARCHPAL_SEARCH_PROVIDER", "brave")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Research.Depth != 4 {
		t.Fatalf("env override ignored: depth %d", cfg.Research.Depth)
	}
	if cfg.Search.Provider != "brave" {
		t.Fatalf("env override ignored: provider %q", cfg.Search.Provider)
	}
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "10.0.0.5", Port: "6380"}
	if got := r.Addr(); got != "10.0.0.5:6380" {
		t.Fatalf("unexpected addr %q", got)
	}
}

func TestTelemetryValidate(t *testing.T) {
	if err := (TelemetryConfig{Enabled: true, MetricsPort: 0}).Validate(); err == nil {
		t.Fatalf("expected error for enabled telemetry without port")
	}
	if err := (TelemetryConfig{Enabled: true, MetricsPort: 9090}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (TelemetryConfig{}).Validate(); err != nil {
		t.Fatalf("disabled telemetry must not require a port: %v", err)
	}
}
