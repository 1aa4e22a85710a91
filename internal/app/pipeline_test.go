package app

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drbombe/researchpal/config"
	"github.com/drbombe/researchpal/internal/research"
	"github.com/drbombe/researchpal/models"
)

func newDumpApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Cfg:    &config.Config{General: config.GeneralConfig{OutputDir: t.TempDir()}},
		Logger: log.New(io.Discard, "", 0),
	}
}

func TestDumpAndLoadSession(t *testing.T) {
	a := newDumpApp(t)

	sess := research.NewSession([]models.Message{
		{Role: models.RoleUser, Content: "question"},
		{Role: models.RoleAssistant, Content: "followups"},
	})
	sess.Results = []models.CrawlResult{
		{URL: "https://example.com/a", Success: true, Summary: "sa"},
		{URL: "https://example.com/b", Success: false, Error: "timeout"},
	}
	sess.Claim("https://example.com/a")
	sess.Claim("https://example.com/b")

	if err := a.DumpSession(sess); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	loaded, err := a.LoadSession()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(loaded.Messages) != 2 || loaded.Messages[0].Content != "question" {
		t.Fatalf("messages not restored: %#v", loaded.Messages)
	}
	if len(loaded.Results) != 2 || loaded.Results[1].Error != "timeout" {
		t.Fatalf("results not restored: %#v", loaded.Results)
	}
	if got := len(loaded.VisitedURLs()); got != 2 {
		t.Fatalf("visited set not restored: %d urls", got)
	}
	// A restored session must still refuse to re-crawl its URLs.
	if loaded.Claim("https://example.com/a") {
		t.Fatalf("restored session re-claimed a visited URL")
	}
}

func TestLoadSessionMissingDumps(t *testing.T) {
	a := newDumpApp(t)
	if _, err := a.LoadSession(); err == nil {
		t.Fatalf("expected error when dumps are absent")
	}
}

func TestWriteOutput(t *testing.T) {
	a := newDumpApp(t)
	path, err := a.WriteOutput("research_result", "Impact of Quantum Computing on Cryptography", "# Report")
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if filepath.Base(path) != "research_result_impact_of_quantum.md" {
		t.Fatalf("unexpected file name %q", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "# Report") {
		t.Fatalf("content not written")
	}
}
