package inmemory

import (
	"testing"
	"time"

	"github.com/drbombe/researchpal/models"
)

func TestEnsureSessionCreatesAndReattaches(t *testing.T) {
	s := NewSessionStore()
	sess, err := s.EnsureSession("", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.ID() == "" {
		t.Fatalf("session missing ID")
	}

	same, err := s.EnsureSession(sess.ID(), time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same.ID() != sess.ID() {
		t.Fatalf("reattach created a new session: %q vs %q", same.ID(), sess.ID())
	}

	missing, err := s.GetSession("nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown session")
	}
}

func TestSessionSearch(t *testing.T) {
	s := NewSessionStore()
	sess, err := s.EnsureSession("", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sources := []models.CrawlResult{
		{URL: "https://example.com/go", Success: true, Summary: "The Go programming language has goroutines."},
		{URL: "https://example.com/rust", Success: true, Summary: "Rust focuses on memory safety."},
		{URL: "https://example.com/cooking", Success: true, Summary: "A recipe for sourdough bread."},
	}
	for _, src := range sources {
		if err := sess.AddSource(src); err != nil {
			t.Fatalf("adding source: %v", err)
		}
	}

	hits, err := sess.Search("goroutines", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) == 0 {
		t.Fatalf("expected at least one hit")
	}
	if hits[0].URL != "https://example.com/go" {
		t.Fatalf("expected the Go page first, got %q", hits[0].URL)
	}
}

func TestSessionSourcesOrderAndUpsert(t *testing.T) {
	s := NewSessionStore()
	sess, _ := s.EnsureSession("", time.Hour)

	_ = sess.AddSource(models.CrawlResult{URL: "https://a.com", Summary: "first"})
	_ = sess.AddSource(models.CrawlResult{URL: "https://b.com", Summary: "second"})
	_ = sess.AddSource(models.CrawlResult{URL: "https://a.com", Summary: "updated"})

	got := sess.Sources()
	if len(got) != 2 {
		t.Fatalf("expected 2 sources after upsert, got %d", len(got))
	}
	if got[0].URL != "https://a.com" || got[0].Summary != "updated" {
		t.Fatalf("upsert did not keep order and replace content: %#v", got)
	}
}
