package research

import (
	"testing"

	"github.com/drbombe/researchpal/models"
)

func TestSessionClaim(t *testing.T) {
	sess := NewSession(nil)
	if !sess.Claim("https://example.com/a") {
		t.Fatalf("first claim must succeed")
	}
	if sess.Claim("https://example.com/a") {
		t.Fatalf("second claim of same URL must fail")
	}
	if sess.Claim("https://EXAMPLE.com/a#top") {
		t.Fatalf("claim of canonical-equivalent spelling must fail")
	}
	if !sess.Claim("https://example.com/b") {
		t.Fatalf("claim of a different URL must succeed")
	}
	if got := len(sess.VisitedURLs()); got != 2 {
		t.Fatalf("expected 2 visited URLs, got %d", got)
	}
}

func TestSessionClaimUnparseable(t *testing.T) {
	sess := NewSession(nil)
	raw := "http://[broken"
	if !sess.Claim(raw) {
		t.Fatalf("unparseable URL should be claimed under its raw form")
	}
	if sess.Claim(raw) {
		t.Fatalf("raw-form claim must still dedupe")
	}
}

func TestSessionReferences(t *testing.T) {
	sess := NewSession(nil)
	sess.Results = []models.CrawlResult{
		{URL: "https://example.com/a", Success: true, Summary: "sa"},
		{URL: "https://example.com/b", Success: false, Error: "boom"},
		{URL: "https://example.com/c", Success: true, Summary: "sc"},
	}
	refs := sess.References()
	if len(refs) != 2 {
		t.Fatalf("expected 2 references, got %d", len(refs))
	}
	if refs[0].URL != "https://example.com/a" || refs[1].Summary != "sc" {
		t.Fatalf("unexpected references: %#v", refs)
	}
}

func TestNewSessionCopiesMessages(t *testing.T) {
	original := []models.Message{{Role: models.RoleUser, Content: "q"}}
	sess := NewSession(original)
	sess.Messages = append(sess.Messages, models.Message{Role: models.RoleUser, Content: "extra"})
	if len(original) != 1 {
		t.Fatalf("caller slice mutated")
	}
	if sess.ID == "" {
		t.Fatalf("session ID missing")
	}
}
