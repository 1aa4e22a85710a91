package redis_store

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/drbombe/researchpal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStoreWithClient(client).(*Store)
}

func TestRedisSessionLifecycle(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.EnsureSession("", time.Hour)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	if sess.ID() == "" {
		t.Fatalf("session missing ID")
	}

	src := models.CrawlResult{URL: "https://example.com/a", Success: true, Summary: "summary a"}
	if err := sess.AddSource(src); err != nil {
		t.Fatalf("adding source: %v", err)
	}

	// Reattaching by ID sees the persisted source.
	reattached, err := s.GetSession(sess.ID())
	if err != nil {
		t.Fatalf("reattaching: %v", err)
	}
	if reattached == nil {
		t.Fatalf("session not found after creation")
	}
	sources := reattached.Sources()
	if len(sources) != 1 || sources[0].Summary != "summary a" {
		t.Fatalf("unexpected sources: %#v", sources)
	}
}

func TestRedisSessionNotFound(t *testing.T) {
	s := newTestStore(t)
	sess, err := s.GetSession("missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil session for unknown ID")
	}
}

func TestRedisSessionSearch(t *testing.T) {
	s := newTestStore(t)
	sess, err := s.EnsureSession("", time.Hour)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	_ = sess.AddSource(models.CrawlResult{URL: "https://example.com/go", Success: true, Summary: "Concurrency with goroutines and channels."})
	_ = sess.AddSource(models.CrawlResult{URL: "https://example.com/db", Success: true, Summary: "Tuning database indexes."})

	// A fresh handle must rebuild its search index from redis.
	reattached, err := s.GetSession(sess.ID())
	if err != nil || reattached == nil {
		t.Fatalf("reattaching: %v", err)
	}
	hits, err := reattached.Search("goroutines", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) == 0 || hits[0].URL != "https://example.com/go" {
		t.Fatalf("unexpected hits: %#v", hits)
	}
}

func TestRedisSessionUpsert(t *testing.T) {
	s := newTestStore(t)
	sess, _ := s.EnsureSession("", time.Hour)

	_ = sess.AddSource(models.CrawlResult{URL: "https://a.com", Summary: "first"})
	_ = sess.AddSource(models.CrawlResult{URL: "https://a.com", Summary: "updated"})

	sources := sess.Sources()
	if len(sources) != 1 || sources[0].Summary != "updated" {
		t.Fatalf("upsert failed: %#v", sources)
	}
}
