package store

import (
	"time"

	"github.com/drbombe/researchpal/models"
)

// Store keeps research sessions addressable across process restarts so a
// later pipeline stage (annotation, source lookup) can reattach to the
// sources an earlier run collected.
type Store interface {
	EnsureSession(id string, ttl time.Duration) (Session, error)
	GetSession(id string) (Session, error)
}

// Session holds the crawl results of one research run, indexed for search.
type Session interface {
	ID() string
	Expire(ttl time.Duration)
	AddSource(src models.CrawlResult) error
	Sources() []models.CrawlResult
	Search(query string, k int) ([]models.CrawlResult, error)
}
