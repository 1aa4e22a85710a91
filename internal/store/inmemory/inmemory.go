package inmemory

import (
	"sync"
	"time"

	"github.com/blevesearch/bleve"
	"github.com/google/uuid"

	"github.com/drbombe/researchpal/internal/store"
	"github.com/drbombe/researchpal/models"
)

type Store struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewSessionStore() store.Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) EnsureSession(id string, ttl time.Duration) (store.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			sess.Expire(ttl)
			return sess, nil
		}
	}
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}
	sess := &Session{
		id:        uuid.NewString(),
		expiresAt: time.Now().Add(ttl),
		index:     index,
		meta:      make(map[string]models.CrawlResult),
	}
	s.sessions[sess.id] = sess
	return sess, nil
}

func (s *Store) GetSession(id string) (store.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return sess, nil
}

type Session struct {
	id        string
	expiresAt time.Time
	index     bleve.Index
	meta      map[string]models.CrawlResult
	order     []string
	mu        sync.RWMutex
}

func (s *Session) ID() string               { return s.id }
func (s *Session) Expire(ttl time.Duration) { s.expiresAt = time.Now().Add(ttl) }

func (s *Session) AddSource(src models.CrawlResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meta[src.URL]; !ok {
		s.order = append(s.order, src.URL)
	}
	s.meta[src.URL] = src
	return s.index.Index(src.URL, src)
}

func (s *Session) Sources() []models.CrawlResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CrawlResult, 0, len(s.order))
	for _, url := range s.order {
		out = append(out, s.meta[url])
	}
	return out
}

func (s *Session) Search(query string, k int) ([]models.CrawlResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if k <= 0 {
		k = 10
	}
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), k, 0, false)
	res, err := s.index.Search(req)
	if err != nil {
		return nil, err
	}
	var out []models.CrawlResult
	for _, hit := range res.Hits {
		if src, ok := s.meta[hit.ID]; ok {
			out = append(out, src)
		}
	}
	return out, nil
}
