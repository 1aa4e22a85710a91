package redis_store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blevesearch/bleve"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/drbombe/researchpal/internal/store"
	"github.com/drbombe/researchpal/models"
)

type Store struct {
	client *redis.Client
}

func NewSessionStore(addr, password string, db int) store.Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Store{client: rdb}
}

// NewSessionStoreWithClient wires an existing client; used by tests.
func NewSessionStoreWithClient(client *redis.Client) store.Store {
	return &Store{client: client}
}

func sourcesKey(id string) string { return fmt.Sprintf("session:%s:sources", id) }

func (s *Store) EnsureSession(id string, ttl time.Duration) (store.Session, error) {
	ctx := context.Background()
	if id != "" {
		exists, err := s.client.Exists(ctx, sourcesKey(id)).Result()
		if err == nil && exists == 1 {
			_ = s.client.Expire(ctx, sourcesKey(id), ttl).Err()
			return &Session{client: s.client, id: id, expiresAt: time.Now().Add(ttl)}, nil
		}
	}
	newID := uuid.NewString()
	if err := s.client.Set(ctx, sourcesKey(newID), "[]", ttl).Err(); err != nil {
		return nil, err
	}
	return &Session{client: s.client, id: newID, expiresAt: time.Now().Add(ttl)}, nil
}

func (s *Store) GetSession(id string) (store.Session, error) {
	ctx := context.Background()
	exists, err := s.client.Exists(ctx, sourcesKey(id)).Result()
	if err != nil || exists == 0 {
		return nil, nil
	}
	return &Session{client: s.client, id: id}, nil
}

type Session struct {
	client    *redis.Client
	id        string
	expiresAt time.Time
	// Bleve index is in-memory per process; it is rebuilt lazily from the
	// persisted sources when a reattached session is searched.
	index bleve.Index
}

func (s *Session) ID() string               { return s.id }
func (s *Session) Expire(ttl time.Duration) { s.expiresAt = time.Now().Add(ttl) }

func (s *Session) AddSource(src models.CrawlResult) error {
	ctx := context.Background()
	sources := s.load(ctx)
	replaced := false
	for i, existing := range sources {
		if existing.URL == src.URL {
			sources[i] = src
			replaced = true
			break
		}
	}
	if !replaced {
		sources = append(sources, src)
	}
	data, err := json.Marshal(sources)
	if err != nil {
		return err
	}
	ttl := time.Until(s.expiresAt)
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	if err := s.client.Set(ctx, sourcesKey(s.id), data, ttl).Err(); err != nil {
		return err
	}
	if s.index != nil {
		return s.index.Index(src.URL, src)
	}
	return nil
}

func (s *Session) Sources() []models.CrawlResult {
	return s.load(context.Background())
}

func (s *Session) Search(query string, k int) ([]models.CrawlResult, error) {
	if k <= 0 {
		k = 10
	}
	sources := s.load(context.Background())
	if s.index == nil {
		index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
		if err != nil {
			return nil, err
		}
		for _, src := range sources {
			if err := index.Index(src.URL, src); err != nil {
				return nil, err
			}
		}
		s.index = index
	}
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(query), k, 0, false)
	res, err := s.index.Search(req)
	if err != nil {
		return nil, err
	}
	byURL := make(map[string]models.CrawlResult, len(sources))
	for _, src := range sources {
		byURL[src.URL] = src
	}
	var out []models.CrawlResult
	for _, hit := range res.Hits {
		if src, ok := byURL[hit.ID]; ok {
			out = append(out, src)
		}
	}
	return out, nil
}

func (s *Session) load(ctx context.Context) []models.CrawlResult {
	val, err := s.client.Get(ctx, sourcesKey(s.id)).Result()
	if err != nil {
		return nil
	}
	var sources []models.CrawlResult
	_ = json.Unmarshal([]byte(val), &sources)
	return sources
}
