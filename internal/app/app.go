package app

import (
	"fmt"
	"log"
	"time"

	"github.com/drbombe/researchpal/config"
	"github.com/drbombe/researchpal/internal/report"
	"github.com/drbombe/researchpal/internal/research"
	"github.com/drbombe/researchpal/internal/similarity"
	"github.com/drbombe/researchpal/internal/store"
	"github.com/drbombe/researchpal/internal/store/inmemory"
	redis_store "github.com/drbombe/researchpal/internal/store/redis"
	"github.com/drbombe/researchpal/internal/telemetry"
	"github.com/drbombe/researchpal/provider"
	"github.com/drbombe/researchpal/tools/embedding"
	"github.com/drbombe/researchpal/tools/web_fetch"
	"github.com/drbombe/researchpal/tools/web_search"
)

// App wires the pipeline components from configuration. Every command
// builds one App and drives the stage it needs.
type App struct {
	Cfg       *config.Config
	Logger    *log.Logger
	Provider  provider.Provider
	Engine    *research.Engine
	Builder   *report.Builder
	Store     store.Store
	Telemetry *telemetry.Telemetry
}

func New(cfg *config.Config, logger *log.Logger) (*App, error) {
	prov, err := provider.NewProvider(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("building llm provider: %w", err)
	}

	searchProvider := web_search.Provider(cfg.Search.Provider)
	apiKey := cfg.Search.SerperAPIKey
	if searchProvider == web_search.BraveProvider {
		apiKey = cfg.Search.BraveAPIKey
	}
	searcher, err := web_search.NewWebSearcher(searchProvider, apiKey)
	if err != nil {
		return nil, fmt.Errorf("building web searcher: %w", err)
	}

	if d := cfg.General.DefaultTimeout; d > 0 {
		prov = timeoutProvider{inner: prov, timeout: d}
		searcher = timeoutSearcher{inner: searcher, timeout: d}
	}

	fetcher, err := web_fetch.NewWebFetcher(web_fetch.ChromedpFetcherType,
		cfg.Crawl.Timeout, cfg.Crawl.MaxChars, cfg.Crawl.MinSectionWords)
	if err != nil {
		return nil, fmt.Errorf("building web fetcher: %w", err)
	}

	tel := telemetry.New(cfg.Telemetry, logger)
	tel.Start()

	crawler := research.NewCrawler(fetcher, prov, tel, logger)
	engine := research.NewEngine(prov, searcher, crawler, tel, logger, cfg.Search)

	emb := embedding.NewEmbedding(prov, tel, cfg.Research.EmbedWindow)
	selector := similarity.NewSelector(emb, cfg.Report.TopKReferences)
	builder := report.NewBuilder(prov, selector, logger, cfg.Report)

	st, err := newStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("building session store: %w", err)
	}

	return &App{
		Cfg:       cfg,
		Logger:    logger,
		Provider:  prov,
		Engine:    engine,
		Builder:   builder,
		Store:     st,
		Telemetry: tel,
	}, nil
}

func newStore(cfg config.StorageConfig) (store.Store, error) {
	switch cfg.Store {
	case "", "inmemory":
		return inmemory.NewSessionStore(), nil
	case "redis":
		return redis_store.NewSessionStore(cfg.Redis.Addr(), cfg.Redis.Pass, cfg.Redis.DB), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// SessionTTL is how long a persisted session stays searchable.
func (a *App) SessionTTL() time.Duration {
	hours := a.Cfg.Storage.TTLHours
	if hours <= 0 {
		hours = 48
	}
	return time.Duration(hours) * time.Hour
}
