package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/drbombe/researchpal/config"
)

// Telemetry counts collaborator traffic (generation, search, crawl,
// embedding calls) and optionally exposes the counters on a metrics port.
// All methods are safe on a nil receiver so call sites never need guards.
type Telemetry struct {
	cfg      config.TelemetryConfig
	logger   *log.Logger
	registry *prometheus.Registry
	server   *echo.Echo

	generationCalls prometheus.Counter
	embeddingCalls  prometheus.Counter
	searchCalls     prometheus.Counter
	searchFailures  prometheus.Counter
	crawlSuccesses  prometheus.Counter
	crawlFailures   prometheus.Counter
}

func New(cfg config.TelemetryConfig, logger *log.Logger) *Telemetry {
	registry := prometheus.NewRegistry()
	t := &Telemetry{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		generationCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "researchpal_generation_calls_total",
			Help: "LLM generation calls issued.",
		}),
		embeddingCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "researchpal_embedding_calls_total",
			Help: "Embedding calls issued.",
		}),
		searchCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "researchpal_search_calls_total",
			Help: "Web search calls that succeeded.",
		}),
		searchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "researchpal_search_failures_total",
			Help: "Web search calls that failed.",
		}),
		crawlSuccesses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "researchpal_crawl_successes_total",
			Help: "Crawls that produced a summary.",
		}),
		crawlFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "researchpal_crawl_failures_total",
			Help: "Crawls that degraded to a failure record.",
		}),
	}
	registry.MustRegister(
		t.generationCalls, t.embeddingCalls,
		t.searchCalls, t.searchFailures,
		t.crawlSuccesses, t.crawlFailures,
	)
	return t
}

// Start serves /metrics and /healthz when telemetry is enabled.
func (t *Telemetry) Start() {
	if t == nil || !t.cfg.Enabled {
		return
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	t.server = e
	go func() {
		addr := fmt.Sprintf(":%d", t.cfg.MetricsPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			t.logger.Printf("metrics server stopped: %v", err)
		}
	}()
}

// Shutdown stops the metrics server if one is running.
func (t *Telemetry) Shutdown(ctx context.Context) {
	if t == nil || t.server == nil {
		return
	}
	_ = t.server.Shutdown(ctx)
}

func (t *Telemetry) GenerationCall() {
	if t != nil {
		t.generationCalls.Inc()
	}
}

func (t *Telemetry) EmbeddingCall() {
	if t != nil {
		t.embeddingCalls.Inc()
	}
}

func (t *Telemetry) SearchCall() {
	if t != nil {
		t.searchCalls.Inc()
	}
}

func (t *Telemetry) SearchFailed() {
	if t != nil {
		t.searchFailures.Inc()
	}
}

func (t *Telemetry) CrawlSucceeded() {
	if t != nil {
		t.crawlSuccesses.Inc()
	}
}

func (t *Telemetry) CrawlFailed() {
	if t != nil {
		t.crawlFailures.Inc()
	}
}
