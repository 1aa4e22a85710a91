package research

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/drbombe/researchpal/internal/telemetry"
	"github.com/drbombe/researchpal/models"
	"github.com/drbombe/researchpal/provider"
	"github.com/drbombe/researchpal/tools/web_fetch"
)

// Crawler fetches pages and summarizes them. This is the system's sole
// untrusted-input boundary: any error anywhere in fetch or summarize
// collapses into a failure CrawlResult and never propagates.
type Crawler struct {
	fetcher   web_fetch.WebFetcher
	provider  provider.Provider
	telemetry *telemetry.Telemetry
	logger    *log.Logger
}

func NewCrawler(fetcher web_fetch.WebFetcher, p provider.Provider, tel *telemetry.Telemetry, logger *log.Logger) *Crawler {
	return &Crawler{fetcher: fetcher, provider: p, telemetry: tel, logger: logger}
}

// CrawlURL fetches one URL fresh and, on success, asks the summarizing
// model for a structured one-page summary.
func (c *Crawler) CrawlURL(ctx context.Context, url string) (result models.CrawlResult) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Printf("crawl of %s panicked: %v", url, r)
			result = models.CrawlResult{URL: url, Success: false, Error: fmt.Sprintf("panic: %v", r)}
		}
	}()

	page, err := c.fetcher.Exec(ctx, url)
	if err != nil || page.Text == "" {
		c.telemetry.CrawlFailed()
		reason := "no extractable content"
		if err != nil {
			reason = err.Error()
		}
		return models.CrawlResult{URL: url, Success: false, Error: reason}
	}

	messages := []models.Message{
		SummarizeCrawlPrompt(),
		{Role: models.RoleUser, Content: page.Text},
	}
	summary, err := c.provider.Generate(ctx, messages, models.Summarizing)
	if err != nil {
		c.telemetry.CrawlFailed()
		return models.CrawlResult{URL: url, Success: false, Error: fmt.Sprintf("summarize: %v", err)}
	}

	c.telemetry.CrawlSucceeded()
	return models.CrawlResult{URL: url, Success: true, Markdown: page.Text, Summary: summary}
}

// CrawlAll crawls the URLs concurrently. Results come back in input order
// regardless of completion order; individual failures are failure records,
// never errors.
func (c *Crawler) CrawlAll(ctx context.Context, urls []string) []models.CrawlResult {
	results := make([]models.CrawlResult, len(urls))
	g := new(errgroup.Group)
	for i, url := range urls {
		g.Go(func() error {
			results[i] = c.CrawlURL(ctx, url)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
