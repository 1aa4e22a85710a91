package research

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/drbombe/researchpal/models"
	"github.com/drbombe/researchpal/utils"
)

// BlocksToURLs generates search queries for every statement block and
// resolves them, returning one deduplicated URL list per block. Blocks and
// their per-query searches fan out concurrently; results keep block order.
// A failed query degrades to zero URLs for that query.
func (e *Engine) BlocksToURLs(ctx context.Context, blocks []string) ([][]string, error) {
	urlLists := make([][]string, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	for i, block := range blocks {
		g.Go(func() error {
			urls, err := e.blockURLs(gctx, block)
			if err != nil {
				return err
			}
			urlLists[i] = urls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urlLists, nil
}

func (e *Engine) blockURLs(ctx context.Context, block string) ([]string, error) {
	conversation := []models.Message{{Role: models.RoleUser, Content: block}}
	queries, err := e.GenerateQueries(ctx, conversation, e.maxQueriesEvidence)
	if err != nil {
		return nil, err
	}

	perQuery := make([][]string, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, query := range queries {
		g.Go(func() error {
			results, err := e.searcher.Search(gctx, query, e.resultsPerQuery)
			if err != nil {
				e.telemetry.SearchFailed()
				e.logger.Printf("search %q failed: %v", query, err)
				return nil
			}
			e.telemetry.SearchCall()
			urls := make([]string, 0, len(results))
			for _, r := range results {
				urls = append(urls, r.URL)
			}
			perQuery[i] = urls
			return nil
		})
	}
	_ = g.Wait()
	return utils.UniqueURLs(perQuery), nil
}

// CrawlUnique flattens the per-block URL lists, removes duplicates across
// blocks, and crawls every URL exactly once.
func (e *Engine) CrawlUnique(ctx context.Context, urlLists [][]string) []models.CrawlResult {
	return e.crawler.CrawlAll(ctx, utils.UniqueURLs(urlLists))
}

// BlocksToReferences associates each block with the references whose URLs
// co-occurred in that block's search results and have a successful crawl
// record. This association is deliberately by URL co-occurrence, not
// similarity; the two mechanisms are not interchangeable.
func BlocksToReferences(blocks []string, urlLists [][]string, results []models.CrawlResult) []models.BlockEvidence {
	byURL := make(map[string]models.CrawlResult, len(results))
	for _, r := range results {
		if r.Success {
			byURL[r.URL] = r
		}
	}

	out := make([]models.BlockEvidence, len(blocks))
	for i, block := range blocks {
		var refs []models.Reference
		if i < len(urlLists) {
			for _, url := range urlLists[i] {
				if r, ok := byURL[url]; ok {
					refs = append(refs, models.Reference{URL: url, Summary: r.Summary})
				}
			}
		}
		out[i] = models.BlockEvidence{Statement: block, References: refs}
	}
	return out
}
