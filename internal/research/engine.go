package research

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/drbombe/researchpal/config"
	"github.com/drbombe/researchpal/internal/helpers"
	"github.com/drbombe/researchpal/internal/telemetry"
	"github.com/drbombe/researchpal/models"
	"github.com/drbombe/researchpal/provider"
	"github.com/drbombe/researchpal/tools/web_search"
)

// Engine runs the recursive research loop: generate queries, search, claim
// and crawl new URLs, fold the learnings back into the conversation, and
// recurse with the remaining depth.
type Engine struct {
	provider  provider.Provider
	searcher  web_search.WebSearcher
	crawler   *Crawler
	telemetry *telemetry.Telemetry
	logger    *log.Logger

	maxQueriesResearch int
	maxQueriesEvidence int
	resultsPerQuery    int
}

func NewEngine(p provider.Provider, searcher web_search.WebSearcher, crawler *Crawler, tel *telemetry.Telemetry, logger *log.Logger, cfg config.SearchConfig) *Engine {
	maxResearch := cfg.MaxQueriesResearch
	if maxResearch <= 0 {
		maxResearch = 5
	}
	maxEvidence := cfg.MaxQueriesEvidence
	if maxEvidence <= 0 {
		maxEvidence = 3
	}
	perQuery := cfg.ResultsPerQuery
	if perQuery <= 0 {
		perQuery = 5
	}
	return &Engine{
		provider:           p,
		searcher:           searcher,
		crawler:            crawler,
		telemetry:          tel,
		logger:             logger,
		maxQueriesResearch: maxResearch,
		maxQueriesEvidence: maxEvidence,
		resultsPerQuery:    perQuery,
	}
}

// GenerateQueries asks the reasoning model for search queries based on the
// conversation. The response contract is one query per line; the parser
// trims whitespace and tolerates stray blank lines but cannot recover from
// a model that ignores the format entirely.
func (e *Engine) GenerateQueries(ctx context.Context, conversation []models.Message, bound int) ([]string, error) {
	messages := append([]models.Message{QueryPrompt(bound)}, conversation...)
	response, err := e.provider.Generate(ctx, messages, models.Reasoning)
	if err != nil {
		return nil, fmt.Errorf("query generation: %w", err)
	}
	e.telemetry.GenerationCall()

	var queries []string
	for _, line := range strings.Split(response, "\n") {
		if q := strings.TrimSpace(line); q != "" {
			queries = append(queries, q)
		}
	}
	if len(queries) == 0 {
		e.logger.Printf("query generation returned no parseable queries (format contract violated)")
	}
	return queries, nil
}

// Followups asks the reasoning model for clarifying questions before the
// research starts.
func (e *Engine) Followups(ctx context.Context, conversation []models.Message, maxQuestions int) (string, error) {
	messages := append([]models.Message{FollowupPrompt(maxQuestions)}, conversation...)
	out, err := e.provider.Generate(ctx, messages, models.Reasoning)
	if err != nil {
		return "", fmt.Errorf("followup generation: %w", err)
	}
	return out, nil
}

// Conduct performs depth rounds of query/search/crawl against the session.
// depth counts remaining rounds: depth=N appends exactly N "Additional
// context" messages. A URL is crawled at most once across the whole session
// regardless of how many queries surface it, at any depth.
func (e *Engine) Conduct(ctx context.Context, sess *Session, depth int) error {
	e.logger.Printf("conducting research at depth %d", depth)

	queries, err := e.GenerateQueries(ctx, sess.Messages, e.maxQueriesResearch)
	if err != nil {
		return err
	}

	// Claim-before-crawl: URLs are added to the visited set synchronously,
	// before the concurrent crawl phase, so overlapping queries in the same
	// round cannot double-crawl.
	var newURLs []string
	for _, query := range queries {
		results, err := e.searcher.Search(ctx, query, e.resultsPerQuery)
		if err != nil {
			e.telemetry.SearchFailed()
			e.logger.Printf("search %q failed: %v", query, err)
			continue
		}
		e.telemetry.SearchCall()
		for _, r := range results {
			if sess.Claim(r.URL) {
				newURLs = append(newURLs, r.URL)
			}
		}
	}
	e.logger.Printf("found %d new unique URLs for research", len(newURLs))

	results := e.crawler.CrawlAll(ctx, newURLs)
	sess.Results = append(sess.Results, results...)

	learnings := ExtractLearnings(results)
	sess.Messages = append(sess.Messages, models.Message{
		Role:    models.RoleUser,
		Content: "Additional context: " + learnings,
	})

	if depth > 1 {
		return e.Conduct(ctx, sess, depth-1)
	}
	return nil
}

// ExtractLearnings concatenates the summaries of successful crawls into one
// separator-wrapped text block, each source bounded by the begin/end markers
// with its URL line.
func ExtractLearnings(results []models.CrawlResult) string {
	var b strings.Builder
	for _, result := range results {
		if !result.Success || result.Summary == "" {
			continue
		}
		b.WriteString(helpers.FormatSourceRecord(result.URL, result.Summary))
	}
	return b.String()
}
