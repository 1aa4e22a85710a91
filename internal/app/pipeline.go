package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drbombe/researchpal/internal/helpers"
	"github.com/drbombe/researchpal/internal/report"
	"github.com/drbombe/researchpal/internal/research"
	"github.com/drbombe/researchpal/models"
	"github.com/drbombe/researchpal/utils"
)

// Research runs the recursive research loop over the opening conversation
// and persists every successful crawl into the session store, so later
// commands can reattach by session ID.
func (a *App) Research(ctx context.Context, conversation []models.Message) (*research.Session, string, error) {
	sess := research.NewSession(conversation)
	if err := a.Engine.Conduct(ctx, sess, a.Cfg.Research.Depth); err != nil {
		return nil, "", err
	}

	stored, err := a.Store.EnsureSession("", a.SessionTTL())
	if err != nil {
		return nil, "", err
	}
	for _, r := range sess.Results {
		if !r.Success {
			continue
		}
		if err := stored.AddSource(r); err != nil {
			a.Logger.Printf("storing source %s: %v", r.URL, err)
		}
	}

	if a.Cfg.General.Debug {
		if err := a.DumpSession(sess); err != nil {
			a.Logger.Printf("writing debug dumps: %v", err)
		}
	}
	return sess, stored.ID(), nil
}

// BuildReport drafts the base report from the research conversation, then
// annotates every block with its most similar references and appends the
// visited-URL appendix.
func (a *App) BuildReport(ctx context.Context, sess *research.Session) (string, error) {
	base, err := a.Builder.GenerateBase(ctx, sess.Messages)
	if err != nil {
		return "", fmt.Errorf("drafting report: %w", err)
	}
	annotated, err := a.Builder.Annotate(ctx, base, sess.References())
	if err != nil {
		return "", fmt.Errorf("annotating report: %w", err)
	}
	urls := sess.VisitedURLs()
	if limit := a.Cfg.Report.AppendixLinkCap; limit > 0 && len(urls) > limit {
		urls = urls[:limit]
	}
	return report.AppendReferenceLinks(annotated, urls), nil
}

// Evidence runs the supporting-evidence pipeline over a finished report:
// split into blocks, search and crawl fresh sources per block, then have
// the model pick which of those sources actually back each statement.
func (a *App) Evidence(ctx context.Context, reportText string) (string, error) {
	blocks := helpers.SentenceBlocks(reportText, a.Cfg.Report.BlockSentences)
	if len(blocks) == 0 {
		return "", fmt.Errorf("report contains no sentences to support")
	}

	urlLists, err := a.Engine.BlocksToURLs(ctx, blocks)
	if err != nil {
		return "", fmt.Errorf("searching evidence sources: %w", err)
	}
	results := a.Engine.CrawlUnique(ctx, urlLists)
	withRefs := research.BlocksToReferences(blocks, urlLists, results)

	evidence := a.Builder.GenerateEvidence(ctx, withRefs)
	return report.AssembleEvidence(withRefs, evidence)
}

const (
	messagesDump = "messages.json"
	sourcesDump  = "sources.json"
	visitedDump  = "visited_urls.json"
)

// DumpSession writes the session state into the output directory so an
// interrupted run can be resumed by the annotate command.
func (a *App) DumpSession(sess *research.Session) error {
	dir := a.outputDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := dumpJSON(filepath.Join(dir, messagesDump), sess.Messages); err != nil {
		return err
	}
	if err := dumpJSON(filepath.Join(dir, sourcesDump), sess.Results); err != nil {
		return err
	}
	return dumpJSON(filepath.Join(dir, visitedDump), sess.VisitedURLs())
}

// LoadSession rebuilds a session from the debug dumps of a previous run.
func (a *App) LoadSession() (*research.Session, error) {
	dir := a.outputDir()

	var messages []models.Message
	if err := loadJSON(filepath.Join(dir, messagesDump), &messages); err != nil {
		return nil, fmt.Errorf("loading %s: %w", messagesDump, err)
	}
	sess := research.NewSession(messages)

	if err := loadJSON(filepath.Join(dir, sourcesDump), &sess.Results); err != nil {
		return nil, fmt.Errorf("loading %s: %w", sourcesDump, err)
	}

	var visited []string
	if err := loadJSON(filepath.Join(dir, visitedDump), &visited); err != nil {
		return nil, fmt.Errorf("loading %s: %w", visitedDump, err)
	}
	for _, u := range visited {
		sess.Claim(u)
	}
	return sess, nil
}

// WriteOutput writes content into the output directory under a name built
// from the research question, and returns the path.
func (a *App) WriteOutput(prefix, question, content string) (string, error) {
	dir := a.outputDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.md", prefix, utils.ShortDescription(question, 3)))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (a *App) outputDir() string {
	if a.Cfg.General.OutputDir != "" {
		return a.Cfg.General.OutputDir
	}
	return "output"
}

func dumpJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
