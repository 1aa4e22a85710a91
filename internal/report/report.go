package report

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/drbombe/researchpal/config"
	"github.com/drbombe/researchpal/internal/helpers"
	"github.com/drbombe/researchpal/internal/similarity"
	"github.com/drbombe/researchpal/models"
	"github.com/drbombe/researchpal/provider"
	"github.com/drbombe/researchpal/utils"
)

// Builder assembles the base report, its annotation layer, and the
// supporting-evidence variant.
type Builder struct {
	provider provider.Provider
	selector *similarity.Selector
	logger   *log.Logger

	blockSentences  int
	maxTocSections  int
	sectionMinWords int
	maxEvidenceRefs int
}

func NewBuilder(p provider.Provider, selector *similarity.Selector, logger *log.Logger, cfg config.ReportConfig) *Builder {
	blockSentences := cfg.BlockSentences
	if blockSentences <= 0 {
		blockSentences = 3
	}
	maxToc := cfg.MaxTocSections
	if maxToc <= 0 {
		maxToc = 8
	}
	minWords := cfg.SectionMinWords
	if minWords <= 0 {
		minWords = 3000
	}
	maxRefs := cfg.MaxEvidenceRefs
	if maxRefs <= 0 {
		maxRefs = 5
	}
	return &Builder{
		provider:        p,
		selector:        selector,
		logger:          logger,
		blockSentences:  blockSentences,
		maxTocSections:  maxToc,
		sectionMinWords: minWords,
		maxEvidenceRefs: maxRefs,
	}
}

// GenerateBase produces the base narrative report: a table of contents is
// planned with the reasoning model, parsed back through the section
// separators, and each section is then drafted in document order with the
// accumulated content threaded through for continuity.
func (b *Builder) GenerateBase(ctx context.Context, conversation []models.Message) (string, error) {
	tocMessages := append([]models.Message{TocPrompt(b.maxTocSections)}, conversation...)
	b.logger.Printf("generating table of contents")
	toc, err := b.provider.Generate(ctx, tocMessages, models.Reasoning)
	if err != nil {
		return "", fmt.Errorf("table of contents: %w", err)
	}

	title, sections := helpers.ParseSections(toc)
	if len(sections) == 0 {
		return "", fmt.Errorf("table of contents contained no parseable sections")
	}

	var body strings.Builder
	accumulated := ""
	for i, outline := range sections {
		sectionTitle := strings.TrimSpace(strings.SplitN(outline, "\n", 2)[0])
		b.logger.Printf("generating section %d/%d: %s", i+1, len(sections), sectionTitle)

		messages := append([]models.Message{SectionPrompt(outline, accumulated, b.sectionMinWords)}, conversation...)
		content, err := b.provider.Generate(ctx, messages, models.Summarizing)
		if err != nil {
			return "", fmt.Errorf("section %q: %w", sectionTitle, err)
		}

		section := "## " + sectionTitle + "\n\n" + content + "\n\n"
		body.WriteString(section)
		accumulated += section
	}

	return "# " + title + "\n\n" + body.String(), nil
}

// AppendReferenceLinks adds the deduplicated link appendix to a report.
func AppendReferenceLinks(report string, urls []string) string {
	var b strings.Builder
	b.WriteString(report)
	b.WriteString("\n\n## All Reference Links\n\n")
	for _, url := range utils.UniqueURLs([][]string{urls}) {
		b.WriteString(fmt.Sprintf("- [%s](%s)\n", url, url))
	}
	b.WriteString("\n")
	return b.String()
}
