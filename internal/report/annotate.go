package report

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/drbombe/researchpal/internal/helpers"
	"github.com/drbombe/researchpal/models"
)

// Annotate chunks the base report into sentence blocks, attaches the top
// similarity-ranked references to each block, then launches one generation
// call per (block, reference) pair to extract a title and supporting
// statement. All pairs run concurrently; the assembled document follows
// (block index, reference index) order, never completion order. A failed
// pair leaves its statement empty without blocking the others.
func (b *Builder) Annotate(ctx context.Context, baseReport string, refs []models.Reference) (string, error) {
	blocks := helpers.SentenceBlocks(baseReport, b.blockSentences)
	annotated, err := b.selector.Select(ctx, blocks, refs)
	if err != nil {
		return "", fmt.Errorf("selecting references: %w", err)
	}

	g := new(errgroup.Group)
	for bi := range annotated {
		block := annotated[bi].Block
		for ri := range annotated[bi].SelectedReferences {
			ref := &annotated[bi].SelectedReferences[ri]
			g.Go(func() error {
				response, err := b.provider.Generate(ctx, SupportStatementPrompt(block, ref.Summary), models.Summarizing)
				if err != nil {
					b.logger.Printf("supporting statement for %s failed: %v", ref.URL, err)
					return nil
				}
				ref.Title, ref.SupportingStatement = ParseTitleStatement(response)
				return nil
			})
		}
	}
	_ = g.Wait()

	return assembleAnnotated(annotated), nil
}

// ParseTitleStatement parses the two-line "Reference Title: / Statement:"
// response contract, tolerating reordered or missing lines.
func ParseTitleStatement(response string) (string, string) {
	var title, statement string
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Reference Title:"):
			title = strings.TrimSpace(strings.TrimPrefix(trimmed, "Reference Title:"))
		case strings.HasPrefix(trimmed, "Statement:"):
			statement = strings.TrimSpace(strings.TrimPrefix(trimmed, "Statement:"))
		}
	}
	if title == "" && statement == "" {
		// Model ignored the format; keep the raw response as the statement.
		statement = strings.TrimSpace(response)
	}
	return title, statement
}

func assembleAnnotated(annotated []models.AnnotatedBlock) string {
	var out strings.Builder
	out.WriteString("# Annotated Report\n\n")
	for _, block := range annotated {
		out.WriteString("> " + block.Block + "\n\n")
		for _, ref := range block.SelectedReferences {
			if ref.Title != "" {
				out.WriteString(fmt.Sprintf("- **Reference Title:** %s\n", ref.Title))
				out.WriteString(fmt.Sprintf("  **Link:** [%s](%s)\n", ref.URL, ref.URL))
			} else {
				out.WriteString(fmt.Sprintf("- **Link:** [%s](%s)\n", ref.URL, ref.URL))
			}
			out.WriteString(fmt.Sprintf("  **Statement:** %s\n\n", ref.SupportingStatement))
		}
		out.WriteString("\n")
	}
	return out.String()
}
