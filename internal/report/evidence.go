package report

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/drbombe/researchpal/internal/helpers"
	"github.com/drbombe/researchpal/models"
)

// NoEvidenceMarker is emitted for a block whose generation call failed or
// whose references contained nothing supportive.
const NoEvidenceMarker = "No supporting evidence found."

// GenerateEvidence issues one generation call per block, covering all of
// that block's references at once: the model ranks the references and
// extracts the best-supporting passages. Exactly one evidence entry is
// produced per input block, in input order; a failed call yields the
// no-evidence marker for its block without aborting the others.
func (b *Builder) GenerateEvidence(ctx context.Context, blocks []models.BlockEvidence) []string {
	evidence := make([]string, len(blocks))
	g := new(errgroup.Group)
	for i, block := range blocks {
		g.Go(func() error {
			out, err := b.evidenceForBlock(ctx, block)
			if err != nil {
				b.logger.Printf("evidence for block %d failed: %v", i, err)
				out = NoEvidenceMarker
			}
			evidence[i] = out
			return nil
		})
	}
	_ = g.Wait()
	return evidence
}

func (b *Builder) evidenceForBlock(ctx context.Context, block models.BlockEvidence) (string, error) {
	if len(block.References) == 0 {
		return NoEvidenceMarker, nil
	}

	var learnings strings.Builder
	for _, ref := range block.References {
		learnings.WriteString(helpers.FormatSourceRecord(ref.URL, ref.Summary))
	}

	messages := []models.Message{
		EvidencePrompt(b.maxEvidenceRefs),
		{
			Role:    models.RoleUser,
			Content: "Original Statement: " + block.Statement + "\n\nSupporting Evidence: " + learnings.String(),
		},
	}
	out, err := b.provider.Generate(ctx, messages, models.Summarizing)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// AssembleEvidence interleaves each statement block with its evidence
// entry. The two lists must be the same length; the caller guarantees this
// by always producing one evidence entry per block, and a mismatch is a
// fatal precondition violation.
func AssembleEvidence(blocks []models.BlockEvidence, evidence []string) (string, error) {
	if len(blocks) != len(evidence) {
		return "", fmt.Errorf("evidence count %d does not match block count %d", len(evidence), len(blocks))
	}
	var out strings.Builder
	for i, block := range blocks {
		out.WriteString(block.Statement)
		out.WriteString("\n\n")
		out.WriteString(evidence[i])
		out.WriteString("\n\n")
	}
	return out.String(), nil
}
